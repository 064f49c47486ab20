package replay

import (
	"fmt"
	"math"
	"testing"

	"github.com/Carmen-Shannon/trackball-go/common"
	"github.com/Carmen-Shannon/trackball-go/engine/rotation"
	"github.com/Carmen-Shannon/trackball-go/engine/trackball"
	"github.com/go-gl/mathgl/mgl64"
)

var testBox = common.Rect{X: 0, Y: 0, Width: 400, Height: 400}

func quatClose(a, b mgl64.Quat, tol float64) bool {
	same := math.Abs(a.W-b.W) + a.V.Sub(b.V).Len()
	flip := math.Abs(a.W+b.W) + a.V.Add(b.V).Len()
	return same < tol || flip < tol
}

func buildController(m rotation.Method) BuildFunc {
	return func(box common.Rect) (trackball.Controller, error) {
		return trackball.NewController(
			trackball.WithMethod(m),
			trackball.WithBounds(func() common.Rect { return box }),
		)
	}
}

func dragTrace(to ...[2]float64) Trace {
	t := Trace{Box: testBox}
	t.Samples = append(t.Samples, Sample{Kind: PointerDown, X: 200, Y: 200})
	for _, p := range to {
		t.Samples = append(t.Samples, Sample{Kind: PointerMove, X: p[0], Y: p[1]})
	}
	last := to[len(to)-1]
	t.Samples = append(t.Samples, Sample{Kind: PointerUp, X: last[0], Y: last[1]})
	return t
}

func TestRun_MatchesDirectDrive(t *testing.T) {
	trace := dragTrace([2]float64{240, 220}, [2]float64{300, 180})

	c, err := buildController(rotation.Trackball)(testBox)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := Run(trace, c)

	ref, err := buildController(rotation.Trackball)(testBox)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ref.PointerDown(200, 200)
	ref.PointerMove(240, 220)
	ref.PointerMove(300, 180)
	ref.PointerUp(300, 180)

	if !quatClose(got, ref.Orientation(), 1e-15) {
		t.Fatalf("replayed orientation %+v does not match direct drive %+v", got, ref.Orientation())
	}
}

func TestRecorder_CapturesEventOrder(t *testing.T) {
	r := NewRecorder(testBox)
	r.Down(200, 200)
	r.Move(240, 220)
	r.Up(240, 220)

	trace := r.Trace()
	if trace.Box != testBox {
		t.Fatalf("trace box: got %+v", trace.Box)
	}
	kinds := []EventKind{PointerDown, PointerMove, PointerUp}
	if len(trace.Samples) != len(kinds) {
		t.Fatalf("expected %d samples, got %d", len(kinds), len(trace.Samples))
	}
	for i, k := range kinds {
		if trace.Samples[i].Kind != k {
			t.Fatalf("sample %d: kind %v, want %v", i, trace.Samples[i].Kind, k)
		}
	}
	for i := 1; i < len(trace.Samples); i++ {
		if trace.Samples[i].At < trace.Samples[i-1].At {
			t.Fatal("sample timestamps must be monotonic")
		}
	}
}

func TestEvaluateBatch_MatchesSerialResults(t *testing.T) {
	traces := []Trace{
		dragTrace([2]float64{240, 220}),
		dragTrace([2]float64{180, 260}, [2]float64{160, 300}),
		dragTrace([2]float64{300, 180}),
		dragTrace([2]float64{210, 210}, [2]float64{230, 230}, [2]float64{260, 260}),
	}
	build := buildController(rotation.Sphere)

	got, err := EvaluateBatch(traces, build, 2)
	if err != nil {
		t.Fatalf("EvaluateBatch: %v", err)
	}
	if len(got) != len(traces) {
		t.Fatalf("expected %d results, got %d", len(traces), len(got))
	}

	for i, trace := range traces {
		c, err := build(trace.Box)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		want := Run(trace, c)
		if !quatClose(got[i], want, 1e-15) {
			t.Fatalf("trace %d: batch %+v does not match serial %+v", i, got[i], want)
		}
	}
}

func TestEvaluateBatch_PropagatesBuildError(t *testing.T) {
	traces := []Trace{dragTrace([2]float64{240, 220})}
	failing := func(common.Rect) (trackball.Controller, error) {
		return nil, fmt.Errorf("boom")
	}

	if _, err := EvaluateBatch(traces, failing, 1); err == nil {
		t.Fatal("expected build error to propagate")
	}

	if _, err := EvaluateBatch(traces, nil, 1); err == nil {
		t.Fatal("expected error for nil build function")
	}
}
