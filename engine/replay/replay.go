// package replay records and replays pointer traces through trackball
// controllers. Traces make the whole drag pipeline drivable headlessly, and
// batches of them can be evaluated in parallel on a worker pool.
package replay

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/trackball-go/common"
	"github.com/Carmen-Shannon/trackball-go/engine/trackball"
	"github.com/go-gl/mathgl/mgl64"
)

// EventKind identifies a recorded pointer event.
type EventKind int

const (
	// PointerDown starts a drag.
	PointerDown EventKind = iota
	// PointerMove advances a drag.
	PointerMove
	// PointerUp ends a drag.
	PointerUp
)

// Sample is one recorded pointer event.
type Sample struct {
	// Kind is the event type.
	Kind EventKind
	// X, Y are the pointer coordinates in pixels.
	X, Y float64
	// At is the time offset from the start of the recording.
	At time.Duration
}

// Trace is a recorded sequence of pointer events over a fixed viewport.
type Trace struct {
	// Box is the viewport rectangle the coordinates are relative to.
	Box common.Rect
	// Samples are the recorded events in arrival order.
	Samples []Sample
}

// Recorder captures pointer events into a Trace. Wire its Down/Move/Up
// methods alongside the controller's pointer handlers to record a live
// session for later replay.
type Recorder struct {
	start time.Time
	trace Trace
}

// NewRecorder creates a Recorder for the given viewport.
//
// Parameters:
//   - box: the viewport rectangle pointer coordinates are relative to
//
// Returns:
//   - *Recorder: the newly created recorder
func NewRecorder(box common.Rect) *Recorder {
	return &Recorder{
		start: time.Now(),
		trace: Trace{Box: box},
	}
}

// Down records a pointer-down event.
//
// Parameters:
//   - x, y: pointer coordinates in pixels
func (r *Recorder) Down(x, y float64) {
	r.push(PointerDown, x, y)
}

// Move records a pointer-move event.
//
// Parameters:
//   - x, y: pointer coordinates in pixels
func (r *Recorder) Move(x, y float64) {
	r.push(PointerMove, x, y)
}

// Up records a pointer-up event.
//
// Parameters:
//   - x, y: pointer coordinates in pixels
func (r *Recorder) Up(x, y float64) {
	r.push(PointerUp, x, y)
}

// Trace returns the recorded trace.
//
// Returns:
//   - Trace: a copy of the trace recorded so far
func (r *Recorder) Trace() Trace {
	out := Trace{Box: r.trace.Box, Samples: make([]Sample, len(r.trace.Samples))}
	copy(out.Samples, r.trace.Samples)
	return out
}

func (r *Recorder) push(kind EventKind, x, y float64) {
	r.trace.Samples = append(r.trace.Samples, Sample{
		Kind: kind,
		X:    x,
		Y:    y,
		At:   time.Since(r.start),
	})
}

// Run feeds a trace's events through a controller in recorded order and
// returns the resulting orientation. The controller should be configured
// without a scheduler so samples apply synchronously, and with bounds
// matching the trace's box.
//
// Parameters:
//   - t: the trace to replay
//   - c: the controller to drive
//
// Returns:
//   - mgl64.Quat: the controller's orientation after the last event
func Run(t Trace, c trackball.Controller) mgl64.Quat {
	for _, s := range t.Samples {
		switch s.Kind {
		case PointerDown:
			c.PointerDown(s.X, s.Y)
		case PointerMove:
			c.PointerMove(s.X, s.Y)
		case PointerUp:
			c.PointerUp(s.X, s.Y)
		}
	}
	return c.Orientation()
}

// BuildFunc constructs a fresh controller for one trace's viewport.
type BuildFunc func(box common.Rect) (trackball.Controller, error)

// EvaluateBatch replays every trace through its own freshly built controller
// and returns the final orientations in trace order. Traces are evaluated in
// parallel on a dynamic worker pool; each controller is private to its task,
// so no state is shared between workers.
//
// Parameters:
//   - traces: the traces to evaluate
//   - build: constructor called once per trace
//   - workers: pool size (defaults to the CPU count if <= 0)
//
// Returns:
//   - []mgl64.Quat: final orientation per trace, in input order
//   - error: the first construction error encountered, if any
func EvaluateBatch(traces []Trace, build BuildFunc, workers int) ([]mgl64.Quat, error) {
	if build == nil {
		return nil, fmt.Errorf("build function is required")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]mgl64.Quat, len(traces))
	errs := make([]error, len(traces))

	// Workers are reused across tasks; a WaitGroup provides the completion
	// barrier, and the pool is stopped once the batch has drained rather than
	// left to idle-exit.
	pool := worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)
	defer pool.Stop()
	var wg sync.WaitGroup

	for i, t := range traces {
		wg.Add(1)
		idx := i
		trace := t // capture for closure
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()

				c, err := build(trace.Box)
				if err != nil {
					errs[idx] = fmt.Errorf("trace %d: %w", idx, err)
					return nil, err
				}
				results[idx] = Run(trace, c)
				return nil, nil
			},
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
