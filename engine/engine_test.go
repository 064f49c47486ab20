package engine

import "testing"

func TestRunWithoutWindowPanics(t *testing.T) {
	e := NewEngine()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("Run() without a window should panic, not dereference nil")
		}
	}()
	e.Run()
}

func TestScheduleKeepsLatestCallbackOnly(t *testing.T) {
	e := NewEngine().(*engine)

	got := 0
	e.Schedule(func() { got = 1 })
	e.Schedule(func() { got = 2 })

	e.consumeFrame(0)
	if got != 2 {
		t.Fatalf("after consuming the frame got = %d, want 2 (later Schedule replaces earlier)", got)
	}

	// The slot is cleared on consumption; the next frame runs nothing.
	got = 0
	e.consumeFrame(0)
	if got != 0 {
		t.Errorf("consumed callback ran again, got = %d", got)
	}
}

func TestFrameCallbackRunsAfterScheduledUpdate(t *testing.T) {
	e := NewEngine().(*engine)

	var order []string
	e.SetFrameCallback(func(_ float64) { order = append(order, "frame") })
	e.Schedule(func() { order = append(order, "scheduled") })

	e.consumeFrame(0.016)
	if len(order) != 2 || order[0] != "scheduled" || order[1] != "frame" {
		t.Fatalf("order = %v, want [scheduled frame]", order)
	}
}
