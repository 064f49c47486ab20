package trackball

import (
	"github.com/Carmen-Shannon/trackball-go/common"
	"github.com/Carmen-Shannon/trackball-go/engine/rotation"
	"github.com/go-gl/mathgl/mgl64"
)

// pointerSample is one raw pointer position awaiting application.
type pointerSample struct {
	x, y float64
}

// dragSession holds the anchor data for one drag. It is created on
// pointer-down and destroyed on pointer-up; it never persists across drags.
type dragSession struct {
	// box is the bounding box captured at drag start, frozen for the
	// session's duration.
	box common.Rect

	// origin is the raw pointer-down position. Inversion and speed scaling
	// are applied to offsets from this point.
	origin mgl64.Vec2

	// startPos is the position deltas are measured from, in effective
	// (inversion/speed adjusted) coordinates. Per-sample-commit methods move
	// it forward with every applied sample.
	startPos mgl64.Vec2

	// startVec is the ball projection at startPos, for the sphere-family
	// methods.
	startVec mgl64.Vec3

	// anchor is the orientation the incremental rotation composes onto.
	anchor mgl64.Quat
}

// effective maps a raw pointer position into the session's effective
// coordinate space, applying the speed multiplier and axis inversion to the
// offset from the drag origin.
func (s *dragSession) effective(x, y float64, invertX, invertY bool, speed float64) mgl64.Vec2 {
	sx, sy := speed, speed
	if invertX {
		sx = -sx
	}
	if invertY {
		sy = -sy
	}
	return mgl64.Vec2{
		s.origin.X() + (x-s.origin.X())*sx,
		s.origin.Y() + (y-s.origin.Y())*sy,
	}
}

func (c *controllerImpl) PointerDown(x, y float64) {
	c.mu.Lock()
	if c.session != nil {
		// Single active pointer only.
		c.mu.Unlock()
		return
	}

	var box common.Rect
	if c.bounds != nil {
		box = c.bounds()
	}
	if box.Empty() || !box.Contains(x, y) {
		c.mu.Unlock()
		return
	}

	s := &dragSession{
		box:      box,
		origin:   mgl64.Vec2{x, y},
		startPos: mgl64.Vec2{x, y},
		anchor:   c.committed,
	}
	if c.method.UsesProjection() {
		s.startVec = rotation.ProjectPoint(c.method, x, y, box, c.ballsize, c.border)
	}
	c.session = s
	out := c.current
	c.mu.Unlock()

	// Orientation is unchanged on drag start; the redraw is visual feedback
	// that the drag began.
	c.invokeDraw(out)
}

func (c *controllerImpl) PointerMove(x, y float64) {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return
	}
	if !c.session.box.Contains(x, y) {
		// Out-of-bounds samples are dropped, not clamped; the drag stops
		// tracking until the pointer re-enters.
		c.mu.Unlock()
		return
	}

	c.pending = &pointerSample{x: x, y: y}

	if c.scheduler == nil {
		out, changed := c.applyPendingLocked()
		c.mu.Unlock()
		if changed {
			c.invokeDraw(out)
		}
		return
	}

	if !c.scheduled {
		c.scheduled = true
		c.scheduler.Schedule(c.applyScheduled)
	}
	c.mu.Unlock()
}

func (c *controllerImpl) PointerUp(_, _ float64) {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return
	}

	// Unconditional commit covers the methods that did not already commit
	// per sample.
	c.committed = c.current
	c.azimuthStart = c.azimuth
	c.elevationStart = c.elevation
	c.session = nil
	c.pending = nil
	out := c.current
	c.mu.Unlock()

	c.invokeDraw(out)
}

// applyScheduled is the scheduler tick: it consumes the pending sample if the
// drag is still active. A stale tick arriving after drag end finds no session
// and does nothing.
func (c *controllerImpl) applyScheduled() {
	c.mu.Lock()
	c.scheduled = false
	if c.session == nil {
		c.pending = nil
		c.mu.Unlock()
		return
	}
	out, changed := c.applyPendingLocked()
	c.mu.Unlock()

	if changed {
		c.invokeDraw(out)
	}
}

// applyPendingLocked dispatches the pending sample to the active rotation
// method and writes the resulting state back. Zero-delta samples are a no-op.
// Caller must hold the mutex.
//
// Returns:
//   - mgl64.Quat: the orientation after the sample
//   - bool: true if the sample was applied and a redraw is due
func (c *controllerImpl) applyPendingLocked() (mgl64.Quat, bool) {
	sm := c.pending
	c.pending = nil
	if sm == nil {
		return c.current, false
	}

	eff := c.session.effective(sm.x, sm.y, c.invertX, c.invertY, c.speed)
	if eff == c.session.startPos {
		return c.current, false
	}

	st := rotation.Advance(c.method, rotation.State{
		Anchor:         c.session.anchor,
		Current:        c.current,
		StartPos:       c.session.startPos,
		StartVec:       c.session.startVec,
		Azimuth:        c.azimuth,
		Elevation:      c.elevation,
		AzimuthStart:   c.azimuthStart,
		ElevationStart: c.elevationStart,
	}, rotation.Input{
		Pos:            eff,
		Box:            c.session.box,
		Ballsize:       c.ballsize,
		Border:         c.border,
		ClampElevation: c.clampElevation,
	})

	c.current = st.Current
	c.session.anchor = st.Anchor
	c.session.startPos = st.StartPos
	c.session.startVec = st.StartVec
	c.azimuth = st.Azimuth
	c.elevation = st.Elevation

	return c.current, true
}
