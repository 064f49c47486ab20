// package trackball provides the controller that turns pointer drags over a
// viewport into a cumulative orientation quaternion, using one of the
// interchangeable rotation methods from the rotation package.
package trackball

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/trackball-go/common"
	"github.com/Carmen-Shannon/trackball-go/engine/rotation"
	"github.com/go-gl/mathgl/mgl64"
)

// roundedArcballBorder is the border width the rounded_arcball method fixes
// at construction, overriding any user-supplied value.
const roundedArcballBorder = 0.5

// DrawFunc receives the orientation after every change: drag start, drag
// move, drag end, Rotate and Reset. It is invoked synchronously, outside the
// controller's lock, on the thread that triggered the change.
type DrawFunc func(q mgl64.Quat)

// BoundsFunc reports the interactive element's current bounding rectangle.
// Queried once per drag, on pointer-down; the result is frozen for the
// session so mid-drag resizes do not corrupt the math.
type BoundsFunc func() common.Rect

// Scheduler is a "run this callback once before the next repaint" primitive.
// The controller schedules at most one pending update at a time; move samples
// arriving before it runs overwrite the recorded sample without scheduling a
// second update. A nil scheduler applies samples synchronously.
type Scheduler interface {
	// Schedule registers fn to run once before the next repaint, replacing
	// any previously scheduled callback.
	//
	// Parameters:
	//   - fn: the callback to run
	Schedule(fn func())
}

// Controller converts pointer events into an orientation quaternion.
// Implementations keep two live orientations: the committed orientation as of
// the last completed drag, and the current orientation reflecting the
// in-progress drag; outside of an active drag the two are equal.
type Controller interface {
	// PointerDown starts a drag at the given pointer position. A second
	// simultaneous pointer is ignored, as is a press outside the bounds.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	PointerDown(x, y float64)

	// PointerMove records a pointer sample for the active drag. Samples
	// outside the session's frozen bounding box are dropped. With a scheduler
	// configured, bursts of samples are coalesced to one update per frame.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	PointerMove(x, y float64)

	// PointerUp ends the active drag, committing the current orientation.
	//
	// Parameters:
	//   - x, y: pointer position in pixels (unused, kept for event symmetry)
	PointerUp(x, y float64)

	// Rotate right-multiplies the committed orientation by q and redraws.
	// It is a no-op while a drag is active.
	//
	// Parameters:
	//   - q: the rotation to apply
	Rotate(q mgl64.Quat)

	// Reset aborts any active drag, restores the identity orientation,
	// zeroes the azimuth/elevation state and redraws.
	Reset()

	// Orientation returns the current orientation quaternion.
	//
	// Returns:
	//   - mgl64.Quat: the current orientation
	Orientation() mgl64.Quat

	// Committed returns the orientation as of the last completed drag.
	// Outside of an active drag it equals Orientation.
	//
	// Returns:
	//   - mgl64.Quat: the committed orientation
	Committed() mgl64.Quat

	// Dragging reports whether a drag session is active.
	//
	// Returns:
	//   - bool: true while a pointer is held
	Dragging() bool

	// Method returns the rotation method the controller was built with.
	//
	// Returns:
	//   - rotation.Method: the active method
	Method() rotation.Method

	// Azimuth returns the accumulated azimuth angle in radians.
	// Only meaningful for the azel method.
	//
	// Returns:
	//   - float64: azimuth in radians
	Azimuth() float64

	// Elevation returns the accumulated elevation angle in radians.
	// Only meaningful for the azel method.
	//
	// Returns:
	//   - float64: elevation in radians
	Elevation() float64
}

// controllerImpl is the single implementation of Controller.
// All mutable state is guarded by mu; the draw callback is always invoked
// outside the lock so it may call back into the controller.
type controllerImpl struct {
	mu *sync.Mutex

	// Configuration, read-only after construction.
	method         rotation.Method
	ballsize       float64
	border         float64
	clampElevation bool
	invertX        bool
	invertY        bool
	speed          float64

	// committed is the orientation as of the last completed drag ("q0");
	// current reflects the in-progress drag ("q").
	committed mgl64.Quat
	current   mgl64.Quat

	// Azel angles persist across drags; the Start values are snapshotted on
	// drag end, not on drag start.
	azimuth        float64
	elevation      float64
	azimuthStart   float64
	elevationStart float64

	// session exists only while a pointer is held.
	session *dragSession

	// pending is the latest coalesced move sample; scheduled tracks whether
	// an update is already queued on the scheduler.
	pending   *pointerSample
	scheduled bool

	bounds    BoundsFunc
	scheduler Scheduler
	draw      DrawFunc
}

// Compile-time interface compliance check
var _ Controller = &controllerImpl{}

// NewController creates a new trackball controller with sensible defaults:
// trackball method, ballsize 0.75, border 0, no elevation clamp, no axis
// inversion, speed 1, identity orientation.
//
// Construction fails fast on invalid configuration: an unknown rotation
// method, a non-positive ballsize or speed, or a negative border.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
//   - error: error if the configuration is invalid
func NewController(options ...ControllerOption) (Controller, error) {
	c := &controllerImpl{
		mu:       &sync.Mutex{},
		method:   rotation.Trackball,
		ballsize: 0.75,
		border:   0,
		speed:    1,

		committed: mgl64.QuatIdent(),
		current:   mgl64.QuatIdent(),
	}

	for _, option := range options {
		option(c)
	}

	if !c.method.Valid() {
		return nil, fmt.Errorf("invalid rotation method %d", int(c.method))
	}
	if c.ballsize <= 0 {
		return nil, fmt.Errorf("ballsize must be positive, got %v", c.ballsize)
	}
	if c.border < 0 {
		return nil, fmt.Errorf("border must not be negative, got %v", c.border)
	}
	if c.speed <= 0 {
		return nil, fmt.Errorf("speed must be positive, got %v", c.speed)
	}

	// The rounded arcball owns its border; the override is computed once
	// here, never dynamically.
	if c.method == rotation.RoundedArcball {
		c.border = roundedArcballBorder
	}

	return c, nil
}

func (c *controllerImpl) Rotate(q mgl64.Quat) {
	c.mu.Lock()
	if c.session != nil {
		c.mu.Unlock()
		return
	}
	c.committed = c.committed.Mul(q).Normalize()
	c.current = c.committed
	out := c.current
	c.mu.Unlock()

	c.invokeDraw(out)
}

func (c *controllerImpl) Reset() {
	c.mu.Lock()
	c.session = nil
	c.pending = nil
	c.committed = mgl64.QuatIdent()
	c.current = c.committed
	c.azimuth = 0
	c.elevation = 0
	c.azimuthStart = 0
	c.elevationStart = 0
	out := c.current
	c.mu.Unlock()

	c.invokeDraw(out)
}

func (c *controllerImpl) Orientation() mgl64.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *controllerImpl) Committed() mgl64.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.committed
}

func (c *controllerImpl) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

func (c *controllerImpl) Method() rotation.Method {
	return c.method
}

func (c *controllerImpl) Azimuth() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.azimuth
}

func (c *controllerImpl) Elevation() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elevation
}

// invokeDraw calls the draw callback if one is configured.
// Callers must not hold the mutex.
func (c *controllerImpl) invokeDraw(q mgl64.Quat) {
	if c.draw != nil {
		c.draw(q)
	}
}
