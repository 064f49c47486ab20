package trackball

import (
	"github.com/Carmen-Shannon/trackball-go/engine/rotation"
	"github.com/go-gl/mathgl/mgl64"
)

// ControllerOption is a functional option for configuring a Controller.
// Use the With* functions to create options that are applied directly to the
// controller instance. Configuration is read-only after construction.
type ControllerOption func(*controllerImpl)

// WithMethod sets the rotation method. The method is selected once per
// controller and does not change mid-drag. Invalid values are rejected by
// NewController; use rotation.ParseMethod to convert method names.
//
// Parameters:
//   - m: the rotation method
//
// Returns:
//   - ControllerOption: option function to apply
func WithMethod(m rotation.Method) ControllerOption {
	return func(c *controllerImpl) {
		c.method = m
	}
}

// WithBallsize sets the scale factor on the ball projection radius.
// Must be positive; NewController rejects other values.
//
// Parameters:
//   - ballsize: projection radius scale (default 0.75)
//
// Returns:
//   - ControllerOption: option function to apply
func WithBallsize(ballsize float64) ControllerOption {
	return func(c *controllerImpl) {
		c.ballsize = ballsize
	}
}

// WithBorder sets the border width extending the effective sphere radius.
// The rounded_arcball method overrides this with its own fixed border at
// construction time.
//
// Parameters:
//   - border: border width (default 0, must not be negative)
//
// Returns:
//   - ControllerOption: option function to apply
func WithBorder(border float64) ControllerOption {
	return func(c *controllerImpl) {
		c.border = border
	}
}

// WithClampElevation limits the azel method's elevation to just inside
// (-π/2, π/2).
//
// Parameters:
//   - clamp: if true, elevation is clamped (default false)
//
// Returns:
//   - ControllerOption: option function to apply
func WithClampElevation(clamp bool) ControllerOption {
	return func(c *controllerImpl) {
		c.clampElevation = clamp
	}
}

// WithInvertX inverts the horizontal drag axis.
//
// Parameters:
//   - invert: if true, horizontal deltas are negated (default false)
//
// Returns:
//   - ControllerOption: option function to apply
func WithInvertX(invert bool) ControllerOption {
	return func(c *controllerImpl) {
		c.invertX = invert
	}
}

// WithInvertY inverts the vertical drag axis.
//
// Parameters:
//   - invert: if true, vertical deltas are negated (default false)
//
// Returns:
//   - ControllerOption: option function to apply
func WithInvertY(invert bool) ControllerOption {
	return func(c *controllerImpl) {
		c.invertY = invert
	}
}

// WithSpeed sets the drag speed multiplier applied to pointer offsets.
// Must be positive; NewController rejects other values.
//
// Parameters:
//   - speed: the multiplier (default 1)
//
// Returns:
//   - ControllerOption: option function to apply
func WithSpeed(speed float64) ControllerOption {
	return func(c *controllerImpl) {
		c.speed = speed
	}
}

// WithOrientation sets the initial orientation. The quaternion is normalized
// on application.
//
// Parameters:
//   - q: the initial orientation (default identity)
//
// Returns:
//   - ControllerOption: option function to apply
func WithOrientation(q mgl64.Quat) ControllerOption {
	return func(c *controllerImpl) {
		c.committed = q.Normalize()
		c.current = c.committed
	}
}

// WithBounds sets the function queried on pointer-down for the interactive
// element's current bounding rectangle. Without it, pointer events are
// ignored and the controller is only usable through Rotate and Reset.
//
// Parameters:
//   - bounds: the bounds query function
//
// Returns:
//   - ControllerOption: option function to apply
func WithBounds(bounds BoundsFunc) ControllerOption {
	return func(c *controllerImpl) {
		c.bounds = bounds
	}
}

// WithScheduler sets the frame scheduler used to coalesce bursts of move
// samples to one update per repaint. Without a scheduler, samples are
// applied synchronously as they arrive.
//
// Parameters:
//   - s: the frame scheduler
//
// Returns:
//   - ControllerOption: option function to apply
func WithScheduler(s Scheduler) ControllerOption {
	return func(c *controllerImpl) {
		c.scheduler = s
	}
}

// WithDrawCallback sets the callback invoked after every orientation change.
//
// Parameters:
//   - draw: the draw callback (nil disables redraw notification)
//
// Returns:
//   - ControllerOption: option function to apply
func WithDrawCallback(draw DrawFunc) ControllerOption {
	return func(c *controllerImpl) {
		c.draw = draw
	}
}
