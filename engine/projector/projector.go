// package projector maps normalized 2D pointer coordinates onto a reference
// ball for the sphere-family rotation methods. The projection extends past the
// unit sphere with a smooth skirt (hyperbolic for the arcball family,
// reciprocal for Bell's variant) so drags remain continuous beyond the rim.
package projector

import (
	"math"

	"github.com/Carmen-Shannon/trackball-go/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Normalize maps raw pointer coordinates to ball space.
// The result is centered on the viewport, scaled so the shorter of the two
// half-extents spans roughly 1/ballsize, and flipped so y grows upward.
//
// Parameters:
//   - x: raw horizontal pointer coordinate in pixels
//   - y: raw vertical pointer coordinate in pixels (y-down)
//   - box: the viewport rectangle the coordinates are relative to
//   - ballsize: positive scale factor on the projection radius
//
// Returns:
//   - px: normalized horizontal coordinate
//   - py: normalized vertical coordinate (y-up)
func Normalize(x, y float64, box common.Rect, ballsize float64) (px, py float64) {
	maxDim := box.MaxDim() - 1
	px = (2*(x-box.X) - box.Width - 1) / maxDim / ballsize
	py = -(2*(y-box.Y) - box.Height - 1) / maxDim / ballsize
	return px, py
}

// SpherePoint projects a normalized point onto the unit sphere extended by a
// hyperbolic skirt. Used by the sphere, shoemake and rounded_arcball methods.
//
// Inside the inner radius the point lands on the true sphere cap. Between the
// inner and outer radius a hyperbolic section rounds the transition instead of
// clipping flat at the rim. Beyond the outer radius the point is clamped to
// the equatorial plane (z = 0).
//
// Parameters:
//   - px: normalized horizontal coordinate (see Normalize)
//   - py: normalized vertical coordinate
//   - border: border width extending the effective sphere radius (>= 0)
//
// Returns:
//   - mgl64.Vec3: the projected 3D point
func SpherePoint(px, py, border float64) mgl64.Vec3 {
	ra := 1 + border
	a := border * (1 + border/2)
	ri := 2 / (ra + 1/ra)

	dist := math.Sqrt(px*px+py*py) * ra
	dist2 := dist * dist

	switch {
	case dist < ri:
		return mgl64.Vec3{px, py, math.Sqrt(1 - dist2)}
	case dist < ra:
		dr := ra - dist
		return mgl64.Vec3{px, py, a - math.Sqrt((a+dr)*(a-dr))}
	default:
		return mgl64.Vec3{px, py, 0}
	}
}

// BellPoint projects a normalized point onto the unit sphere extended by
// Bell's reciprocal skirt: within the sphere's 45° latitude the point lands on
// the true cap, beyond it z falls off as 1/(2*dist).
//
// The branch order matters: dist == 0 always satisfies the cap branch, which
// keeps the reciprocal branch away from a division by zero.
//
// Parameters:
//   - px: normalized horizontal coordinate (see Normalize)
//   - py: normalized vertical coordinate
//   - border: border width extending the effective sphere radius (>= 0)
//
// Returns:
//   - mgl64.Vec3: the projected 3D point
func BellPoint(px, py, border float64) mgl64.Vec3 {
	ra := 1 + border

	dist := math.Sqrt(px*px+py*py) * ra
	dist2 := dist * dist

	if dist < 1/math.Sqrt2 {
		return mgl64.Vec3{px, py, math.Sqrt(1 - dist2)}
	}
	return mgl64.Vec3{px, py, 1 / (2 * dist)}
}
