// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Rect is an axis-aligned viewport rectangle in pixel coordinates.
// The origin is the top-left corner with y growing downward, matching the
// coordinate space reported by the window's pointer callbacks.
type Rect struct {
	// X is the left edge of the rectangle in pixels.
	X float64
	// Y is the top edge of the rectangle in pixels.
	Y float64
	// Width is the rectangle width in pixels.
	Width float64
	// Height is the rectangle height in pixels.
	Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle,
// inclusive of all edges.
//
// Parameters:
//   - x: horizontal pixel coordinate
//   - y: vertical pixel coordinate
//
// Returns:
//   - bool: true if the point is inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// MinDim returns the smaller of the rectangle's width and height.
//
// Returns:
//   - float64: the smaller dimension in pixels
func (r Rect) MinDim() float64 {
	if r.Width < r.Height {
		return r.Width
	}
	return r.Height
}

// MaxDim returns the larger of the rectangle's width and height.
//
// Returns:
//   - float64: the larger dimension in pixels
func (r Rect) MaxDim() float64 {
	if r.Width > r.Height {
		return r.Width
	}
	return r.Height
}

// Empty reports whether the rectangle has no usable area.
//
// Returns:
//   - bool: true if width or height is zero or negative
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
