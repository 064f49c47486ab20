// package rotation implements the rotation-method strategies that map pointer
// movement over a viewport to an incremental orientation quaternion. Each
// Method is a distinct geometric construction; Advance dispatches one
// coalesced pointer sample to the active method's math.
package rotation

import "fmt"

// Method identifies one of the supported virtual-trackball rotation methods.
// The set is closed: values outside the named constants are invalid and are
// rejected at controller construction.
type Method int

const (
	// Trackball rotates about an axis perpendicular to the drag direction and
	// commits the anchor after every sample, so successive increments compose
	// without precession drift.
	Trackball Method = iota

	// TrackballNoPrecession keeps the anchor and drag-start position fixed for
	// the whole drag, reproducing the classic single-axis-per-drag behavior.
	TrackballNoPrecession

	// Azel accumulates azimuth and elevation angles from pointer deltas and
	// rebuilds the orientation from Euler angles each sample.
	Azel

	// Sphere rotates by the shortest arc between successive ball projections,
	// committing the anchor after every sample.
	Sphere

	// Shoemake is the classical arcball: shortest-arc rotation applied twice,
	// anchored at the drag start for the whole session.
	Shoemake

	// RoundedArcball is Shoemake's arcball with a fixed border that rounds the
	// projection skirt past the sphere's rim.
	RoundedArcball

	// Bell uses Bell's reciprocal skirt past the sphere's 45° latitude,
	// otherwise behaving like Shoemake.
	Bell

	methodCount
)

var methodNames = map[Method]string{
	Trackball:             "trackball",
	TrackballNoPrecession: "trackball_no_precession",
	Azel:                  "azel",
	Sphere:                "sphere",
	Shoemake:              "shoemake",
	RoundedArcball:        "rounded_arcball",
	Bell:                  "bell",
}

// ParseMethod converts a method name to its Method value.
// Unknown names are an error; callers must fail fast rather than fall through
// to undefined projection geometry.
//
// Parameters:
//   - name: one of "trackball", "trackball_no_precession", "azel", "sphere",
//     "shoemake", "rounded_arcball", "bell"
//
// Returns:
//   - Method: the parsed method
//   - error: error if the name is not a known method
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown rotation method %q", name)
}

// String returns the canonical name of the method, or "invalid" for values
// outside the closed set.
func (m Method) String() string {
	if n, ok := methodNames[m]; ok {
		return n
	}
	return "invalid"
}

// Valid reports whether m is one of the named methods.
//
// Returns:
//   - bool: true if m is a member of the closed method set
func (m Method) Valid() bool {
	return m >= Trackball && m < methodCount
}

// UsesProjection reports whether the method projects pointer positions onto
// the reference ball. Azel and the two trackball variants consume raw pointer
// deltas instead and never invoke the projector.
//
// Returns:
//   - bool: true for the sphere-family methods
func (m Method) UsesProjection() bool {
	switch m {
	case Sphere, Shoemake, RoundedArcball, Bell:
		return true
	default:
		return false
	}
}
