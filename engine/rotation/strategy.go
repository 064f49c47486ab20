package rotation

import (
	"math"

	"github.com/Carmen-Shannon/trackball-go/common"
	"github.com/Carmen-Shannon/trackball-go/engine/projector"
	"github.com/go-gl/mathgl/mgl64"
)

// elevationEpsilon keeps a clamped elevation strictly inside ±π/2 so the
// Euler reconstruction never hits the poles.
const elevationEpsilon = 0.01

// State carries the mutable drag data a strategy reads and updates. The
// controller copies it in before each sample and writes the returned value
// back, keeping every strategy a pure function of (State, Input).
type State struct {
	// Anchor is the orientation the incremental rotation composes onto.
	// Per-sample-commit methods move it forward every sample; the arcball
	// family keeps it fixed at the drag's starting orientation.
	Anchor mgl64.Quat

	// Current is the orientation reflecting the in-progress drag.
	Current mgl64.Quat

	// StartPos is the pointer position deltas are measured from. Per-sample
	// commit methods reset it to the last applied sample.
	StartPos mgl64.Vec2

	// StartVec is the ball projection at StartPos. Only meaningful for
	// methods where UsesProjection reports true.
	StartVec mgl64.Vec3

	// Azimuth and Elevation are the accumulated azel angles in radians.
	// They persist across drags and are only meaningful for the Azel method.
	Azimuth   float64
	Elevation float64

	// AzimuthStart and ElevationStart are the azel angles snapshotted at the
	// start of the current drag.
	AzimuthStart   float64
	ElevationStart float64
}

// Input is one coalesced pointer sample together with the configuration the
// strategies need. Pos is the effective pointer position, with any axis
// inversion and speed scaling already applied by the drag session.
type Input struct {
	// Pos is the effective pointer position in pixels.
	Pos mgl64.Vec2

	// Box is the bounding box frozen at drag start.
	Box common.Rect

	// Ballsize scales the ball projection radius.
	Ballsize float64

	// Border extends the effective sphere radius for the projection skirt.
	Border float64

	// ClampElevation limits elevation to (-π/2, π/2) for the Azel method.
	ClampElevation bool
}

// ProjectPoint runs the method's ball projection for a raw pointer position.
// Used by the drag session to capture the start vector on pointer-down.
// Methods that do not project (azel, both trackball variants) must not call
// this; Method.UsesProjection gates it.
//
// Parameters:
//   - m: the active method (selects the skirt shape)
//   - x, y: raw pointer coordinates in pixels
//   - box: the frozen bounding box
//   - ballsize: projection radius scale
//   - border: border width
//
// Returns:
//   - mgl64.Vec3: the projected 3D point
func ProjectPoint(m Method, x, y float64, box common.Rect, ballsize, border float64) mgl64.Vec3 {
	px, py := projector.Normalize(x, y, box, ballsize)
	if m == Bell {
		return projector.BellPoint(px, py, border)
	}
	return projector.SpherePoint(px, py, border)
}

// Advance applies one pointer sample to the drag state using the method's
// geometric construction and returns the updated state. Degenerate samples
// (zero rotation axis, coincident projections) short-circuit to no rotation
// rather than producing NaN.
//
// Parameters:
//   - m: the active method
//   - st: the drag state before the sample
//   - in: the coalesced pointer sample
//
// Returns:
//   - State: the drag state after the sample
func Advance(m Method, st State, in Input) State {
	switch m {
	case Azel:
		return advanceAzel(st, in)
	case Trackball:
		return advanceTrackball(st, in, true)
	case TrackballNoPrecession:
		return advanceTrackball(st, in, false)
	case Sphere:
		return advanceSphere(st, in)
	case Shoemake, RoundedArcball, Bell:
		return advanceArcball(m, st, in)
	default:
		return st
	}
}

// advanceAzel accumulates azimuth/elevation from the pointer delta and
// rebuilds the orientation from Euler angles: elevation about X first,
// azimuth about Y second, roll fixed at zero.
func advanceAzel(st State, in Input) State {
	scale := math.Pi / in.Box.MinDim()
	dx := in.Pos.X() - st.StartPos.X()
	dy := in.Pos.Y() - st.StartPos.Y()

	st.Azimuth = st.AzimuthStart + dx*scale
	st.Elevation = st.ElevationStart + dy*scale
	if in.ClampElevation {
		limit := math.Pi/2 - elevationEpsilon
		st.Elevation = common.Clamp(st.Elevation, -limit, limit)
	}

	st.Current = mgl64.AnglesToQuat(st.Elevation, st.Azimuth, 0, mgl64.XYZ)
	return st
}

// advanceTrackball rotates about an axis perpendicular to the drag direction:
// screen-Y drives the first axis component, screen-X the second. With commit
// set the anchor and start position move forward every sample, so each
// increment rotates about an axis computed fresh from the current delta and
// the composition stays precession-free. Without commit the axis is always
// relative to the original drag start.
func advanceTrackball(st State, in Input, commit bool) State {
	minDim := in.Box.MinDim()
	kx := (in.Pos.Y() - st.StartPos.Y()) / minDim
	ky := (in.Pos.X() - st.StartPos.X()) / minDim

	norm := math.Hypot(kx, ky)
	if norm == 0 {
		return st
	}

	theta := norm * math.Pi / 2
	s := math.Sin(theta) / norm
	dq := mgl64.Quat{W: math.Cos(theta), V: mgl64.Vec3{kx * s, ky * s, 0}}

	st.Current = dq.Mul(st.Anchor).Normalize()
	if commit {
		st.Anchor = st.Current
		st.StartPos = in.Pos
	}
	return st
}

// advanceSphere composes the shortest-arc rotation between the previous and
// current ball projections, committing anchor, start vector and start
// position every sample.
func advanceSphere(st State, in Input) State {
	cur := ProjectPoint(Sphere, in.Pos.X(), in.Pos.Y(), in.Box, in.Ballsize, in.Border)
	dq := betweenVectors(st.StartVec, cur)

	st.Current = dq.Mul(st.Anchor).Normalize()
	st.Anchor = st.Current
	st.StartVec = cur
	st.StartPos = in.Pos
	return st
}

// advanceArcball applies the shortest-arc rotation twice, compensating for
// the geometric foreshortening of the arcball projections. The anchor stays
// fixed at the drag's starting orientation for the whole session.
func advanceArcball(m Method, st State, in Input) State {
	cur := ProjectPoint(m, in.Pos.X(), in.Pos.Y(), in.Box, in.Ballsize, in.Border)
	dq := betweenVectors(st.StartVec, cur)

	st.Current = dq.Mul(dq).Mul(st.Anchor).Normalize()
	return st
}

// betweenVectors returns the minimal rotation taking a to b. Coincident
// vectors short-circuit to the identity ("no rotation") instead of
// normalizing a zero axis into NaN.
func betweenVectors(a, b mgl64.Vec3) mgl64.Quat {
	if a.Sub(b).Len() < 1e-12 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(a, b).Normalize()
}
