package projector

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/trackball-go/common"
)

func TestNormalize_CenterAndOrientation(t *testing.T) {
	box := common.Rect{X: 0, Y: 0, Width: 400, Height: 400}

	// The viewport center maps to the ball origin.
	px, py := Normalize(200.5, 200.5, box, 1)
	if math.Abs(px) > 1e-12 || math.Abs(py) > 1e-12 {
		t.Fatalf("expected center to normalize to origin, got (%.6g, %.6g)", px, py)
	}

	// Screen y grows downward; ball y grows upward.
	_, top := Normalize(200.5, 0, box, 1)
	_, bottom := Normalize(200.5, 400, box, 1)
	if top <= 0 || bottom >= 0 {
		t.Fatalf("expected y flip: top=%.6g bottom=%.6g", top, bottom)
	}

	// Ballsize scales the normalized radius down.
	pxBig, _ := Normalize(300, 200.5, box, 1)
	pxSmall, _ := Normalize(300, 200.5, box, 2)
	if math.Abs(pxBig-2*pxSmall) > 1e-12 {
		t.Fatalf("expected ballsize=2 to halve coordinates: %.6g vs %.6g", pxBig, pxSmall)
	}

	// The box offset shifts with the element.
	shifted := common.Rect{X: 100, Y: 50, Width: 400, Height: 400}
	sx, sy := Normalize(300.5, 250.5, shifted, 1)
	if math.Abs(sx) > 1e-12 || math.Abs(sy) > 1e-12 {
		t.Fatalf("expected shifted center to normalize to origin, got (%.6g, %.6g)", sx, sy)
	}
}

func TestSpherePoint_UnitCap(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{0.3, 0.4},
		{0.6, -0.5},
		{-0.9, 0.1},
	}
	for _, p := range points {
		v := SpherePoint(p[0], p[1], 0)
		if v.Z() <= 0 {
			t.Fatalf("point (%.2f, %.2f): expected positive z, got %.6g", p[0], p[1], v.Z())
		}
		if math.Abs(v.Len()-1) > 1e-9 {
			t.Fatalf("point (%.2f, %.2f): expected unit norm, got %.12g", p[0], p[1], v.Len())
		}
	}
}

func TestSpherePoint_OutsideClampsToPlane(t *testing.T) {
	for _, p := range [][2]float64{{0.8, 0.8}, {1.5, 0}, {-2, 2}} {
		v := SpherePoint(p[0], p[1], 0)
		if v.Z() != 0 {
			t.Fatalf("point (%.2f, %.2f): expected z=0 outside the disk, got %.6g", p[0], p[1], v.Z())
		}
		if v.X() != p[0] || v.Y() != p[1] {
			t.Fatalf("point (%.2f, %.2f): x/y must pass through, got (%.6g, %.6g)", p[0], p[1], v.X(), v.Y())
		}
	}
}

func TestSpherePoint_BorderSkirt(t *testing.T) {
	const border = 0.5
	ra := 1 + border
	a := border * (1 + border/2)
	ri := 2 / (ra + 1/ra)

	// A point between the inner and outer radius lands on the hyperbolic
	// skirt: z positive but below the sphere cap.
	px := 0.65
	dist := px * ra
	if dist <= ri || dist >= ra {
		t.Fatalf("test point not in skirt band: dist=%.6g ri=%.6g ra=%.6g", dist, ri, ra)
	}
	v := SpherePoint(px, 0, border)
	dr := ra - dist
	want := a - math.Sqrt((a+dr)*(a-dr))
	if math.Abs(v.Z()-want) > 1e-12 {
		t.Fatalf("skirt z: got %.12g want %.12g", v.Z(), want)
	}
	if v.Z() <= 0 {
		t.Fatalf("skirt z must stay positive inside the band, got %.6g", v.Z())
	}

	// Past the outer radius the point is clamped to the plane.
	far := SpherePoint(1.2, 0, border)
	if far.Z() != 0 {
		t.Fatalf("expected z=0 beyond the outer radius, got %.6g", far.Z())
	}
}

func TestBellPoint_CapAndSkirt(t *testing.T) {
	// Center is the sphere apex; the cap branch must handle dist=0.
	if v := BellPoint(0, 0, 0); math.Abs(v.Z()-1) > 1e-12 {
		t.Fatalf("expected z=1 at the center, got %.12g", v.Z())
	}

	// Inside the 45° latitude: true sphere cap.
	v := BellPoint(0.3, 0.4, 0)
	if math.Abs(v.Z()-math.Sqrt(1-0.25)) > 1e-12 {
		t.Fatalf("cap z: got %.12g want %.12g", v.Z(), math.Sqrt(0.75))
	}

	// Outside: reciprocal skirt z = 1/(2*dist).
	v = BellPoint(0.8, 0.6, 0)
	if math.Abs(v.Z()-0.5) > 1e-12 {
		t.Fatalf("skirt z: got %.12g want 0.5", v.Z())
	}
}

func TestBellPoint_SkirtIsContinuousAtBoundary(t *testing.T) {
	// At dist = 1/sqrt(2) both branches give z = 1/sqrt(2); samples just
	// either side of the boundary must agree closely.
	d := 1 / math.Sqrt2
	inside := BellPoint(d-1e-9, 0, 0)
	outside := BellPoint(d+1e-9, 0, 0)
	if math.Abs(inside.Z()-outside.Z()) > 1e-6 {
		t.Fatalf("discontinuity at the bell boundary: %.12g vs %.12g", inside.Z(), outside.Z())
	}
}
