package common

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	cases := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},    // top-left corner
		{110, 70, true},   // bottom-right corner
		{60, 45, true},    // interior
		{9.9, 45, false},  // left of box
		{60, 70.1, false}, // below box
		{111, 45, false},  // right of box
	}
	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%.1f, %.1f) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRect_Dims(t *testing.T) {
	r := Rect{Width: 300, Height: 200}
	if r.MinDim() != 200 || r.MaxDim() != 300 {
		t.Fatalf("dims: min=%.0f max=%.0f", r.MinDim(), r.MaxDim())
	}
	if r.Empty() {
		t.Fatal("non-degenerate rect must not be empty")
	}
	if !(Rect{}).Empty() {
		t.Fatal("zero rect must be empty")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 {
		t.Fatal("Clamp bounds are wrong")
	}
}
