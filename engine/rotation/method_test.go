package rotation

import "testing"

func TestParseMethod_RoundTrip(t *testing.T) {
	names := []string{
		"trackball",
		"trackball_no_precession",
		"azel",
		"sphere",
		"shoemake",
		"rounded_arcball",
		"bell",
	}
	for _, name := range names {
		m, err := ParseMethod(name)
		if err != nil {
			t.Fatalf("ParseMethod(%q): %v", name, err)
		}
		if !m.Valid() {
			t.Fatalf("ParseMethod(%q): result not valid", name)
		}
		if m.String() != name {
			t.Fatalf("ParseMethod(%q).String() = %q", name, m.String())
		}
	}
}

func TestParseMethod_Unknown(t *testing.T) {
	for _, name := range []string{"", "arcball", "Trackball", "trackball "} {
		if _, err := ParseMethod(name); err == nil {
			t.Fatalf("ParseMethod(%q): expected error", name)
		}
	}
}

func TestMethod_Valid(t *testing.T) {
	if Method(-1).Valid() {
		t.Fatal("Method(-1) must not be valid")
	}
	if Method(99).Valid() {
		t.Fatal("Method(99) must not be valid")
	}
	if Method(99).String() != "invalid" {
		t.Fatalf("Method(99).String() = %q", Method(99).String())
	}
}

func TestMethod_UsesProjection(t *testing.T) {
	cases := map[Method]bool{
		Trackball:             false,
		TrackballNoPrecession: false,
		Azel:                  false,
		Sphere:                true,
		Shoemake:              true,
		RoundedArcball:        true,
		Bell:                  true,
	}
	for m, want := range cases {
		if got := m.UsesProjection(); got != want {
			t.Errorf("%s.UsesProjection() = %v, want %v", m, got, want)
		}
	}
}
