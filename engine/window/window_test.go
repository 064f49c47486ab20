package window

import "testing"

// On a display with content scale 2 the framebuffer is twice the client area.
// Pointer positions arrive in client-area units, so Bounds must report those
// units and leave the framebuffer size to FramebufferSize.
func TestBoundsUsesClientAreaNotFramebuffer(t *testing.T) {
	w := &engineWindow{
		width:    800,
		height:   600,
		fbWidth:  1600,
		fbHeight: 1200,
	}

	b := w.Bounds()
	if b.X != 0 || b.Y != 0 || b.Width != 800 || b.Height != 600 {
		t.Fatalf("Bounds() = %+v, want {0 0 800 600}", b)
	}
	if !b.Contains(400, 300) {
		t.Errorf("client-area center (400,300) should be inside Bounds")
	}

	fw, fh := w.FramebufferSize()
	if fw != 1600 || fh != 1200 {
		t.Errorf("FramebufferSize() = (%d, %d), want (1600, 1200)", fw, fh)
	}

	if w.Width() != 800 || w.Height() != 600 {
		t.Errorf("Width()/Height() = (%d, %d), want client-area (800, 600)", w.Width(), w.Height())
	}
}
