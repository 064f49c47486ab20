package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/trackball-go/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and pointer event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetPointerDownCallback sets the callback for primary-button press.
	//
	// Parameters:
	//   - callback: function receiving the pointer x, y position in pixels
	SetPointerDownCallback(callback func(x, y float64))

	// SetPointerUpCallback sets the callback for primary-button release.
	//
	// Parameters:
	//   - callback: function receiving the pointer x, y position in pixels
	SetPointerUpCallback(callback func(x, y float64))

	// SetPointerMoveCallback sets the callback for pointer movement.
	//
	// Parameters:
	//   - callback: function receiving the pointer x, y position in pixels
	SetPointerMoveCallback(callback func(x, y float64))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up, negative = down)
	SetScrollCallback(callback func(delta float64))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// Bounds returns the window client area as a rectangle at the origin, in
	// screen coordinates. This is the bounding box pointer coordinates are
	// relative to; on high-DPI displays it is smaller than the framebuffer.
	//
	// Returns:
	//   - common.Rect: the current client area rectangle
	Bounds() common.Rect

	// FramebufferSize returns the framebuffer dimensions in pixels. On
	// high-DPI displays this differs from the client area size; use it for
	// surface configuration, never for pointer math.
	//
	// Returns:
	//   - int: framebuffer width in pixels
	//   - int: framebuffer height in pixels
	FramebufferSize() (int, int)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current client area width in screen coordinates.
	//
	// Returns:
	//   - int: width in screen coordinates
	Width() int

	// Height returns the current client area height in screen coordinates.
	//
	// Returns:
	//   - int: height in screen coordinates
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the current client area width in screen coordinates. Pointer
	// positions are reported in the same units.
	width int

	// height is the current client area height in screen coordinates.
	height int

	// fbWidth and fbHeight are the framebuffer dimensions in pixels. On
	// high-DPI displays these differ from width/height by the content scale.
	fbWidth  int
	fbHeight int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	// onPointerDown is called when the primary mouse button is pressed.
	onPointerDown func(x, y float64)

	// onPointerUp is called when the primary mouse button is released.
	onPointerUp func(x, y float64)

	// onPointerMove is called when the pointer moves within the window.
	onPointerMove func(x, y float64)

	// onScroll is called for mouse wheel events.
	onScroll func(delta float64)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(keyCode uint32)

	// onKeyUp is called when a key is released.
	onKeyUp func(keyCode uint32)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window (not yet spawned)
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:  "Default Window Title",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetPointerDownCallback(callback func(x, y float64)) {
	w.onPointerDown = callback
}

func (w *engineWindow) SetPointerUpCallback(callback func(x, y float64)) {
	w.onPointerUp = callback
}

func (w *engineWindow) SetPointerMoveCallback(callback func(x, y float64)) {
	w.onPointerMove = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float64)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) Bounds() common.Rect {
	return common.Rect{X: 0, Y: 0, Width: float64(w.width), Height: float64(w.height)}
}

func (w *engineWindow) FramebufferSize() (int, int) {
	return w.fbWidth, w.fbHeight
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
