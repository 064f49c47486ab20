package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/trackball-go/engine/profiler"
	"github.com/Carmen-Shannon/trackball-go/engine/window"
)

// engine implements the Engine interface.
// Owns the window message loop, the fixed-rate tick goroutine, and the
// one-shot-per-frame scheduling slot used to coalesce pointer updates.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float64)
	frameCallback  func(deltaTime float64)

	frameLimit time.Duration // minimum frame duration; 0 = uncapped

	// frameMu guards the single pending-update slot. Schedule overwrites the
	// slot; the message loop consumes and clears it once per iteration, which
	// bounds update throughput to the frame rate regardless of input rate.
	frameMu      sync.Mutex
	pendingFrame func()
}

// Engine is the main entry point for the frame loop.
// It drives the window message loop, a fixed-rate tick for application logic,
// and the per-frame update slot that controllers schedule into.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Schedule registers fn to run once before the next frame, replacing any
	// previously scheduled callback. This is the "run once before next
	// repaint" primitive consumed by the trackball controller; at most one
	// callback is pending at a time.
	//
	// Parameters:
	//   - fn: the callback to run on the next frame
	Schedule(fn func())

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// The tick callback will be called at this rate for application logic.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float64))

	// SetFrameCallback registers the function called each frame, after any
	// scheduled update has run.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetFrameCallback(callback func(deltaTime float64))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the frame loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Run starts the main loop (blocks until the window closes).
	// A window is required; Run panics if the engine was built without one.
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, tick rate, profiling)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Schedule(fn func()) {
	e.frameMu.Lock()
	e.pendingFrame = fn
	e.frameMu.Unlock()
}

func (e *engine) Run() {
	if e.window == nil {
		panic("engine: Run called without a window; configure one with WithWindow")
	}
	e.running = true
	e.wg.Add(2)
	go e.handleTick()
	go e.handleQuit()

	lastFrame := time.Now()
	e.window.SetUpdateCallback(func() {
		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		e.consumeFrame(dt)

		if e.frameLimit > 0 {
			if remaining := e.frameLimit - time.Since(now); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	})

	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// consumeFrame is one frame tick on the message-loop thread: it takes and
// clears the pending scheduled update, runs it, then runs the frame callback.
// Recovers from panics in user callbacks to avoid crashing the process and
// signals quit on recovery.
func (e *engine) consumeFrame(dt float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("frame callback recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	e.frameMu.Lock()
	fn := e.pendingFrame
	e.pendingFrame = nil
	e.frameMu.Unlock()

	if fn != nil {
		fn()
	}

	if e.frameCallback != nil {
		e.frameCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// handleTick runs the fixed-rate tick loop in its own goroutine.
// Fires the tick callback at the configured tick rate and listens for dynamic
// rate changes via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleTick() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			if e.tickCallback != nil {
				e.tickCallback(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Send to channel for immediate update in running tick loop.
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			// Channel has a pending update, drain and send new value
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		// Engine not running, just update the field
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float64)) {
	e.tickCallback = callback
}

// SetFrameCallback registers the function called each frame.
func (e *engine) SetFrameCallback(callback func(deltaTime float64)) {
	e.frameCallback = callback
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the frame loop.
func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Second / time.Duration(fps)
}
