package pocketui

import "github.com/pocketui/pocketui/raster"

// InputKind classifies a raw pointer/finger event from a backend.
type InputKind int

const (
	// InputDown is a press at (x, y).
	InputDown InputKind = iota
	// InputMove is a position change while pressed.
	InputMove
	// InputUp is a release at (x, y).
	InputUp
	// InputCancel aborts a touch without a release position.
	InputCancel
	// InputClose requests the window to close.
	InputClose
)

// FrameFunc paints one frame into the surface. Returning false closes
// the window. The surface may change between calls on live resize.
type FrameFunc func(s raster.Surface) bool

// InputFunc receives raw input. id is MouseTouchID for the pointer,
// a non-negative finger id otherwise. Backends may call it from an
// event-classification goroutine; implementations must only enqueue.
type InputFunc func(kind InputKind, x, y float64, id int)

// Backend owns the OS window, event pump and frame presentation. The
// toolkit drives it through Run, which blocks until the window closes.
type Backend interface {
	// Run opens a window and loops: pump input through input, then
	// call frame with the current surface and present it. Run returns
	// when frame returns false or the user closes the window.
	Run(title string, width, height int, frame FrameFunc, input InputFunc) error

	// ScreenSize reports the primary display size in pixels.
	ScreenSize() (width, height int)
}

// HeadlessBackend renders into an offscreen surface without opening a
// window. It is the test and screenshot backend: the loop runs
// MaxFrames frames (default 1) or until the frame callback returns
// false, with a fixed simulated frame interval.
type HeadlessBackend struct {
	// MaxFrames bounds the loop; 0 means a single frame.
	MaxFrames int

	surface raster.Surface
}

// Run renders frames synchronously on the calling goroutine.
func (b *HeadlessBackend) Run(title string, width, height int, frame FrameFunc, input InputFunc) error {
	b.surface = raster.New(width, height)
	b.surface.SetAntiAlias(antialias)
	n := b.MaxFrames
	if n <= 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		if !frame(b.surface) {
			break
		}
	}
	return nil
}

// ScreenSize reports a nominal 1920x1080 display.
func (b *HeadlessBackend) ScreenSize() (int, int) { return 1920, 1080 }

// Surface returns the last surface rendered into, for pixel
// inspection after Run.
func (b *HeadlessBackend) Surface() raster.Surface { return b.surface }
