package pocketui

import (
	"fmt"
	"sync"
	"time"

	"github.com/pocketui/pocketui/raster"
)

// Registry maps presented root views to their windows so that views can
// reach their window without holding a back-pointer.
type Registry struct {
	mu      sync.RWMutex
	windows map[*View]*Window
}

// NewRegistry returns an empty window registry.
func NewRegistry() *Registry {
	return &Registry{windows: make(map[*View]*Window)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by Present.
func DefaultRegistry() *Registry { return defaultRegistry }

// WindowFor returns the window presenting root, or nil.
func (r *Registry) WindowFor(root *View) *Window {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.windows[root]
}

func (r *Registry) add(root *View, w *Window) {
	r.mu.Lock()
	r.windows[root] = w
	r.mu.Unlock()
}

func (r *Registry) remove(root *View) {
	r.mu.Lock()
	delete(r.windows, root)
	r.mu.Unlock()
}

// inputEvent is a raw backend event queued for the next frame.
type inputEvent struct {
	kind InputKind
	x, y float64
	id   int
}

// Window presents a view tree: it owns the backend, the touch
// dispatcher and the animator, and drives the per-frame loop.
type Window struct {
	root     *View
	backend  Backend
	registry *Registry

	dispatcher *Dispatcher
	animator   *Animator

	title    string
	animated bool

	mu     sync.Mutex
	queued []inputEvent

	fadeStart  time.Time
	fading     bool
	frameCount int
	fpsStamp   time.Time
	fps        float64
}

// WindowOption configures a window before Present.
type WindowOption func(*Window)

// WithTitle sets the OS window title. The default is the root view's
// name.
func WithTitle(title string) WindowOption {
	return func(w *Window) { w.title = title }
}

// WithBackend selects the rendering backend. Tests use this with a
// HeadlessBackend.
func WithBackend(b Backend) WindowOption {
	return func(w *Window) { w.backend = b }
}

// WithoutAnimation disables the presentation fade-in.
func WithoutAnimation() WindowOption {
	return func(w *Window) { w.animated = false }
}

// WithRegistry overrides the registry the window registers itself in.
// The default registry is shared process-wide.
func WithRegistry(r *Registry) WindowOption {
	return func(w *Window) { w.registry = r }
}

// NewWindow wraps root in a window. The window does nothing until
// Present is called.
func NewWindow(root *View, opts ...WindowOption) *Window {
	w := &Window{
		root:     root,
		registry: defaultRegistry,
		animated: true,
		title:    root.Name(),
	}
	w.dispatcher = NewDispatcher(root)
	w.animator = NewAnimator()
	for _, o := range opts {
		o(w)
	}
	return w
}

// Root returns the presented view tree.
func (w *Window) Root() *View { return w.root }

// Animator returns the window's animator. Animate and Delay on a view
// tree route through it.
func (w *Window) Animator() *Animator { return w.animator }

// FirstResponder returns the focused view, or nil.
func (w *Window) FirstResponder() *View { return w.dispatcher.FirstResponder() }

// SetFirstResponder moves focus to v. Pass nil to clear focus. The
// outgoing view's resign hook fires before the incoming view's become
// hook.
func (w *Window) SetFirstResponder(v *View) {
	w.dispatcher.SetFirstResponder(v)
}

// enqueue buffers a backend event for the next frame. Safe to call
// from the backend's event goroutine.
func (w *Window) enqueue(kind InputKind, x, y float64, id int) {
	w.mu.Lock()
	w.queued = append(w.queued, inputEvent{kind, x, y, id})
	w.mu.Unlock()
}

// drainInput delivers all buffered events to the dispatcher in arrival
// order. Returns false when a close was requested.
func (w *Window) drainInput() bool {
	w.mu.Lock()
	events := w.queued
	w.queued = nil
	w.mu.Unlock()

	for _, e := range events {
		switch e.kind {
		case InputDown:
			w.dispatcher.TouchDown(e.x, e.y, e.id)
		case InputMove:
			w.dispatcher.TouchMove(e.x, e.y, e.id)
		case InputUp:
			w.dispatcher.TouchUp(e.x, e.y, e.id)
		case InputCancel:
			w.dispatcher.TouchCancel(e.id)
		case InputClose:
			return false
		}
	}
	return true
}

// Present opens the window and blocks on the calling goroutine until
// the root view is closed or the user closes the window. Presenting a
// view that is already on screen is an error.
func (w *Window) Present() error {
	if w.root.presented {
		return fmt.Errorf("pocketui: view %q is already presented", w.root.Name())
	}
	if w.backend == nil {
		w.backend = newDefaultBackend()
	}

	w.root.presented = true
	setOnScreen(w.root, true)
	w.root.SetNeedsDisplay()
	w.root.closeCh = make(chan struct{})
	w.registry.add(w.root, w)
	defer w.registry.remove(w.root)

	w.root.didLoad()

	if w.animated && !disableAnimations {
		w.fading = true
		w.fadeStart = time.Time{}
		w.root.SetAlpha(0)
	}
	w.fpsStamp = time.Now()

	width := int(w.root.Frame().Width)
	height := int(w.root.Frame().Height)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	Logger().Info("window opened", "title", w.title, "width", width, "height", height)
	err := w.backend.Run(w.title, width, height, w.frame, w.enqueue)
	Logger().Info("window closed", "title", w.title)

	if w.root.presented {
		w.root.Close()
	}
	setOnScreen(w.root, false)
	return err
}

// Close dismisses the window on the next frame.
func (w *Window) Close() {
	w.root.Close()
}

const fadeInDuration = 0.25

// frame runs one iteration of the window loop. The ordering matters:
// input before update hooks, update hooks before animation, layout for
// live resize before the dirty check.
func (w *Window) frame(s raster.Surface) bool {
	if !w.root.presented {
		return false
	}
	if !w.drainInput() {
		return false
	}
	w.dispatcher.CancelDetached()

	now := time.Now()
	updateHierarchy(w.root, float64(now.UnixNano())/float64(time.Second))
	w.animator.Tick()

	fw := float64(s.Width())
	fh := float64(s.Height())
	if f := w.root.Frame(); f.Width != fw || f.Height != fh {
		Logger().Debug("window resized", "width", fw, "height", fh)
		w.root.SetFrame(Rect{X: f.X, Y: f.Y, Width: fw, Height: fh})
	}

	if w.fading {
		if w.fadeStart.IsZero() {
			w.fadeStart = now
		}
		t := now.Sub(w.fadeStart).Seconds() / fadeInDuration
		if t >= 1 {
			w.fading = false
			w.root.SetAlpha(1)
		} else {
			w.root.SetAlpha(float64(easeSmoothstep(float32(t), 0, 1, 1)))
		}
	}

	if !w.root.presented {
		return false
	}

	if AnyDirty(w.root) {
		s.Checkerboard(8)
		ctx := NewContext(s)
		Render(w.root, ctx)
		if showFPS {
			w.drawFPS(ctx)
		}
	}
	w.tickFPS(now)
	return w.root.presented
}

// tickFPS maintains the frame counter, re-estimating the rate every
// half second.
func (w *Window) tickFPS(now time.Time) {
	w.frameCount++
	if d := now.Sub(w.fpsStamp); d >= 500*time.Millisecond {
		w.fps = float64(w.frameCount) / d.Seconds()
		w.frameCount = 0
		w.fpsStamp = now
	}
}

// drawFPS overlays the frame rate in the top-left corner.
func (w *Window) drawFPS(ctx *Context) {
	ctx.WithGState(func() {
		ctx.SetColor(Color{0, 0, 0, 0.5})
		ctx.FillRect(4, 4, 92, 24)
		DrawString(ctx, fmt.Sprintf("%.1f fps", w.fps),
			Rect{X: 10, Y: 4, Width: 86, Height: 24},
			Font{Name: "<system>", Size: 13}, White,
			AlignLeft, LineBreakClip, 1)
	})
}

// setOnScreen flips the on-screen flag for a whole subtree.
func setOnScreen(v *View, on bool) {
	v.onScreen = on
	for _, sv := range v.subviews {
		setOnScreen(sv, on)
	}
}

// Present presents v in a new window and blocks until it is dismissed.
// It is the usual entry point for an app's main goroutine.
func Present(v *View, opts ...WindowOption) error {
	return NewWindow(v, opts...).Present()
}
