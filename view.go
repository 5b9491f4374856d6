package pocketui

import (
	"fmt"
	"strings"
	"sync/atomic"
)

var viewSeq atomic.Uint64

// View is a node in the view hierarchy. Views own their subviews; a
// view has at most one superview at a time. The zero value is not
// usable, construct with NewView.
//
// Customize behavior through the hook fields: DrawFunc paints the
// view's content in view-local coordinates, LayoutFunc runs after the
// view's size changes, UpdateFunc runs on the view's update cadence,
// and the touch hooks receive dispatched input. Widgets like Button
// and Switch are built on these same hooks.
type View struct {
	name string

	frame  Rect
	bounds Rect

	alpha           float64
	backgroundColor *Color
	borderColor     *Color
	borderWidth     float64
	cornerRadius    float64
	tintColor       *Color
	transform       *Transform

	contentMode  ContentMode
	flex         string
	hidden       bool
	touchEnabled bool
	multitouch   bool

	subviews  []*View
	superview *View

	needsDisplay bool
	onScreen     bool
	presented    bool
	closeCh      chan struct{}

	updateInterval float64
	lastUpdate     float64

	// Size DrawFunc was first called at, for fixed content modes.
	contentDrawW float64
	contentDrawH float64

	// Hooks. All optional.
	DrawFunc       func(v *View, ctx *Context)
	LayoutFunc     func(v *View)
	UpdateFunc     func(v *View)
	TouchBeganFunc func(v *View, t Touch)
	TouchMovedFunc func(v *View, t Touch)
	TouchEndedFunc func(v *View, t Touch)
	DidLoadFunc    func(v *View)
	WillCloseFunc  func(v *View)
	// First-responder hooks. Resign always fires before the next
	// view's become.
	DidBecomeFirstResponderFunc func(v *View)
	DidResignFirstResponderFunc func(v *View)
}

// NewView returns a detached 100x100 view with a transparent
// background.
func NewView() *View {
	return &View{
		name:            fmt.Sprintf("view%d", viewSeq.Add(1)),
		frame:           Rect{0, 0, 100, 100},
		bounds:          Rect{0, 0, 100, 100},
		alpha:           1,
		backgroundColor: &Color{0, 0, 0, 0},
		borderColor:     &Color{0, 0, 0, 1},
		contentMode:     ContentScaleToFill,
		touchEnabled:    true,
		needsDisplay:    true,
		closeCh:         make(chan struct{}),
	}
}

// Name returns the view's name. Names need not be unique.
func (v *View) Name() string { return v.name }

// SetName sets the view's name.
func (v *View) SetName(name string) { v.name = name }

// Alpha returns the view's opacity in [0, 1].
func (v *View) Alpha() float64 { return v.alpha }

// SetAlpha sets the view's opacity and marks it dirty.
func (v *View) SetAlpha(a float64) {
	v.alpha = a
	v.SetNeedsDisplay()
}

// BackgroundColor returns the view's background color, or nil for
// transparent.
func (v *View) BackgroundColor() *Color { return v.backgroundColor }

// SetBackgroundColor sets the background from any ParseColor form.
// Unparseable input clears the background.
func (v *View) SetBackgroundColor(c any) {
	if parsed, ok := ParseColor(c); ok {
		v.backgroundColor = &parsed
	} else {
		v.backgroundColor = nil
	}
	v.SetNeedsDisplay()
}

// BorderColor returns the border color, or nil for none.
func (v *View) BorderColor() *Color { return v.borderColor }

// SetBorderColor sets the border color from any ParseColor form.
func (v *View) SetBorderColor(c any) {
	if parsed, ok := ParseColor(c); ok {
		v.borderColor = &parsed
	} else {
		v.borderColor = nil
	}
	v.SetNeedsDisplay()
}

// BorderWidth returns the border stroke width.
func (v *View) BorderWidth() float64 { return v.borderWidth }

// SetBorderWidth sets the border stroke width.
func (v *View) SetBorderWidth(w float64) {
	v.borderWidth = w
	v.SetNeedsDisplay()
}

// CornerRadius returns the corner radius used for the background and
// border.
func (v *View) CornerRadius() float64 { return v.cornerRadius }

// SetCornerRadius sets the corner radius.
func (v *View) SetCornerRadius(r float64) {
	v.cornerRadius = r
	v.SetNeedsDisplay()
}

// TintColor returns the view's tint, defaulting to the system blue.
func (v *View) TintColor() Color {
	if v.tintColor != nil {
		return *v.tintColor
	}
	if v.superview != nil {
		return v.superview.TintColor()
	}
	return Color{0, 0.478, 1, 1}
}

// SetTintColor sets the tint color from any ParseColor form.
func (v *View) SetTintColor(c any) {
	if parsed, ok := ParseColor(c); ok {
		v.tintColor = &parsed
	} else {
		v.tintColor = nil
	}
	v.SetNeedsDisplay()
}

// Transform returns the view's transform, or nil when untransformed.
func (v *View) Transform() *Transform { return v.transform }

// SetTransform sets a transform applied about the view's center when
// its content is painted.
func (v *View) SetTransform(t *Transform) {
	v.transform = t
	v.SetNeedsDisplay()
}

// ContentMode returns how the view's content maps into its frame.
func (v *View) ContentMode() ContentMode { return v.contentMode }

// SetContentMode sets the content mode and forgets the recorded
// content size, so the next paint re-records it.
func (v *View) SetContentMode(m ContentMode) {
	v.contentMode = m
	v.contentDrawW = 0
	v.contentDrawH = 0
	v.SetNeedsDisplay()
}

// Flex returns the autoresizing flags.
func (v *View) Flex() string { return v.flex }

// SetFlex sets the autoresizing flags: any combination of the letters
// L, R, W (flexible left margin, right margin, width) and T, B, H
// (top margin, bottom margin, height).
func (v *View) SetFlex(flex string) { v.flex = flex }

// Hidden reports whether the view is hidden. Hidden views and their
// subviews are neither painted nor hit-tested.
func (v *View) Hidden() bool { return v.hidden }

// SetHidden hides or shows the view.
func (v *View) SetHidden(hidden bool) {
	v.hidden = hidden
	v.SetNeedsDisplay()
}

// TouchEnabled reports whether the view receives touches.
func (v *View) TouchEnabled() bool { return v.touchEnabled }

// SetTouchEnabled controls whether the view receives touches.
func (v *View) SetTouchEnabled(enabled bool) { v.touchEnabled = enabled }

// MultitouchEnabled reports whether the view may track several
// simultaneous touches.
func (v *View) MultitouchEnabled() bool { return v.multitouch }

// SetMultitouchEnabled controls simultaneous touch tracking.
func (v *View) SetMultitouchEnabled(enabled bool) { v.multitouch = enabled }

// UpdateInterval returns the view's update cadence in seconds, 0 when
// disabled.
func (v *View) UpdateInterval() float64 { return v.updateInterval }

// SetUpdateInterval enables UpdateFunc every interval seconds; 0
// disables it.
func (v *View) SetUpdateInterval(interval float64) { v.updateInterval = interval }

// OnScreen reports whether the view is currently presented.
func (v *View) OnScreen() bool { return v.onScreen }

// NeedsDisplay reports whether the view is marked for redraw.
func (v *View) NeedsDisplay() bool { return v.needsDisplay }

// SetNeedsDisplay marks the view for redraw on the next frame.
func (v *View) SetNeedsDisplay() { v.needsDisplay = true }

// --- Geometry ---

// Frame returns the view's rectangle in its superview's coordinates.
func (v *View) Frame() Rect { return v.frame }

// SetFrame sets the frame. A size change keeps bounds' size in sync,
// propagates autoresizing to subviews, and invokes LayoutFunc.
func (v *View) SetFrame(f Rect) {
	oldW, oldH := v.frame.Width, v.frame.Height
	v.frame = f
	if f.Width != oldW || f.Height != oldH {
		v.bounds.Width = f.Width
		v.bounds.Height = f.Height
		v.applyAutoresizing(oldW, oldH)
		v.layout()
	}
	v.SetNeedsDisplay()
}

// Bounds returns the view's rectangle in its own coordinate system.
// The bounds origin acts as a scroll offset for subview placement.
func (v *View) Bounds() Rect { return v.bounds }

// SetBounds sets the bounds. A size change keeps the frame's size in
// sync, propagates autoresizing, and invokes LayoutFunc.
func (v *View) SetBounds(b Rect) {
	oldW, oldH := v.bounds.Width, v.bounds.Height
	v.bounds = b
	if b.Width != oldW || b.Height != oldH {
		v.frame.Width = b.Width
		v.frame.Height = b.Height
		v.applyAutoresizing(oldW, oldH)
		v.layout()
	}
	v.SetNeedsDisplay()
}

// Center returns the center of the view's frame.
func (v *View) Center() Point { return v.frame.Center() }

// SetCenter moves the frame so its center lands on p.
func (v *View) SetCenter(p Point) {
	v.SetFrame(Rect{p.X - v.frame.Width/2, p.Y - v.frame.Height/2, v.frame.Width, v.frame.Height})
}

// X returns the frame's x origin.
func (v *View) X() float64 { return v.frame.X }

// SetX moves the frame horizontally.
func (v *View) SetX(x float64) {
	f := v.frame
	f.X = x
	v.SetFrame(f)
}

// Y returns the frame's y origin.
func (v *View) Y() float64 { return v.frame.Y }

// SetY moves the frame vertically.
func (v *View) SetY(y float64) {
	f := v.frame
	f.Y = y
	v.SetFrame(f)
}

// Width returns the frame width.
func (v *View) Width() float64 { return v.frame.Width }

// SetWidth resizes the frame horizontally.
func (v *View) SetWidth(w float64) {
	f := v.frame
	f.Width = w
	v.SetFrame(f)
}

// Height returns the frame height.
func (v *View) Height() float64 { return v.frame.Height }

// SetHeight resizes the frame vertically.
func (v *View) SetHeight(h float64) {
	f := v.frame
	f.Height = h
	v.SetFrame(f)
}

func (v *View) layout() {
	if v.LayoutFunc != nil {
		v.LayoutFunc(v)
	}
}

// applyAutoresizing resizes subviews after this view's size changed
// from (oldW, oldH). Each axis's delta is split equally among that
// axis's flagged edges.
func (v *View) applyAutoresizing(oldW, oldH float64) {
	dw := v.bounds.Width - oldW
	dh := v.bounds.Height - oldH
	if dw == 0 && dh == 0 {
		return
	}
	for _, sv := range v.subviews {
		flex := sv.flex
		if flex == "" {
			continue
		}
		f := sv.frame
		if n := countFlex(flex, "LWR"); n > 0 {
			share := dw / float64(n)
			if strings.ContainsRune(flex, 'L') {
				f.X += share
			}
			if strings.ContainsRune(flex, 'W') {
				f.Width += share
			}
		}
		if n := countFlex(flex, "THB"); n > 0 {
			share := dh / float64(n)
			if strings.ContainsRune(flex, 'T') {
				f.Y += share
			}
			if strings.ContainsRune(flex, 'H') {
				f.Height += share
			}
		}
		// Assign directly: autoresizing must not recurse into the
		// subview's own autoresizing pass.
		sv.frame = f
		sv.bounds.Width = f.Width
		sv.bounds.Height = f.Height
		sv.SetNeedsDisplay()
	}
}

func countFlex(flex, letters string) int {
	n := 0
	for _, c := range letters {
		if strings.ContainsRune(flex, c) {
			n++
		}
	}
	return n
}

// --- Tree ---

// Subviews returns the view's children in z-order, back to front.
func (v *View) Subviews() []*View {
	out := make([]*View, len(v.subviews))
	copy(out, v.subviews)
	return out
}

// Superview returns the parent view, or nil for a root or detached
// view.
func (v *View) Superview() *View { return v.superview }

// SubviewNamed returns the first direct child with the given name, or
// nil.
func (v *View) SubviewNamed(name string) *View {
	for _, sv := range v.subviews {
		if sv.name == name {
			return sv
		}
	}
	return nil
}

// AddSubview appends child at the top of this view's z-order,
// detaching it from any previous superview first. Adding a view to its
// current superview is a no-op. Adding a view to itself or to one of
// its own descendants panics.
func (v *View) AddSubview(child *View) {
	if child.superview == v {
		return
	}
	for a := v; a != nil; a = a.superview {
		if a == child {
			panic("pocketui: AddSubview would create a cycle")
		}
	}
	if child.superview != nil {
		child.superview.RemoveSubview(child)
	}
	v.subviews = append(v.subviews, child)
	child.superview = v
	v.SetNeedsDisplay()
}

// RemoveSubview detaches child. It panics when child is not a direct
// subview of this view.
func (v *View) RemoveSubview(child *View) {
	for i, sv := range v.subviews {
		if sv == child {
			v.subviews = append(v.subviews[:i], v.subviews[i+1:]...)
			child.superview = nil
			v.SetNeedsDisplay()
			return
		}
	}
	panic("pocketui: RemoveSubview: view is not a subview of this view")
}

// RemoveFromSuperview detaches the view from its superview, if any.
func (v *View) RemoveFromSuperview() {
	if v.superview != nil {
		v.superview.RemoveSubview(v)
	}
}

// BringToFront moves the view above all of its siblings.
func (v *View) BringToFront() {
	sv := v.superview
	if sv == nil {
		return
	}
	for i, s := range sv.subviews {
		if s == v {
			sv.subviews = append(sv.subviews[:i], sv.subviews[i+1:]...)
			sv.subviews = append(sv.subviews, v)
			sv.SetNeedsDisplay()
			return
		}
	}
}

// SendToBack moves the view below all of its siblings.
func (v *View) SendToBack() {
	sv := v.superview
	if sv == nil {
		return
	}
	for i, s := range sv.subviews {
		if s == v {
			sv.subviews = append(sv.subviews[:i], sv.subviews[i+1:]...)
			sv.subviews = append([]*View{v}, sv.subviews...)
			sv.SetNeedsDisplay()
			return
		}
	}
}

// Root returns the topmost ancestor (possibly v itself).
func (v *View) Root() *View {
	r := v
	for r.superview != nil {
		r = r.superview
	}
	return r
}

// SizeToFit resizes the view to enclose all of its subviews. Views
// with intrinsic content (labels, buttons) override this through
// their own sizing helpers.
func (v *View) SizeToFit() {
	if len(v.subviews) == 0 {
		return
	}
	var maxW, maxH float64
	for _, sv := range v.subviews {
		if r := sv.frame.MaxX(); r > maxW {
			maxW = r
		}
		if b := sv.frame.MaxY(); b > maxH {
			maxH = b
		}
	}
	v.SetFrame(Rect{v.frame.X, v.frame.Y, maxW, maxH})
}

// --- Hook invocation (nil-safe) ---

func (v *View) draw(ctx *Context) {
	if v.DrawFunc != nil {
		v.DrawFunc(v, ctx)
	}
}

func (v *View) update() {
	if v.UpdateFunc != nil {
		v.UpdateFunc(v)
	}
}

func (v *View) touchBegan(t Touch) {
	if v.TouchBeganFunc != nil {
		v.TouchBeganFunc(v, t)
	}
}

func (v *View) touchMoved(t Touch) {
	if v.TouchMovedFunc != nil {
		v.TouchMovedFunc(v, t)
	}
}

func (v *View) touchEnded(t Touch) {
	if v.TouchEndedFunc != nil {
		v.TouchEndedFunc(v, t)
	}
}

func (v *View) didLoad() {
	if v.DidLoadFunc != nil {
		v.DidLoadFunc(v)
	}
}

func (v *View) willClose() {
	if v.WillCloseFunc != nil {
		v.WillCloseFunc(v)
	}
}

// BecomeFirstResponder asks the window presenting this view's tree to
// focus it. It reports false when the view is not attached to a
// presented window. The previous responder's resign hook fires before
// this view's become hook.
func (v *View) BecomeFirstResponder() bool {
	w := DefaultRegistry().WindowFor(v.Root())
	if w == nil {
		return false
	}
	w.SetFirstResponder(v)
	return true
}

// Close dismisses a presented view: the will-close hook fires, the
// view leaves the screen, and WaitModal callers unblock.
func (v *View) Close() {
	if !v.presented {
		return
	}
	v.willClose()
	v.onScreen = false
	v.presented = false
	close(v.closeCh)
}

// WaitModal blocks until the presented view is dismissed. It returns
// immediately when the view is not on screen.
func (v *View) WaitModal() {
	if !v.onScreen {
		return
	}
	<-v.closeCh
}
