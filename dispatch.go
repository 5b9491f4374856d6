package pocketui

import "time"

// Touch is an immutable input event delivered to a view's touch hooks.
// Locations are in the coordinate system of the view that receives the
// touch.
type Touch struct {
	Location     Point
	PrevLocation Point
	Phase        TouchPhase
	// Timestamp is milliseconds since the Unix epoch.
	Timestamp int64
	// ID is MouseTouchID for the pointer device, a non-negative id for
	// a physical touch.
	ID int
}

// FindViewAt returns the topmost touch-enabled view at the given
// screen coordinates, searching later (higher) siblings before earlier
// ones. Hidden subtrees never match. Returns nil when no touch-enabled
// view contains the point.
func FindViewAt(v *View, screenX, screenY float64) *View {
	if v.hidden {
		return nil
	}
	ox, oy := ScreenOrigin(v)
	if screenX < ox || screenX >= ox+v.frame.Width ||
		screenY < oy || screenY >= oy+v.frame.Height {
		return nil
	}
	for i := len(v.subviews) - 1; i >= 0; i-- {
		if target := FindViewAt(v.subviews[i], screenX, screenY); target != nil && target.touchEnabled {
			return target
		}
	}
	if v.touchEnabled {
		return v
	}
	return nil
}

// Dispatcher is one window's touch state machine and first-responder
// holder. It turns raw pointer/finger events into hit-tested touch
// deliveries, tracking which view owns each in-flight touch id.
//
// A Dispatcher is owned by its window's loop and is not safe for
// concurrent use.
type Dispatcher struct {
	root *View

	tracked map[int]*View
	lastPos map[int]Point

	firstResponder *View

	// now is the clock used for touch timestamps, overridable in
	// tests.
	now func() time.Time
}

// NewDispatcher returns a dispatcher routing into the given view tree.
func NewDispatcher(root *View) *Dispatcher {
	return &Dispatcher{
		root:    root,
		tracked: make(map[int]*View),
		lastPos: make(map[int]Point),
		now:     time.Now,
	}
}

// FirstResponder returns the currently focused view, or nil.
func (d *Dispatcher) FirstResponder() *View { return d.firstResponder }

// SetFirstResponder focuses v, resigning the previous responder first.
// Passing nil just clears focus. Focusing the current responder is a
// no-op.
func (d *Dispatcher) SetFirstResponder(v *View) {
	old := d.firstResponder
	if old == v {
		return
	}
	if old != nil && old.DidResignFirstResponderFunc != nil {
		old.DidResignFirstResponderFunc(old)
	}
	d.firstResponder = v
	if v != nil && v.DidBecomeFirstResponderFunc != nil {
		v.DidBecomeFirstResponderFunc(v)
	}
}

func (d *Dispatcher) makeTouch(target *View, x, y float64, phase TouchPhase, id int, prev Point) Touch {
	local := ConvertPoint(Point{x, y}, nil, target)
	prevLocal := ConvertPoint(prev, nil, target)
	return Touch{
		Location:     local,
		PrevLocation: prevLocal,
		Phase:        phase,
		Timestamp:    d.now().UnixMilli(),
		ID:           id,
	}
}

// TouchDown hit-tests the tree at (x, y) and, if a target is found and
// multitouch gating allows, registers the touch id and delivers a
// "began" touch.
func (d *Dispatcher) TouchDown(x, y float64, id int) {
	d.lastPos[id] = Point{x, y}
	target := FindViewAt(d.root, x, y)
	if target == nil {
		return
	}
	if !target.multitouch {
		for _, v := range d.tracked {
			if v == target {
				return
			}
		}
	}
	d.tracked[id] = target
	target.touchBegan(d.makeTouch(target, x, y, TouchBegan, id, Point{x, y}))
}

// TouchMove delivers a "moved" touch to the tracking view, or
// "stationary" when the position did not change. Untracked ids are
// ignored.
func (d *Dispatcher) TouchMove(x, y float64, id int) {
	prev, ok := d.lastPos[id]
	if !ok {
		prev = Point{x, y}
	}
	d.lastPos[id] = Point{x, y}
	target := d.tracked[id]
	if target == nil {
		return
	}
	phase := TouchMoved
	if prev == (Point{x, y}) {
		phase = TouchStationary
	}
	target.touchMoved(d.makeTouch(target, x, y, phase, id, prev))
}

// TouchUp re-hit-tests at the release point and delivers "ended" when
// the tracking view is still topmost there, else "cancelled". The id
// is untracked either way.
func (d *Dispatcher) TouchUp(x, y float64, id int) {
	prev, ok := d.lastPos[id]
	if !ok {
		prev = Point{x, y}
	}
	delete(d.lastPos, id)
	target := d.tracked[id]
	if target == nil {
		return
	}
	delete(d.tracked, id)
	phase := TouchCancelled
	if FindViewAt(d.root, x, y) == target {
		phase = TouchEnded
	}
	target.touchEnded(d.makeTouch(target, x, y, phase, id, prev))
}

// TouchCancel delivers "cancelled" at the last known position and
// untracks the id.
func (d *Dispatcher) TouchCancel(id int) {
	pos := d.lastPos[id]
	delete(d.lastPos, id)
	target := d.tracked[id]
	if target == nil {
		return
	}
	delete(d.tracked, id)
	target.touchEnded(d.makeTouch(target, pos.X, pos.Y, TouchCancelled, id, pos))
}

// CancelDetached synthesizes a "cancelled" touch for any tracked view
// that has become hidden or left the tree mid-gesture, instead of
// letting it wait for an Up that may target someone else.
func (d *Dispatcher) CancelDetached() {
	for id, v := range d.tracked {
		if hiddenInChain(v) || v.Root() != d.root {
			d.TouchCancel(id)
		}
	}
}

func hiddenInChain(v *View) bool {
	for ; v != nil; v = v.superview {
		if v.hidden {
			return true
		}
	}
	return false
}

// updateHierarchy fires UpdateFunc on every view whose update cadence
// has elapsed. now is in seconds.
func updateHierarchy(v *View, now float64) {
	if v.updateInterval > 0 && now-v.lastUpdate >= v.updateInterval {
		v.update()
		v.lastUpdate = now
	}
	for _, sv := range v.subviews {
		updateHierarchy(sv, now)
	}
}
