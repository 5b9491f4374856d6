package pocketui

import "testing"

func touchTree() (root, left, right *View) {
	root = NewView()
	root.SetFrame(Rect{0, 0, 200, 100})
	left = NewView()
	left.SetFrame(Rect{0, 0, 100, 100})
	right = NewView()
	right.SetFrame(Rect{100, 0, 100, 100})
	root.AddSubview(left)
	root.AddSubview(right)
	return root, left, right
}

type touchLog struct {
	phases []TouchPhase
	last   Touch
}

func logTouches(v *View, lg *touchLog) {
	record := func(_ *View, t Touch) {
		lg.phases = append(lg.phases, t.Phase)
		lg.last = t
	}
	v.TouchBeganFunc = record
	v.TouchMovedFunc = record
	v.TouchEndedFunc = record
}

func assertPhases(t *testing.T, got []TouchPhase, want ...TouchPhase) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("phases = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("phases = %v, want %v", got, want)
		}
	}
}

// --- Hit testing ---

func TestFindViewAtTopmostSibling(t *testing.T) {
	root := NewView()
	root.SetFrame(Rect{0, 0, 100, 100})
	under := NewView()
	under.SetFrame(Rect{0, 0, 100, 100})
	over := NewView()
	over.SetFrame(Rect{0, 0, 100, 100})
	root.AddSubview(under)
	root.AddSubview(over)

	if got := FindViewAt(root, 50, 50); got != over {
		t.Errorf("hit = %v, want the later sibling", got.Name())
	}
}

func TestFindViewAtSkipsDisabledAndHidden(t *testing.T) {
	root, left, right := touchTree()

	left.SetTouchEnabled(false)
	if got := FindViewAt(root, 50, 50); got != root {
		t.Error("disabled child should fall through to the parent")
	}

	right.SetHidden(true)
	if got := FindViewAt(root, 150, 50); got != root {
		t.Error("hidden child should never match")
	}

	root.SetHidden(true)
	if got := FindViewAt(root, 50, 50); got != nil {
		t.Error("hidden root should match nothing")
	}
}

func TestFindViewAtHalfOpenEdges(t *testing.T) {
	root, left, right := touchTree()
	// x=100 is the first column of the right view, not the last of the
	// left one.
	if got := FindViewAt(root, 100, 50); got != right {
		t.Error("shared edge should belong to the later view")
	}
	if got := FindViewAt(root, 99.9, 50); got != left {
		t.Error("x=99.9 should hit the left view")
	}
}

// --- Touch lifecycle ---

func TestTouchDownUpSamePointEnds(t *testing.T) {
	root, left, _ := touchTree()
	d := NewDispatcher(root)
	var lg touchLog
	logTouches(left, &lg)

	d.TouchDown(50, 50, MouseTouchID)
	d.TouchUp(50, 50, MouseTouchID)
	assertPhases(t, lg.phases, TouchBegan, TouchEnded)
	if lg.last.ID != MouseTouchID {
		t.Errorf("ID = %d, want %d", lg.last.ID, MouseTouchID)
	}
}

func TestTouchUpOutsideCancels(t *testing.T) {
	root, left, _ := touchTree()
	d := NewDispatcher(root)
	var lg touchLog
	logTouches(left, &lg)

	d.TouchDown(50, 50, 0)
	d.TouchMove(150, 50, 0)
	d.TouchUp(150, 50, 0)
	assertPhases(t, lg.phases, TouchBegan, TouchMoved, TouchCancelled)
}

func TestTouchMoveStationary(t *testing.T) {
	root, left, _ := touchTree()
	d := NewDispatcher(root)
	var lg touchLog
	logTouches(left, &lg)

	d.TouchDown(50, 50, 0)
	d.TouchMove(50, 50, 0)
	d.TouchMove(51, 50, 0)
	assertPhases(t, lg.phases, TouchBegan, TouchStationary, TouchMoved)
	if lg.last.PrevLocation != (Point{50, 50}) {
		t.Errorf("PrevLocation = %v, want {50 50}", lg.last.PrevLocation)
	}
}

func TestTouchLocationsAreLocal(t *testing.T) {
	root, _, right := touchTree()
	d := NewDispatcher(root)
	var lg touchLog
	logTouches(right, &lg)

	d.TouchDown(150, 40, 0)
	if lg.last.Location != (Point{50, 40}) {
		t.Errorf("Location = %v, want {50 40}", lg.last.Location)
	}
}

func TestStaleIDsAreIgnored(t *testing.T) {
	root, left, _ := touchTree()
	d := NewDispatcher(root)
	var lg touchLog
	logTouches(left, &lg)

	d.TouchMove(50, 50, 7)
	d.TouchUp(50, 50, 7)
	assertPhases(t, lg.phases)
}

func TestMultitouchGate(t *testing.T) {
	root, left, _ := touchTree()
	d := NewDispatcher(root)
	var lg touchLog
	logTouches(left, &lg)

	d.TouchDown(40, 40, 0)
	d.TouchDown(60, 60, 1) // second finger on the same view: gated
	assertPhases(t, lg.phases, TouchBegan)

	left.SetMultitouchEnabled(true)
	d.TouchDown(70, 70, 2)
	assertPhases(t, lg.phases, TouchBegan, TouchBegan)
}

func TestTouchCancelUsesLastPosition(t *testing.T) {
	root, left, _ := touchTree()
	d := NewDispatcher(root)
	var lg touchLog
	logTouches(left, &lg)

	d.TouchDown(50, 50, 0)
	d.TouchMove(60, 70, 0)
	d.TouchCancel(0)
	assertPhases(t, lg.phases, TouchBegan, TouchMoved, TouchCancelled)
	if lg.last.Location != (Point{60, 70}) {
		t.Errorf("cancel Location = %v, want {60 70}", lg.last.Location)
	}
}

func TestCancelDetachedHiddenMidGesture(t *testing.T) {
	root, left, _ := touchTree()
	d := NewDispatcher(root)
	var lg touchLog
	logTouches(left, &lg)

	d.TouchDown(50, 50, 0)
	left.SetHidden(true)
	d.CancelDetached()
	assertPhases(t, lg.phases, TouchBegan, TouchCancelled)

	// Once cancelled the id is gone; a later Up is a no-op.
	d.TouchUp(50, 50, 0)
	assertPhases(t, lg.phases, TouchBegan, TouchCancelled)
}

func TestCancelDetachedRemovedMidGesture(t *testing.T) {
	root, left, _ := touchTree()
	d := NewDispatcher(root)
	var lg touchLog
	logTouches(left, &lg)

	d.TouchDown(50, 50, 0)
	left.RemoveFromSuperview()
	d.CancelDetached()
	assertPhases(t, lg.phases, TouchBegan, TouchCancelled)
}

// --- First responder ---

func TestFirstResponderResignBeforeBecome(t *testing.T) {
	root, left, right := touchTree()
	d := NewDispatcher(root)

	var order []string
	left.DidBecomeFirstResponderFunc = func(*View) { order = append(order, "become-left") }
	left.DidResignFirstResponderFunc = func(*View) { order = append(order, "resign-left") }
	right.DidBecomeFirstResponderFunc = func(*View) { order = append(order, "become-right") }

	d.SetFirstResponder(left)
	d.SetFirstResponder(left) // no-op
	d.SetFirstResponder(right)

	want := []string{"become-left", "resign-left", "become-right"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if d.FirstResponder() != right {
		t.Error("right should hold focus")
	}

	d.SetFirstResponder(nil)
	if d.FirstResponder() != nil {
		t.Error("nil should clear focus")
	}
}

// --- Update cadence ---

func TestUpdateHierarchyCadence(t *testing.T) {
	root := NewView()
	child := NewView()
	root.AddSubview(child)

	calls := 0
	child.UpdateFunc = func(*View) { calls++ }
	child.SetUpdateInterval(1.0)

	updateHierarchy(root, 10.0)
	updateHierarchy(root, 10.5) // within the interval
	updateHierarchy(root, 11.0)
	if calls != 2 {
		t.Errorf("update calls = %d, want 2", calls)
	}

	child.SetUpdateInterval(0)
	updateHierarchy(root, 20.0)
	if calls != 2 {
		t.Error("interval 0 should disable updates")
	}
}
