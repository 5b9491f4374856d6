package pocketui

import "testing"

// --- Defaults ---

func TestNewViewDefaults(t *testing.T) {
	v := NewView()
	if v.Name() == "" {
		t.Error("Name should be auto-assigned")
	}
	if v.Frame() != (Rect{0, 0, 100, 100}) {
		t.Errorf("Frame = %v, want {0 0 100 100}", v.Frame())
	}
	if v.Bounds() != (Rect{0, 0, 100, 100}) {
		t.Errorf("Bounds = %v, want {0 0 100 100}", v.Bounds())
	}
	if v.Alpha() != 1 {
		t.Errorf("Alpha = %v, want 1", v.Alpha())
	}
	if bg := v.BackgroundColor(); bg == nil || bg.A != 0 {
		t.Errorf("BackgroundColor = %v, want transparent", bg)
	}
	if !v.TouchEnabled() {
		t.Error("TouchEnabled should default true")
	}
	if v.ContentMode() != ContentScaleToFill {
		t.Errorf("ContentMode = %v, want ContentScaleToFill", v.ContentMode())
	}
	if !v.NeedsDisplay() {
		t.Error("new view should need display")
	}
}

// --- Tree invariants ---

func TestAddSubviewReparents(t *testing.T) {
	a, b, child := NewView(), NewView(), NewView()
	a.AddSubview(child)
	if child.Superview() != a || len(a.Subviews()) != 1 {
		t.Fatal("child not attached to a")
	}
	b.AddSubview(child)
	if child.Superview() != b {
		t.Error("child should have moved to b")
	}
	if len(a.Subviews()) != 0 {
		t.Error("a should no longer hold child")
	}
}

func TestAddSubviewTwiceIsNoop(t *testing.T) {
	p, c := NewView(), NewView()
	p.AddSubview(c)
	p.AddSubview(c)
	if len(p.Subviews()) != 1 {
		t.Errorf("subviews = %d, want 1", len(p.Subviews()))
	}
}

func TestAddSubviewCyclePanics(t *testing.T) {
	p, c := NewView(), NewView()
	p.AddSubview(c)
	defer func() {
		if recover() == nil {
			t.Error("adding an ancestor as subview should panic")
		}
	}()
	c.AddSubview(p)
}

func TestAddSubviewSelfPanics(t *testing.T) {
	v := NewView()
	defer func() {
		if recover() == nil {
			t.Error("adding a view to itself should panic")
		}
	}()
	v.AddSubview(v)
}

func TestRemoveSubviewNotChildPanics(t *testing.T) {
	p, other := NewView(), NewView()
	defer func() {
		if recover() == nil {
			t.Error("removing a non-child should panic")
		}
	}()
	p.RemoveSubview(other)
}

func TestZOrder(t *testing.T) {
	p := NewView()
	a, b, c := NewView(), NewView(), NewView()
	p.AddSubview(a)
	p.AddSubview(b)
	p.AddSubview(c)

	a.BringToFront()
	svs := p.Subviews()
	if svs[len(svs)-1] != a {
		t.Error("BringToFront should move a to the top")
	}

	c.SendToBack()
	svs = p.Subviews()
	if svs[0] != c {
		t.Error("SendToBack should move c to the bottom")
	}
}

func TestSubviewNamed(t *testing.T) {
	p, c := NewView(), NewView()
	c.SetName("status")
	p.AddSubview(c)
	if p.SubviewNamed("status") != c {
		t.Error("SubviewNamed should find the child")
	}
	if p.SubviewNamed("missing") != nil {
		t.Error("SubviewNamed should return nil for unknown names")
	}
}

func TestRoot(t *testing.T) {
	a, b, c := NewView(), NewView(), NewView()
	a.AddSubview(b)
	b.AddSubview(c)
	if c.Root() != a || a.Root() != a {
		t.Error("Root should walk to the topmost ancestor")
	}
}

// --- Frame / bounds coupling ---

func TestFrameBoundsSizeSync(t *testing.T) {
	v := NewView()
	v.SetFrame(Rect{10, 20, 200, 150})
	if b := v.Bounds(); b.Width != 200 || b.Height != 150 {
		t.Errorf("Bounds size = %vx%v, want 200x150", b.Width, b.Height)
	}
	v.SetBounds(Rect{5, 5, 80, 60})
	if f := v.Frame(); f.Width != 80 || f.Height != 60 {
		t.Errorf("Frame size = %vx%v, want 80x60", f.Width, f.Height)
	}
	if f := v.Frame(); f.X != 10 || f.Y != 20 {
		t.Error("SetBounds should not move the frame origin")
	}
}

func TestSetCenter(t *testing.T) {
	v := NewView()
	v.SetFrame(Rect{0, 0, 40, 20})
	v.SetCenter(Point{100, 50})
	if f := v.Frame(); f != (Rect{80, 40, 40, 20}) {
		t.Errorf("Frame = %v, want {80 40 40 20}", f)
	}
	if v.Center() != (Point{100, 50}) {
		t.Errorf("Center = %v, want {100 50}", v.Center())
	}
}

func TestLayoutFuncFiresOnResizeOnly(t *testing.T) {
	v := NewView()
	calls := 0
	v.LayoutFunc = func(*View) { calls++ }
	v.SetFrame(Rect{5, 5, 100, 100}) // move only
	if calls != 0 {
		t.Error("moving should not invoke LayoutFunc")
	}
	v.SetFrame(Rect{5, 5, 120, 100})
	if calls != 1 {
		t.Errorf("layout calls = %d, want 1", calls)
	}
}

// --- Autoresizing ---

func TestAutoresizeFlexibleBothAxes(t *testing.T) {
	p := NewView()
	p.SetFrame(Rect{0, 0, 100, 100})
	c := NewView()
	c.SetFrame(Rect{10, 10, 50, 50})
	c.SetFlex("WH")
	p.AddSubview(c)

	p.SetFrame(Rect{0, 0, 150, 130})
	if f := c.Frame(); f != (Rect{10, 10, 100, 80}) {
		t.Errorf("child frame = %v, want {10 10 100 80}", f)
	}
	if b := c.Bounds(); b.Width != 100 || b.Height != 80 {
		t.Errorf("child bounds size = %vx%v, want 100x80", b.Width, b.Height)
	}
}

func TestAutoresizeSplitsAxisDelta(t *testing.T) {
	p := NewView()
	p.SetFrame(Rect{0, 0, 100, 100})
	c := NewView()
	c.SetFrame(Rect{10, 0, 50, 100})
	c.SetFlex("LWR")
	p.AddSubview(c)

	// +30 split equally across L, W, R.
	p.SetFrame(Rect{0, 0, 130, 100})
	if f := c.Frame(); f != (Rect{20, 0, 60, 100}) {
		t.Errorf("child frame = %v, want {20 0 60 100}", f)
	}
}

func TestAutoresizeNonFlexUnchanged(t *testing.T) {
	p := NewView()
	p.SetFrame(Rect{0, 0, 100, 100})
	c := NewView()
	c.SetFrame(Rect{10, 10, 50, 50})
	p.AddSubview(c)

	p.SetFrame(Rect{0, 0, 300, 300})
	if f := c.Frame(); f != (Rect{10, 10, 50, 50}) {
		t.Errorf("child frame = %v, want unchanged {10 10 50 50}", f)
	}
}

func TestAutoresizeDoesNotCascade(t *testing.T) {
	p := NewView()
	p.SetFrame(Rect{0, 0, 100, 100})
	c := NewView()
	c.SetFrame(Rect{0, 0, 50, 50})
	c.SetFlex("W")
	gc := NewView()
	gc.SetFrame(Rect{0, 0, 25, 25})
	gc.SetFlex("W")
	p.AddSubview(c)
	c.AddSubview(gc)

	p.SetFrame(Rect{0, 0, 140, 100})
	if f := c.Frame(); f.Width != 90 {
		t.Errorf("child width = %v, want 90", f.Width)
	}
	// Direct assignment on c must not trigger a second pass into gc.
	if f := gc.Frame(); f.Width != 25 {
		t.Errorf("grandchild width = %v, want 25", f.Width)
	}
}

// --- SizeToFit ---

func TestSizeToFitEnclosesSubviews(t *testing.T) {
	p := NewView()
	p.SetFrame(Rect{5, 5, 10, 10})
	a := NewView()
	a.SetFrame(Rect{0, 0, 80, 30})
	b := NewView()
	b.SetFrame(Rect{20, 40, 30, 30})
	p.AddSubview(a)
	p.AddSubview(b)

	p.SizeToFit()
	if f := p.Frame(); f != (Rect{5, 5, 80, 70}) {
		t.Errorf("Frame = %v, want {5 5 80 70}", f)
	}
}

// --- Screen origin / coordinate conversion ---

func TestScreenOriginWithScrolledAncestor(t *testing.T) {
	root := NewView()
	root.SetFrame(Rect{0, 0, 300, 300})
	scroller := NewView()
	scroller.SetFrame(Rect{10, 10, 100, 100})
	scroller.SetBounds(Rect{0, 30, 100, 100}) // scrolled down 30
	child := NewView()
	child.SetFrame(Rect{5, 40, 20, 20})
	root.AddSubview(scroller)
	scroller.AddSubview(child)

	x, y := ScreenOrigin(child)
	if x != 15 || y != 20 {
		t.Errorf("ScreenOrigin = (%v, %v), want (15, 20)", x, y)
	}
}

func TestConvertPointRoundTrip(t *testing.T) {
	root := NewView()
	a := NewView()
	a.SetFrame(Rect{10, 20, 100, 100})
	b := NewView()
	b.SetFrame(Rect{50, 60, 100, 100})
	root.AddSubview(a)
	root.AddSubview(b)

	p := Point{7, 9}
	inB := ConvertPoint(p, a, b)
	back := ConvertPoint(inB, b, a)
	if back != p {
		t.Errorf("round trip = %v, want %v", back, p)
	}
	if inB != (Point{7 + 10 - 50, 9 + 20 - 60}) {
		t.Errorf("ConvertPoint = %v", inB)
	}
}

// --- Dirty propagation ---

func TestAnyDirty(t *testing.T) {
	root := NewView()
	child := NewView()
	root.AddSubview(child)
	Render(root, NewImageContext(10, 10).Context())
	if AnyDirty(root) {
		t.Fatal("tree should be clean after render")
	}
	child.SetNeedsDisplay()
	if !AnyDirty(root) {
		t.Error("dirty child should make the tree dirty")
	}
}

// --- First responder without a window ---

func TestBecomeFirstResponderDetached(t *testing.T) {
	v := NewView()
	if v.BecomeFirstResponder() {
		t.Error("BecomeFirstResponder should fail for an unpresented view")
	}
}
