package pocketui

import (
	"math"
	"testing"
	"time"
)

// widgetClock drives widget damping animations deterministically.
type widgetClock struct{ t time.Time }

func newWidgetClock() *widgetClock {
	return &widgetClock{t: time.Unix(2000, 0)}
}

func (c *widgetClock) now() time.Time { return c.t }

func (c *widgetClock) step(seconds float64) {
	c.t = c.t.Add(time.Duration(seconds * float64(time.Second)))
}

func withAnimations(t *testing.T) {
	t.Helper()
	saved := disableAnimations
	disableAnimations = false
	t.Cleanup(func() { disableAnimations = saved })
}

func withoutAnimations(t *testing.T) {
	t.Helper()
	saved := disableAnimations
	disableAnimations = true
	t.Cleanup(func() { disableAnimations = saved })
}

// --- Button ---

func TestButtonDefaults(t *testing.T) {
	b := NewButton()
	if b.Frame() != (Rect{0, 0, 80, 44}) {
		t.Errorf("Frame = %v, want {0 0 80 44}", b.Frame())
	}
	if !b.Enabled() {
		t.Error("new button should be enabled")
	}
	if b.Title() != "" {
		t.Errorf("Title = %q, want empty", b.Title())
	}
}

func TestButtonActionOnEndedInside(t *testing.T) {
	b := NewButton()
	fired := 0
	b.SetAction(func(sender *Button) {
		fired++
		if sender != b {
			t.Error("sender should be the button")
		}
	})

	b.TouchBeganFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchBegan})
	b.TouchEndedFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchEnded})
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	// Released outside: no action.
	b.TouchBeganFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchBegan})
	b.TouchEndedFunc(b.View, Touch{Location: Point{200, 22}, Phase: TouchEnded})
	if fired != 1 {
		t.Errorf("fired = %d after outside release, want 1", fired)
	}

	// Cancelled: no action.
	b.TouchBeganFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchBegan})
	b.TouchEndedFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchCancelled})
	if fired != 1 {
		t.Errorf("fired = %d after cancel, want 1", fired)
	}
}

func TestButtonDisabledIgnoresTouches(t *testing.T) {
	withoutAnimations(t)
	b := NewButton()
	fired := 0
	b.SetAction(func(*Button) { fired++ })
	b.SetEnabled(false)

	if b.animAlpha != 0.3 {
		t.Errorf("animAlpha = %g, want 0.3", b.animAlpha)
	}
	b.TouchBeganFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchBegan})
	b.TouchEndedFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchEnded})
	if fired != 0 {
		t.Errorf("fired = %d on disabled button, want 0", fired)
	}
}

func TestButtonPressDimDamps(t *testing.T) {
	withAnimations(t)
	clock := newWidgetClock()
	b := NewButton()
	b.now = clock.now
	b.lastTime = clock.t

	ic := NewImageContext(80, 44)
	ctx := ic.Context()

	b.TouchBeganFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchBegan})
	if b.targetAlpha != 0.25 {
		t.Fatalf("targetAlpha = %g, want 0.25", b.targetAlpha)
	}

	// One frame moves part of the way, many frames settle.
	clock.step(1.0 / 60.0)
	b.draw(ctx)
	if b.animAlpha >= 1 || b.animAlpha <= 0.25 {
		t.Errorf("animAlpha = %g, want between 0.25 and 1", b.animAlpha)
	}
	for i := 0; i < 120; i++ {
		clock.step(1.0 / 60.0)
		b.draw(ctx)
	}
	if b.animAlpha != 0.25 {
		t.Errorf("animAlpha = %g after settle, want exactly 0.25", b.animAlpha)
	}

	// Release restores full opacity through the same animation.
	b.TouchEndedFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchEnded})
	for i := 0; i < 120; i++ {
		clock.step(1.0 / 60.0)
		b.draw(ctx)
	}
	if b.animAlpha != 1 {
		t.Errorf("animAlpha = %g after release, want 1", b.animAlpha)
	}
}

func TestButtonDragOffLiftsHighlight(t *testing.T) {
	b := NewButton()
	b.TouchBeganFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchBegan})
	b.TouchMovedFunc(b.View, Touch{Location: Point{300, 22}, Phase: TouchMoved})
	if b.targetAlpha != 1 {
		t.Errorf("targetAlpha = %g after drag off, want 1", b.targetAlpha)
	}
	b.TouchMovedFunc(b.View, Touch{Location: Point{40, 22}, Phase: TouchMoved})
	if b.targetAlpha != 0.25 {
		t.Errorf("targetAlpha = %g after drag back, want 0.25", b.targetAlpha)
	}
}

// --- Switch ---

func TestSwitchDefaults(t *testing.T) {
	s := NewSwitch()
	if s.Frame() != (Rect{0, 0, 51, 31}) {
		t.Errorf("Frame = %v, want {0 0 51 31}", s.Frame())
	}
	if s.Value() {
		t.Error("new switch should be off")
	}
}

func TestSwitchTapToggles(t *testing.T) {
	withoutAnimations(t)
	s := NewSwitch()
	fired := 0
	s.SetAction(func(*Switch) { fired++ })

	s.TouchBeganFunc(s.View, Touch{Location: Point{25, 15}, Phase: TouchBegan})
	s.TouchEndedFunc(s.View, Touch{Location: Point{25, 15}, Phase: TouchEnded})
	if !s.Value() || fired != 1 {
		t.Errorf("value = %v fired = %d, want on and 1", s.Value(), fired)
	}

	s.TouchBeganFunc(s.View, Touch{Location: Point{25, 15}, Phase: TouchBegan})
	s.TouchEndedFunc(s.View, Touch{Location: Point{25, 15}, Phase: TouchEnded})
	if s.Value() || fired != 2 {
		t.Errorf("value = %v fired = %d, want off and 2", s.Value(), fired)
	}
}

func TestSwitchCancelDoesNotToggle(t *testing.T) {
	s := NewSwitch()
	s.TouchBeganFunc(s.View, Touch{Location: Point{25, 15}, Phase: TouchBegan})
	s.TouchEndedFunc(s.View, Touch{Location: Point{25, 15}, Phase: TouchCancelled})
	if s.Value() {
		t.Error("cancelled touch should not toggle")
	}
}

func TestSwitchSlidePastMidpoint(t *testing.T) {
	withoutAnimations(t)
	s := NewSwitch()
	fired := 0
	s.SetAction(func(*Switch) { fired++ })

	s.TouchBeganFunc(s.View, Touch{Location: Point{5, 15}, Phase: TouchBegan})
	s.TouchMovedFunc(s.View, Touch{Location: Point{40, 15}, Phase: TouchMoved})
	if !s.Value() || fired != 1 {
		t.Fatalf("value = %v fired = %d after slide, want on and 1", s.Value(), fired)
	}

	// The release does not toggle again once the slide changed the value.
	s.TouchEndedFunc(s.View, Touch{Location: Point{40, 15}, Phase: TouchEnded})
	if !s.Value() || fired != 1 {
		t.Errorf("value = %v fired = %d after release, want on and 1", s.Value(), fired)
	}
}

func TestSwitchBeganOutsideIgnored(t *testing.T) {
	s := NewSwitch()
	s.TouchBeganFunc(s.View, Touch{Location: Point{80, 15}, Phase: TouchBegan})
	s.TouchEndedFunc(s.View, Touch{Location: Point{25, 15}, Phase: TouchEnded})
	if s.Value() {
		t.Error("touch outside the switch should be ignored")
	}
}

func TestSwitchSetValueAnimatesAndSettles(t *testing.T) {
	withAnimations(t)
	clock := newWidgetClock()
	s := NewSwitch()
	s.now = clock.now
	s.lastTime = clock.t

	s.SetValue(true)
	if s.UpdateInterval() == 0 {
		t.Fatal("SetValue should enable the update cadence")
	}
	if s.animProgress != 0 {
		t.Fatalf("animProgress = %g before first update, want 0", s.animProgress)
	}

	clock.step(1.0 / 60.0)
	s.update()
	if s.animProgress <= 0 || s.animProgress >= 1 {
		t.Errorf("animProgress = %g mid-flight, want in (0, 1)", s.animProgress)
	}
	for i := 0; i < 300; i++ {
		clock.step(1.0 / 60.0)
		s.update()
	}
	if s.animProgress != 1 {
		t.Errorf("animProgress = %g after settle, want 1", s.animProgress)
	}
	if s.UpdateInterval() != 0 {
		t.Error("update cadence should disable itself once settled")
	}
}

func TestSwitchSetValueSyncWithoutAnimations(t *testing.T) {
	withoutAnimations(t)
	s := NewSwitch()
	s.SetValue(true)
	if s.animProgress != 1 {
		t.Errorf("animProgress = %g, want 1", s.animProgress)
	}
}

func TestSwitchStretchWhileHeld(t *testing.T) {
	withAnimations(t)
	clock := newWidgetClock()
	s := NewSwitch()
	s.now = clock.now
	s.lastTime = clock.t

	s.TouchBeganFunc(s.View, Touch{Location: Point{25, 15}, Phase: TouchBegan})
	if s.UpdateInterval() == 0 {
		t.Fatal("press should enable the update cadence")
	}
	for i := 0; i < 300; i++ {
		clock.step(1.0 / 60.0)
		s.update()
	}
	if s.currentStretch != switchMaxStretch {
		t.Errorf("stretch = %g while held, want %g", s.currentStretch, switchMaxStretch)
	}

	// Release retracts the stretch, then the cadence turns itself off.
	s.TouchEndedFunc(s.View, Touch{Location: Point{25, 15}, Phase: TouchEnded})
	for i := 0; i < 300; i++ {
		clock.step(1.0 / 60.0)
		s.update()
	}
	if s.currentStretch != 0 {
		t.Errorf("stretch = %g after release, want 0", s.currentStretch)
	}
	if s.UpdateInterval() != 0 {
		t.Error("update cadence should disable itself after retraction")
	}
}

// --- Slider ---

func TestSliderDefaults(t *testing.T) {
	s := NewSlider()
	if s.Frame() != (Rect{0, 0, 120, 34}) {
		t.Errorf("Frame = %v, want {0 0 120 34}", s.Frame())
	}
	if s.Value() != 0 {
		t.Errorf("Value = %g, want 0", s.Value())
	}
	if !s.Continuous() {
		t.Error("new slider should be continuous")
	}
}

func TestSliderSetValueClamps(t *testing.T) {
	withoutAnimations(t)
	s := NewSlider()
	s.SetValue(1.5)
	if s.Value() != 1 {
		t.Errorf("Value = %g, want 1", s.Value())
	}
	s.SetValue(-0.5)
	if s.Value() != 0 {
		t.Errorf("Value = %g, want 0", s.Value())
	}
}

func TestSliderValueAt(t *testing.T) {
	s := NewSlider()
	// Track spans thumb-radius to width minus thumb-radius.
	if got := s.valueAt(5); got != 0 {
		t.Errorf("valueAt(5) = %g, want 0", got)
	}
	if got := s.valueAt(119); got != 1 {
		t.Errorf("valueAt(119) = %g, want 1", got)
	}
	if got := s.valueAt(60); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("valueAt(60) = %g, want 0.5", got)
	}
}

func TestSliderContinuousActions(t *testing.T) {
	withoutAnimations(t)
	s := NewSlider()
	fired := 0
	s.SetAction(func(*Slider) { fired++ })

	s.TouchBeganFunc(s.View, Touch{Location: Point{60, 17}, Phase: TouchBegan})
	if fired != 1 {
		t.Fatalf("fired = %d after press, want 1", fired)
	}
	s.TouchMovedFunc(s.View, Touch{Location: Point{80, 17}, Phase: TouchMoved})
	if fired != 2 {
		t.Fatalf("fired = %d after drag, want 2", fired)
	}
	// Release at the same spot changes nothing, so no extra action.
	s.TouchEndedFunc(s.View, Touch{Location: Point{80, 17}, Phase: TouchEnded})
	if fired != 2 {
		t.Errorf("fired = %d after release, want 2", fired)
	}
}

func TestSliderNonContinuousFiresOnRelease(t *testing.T) {
	withoutAnimations(t)
	s := NewSlider()
	s.SetContinuous(false)
	fired := 0
	s.SetAction(func(*Slider) { fired++ })

	s.TouchBeganFunc(s.View, Touch{Location: Point{60, 17}, Phase: TouchBegan})
	s.TouchMovedFunc(s.View, Touch{Location: Point{80, 17}, Phase: TouchMoved})
	if fired != 0 {
		t.Fatalf("fired = %d during drag, want 0", fired)
	}
	s.TouchEndedFunc(s.View, Touch{Location: Point{80, 17}, Phase: TouchEnded})
	if fired != 1 {
		t.Errorf("fired = %d after release, want 1", fired)
	}
}

func TestSliderDisabledIgnoresTouches(t *testing.T) {
	s := NewSlider()
	s.SetEnabled(false)
	fired := 0
	s.SetAction(func(*Slider) { fired++ })
	s.TouchBeganFunc(s.View, Touch{Location: Point{60, 17}, Phase: TouchBegan})
	if fired != 0 || s.Value() != 0 {
		t.Errorf("fired = %d value = %g on disabled slider, want 0 and 0", fired, s.Value())
	}
}

func TestSliderThumbDampsAndSettles(t *testing.T) {
	withAnimations(t)
	clock := newWidgetClock()
	s := NewSlider()
	s.now = clock.now
	s.lastTime = clock.t

	s.SetValue(1)
	if s.UpdateInterval() == 0 {
		t.Fatal("SetValue should enable the update cadence")
	}
	clock.step(1.0 / 60.0)
	s.update()
	if s.animValue <= 0 || s.animValue >= 1 {
		t.Errorf("animValue = %g mid-flight, want in (0, 1)", s.animValue)
	}
	for i := 0; i < 300; i++ {
		clock.step(1.0 / 60.0)
		s.update()
	}
	if s.animValue != 1 {
		t.Errorf("animValue = %g after settle, want 1", s.animValue)
	}
	if s.UpdateInterval() != 0 {
		t.Error("update cadence should disable itself once settled")
	}
}

// --- Label ---

func TestLabelDefaults(t *testing.T) {
	l := NewLabel()
	if l.Frame() != (Rect{0, 0, 100, 20}) {
		t.Errorf("Frame = %v, want {0 0 100 20}", l.Frame())
	}
	if l.Font() != SystemFont(17) {
		t.Errorf("Font = %v, want system 17", l.Font())
	}
	if l.NumberOfLines() != 1 {
		t.Errorf("NumberOfLines = %d, want 1", l.NumberOfLines())
	}
	if l.TouchEnabled() {
		t.Error("labels should not intercept touches")
	}
}

func TestLabelSizeToFit(t *testing.T) {
	l := NewLabel()
	l.SetText("Hello")
	l.SizeToFit()
	w, h := MeasureString("Hello", 0, l.Font(), l.LineBreakMode())
	if math.Abs(l.Width()-w) > 1e-9 || math.Abs(l.Height()-h) > 1e-9 {
		t.Errorf("size = (%g, %g), want (%g, %g)", l.Width(), l.Height(), w, h)
	}
}

func TestLabelFittedFontShrinks(t *testing.T) {
	l := NewLabel()
	l.SetText("a fairly long label caption")
	l.SetScalesFont(true)

	fitted := l.fittedFont(40)
	if fitted.Size >= 17 {
		t.Errorf("fitted size = %g, want below 17", fitted.Size)
	}
	if fitted.Size < 17*0.5 {
		t.Errorf("fitted size = %g, want at least the minimum scale %g", fitted.Size, 17*0.5)
	}

	// Plenty of room: no shrink.
	if got := l.fittedFont(10000); got.Size != 17 {
		t.Errorf("fitted size = %g with room to spare, want 17", got.Size)
	}
}

func TestLabelFittedFontWithoutScaling(t *testing.T) {
	l := NewLabel()
	l.SetText("a fairly long label caption")
	if got := l.fittedFont(40); got.Size != 17 {
		t.Errorf("fitted size = %g without scaling enabled, want 17", got.Size)
	}
}

func TestLabelSetTextMarksDirty(t *testing.T) {
	l := NewLabel()
	renderToImage(t, l.View, 100, 20)
	if AnyDirty(l.View) {
		t.Fatal("render should clear the dirty flag")
	}
	l.SetText("changed")
	if !AnyDirty(l.View) {
		t.Error("SetText should mark the label dirty")
	}
}
