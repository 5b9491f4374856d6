package pocketui

import (
	"math"
	"time"
)

var (
	iosGreen = Color{0.2, 0.78, 0.35, 1}
	iosGray  = Color{0.85, 0.85, 0.85, 1}
)

const (
	switchWidth  = 51.0
	switchHeight = 31.0
	switchMargin = 2.0
	// The thumb stretches up to this many points while held.
	switchMaxStretch = 8.0
)

// Switch is a two-state toggle. The thumb slides with a damped
// animation driven by the update hook, which disables itself once the
// animation settles.
type Switch struct {
	*View

	action  func(sender *Switch)
	enabled bool
	value   bool

	animProgress   float64
	targetProgress float64
	tracked        bool
	changedInMove  bool

	pressStart     time.Time
	currentStretch float64
	lastTime       time.Time

	now func() time.Time
}

// NewSwitch returns an enabled switch in the off position.
func NewSwitch() *Switch {
	s := &Switch{
		View:    NewView(),
		enabled: true,
		now:     time.Now,
	}
	s.lastTime = s.now()
	s.View.SetFrame(Rect{0, 0, switchWidth, switchHeight})
	s.View.SetContentMode(ContentRedraw)

	s.View.DrawFunc = func(_ *View, ctx *Context) { s.draw(ctx) }
	s.View.UpdateFunc = func(_ *View) { s.update() }
	s.View.TouchBeganFunc = func(_ *View, t Touch) { s.touchBegan(t) }
	s.View.TouchMovedFunc = func(_ *View, t Touch) { s.touchMoved(t) }
	s.View.TouchEndedFunc = func(_ *View, t Touch) { s.touchEnded(t) }
	return s
}

// Action returns the change handler.
func (s *Switch) Action() func(*Switch) { return s.action }

// SetAction sets the handler fired when the value changes from a
// touch.
func (s *Switch) SetAction(fn func(sender *Switch)) { s.action = fn }

// Enabled reports whether the switch accepts touches.
func (s *Switch) Enabled() bool { return s.enabled }

// SetEnabled toggles interactivity.
func (s *Switch) SetEnabled(on bool) {
	s.enabled = on
	s.SetNeedsDisplay()
}

// Value returns the switch position.
func (s *Switch) Value() bool { return s.value }

// SetValue moves the switch, animating the thumb unless animations
// are disabled.
func (s *Switch) SetValue(v bool) {
	if s.value == v {
		return
	}
	s.value = v
	if v {
		s.targetProgress = 1
	} else {
		s.targetProgress = 0
	}
	if disableAnimations {
		s.animProgress = s.targetProgress
	} else {
		s.lastTime = s.now()
		s.SetUpdateInterval(1.0 / 60.0)
	}
	s.SetNeedsDisplay()
}

// update advances the thumb and stretch animations, then turns its own
// cadence off when both have settled.
func (s *Switch) update() {
	now := s.now()
	dt := min(now.Sub(s.lastTime).Seconds(), 0.05)
	s.lastTime = now

	if disableAnimations {
		s.animProgress = s.targetProgress
		if s.tracked {
			s.currentStretch = switchMaxStretch
		} else {
			s.currentStretch = 0
		}
		s.SetUpdateInterval(0)
		s.SetNeedsDisplay()
		return
	}

	lerpSpeed := dampFactor(dt)
	done := true

	diff := s.targetProgress - s.animProgress
	if math.Abs(diff) > 0.0001 {
		s.animProgress += diff * lerpSpeed
		done = false
	} else {
		s.animProgress = s.targetProgress
	}

	var targetStretch float64
	if s.tracked {
		elapsed := now.Sub(s.pressStart).Seconds()
		targetStretch = min(switchMaxStretch, max(0, (elapsed-0.03)*65))
	}
	stretchDiff := targetStretch - s.currentStretch
	if math.Abs(stretchDiff) > 0.01 {
		s.currentStretch += stretchDiff * lerpSpeed
		done = false
	} else {
		s.currentStretch = targetStretch
	}

	s.SetNeedsDisplay()

	if done && !s.tracked {
		s.SetUpdateInterval(0)
	}
}

func (s *Switch) draw(ctx *Context) {
	p := s.animProgress
	stretch := s.currentStretch

	pressDim := 1.0
	if s.tracked {
		pressDim = 0.96
	}

	bg := lerpColor(iosGray, iosGreen, p)
	bg.R *= pressDim
	bg.G *= pressDim
	bg.B *= pressDim
	bg.A = 1

	ctx.SetColor(bg)
	NewPathRoundedRect(0, 0, switchWidth, switchHeight, switchHeight/2).Fill(ctx)

	basePinSize := switchHeight - switchMargin*2
	pinW := basePinSize + stretch

	maxXShift := switchWidth - basePinSize - switchMargin*2
	currentX := switchMargin + maxXShift*p
	drawX := currentX - stretch*p
	drawY := switchMargin

	// Thumb drop shadow, then the thumb itself.
	ctx.SetColor(Color{0, 0, 0, 0.08})
	NewPathRoundedRect(drawX, drawY+0.5, pinW, basePinSize, basePinSize/2).Fill(ctx)

	ctx.SetColor(White)
	NewPathRoundedRect(drawX, drawY, pinW, basePinSize, basePinSize/2).Fill(ctx)
}

func (s *Switch) touchBegan(t Touch) {
	if !s.enabled {
		return
	}
	r := Rect{0, 0, switchWidth, switchHeight}
	if !r.Contains(t.Location.X, t.Location.Y) {
		return
	}

	s.tracked = true
	s.changedInMove = false
	s.pressStart = s.now()
	s.lastTime = s.pressStart

	if !disableAnimations {
		s.SetUpdateInterval(1.0 / 60.0)
	}
	s.SetNeedsDisplay()
}

func (s *Switch) touchMoved(t Touch) {
	if !s.tracked || !s.enabled {
		return
	}
	// Sliding past the midpoint sets the value directly.
	newValue := t.Location.X > s.Width()/2
	if newValue != s.value {
		s.SetValue(newValue)
		s.changedInMove = true
		if s.action != nil {
			s.action(s)
		}
	}
}

func (s *Switch) touchEnded(t Touch) {
	if !s.tracked || !s.enabled {
		return
	}

	s.tracked = false
	if t.Phase == TouchEnded && !s.changedInMove {
		s.SetValue(!s.value)
		if s.action != nil {
			s.action(s)
		}
	}

	if s.currentStretch > 0.01 && !disableAnimations {
		s.lastTime = s.now()
		s.SetUpdateInterval(1.0 / 60.0)
	}
	s.SetNeedsDisplay()
}
