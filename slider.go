package pocketui

import (
	"math"
	"time"
)

const (
	sliderHeight    = 34.0
	sliderTrackH    = 4.0
	sliderThumbSize = 28.0
)

// Slider is a horizontal value picker in the 0..1 range. The thumb
// chases the touch with the same damped interpolation the switch
// uses; tapping the track jumps to the tapped position.
type Slider struct {
	*View

	action     func(sender *Slider)
	enabled    bool
	continuous bool
	value      float64

	animValue float64
	tracked   bool
	lastTime  time.Time

	now func() time.Time
}

// NewSlider returns an enabled slider at value 0 that fires its
// action continuously while dragging.
func NewSlider() *Slider {
	s := &Slider{
		View:       NewView(),
		enabled:    true,
		continuous: true,
		now:        time.Now,
	}
	s.lastTime = s.now()
	s.View.SetFrame(Rect{0, 0, 120, sliderHeight})
	s.View.SetContentMode(ContentRedraw)

	s.View.DrawFunc = func(_ *View, ctx *Context) { s.draw(ctx) }
	s.View.UpdateFunc = func(_ *View) { s.update() }
	s.View.TouchBeganFunc = func(_ *View, t Touch) { s.touchBegan(t) }
	s.View.TouchMovedFunc = func(_ *View, t Touch) { s.touchMoved(t) }
	s.View.TouchEndedFunc = func(_ *View, t Touch) { s.touchEnded(t) }
	return s
}

// Action returns the change handler.
func (s *Slider) Action() func(*Slider) { return s.action }

// SetAction sets the handler fired when the value changes.
func (s *Slider) SetAction(fn func(sender *Slider)) { s.action = fn }

// Enabled reports whether the slider accepts touches.
func (s *Slider) Enabled() bool { return s.enabled }

// SetEnabled toggles interactivity.
func (s *Slider) SetEnabled(on bool) {
	s.enabled = on
	s.SetNeedsDisplay()
}

// Continuous reports whether the action fires during the drag rather
// than only on release.
func (s *Slider) Continuous() bool { return s.continuous }

// SetContinuous selects when the action fires.
func (s *Slider) SetContinuous(on bool) { s.continuous = on }

// Value returns the slider position in 0..1.
func (s *Slider) Value() float64 { return s.value }

// SetValue moves the slider, clamping to 0..1. The thumb animates
// unless animations are disabled.
func (s *Slider) SetValue(v float64) {
	v = clamp01(v)
	if s.value == v {
		return
	}
	s.value = v
	if disableAnimations {
		s.animValue = v
	} else {
		s.lastTime = s.now()
		s.SetUpdateInterval(1.0 / 60.0)
	}
	s.SetNeedsDisplay()
}

func (s *Slider) update() {
	now := s.now()
	dt := min(now.Sub(s.lastTime).Seconds(), 0.05)
	s.lastTime = now

	if disableAnimations {
		s.animValue = s.value
		s.SetUpdateInterval(0)
		s.SetNeedsDisplay()
		return
	}

	diff := s.value - s.animValue
	if math.Abs(diff) > 0.0001 {
		s.animValue += diff * dampFactor(dt)
	} else {
		s.animValue = s.value
		if !s.tracked {
			s.SetUpdateInterval(0)
		}
	}
	s.SetNeedsDisplay()
}

// trackRange returns the x extent the thumb center travels.
func (s *Slider) trackRange() (minX, maxX float64) {
	return sliderThumbSize / 2, s.Width() - sliderThumbSize/2
}

func (s *Slider) draw(ctx *Context) {
	w, h := s.Width(), s.Height()
	minX, maxX := s.trackRange()
	thumbX := minX + (maxX-minX)*s.animValue
	trackY := (h - sliderTrackH) / 2

	dim := 1.0
	if !s.enabled {
		dim = 0.5
	}

	// Filled part of the track in the tint color, remainder in gray.
	tint := s.TintColor()
	tint.A *= dim
	ctx.SetColor(tint)
	NewPathRoundedRect(0, trackY, thumbX, sliderTrackH, sliderTrackH/2).Fill(ctx)

	gray := iosGray
	gray.A *= dim
	ctx.SetColor(gray)
	NewPathRoundedRect(thumbX, trackY, w-thumbX, sliderTrackH, sliderTrackH/2).Fill(ctx)

	thumbY := (h - sliderThumbSize) / 2
	ctx.SetColor(Color{0, 0, 0, 0.1 * dim})
	NewPathOval(thumbX-sliderThumbSize/2, thumbY+0.5, sliderThumbSize, sliderThumbSize).Fill(ctx)
	ctx.SetColor(Color{1, 1, 1, dim})
	NewPathOval(thumbX-sliderThumbSize/2, thumbY, sliderThumbSize, sliderThumbSize).Fill(ctx)
}

// valueAt maps a touch x position to a track value.
func (s *Slider) valueAt(x float64) float64 {
	minX, maxX := s.trackRange()
	if maxX <= minX {
		return 0
	}
	return clamp01((x - minX) / (maxX - minX))
}

func (s *Slider) setFromTouch(x float64) {
	old := s.value
	s.SetValue(s.valueAt(x))
	if s.value != old && s.continuous && s.action != nil {
		s.action(s)
	}
}

func (s *Slider) touchBegan(t Touch) {
	if !s.enabled {
		return
	}
	s.tracked = true
	s.lastTime = s.now()
	s.setFromTouch(t.Location.X)
	s.SetNeedsDisplay()
}

func (s *Slider) touchMoved(t Touch) {
	if !s.tracked || !s.enabled {
		return
	}
	s.setFromTouch(t.Location.X)
}

func (s *Slider) touchEnded(t Touch) {
	if !s.tracked || !s.enabled {
		return
	}
	s.tracked = false
	if t.Phase == TouchEnded {
		s.setFromTouch(t.Location.X)
		if !s.continuous && s.action != nil {
			s.action(s)
		}
	}
	s.SetNeedsDisplay()
}
