package pocketui

import (
	"math"
	"time"
)

// dampFactor is the per-tick interpolation weight of the widget press
// animations. dt must already be capped by the caller.
func dampFactor(dt float64) float64 {
	return 1 - math.Pow(0.00005, dt)
}

// iosBlue is the system tint used for button titles.
var iosBlue = Color{0, 122.0 / 255.0, 1, 1}

// Button is a borderless text button. Its title dims while pressed and
// the dimming eases back with a short damped animation, the same
// interpolation the switch thumb uses.
type Button struct {
	*View

	title   *Label
	action  func(sender *Button)
	enabled bool

	animAlpha   float64
	targetAlpha float64
	tracked     bool
	lastTime    time.Time

	// insets order: top, left, bottom, right.
	insets [4]float64

	now func() time.Time
}

// NewButton returns an enabled 80x44 button with no title.
func NewButton() *Button {
	b := &Button{
		View:        NewView(),
		enabled:     true,
		animAlpha:   1,
		targetAlpha: 1,
		insets:      [4]float64{4, 8, 4, 8},
		now:         time.Now,
	}
	b.lastTime = b.now()
	b.View.SetFrame(Rect{0, 0, 80, 44})
	b.View.SetContentMode(ContentRedraw)

	b.title = NewLabel()
	b.title.SetFont(SystemFont(17))
	b.title.SetTextColor(iosBlue)
	b.title.SetAlignment(AlignCenter)
	b.title.SetLineBreakMode(LineBreakTruncateTail)
	b.title.SetNumberOfLines(1)

	b.View.DrawFunc = func(_ *View, ctx *Context) { b.draw(ctx) }
	b.View.TouchBeganFunc = func(_ *View, t Touch) { b.touchBegan(t) }
	b.View.TouchMovedFunc = func(_ *View, t Touch) { b.touchMoved(t) }
	b.View.TouchEndedFunc = func(_ *View, t Touch) { b.touchEnded(t) }
	return b
}

// Title returns the button's title.
func (b *Button) Title() string { return b.title.Text() }

// SetTitle replaces the button's title.
func (b *Button) SetTitle(s string) {
	b.title.SetText(s)
	b.SetNeedsDisplay()
}

// Action returns the tap handler.
func (b *Button) Action() func(*Button) { return b.action }

// SetAction sets the handler fired when a touch ends inside the
// button.
func (b *Button) SetAction(fn func(sender *Button)) { b.action = fn }

// Enabled reports whether the button accepts touches.
func (b *Button) Enabled() bool { return b.enabled }

// SetEnabled toggles the button. A disabled button fades to 30%
// opacity.
func (b *Button) SetEnabled(on bool) {
	b.enabled = on
	if on {
		b.targetAlpha = 1
	} else {
		b.targetAlpha = 0.3
	}
	if disableAnimations {
		b.animAlpha = b.targetAlpha
	}
	b.SetNeedsDisplay()
}

func (b *Button) draw(ctx *Context) {
	now := b.now()
	dt := min(now.Sub(b.lastTime).Seconds(), 0.1)
	b.lastTime = now

	if disableAnimations {
		b.animAlpha = b.targetAlpha
	} else {
		lerpSpeed := dampFactor(dt)
		diff := b.targetAlpha - b.animAlpha
		if math.Abs(diff) > 0.001 {
			b.animAlpha += diff * lerpSpeed
			b.SetNeedsDisplay()
		} else {
			b.animAlpha = b.targetAlpha
		}
	}

	text := b.title.Text()
	if text == "" {
		return
	}

	var textColor Color
	switch {
	case !b.enabled:
		textColor = Color{0.7, 0.7, 0.7, 1}
	case b.tracked:
		textColor = White
	default:
		textColor = iosBlue
	}
	textColor.A *= b.animAlpha

	it, il, ib, ir := b.insets[0], b.insets[1], b.insets[2], b.insets[3]
	DrawString(ctx, text,
		Rect{il, it, b.Width() - il - ir, b.Height() - it - ib},
		b.title.Font(), textColor,
		b.title.Alignment(), b.title.LineBreakMode(), 1)
}

func (b *Button) touchBegan(t Touch) {
	if !b.enabled {
		return
	}
	b.tracked = true
	b.lastTime = b.now()
	// Dims immediately on press.
	b.targetAlpha = 0.25
	if disableAnimations {
		b.animAlpha = 0.25
	}
	b.SetNeedsDisplay()
}

func (b *Button) touchMoved(t Touch) {
	if !b.tracked || !b.enabled {
		return
	}
	// Dragging off the button lifts the highlight without ending the
	// touch.
	inside := b.Bounds().Contains(t.Location.X, t.Location.Y)
	newTarget := 1.0
	if inside {
		newTarget = 0.25
	}
	if newTarget != b.targetAlpha {
		b.targetAlpha = newTarget
		b.SetNeedsDisplay()
	}
}

func (b *Button) touchEnded(t Touch) {
	if b.tracked {
		if b.enabled {
			b.targetAlpha = 1
		} else {
			b.targetAlpha = 0.3
		}
		inside := b.Bounds().Contains(t.Location.X, t.Location.Y)
		if b.enabled && t.Phase == TouchEnded && inside && b.action != nil {
			b.action(b)
		}
		b.SetNeedsDisplay()
	}
	b.tracked = false
}
