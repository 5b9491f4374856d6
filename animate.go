package pocketui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// easeSmoothstep is the smooth-step curve 3t² − 2t³ in gween's easing
// form.
func easeSmoothstep(t, b, c, d float32) float32 {
	p := t / d
	return b + c*p*p*(3-2*p)
}

var _ ease.TweenFunc = easeSmoothstep

// applyFunc writes interpolated components back through a view's real
// setter.
type applyFunc func(v *View, comps []float64)

// record is one captured attribute change inside an Animate body.
type record struct {
	view  *View
	apply applyFunc
	start []float64
	end   []float64
	// generic marks a non-interpolable attribute that steps to its end
	// value when the task finishes.
	generic func()
}

type animTask struct {
	rec        record
	startAt    float64
	duration   float64
	tweens     []*gween.Tween
	lastNow    float64
	started    bool
	completion func()
}

// tick advances the task to now. It reports true when finished.
func (t *animTask) tick(now float64) bool {
	if now < t.startAt {
		return false
	}
	if !t.started {
		t.started = true
		t.lastNow = t.startAt
	}
	dt := float32(now - t.lastNow)
	t.lastNow = now

	finished := true
	comps := make([]float64, len(t.rec.start))
	for i, tw := range t.tweens {
		v, fin := tw.Update(dt)
		comps[i] = float64(v)
		if !fin {
			finished = false
		}
	}
	if finished {
		// Land exactly on the recorded end values.
		copy(comps, t.rec.end)
	}
	if t.rec.generic != nil {
		if finished {
			t.rec.generic()
		}
	} else {
		t.rec.apply(t.rec.view, comps)
	}
	if finished && t.completion != nil {
		t.completion()
	}
	return finished
}

type delayedCall struct {
	at time.Time
	fn func()
}

// Animator owns one window's running attribute animations and delayed
// calls. The window loop advances it once per frame via Tick; it is
// not safe for concurrent use.
type Animator struct {
	active  []*animTask
	pending []delayedCall

	// clock returns the current time, overridable in tests.
	clock func() time.Time
}

// NewAnimator returns an empty animator using the wall clock.
func NewAnimator() *Animator {
	return &Animator{clock: time.Now}
}

// Active returns the number of running interpolation tasks.
func (a *Animator) Active() int { return len(a.active) }

// Delay schedules fn to run after the given number of seconds, on the
// window's own loop.
func (a *Animator) Delay(fn func(), seconds float64) {
	a.pending = append(a.pending, delayedCall{
		at: a.clock().Add(time.Duration(seconds * float64(time.Second))),
		fn: fn,
	})
}

// CancelDelays drops all pending Delay calls unconditionally.
func (a *Animator) CancelDelays() {
	a.pending = nil
}

// Tick advances all running animations and fires due delays. Called by
// the window loop once per frame.
func (a *Animator) Tick() {
	now := a.clock()
	nowSec := float64(now.UnixNano()) / float64(time.Second)

	if len(a.pending) > 0 {
		var due []func()
		keep := a.pending[:0]
		for _, d := range a.pending {
			if !now.Before(d.at) {
				due = append(due, d.fn)
			} else {
				keep = append(keep, d)
			}
		}
		a.pending = keep
		for _, fn := range due {
			fn()
		}
	}

	if len(a.active) == 0 {
		return
	}
	keep := a.active[:0]
	for _, t := range a.active {
		if !t.tick(nowSec) {
			keep = append(keep, t)
		}
	}
	a.active = keep
}

// Animate runs body with a recording batch: attribute changes made
// through the batch are captured instead of applied, then interpolated
// over duration seconds with smooth-step easing, starting after delay.
// completion fires exactly once, after the last captured change
// finishes.
//
// A duration ≤ 0 (or animations disabled via the environment) applies
// every end value synchronously and fires completion before returning.
func (a *Animator) Animate(body func(*Batch), duration, delay float64, completion func()) {
	b := &Batch{}
	body(b)
	records := b.records

	if duration <= 0 || disableAnimations {
		for _, r := range records {
			if r.generic != nil {
				r.generic()
			} else {
				r.apply(r.view, r.end)
			}
		}
		if completion != nil {
			completion()
		}
		return
	}
	if len(records) == 0 {
		if completion != nil {
			completion()
		}
		return
	}

	startAt := float64(a.clock().UnixNano())/float64(time.Second) + delay
	remaining := len(records)
	var shared func()
	if completion != nil {
		shared = func() {
			remaining--
			if remaining == 0 {
				completion()
			}
		}
	}
	for _, r := range records {
		t := &animTask{
			rec:        r,
			startAt:    startAt,
			duration:   duration,
			completion: shared,
		}
		t.tweens = make([]*gween.Tween, len(r.start))
		for i := range r.start {
			t.tweens[i] = gween.New(float32(r.start[i]), float32(r.end[i]), float32(duration), easeSmoothstep)
		}
		a.active = append(a.active, t)
	}
}

// Batch collects attribute changes inside an Animate body. Each Set
// method captures the attribute's current and requested value; nothing
// is applied until the animator interpolates it.
type Batch struct {
	records []record
}

func (b *Batch) add(v *View, apply applyFunc, start, end []float64) {
	b.records = append(b.records, record{view: v, apply: apply, start: start, end: end})
}

// SetAlpha animates the view's opacity.
func (b *Batch) SetAlpha(v *View, alpha float64) {
	b.add(v, func(v *View, c []float64) { v.SetAlpha(c[0]) },
		[]float64{v.alpha}, []float64{alpha})
}

// SetFrame animates the view's frame component-wise.
func (b *Batch) SetFrame(v *View, f Rect) {
	b.add(v, func(v *View, c []float64) { v.SetFrame(Rect{c[0], c[1], c[2], c[3]}) },
		[]float64{v.frame.X, v.frame.Y, v.frame.Width, v.frame.Height},
		[]float64{f.X, f.Y, f.Width, f.Height})
}

// SetBounds animates the view's bounds component-wise.
func (b *Batch) SetBounds(v *View, r Rect) {
	b.add(v, func(v *View, c []float64) { v.SetBounds(Rect{c[0], c[1], c[2], c[3]}) },
		[]float64{v.bounds.X, v.bounds.Y, v.bounds.Width, v.bounds.Height},
		[]float64{r.X, r.Y, r.Width, r.Height})
}

// SetCenter animates the view's center point.
func (b *Batch) SetCenter(v *View, p Point) {
	c := v.Center()
	b.add(v, func(v *View, c []float64) { v.SetCenter(Point{c[0], c[1]}) },
		[]float64{c.X, c.Y}, []float64{p.X, p.Y})
}

// SetX animates the frame's x origin.
func (b *Batch) SetX(v *View, x float64) {
	b.add(v, func(v *View, c []float64) { v.SetX(c[0]) },
		[]float64{v.frame.X}, []float64{x})
}

// SetY animates the frame's y origin.
func (b *Batch) SetY(v *View, y float64) {
	b.add(v, func(v *View, c []float64) { v.SetY(c[0]) },
		[]float64{v.frame.Y}, []float64{y})
}

// SetWidth animates the frame width.
func (b *Batch) SetWidth(v *View, w float64) {
	b.add(v, func(v *View, c []float64) { v.SetWidth(c[0]) },
		[]float64{v.frame.Width}, []float64{w})
}

// SetHeight animates the frame height.
func (b *Batch) SetHeight(v *View, h float64) {
	b.add(v, func(v *View, c []float64) { v.SetHeight(c[0]) },
		[]float64{v.frame.Height}, []float64{h})
}

// SetBackgroundColor animates the background color component-wise. A
// nil current background interpolates from transparent.
func (b *Batch) SetBackgroundColor(v *View, col any) {
	end, ok := ParseColor(col)
	if !ok {
		// Not interpolable: step to "no background" at the end.
		b.records = append(b.records, record{
			view:    v,
			start:   []float64{0},
			end:     []float64{0},
			generic: func() { v.SetBackgroundColor(nil) },
		})
		return
	}
	start := Clear
	if v.backgroundColor != nil {
		start = *v.backgroundColor
	}
	b.add(v, func(v *View, c []float64) { v.SetBackgroundColor(Color{c[0], c[1], c[2], c[3]}) },
		[]float64{start.R, start.G, start.B, start.A},
		[]float64{end.R, end.G, end.B, end.A})
}

// SetCornerRadius animates the corner radius.
func (b *Batch) SetCornerRadius(v *View, r float64) {
	b.add(v, func(v *View, c []float64) { v.SetCornerRadius(c[0]) },
		[]float64{v.cornerRadius}, []float64{r})
}

// SetBorderWidth animates the border width.
func (b *Batch) SetBorderWidth(v *View, w float64) {
	b.add(v, func(v *View, c []float64) { v.SetBorderWidth(c[0]) },
		[]float64{v.borderWidth}, []float64{w})
}

// SetTransform animates to the given transform. Transforms are not
// interpolated; the value steps at the end of the duration.
func (b *Batch) SetTransform(v *View, t *Transform) {
	b.records = append(b.records, record{
		view:    v,
		start:   []float64{0},
		end:     []float64{0},
		generic: func() { v.SetTransform(t) },
	})
}
