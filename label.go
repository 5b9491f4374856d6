package pocketui

// Label is a non-interactive text view. A new label draws black
// system-font text, single line, tail-truncated.
type Label struct {
	*View

	text          string
	font          Font
	textColor     *Color
	alignment     Alignment
	lineBreakMode LineBreakMode
	numberOfLines int

	// Auto-shrink: scale the font down (to MinFontScale of its size,
	// 0.5 when unset) until a single line fits the width.
	scalesFont   bool
	minFontScale float64
}

// NewLabel returns an empty 100x20 label.
func NewLabel() *Label {
	l := &Label{
		View:          NewView(),
		font:          SystemFont(17),
		textColor:     &Color{0, 0, 0, 1},
		alignment:     AlignNatural,
		lineBreakMode: LineBreakTruncateTail,
		numberOfLines: 1,
	}
	l.View.SetFrame(Rect{0, 0, 100, 20})
	l.View.SetTouchEnabled(false)
	l.View.SetContentMode(ContentRedraw)
	l.View.DrawFunc = func(_ *View, ctx *Context) { l.draw(ctx) }
	return l
}

// Text returns the label's text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's text.
func (l *Label) SetText(s string) {
	if l.text == s {
		return
	}
	l.text = s
	l.SetNeedsDisplay()
}

// Font returns the label's font.
func (l *Label) Font() Font { return l.font }

// SetFont replaces the label's font.
func (l *Label) SetFont(f Font) {
	l.font = f
	l.SetNeedsDisplay()
}

// TextColor returns the label's text color, or Clear when none is set.
func (l *Label) TextColor() Color {
	if l.textColor == nil {
		return Clear
	}
	return *l.textColor
}

// SetTextColor sets the text color from any color-like value; an
// unparseable value clears it, which hides the text.
func (l *Label) SetTextColor(col any) {
	if c, ok := ParseColor(col); ok {
		l.textColor = &c
	} else {
		l.textColor = nil
	}
	l.SetNeedsDisplay()
}

// Alignment returns the text alignment.
func (l *Label) Alignment() Alignment { return l.alignment }

// SetAlignment sets the text alignment.
func (l *Label) SetAlignment(a Alignment) {
	l.alignment = a
	l.SetNeedsDisplay()
}

// LineBreakMode returns the wrap/truncate mode.
func (l *Label) LineBreakMode() LineBreakMode { return l.lineBreakMode }

// SetLineBreakMode sets the wrap/truncate mode.
func (l *Label) SetLineBreakMode(m LineBreakMode) {
	l.lineBreakMode = m
	l.SetNeedsDisplay()
}

// NumberOfLines returns the line limit; 0 means unlimited.
func (l *Label) NumberOfLines() int { return l.numberOfLines }

// SetNumberOfLines sets the line limit; 0 means unlimited.
func (l *Label) SetNumberOfLines(n int) {
	l.numberOfLines = n
	l.SetNeedsDisplay()
}

// ScalesFont reports whether single-line auto-shrink is enabled.
func (l *Label) ScalesFont() bool { return l.scalesFont }

// SetScalesFont enables single-line auto-shrink.
func (l *Label) SetScalesFont(on bool) {
	l.scalesFont = on
	l.SetNeedsDisplay()
}

// SetMinFontScale bounds auto-shrink; 0 uses the default of 0.5.
func (l *Label) SetMinFontScale(s float64) {
	l.minFontScale = s
	l.SetNeedsDisplay()
}

// fittedFont returns the font after auto-shrink for the given width.
func (l *Label) fittedFont(w float64) Font {
	f := l.font
	if !l.scalesFont || l.numberOfLines != 1 {
		return f
	}
	minScale := l.minFontScale
	if minScale <= 0 {
		minScale = 0.5
	}
	minSize := f.Size * minScale
	for f.Size > minSize {
		tw, _ := MeasureString(l.text, 0, f, l.lineBreakMode)
		if tw <= w {
			break
		}
		f.Size -= 0.5
	}
	f.Size = max(f.Size, minSize)
	return f
}

func (l *Label) draw(ctx *Context) {
	if l.text == "" || l.textColor == nil {
		return
	}
	w, h := l.Width(), l.Height()
	f := l.fittedFont(w)

	if l.numberOfLines == 1 {
		DrawString(ctx, l.text, Rect{0, 0, w, h}, f, *l.textColor,
			l.alignment, l.lineBreakMode, 1)
		return
	}

	// Multi-line: lay out the full block, then draw each line in its
	// own row so rows that fall outside the bounds are dropped whole.
	lines := layoutLines(l.text, w, f, l.lineBreakMode, l.numberOfLines)
	lineH := f.lineHeight()
	for i, line := range lines {
		yOff := float64(i) * lineH
		if yOff+lineH > h {
			break
		}
		DrawString(ctx, line, Rect{0, yOff, w, lineH}, f, *l.textColor,
			l.alignment, LineBreakClip, 1)
	}
}

// SizeToFit resizes the label to enclose its text. Multi-line labels
// wrap at their current width.
func (l *Label) SizeToFit() {
	if l.text == "" {
		return
	}
	maxWidth := 0.0
	if l.numberOfLines != 1 {
		maxWidth = l.Width()
	}
	tw, th := MeasureString(l.text, maxWidth, l.font, l.lineBreakMode)
	f := l.Frame()
	l.SetFrame(Rect{f.X, f.Y, tw, th})
}
