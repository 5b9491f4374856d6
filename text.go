package pocketui

import (
	"strings"

	"github.com/pocketui/pocketui/raster"
)

// Font names a typeface and size. The name "<system>" (or "") resolves
// to the built-in regular font, "<system-bold>" to the built-in bold
// one; other names go through the raster font registry.
type Font struct {
	Name string
	Size float64
}

// SystemFont returns the default system font at the given size.
func SystemFont(size float64) Font { return Font{Name: "<system>", Size: size} }

// BoldSystemFont returns the default bold font at the given size.
func BoldSystemFont(size float64) Font { return Font{Name: "<system-bold>", Size: size} }

func (f Font) resolve() *raster.Font { return raster.FindFont(f.Name) }

func (f Font) measure(s string) float64 {
	return f.resolve().Measure(f.Size, s, 0)
}

func (f Font) lineHeight() float64 {
	_, _, h := f.resolve().Metrics(f.Size)
	return h
}

// MeasureString returns the dimensions of s as drawn by DrawString.
// With maxWidth 0 the text is a single unconstrained line; otherwise
// it wraps with the given line break mode.
func MeasureString(s string, maxWidth float64, font Font, mode LineBreakMode) (w, h float64) {
	lineH := font.lineHeight()
	if maxWidth <= 0 {
		return font.measure(s), lineH
	}
	lines := layoutLines(s, maxWidth, font, mode, 0)
	var maxW float64
	for _, line := range lines {
		if lw := font.measure(line); lw > maxW {
			maxW = lw
		}
	}
	return maxW, lineH * float64(len(lines))
}

// DrawString draws s inside rect in view-local coordinates, laid out
// with the given alignment, line break mode and line limit (0 = no
// limit). An unparseable color falls back to the context's current
// color. The line block is centered vertically; lines that would land
// outside the rect are skipped.
func DrawString(ctx *Context, s string, rect Rect, font Font, col any, align Alignment, mode LineBreakMode, numberOfLines int) {
	color, ok := ParseColor(col)
	if !ok {
		color = ctx.color
	}
	if ctx.alpha != 1 {
		color.A *= ctx.alpha
	}

	// Text runs outside the rasterizer CTM; fold origin and transform
	// into the anchor position by hand.
	m := ctx.ctm
	x := m.A*rect.X + m.C*rect.Y + m.TX + ctx.origin.X
	y := m.B*rect.X + m.D*rect.Y + m.TY + ctx.origin.Y

	rf := font.resolve()
	lines := layoutLines(s, rect.Width, font, mode, numberOfLines)
	lineH := font.lineHeight()
	totalH := lineH * float64(len(lines))
	startY := y + (rect.Height-totalH)/2

	anchor := alignmentAnchor(align)
	for i, line := range lines {
		var tx float64
		switch align {
		case AlignRight:
			tx = x + rect.Width
		case AlignCenter:
			tx = x + rect.Width/2
		default:
			tx = x
		}
		ty := startY + float64(i)*lineH + lineH/2
		if ty < y || ty >= y+rect.Height {
			continue
		}
		ctx.surface.DrawText(rf, font.Size, line, tx, ty, anchor, color.Packed(), 0)
	}
}

func alignmentAnchor(align Alignment) uint32 {
	switch align {
	case AlignRight:
		return raster.AnchorRight
	case AlignCenter:
		return raster.AnchorCenter
	default:
		return raster.AnchorLeft
	}
}

// layoutLines breaks s into drawable lines honoring mode and maxLines
// (0 = unlimited).
func layoutLines(s string, w float64, font Font, mode LineBreakMode, maxLines int) []string {
	switch mode {
	case LineBreakTruncateTail, LineBreakTruncateHead, LineBreakTruncateMiddle, LineBreakClip:
		if maxLines <= 1 {
			switch mode {
			case LineBreakTruncateTail:
				return []string{truncateTail(s, w, font)}
			case LineBreakTruncateHead:
				return []string{truncateHead(s, w, font)}
			case LineBreakTruncateMiddle:
				return []string{truncateMiddle(s, w, font)}
			default:
				return []string{s}
			}
		}
	}

	var lines []string
	if mode == LineBreakCharWrap {
		lines = wrapChar(s, w, font)
	} else {
		lines = wrapWord(s, w, font)
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		if mode != LineBreakClip {
			lines[len(lines)-1] = truncateTail(lines[len(lines)-1], w, font)
		}
	}
	return lines
}

func truncateTail(s string, maxW float64, font Font) string {
	if font.measure(s) <= maxW {
		return s
	}
	const ellipsis = "..."
	ew := font.measure(ellipsis)
	r := []rune(s)
	for i := len(r); i > 0; i-- {
		if font.measure(string(r[:i]))+ew <= maxW {
			return string(r[:i]) + ellipsis
		}
	}
	return ellipsis
}

func truncateHead(s string, maxW float64, font Font) string {
	if font.measure(s) <= maxW {
		return s
	}
	const ellipsis = "…"
	ew := font.measure(ellipsis)
	r := []rune(s)
	for i := 0; i < len(r); i++ {
		if font.measure(string(r[i:]))+ew <= maxW {
			return ellipsis + string(r[i:])
		}
	}
	return ellipsis
}

func truncateMiddle(s string, maxW float64, font Font) string {
	if font.measure(s) <= maxW {
		return s
	}
	const ellipsis = "…"
	r := []rune(s)
	n := len(r)
	for cut := 1; cut < n; cut++ {
		left := n/2 - (cut+1)/2
		right := n/2 + cut/2
		if left < 0 {
			break
		}
		candidate := string(r[:left]) + ellipsis + string(r[right:])
		if font.measure(candidate) <= maxW {
			return candidate
		}
	}
	return ellipsis
}

func wrapWord(s string, maxW float64, font Font) []string {
	words := strings.Split(s, " ")
	var lines []string
	current := ""
	for _, word := range words {
		trial := word
		if current != "" {
			trial = current + " " + word
		}
		if font.measure(trial) <= maxW || current == "" {
			current = trial
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func wrapChar(s string, maxW float64, font Font) []string {
	var lines []string
	current := ""
	for _, ch := range s {
		trial := current + string(ch)
		if font.measure(trial) <= maxW || current == "" {
			current = trial
		} else {
			lines = append(lines, current)
			current = string(ch)
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
