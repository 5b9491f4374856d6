package pocketui

import "github.com/pocketui/pocketui/raster"

// Path is a bezier path drawable through a Context. Coordinates are
// view-local; the context's origin and CTM position them on screen.
type Path struct {
	rp raster.Path
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{rp: *raster.NewPath()}
}

// NewPathRect returns a closed rectangular path.
func NewPathRect(x, y, w, h float64) *Path {
	return &Path{rp: *raster.RectPath(x, y, w, h)}
}

// NewPathOval returns an ellipse inscribed in the given rectangle.
func NewPathOval(x, y, w, h float64) *Path {
	return &Path{rp: *raster.OvalPath(x, y, w, h)}
}

// NewPathRoundedRect returns a rectangle with rounded corners.
func NewPathRoundedRect(x, y, w, h, radius float64) *Path {
	return &Path{rp: *raster.RoundedRectPath(x, y, w, h, radius)}
}

// MoveTo begins a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) { p.rp.MoveTo(x, y) }

// LineTo appends a line segment to (x, y).
func (p *Path) LineTo(x, y float64) { p.rp.LineTo(x, y) }

// AddCurve appends a cubic Bézier curve ending at (x, y) with control
// points (cp1x, cp1y) and (cp2x, cp2y).
func (p *Path) AddCurve(x, y, cp1x, cp1y, cp2x, cp2y float64) {
	p.rp.CurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

// AddQuadCurve appends a quadratic Bézier curve ending at (x, y) with
// control point (cpx, cpy).
func (p *Path) AddQuadCurve(x, y, cpx, cpy float64) {
	p.rp.QuadCurveTo(cpx, cpy, x, y)
}

// AddArc appends a circular arc around (cx, cy).
func (p *Path) AddArc(cx, cy, r, start, end float64, clockwise bool) {
	p.rp.AddArc(cx, cy, r, start, end, clockwise)
}

// Close closes the current subpath.
func (p *Path) Close() { p.rp.Close() }

// AppendPath appends all segments of other.
func (p *Path) AppendPath(other *Path) { p.rp.Append(&other.rp) }

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool { return p.rp.Empty() }

// Bounds returns the path's bounding rectangle, the zero Rect when
// empty.
func (p *Path) Bounds() Rect {
	x, y, w, h, ok := p.rp.Bounds()
	if !ok {
		return Rect{}
	}
	return Rect{x, y, w, h}
}

// HitTest reports whether the point lies inside the filled path.
func (p *Path) HitTest(x, y float64) bool { return p.rp.HitTest(x, y) }

// LineWidth returns the stroke width.
func (p *Path) LineWidth() float64 { return p.rp.LineWidth }

// SetLineWidth sets the stroke width.
func (p *Path) SetLineWidth(w float64) { p.rp.LineWidth = w }

// SetLineCap sets the stroke cap style (LineCapButt, LineCapRound,
// LineCapSquare).
func (p *Path) SetLineCap(style int) { p.rp.LineCap = uint8(style) }

// SetLineJoin sets the stroke join style (LineJoinMiter,
// LineJoinRound, LineJoinBevel).
func (p *Path) SetLineJoin(join int) { p.rp.LineJoin = uint8(join) }

// SetLineDash sets a dashed stroke pattern; an empty sequence clears
// it.
func (p *Path) SetLineDash(sequence []float64, phase float64) {
	if len(sequence) == 0 {
		p.rp.Dash = nil
		p.rp.DashPhase = 0
		return
	}
	p.rp.Dash = append([]float64(nil), sequence...)
	p.rp.DashPhase = phase
}

// SetEvenOddFillRule selects the even-odd fill rule instead of
// non-zero winding.
func (p *Path) SetEvenOddFillRule(eo bool) { p.rp.EvenOdd = eo }

// Fill paints the path's interior with the context's current color.
// A configured shadow is painted first, offset beneath the fill.
func (p *Path) Fill(ctx *Context) {
	if p.Empty() {
		return
	}
	if s := ctx.shadow; s != nil && s.Color.A > 0 {
		sc := s.Color
		sc.A *= ctx.alpha
		ctx.WithGState(func() {
			ctx.ConcatCTM(Translation(s.OffsetX, s.OffsetY))
			ctx.surface.FillPath(&p.rp, sc.Packed(), ctx.rasterBlend())
		})
	}
	ctx.surface.FillPath(&p.rp, ctx.packed(), ctx.rasterBlend())
}

// Stroke paints the path's outline with the context's current color
// and the path's stroke settings.
func (p *Path) Stroke(ctx *Context) {
	if p.Empty() {
		return
	}
	ctx.surface.StrokePath(&p.rp, ctx.packed(), ctx.rasterBlend())
}

// AddClip intersects the context's clip region with the path's filled
// area. The clip restores at the end of the enclosing GState scope.
func (p *Path) AddClip(ctx *Context) {
	if p.Empty() {
		return
	}
	ctx.surface.AddClip(&p.rp)
}
