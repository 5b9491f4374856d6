package pocketui

// ScreenOrigin computes the view's content origin in screen
// coordinates by walking the superview chain: each ancestor
// contributes frame − bounds, the bounds origin acting as a scroll
// offset.
func ScreenOrigin(v *View) (x, y float64) {
	x = v.frame.X
	y = v.frame.Y
	for sv := v.superview; sv != nil; sv = sv.superview {
		x += sv.frame.X - sv.bounds.X
		y += sv.frame.Y - sv.bounds.Y
	}
	return x, y
}

// ConvertPoint converts a point between view coordinate systems. A nil
// from treats p as screen coordinates; a nil to returns screen
// coordinates.
func ConvertPoint(p Point, from, to *View) Point {
	if from != nil {
		ox, oy := ScreenOrigin(from)
		p.X += ox
		p.Y += oy
	}
	if to != nil {
		tx, ty := ScreenOrigin(to)
		p.X -= tx
		p.Y -= ty
	}
	return p
}

// ConvertRect converts a rectangle between view coordinate systems,
// preserving its size.
func ConvertRect(r Rect, from, to *View) Rect {
	o := ConvertPoint(r.Origin(), from, to)
	return Rect{o.X, o.Y, r.Width, r.Height}
}

// AnyDirty reports whether v or any descendant needs redrawing.
// Backends use it to skip presenting unchanged frames.
func AnyDirty(v *View) bool {
	if v.needsDisplay {
		return true
	}
	for _, sv := range v.subviews {
		if AnyDirty(sv) {
			return true
		}
	}
	return false
}

// Render paints v and its subviews into the context's surface, in
// z-order. Hidden subtrees are skipped. Each painted view's dirty flag
// clears.
func Render(v *View, ctx *Context) {
	v.needsDisplay = false
	if v.hidden {
		return
	}

	ox, oy := ScreenOrigin(v)
	fw, fh := v.frame.Width, v.frame.Height
	cr := v.cornerRadius

	ctx.WithGState(func() {
		ctx.SetOrigin(ox, oy)
		ctx.SetAlpha(v.alpha)

		if t := v.transform; t != nil && !t.IsIdentity() {
			// Transform about the view's own center.
			cx, cy := fw/2, fh/2
			ctx.ConcatCTM(Translation(cx, cy).Concat(*t).Concat(Translation(-cx, -cy)))
		}

		if bg := v.backgroundColor; bg != nil && bg.A > 0 {
			ctx.SetColor(*bg)
			if cr > 0 {
				NewPathRoundedRect(0, 0, fw, fh, cr).Fill(ctx)
			} else {
				ctx.FillRect(0, 0, fw, fh)
			}
		}

		if v.borderWidth > 0 && v.borderColor != nil {
			ctx.SetColor(*v.borderColor)
			var p *Path
			if cr > 0 {
				p = NewPathRoundedRect(0, 0, fw, fh, cr)
			} else {
				p = NewPathRect(0, 0, fw, fh)
			}
			p.SetLineWidth(v.borderWidth)
			p.Stroke(ctx)
		}

		if v.contentMode == ContentRedraw {
			v.draw(ctx)
		} else if v.contentDrawW <= 0 || v.contentDrawH <= 0 {
			// First paint records the size the content was drawn at.
			v.contentDrawW = fw
			v.contentDrawH = fh
			v.draw(ctx)
		} else {
			ctx.WithGState(func() {
				applyContentModeTransform(ctx, v.contentMode, v.contentDrawW, v.contentDrawH, fw, fh)
				v.draw(ctx)
			})
		}
	})

	for _, sv := range v.subviews {
		Render(sv, ctx)
	}
}

// applyContentModeTransform pre-transforms the CTM so content recorded
// at (cw, ch) lands inside the current frame (fw, fh) per mode. It
// does nothing when any dimension is non-positive.
func applyContentModeTransform(ctx *Context, mode ContentMode, cw, ch, fw, fh float64) {
	if cw <= 0 || ch <= 0 || fw <= 0 || fh <= 0 {
		return
	}
	switch mode {
	case ContentScaleToFill:
		ctx.ConcatCTM(Scale(fw/cw, fh/ch))
	case ContentScaleAspectFit:
		s := min(fw/cw, fh/ch)
		ctx.ConcatCTM(Translation((fw-cw*s)/2, (fh-ch*s)/2))
		ctx.ConcatCTM(Scale(s, s))
	case ContentScaleAspectFill:
		s := max(fw/cw, fh/ch)
		ctx.ConcatCTM(Translation((fw-cw*s)/2, (fh-ch*s)/2))
		ctx.ConcatCTM(Scale(s, s))
	case ContentCenter:
		ctx.ConcatCTM(Translation((fw-cw)/2, (fh-ch)/2))
	case ContentTop:
		ctx.ConcatCTM(Translation((fw-cw)/2, 0))
	case ContentBottom:
		ctx.ConcatCTM(Translation((fw-cw)/2, fh-ch))
	case ContentLeft:
		ctx.ConcatCTM(Translation(0, (fh-ch)/2))
	case ContentRight:
		ctx.ConcatCTM(Translation(fw-cw, (fh-ch)/2))
	case ContentTopLeft:
		// Origin already at top-left.
	case ContentTopRight:
		ctx.ConcatCTM(Translation(fw-cw, 0))
	case ContentBottomLeft:
		ctx.ConcatCTM(Translation(0, fh-ch))
	case ContentBottomRight:
		ctx.ConcatCTM(Translation(fw-cw, fh-ch))
	}
}
