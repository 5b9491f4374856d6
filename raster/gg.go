package raster

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// ggSurface rasterizes through a software gg.Context that shares its
// backing store with a gg.Pixmap, so Pixels observes every draw.
type ggSurface struct {
	w, h int
	pm   *gg.Pixmap
	dc   *gg.Context
	ctm  [6]float64
	aa   bool
}

// New creates a software-rasterized surface of the given size,
// clamped to at least 1x1. The surface starts fully transparent with
// an identity CTM.
func New(width, height int) Surface {
	width = max(width, 1)
	height = max(height, 1)
	pm := gg.NewPixmap(width, height)
	dc := gg.NewContext(width, height, gg.WithPixmap(pm))
	return &ggSurface{
		w:   width,
		h:   height,
		pm:  pm,
		dc:  dc,
		ctm: [6]float64{1, 0, 0, 1, 0, 0},
		aa:  true,
	}
}

func (s *ggSurface) Width() int      { return s.w }
func (s *ggSurface) Height() int     { return s.h }
func (s *ggSurface) Pixels() []uint8 { return s.pm.Data() }

func rgbaParts(c uint32) (r, g, b, a float64) {
	return float64(c>>24&0xFF) / 255,
		float64(c>>16&0xFF) / 255,
		float64(c>>8&0xFF) / 255,
		float64(c&0xFF) / 255
}

func (s *ggSurface) Fill(color uint32) {
	data := s.pm.Data()
	r := uint8(color >> 24)
	g := uint8(color >> 16)
	b := uint8(color >> 8)
	a := uint8(color)
	for i := 0; i < len(data); i += 4 {
		data[i] = r
		data[i+1] = g
		data[i+2] = b
		data[i+3] = a
	}
}

func (s *ggSurface) FillOver(color uint32) {
	s.FillRect(0, 0, float64(s.w), float64(s.h), color, BlendNormal)
}

// identityCTM reports whether draws currently map 1:1 to device pixels.
func (s *ggSurface) identityCTM() bool {
	return s.ctm == [6]float64{1, 0, 0, 1, 0, 0}
}

func (s *ggSurface) FillRect(x, y, w, h float64, color uint32, blend Blend) {
	if blend == BlendCopy && s.identityCTM() {
		s.copyRect(int(x), int(y), int(w), int(h), color)
		return
	}
	r, g, b, a := rgbaParts(color)
	s.dc.SetRGBA(r, g, b, a)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill() //nolint:errcheck // software renderer cannot fail

	// Copy blend under a transform degrades to source-over; the UI
	// only requests copy for axis-aligned erases.
}

func (s *ggSurface) copyRect(x, y, w, h int, color uint32) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.w), min(y+h, s.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	data := s.pm.Data()
	r := uint8(color >> 24)
	g := uint8(color >> 16)
	b := uint8(color >> 8)
	a := uint8(color)
	for yy := y0; yy < y1; yy++ {
		row := (yy*s.w + x0) * 4
		for xx := x0; xx < x1; xx++ {
			data[row] = r
			data[row+1] = g
			data[row+2] = b
			data[row+3] = a
			row += 4
		}
	}
}

func (s *ggSurface) SetPixel(x, y int, color uint32) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	i := (y*s.w + x) * 4
	data := s.pm.Data()
	data[i] = uint8(color >> 24)
	data[i+1] = uint8(color >> 16)
	data[i+2] = uint8(color >> 8)
	data[i+3] = uint8(color)
}

func (s *ggSurface) GetPixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0
	}
	i := (y*s.w + x) * 4
	data := s.pm.Data()
	return uint32(data[i])<<24 | uint32(data[i+1])<<16 | uint32(data[i+2])<<8 | uint32(data[i+3])
}

// replay rebuilds p on the drawing context's current path.
func (s *ggSurface) replay(p *Path) {
	s.dc.ClearPath()
	for _, seg := range p.segs {
		switch seg.op {
		case opMove:
			s.dc.MoveTo(seg.pts[0][0], seg.pts[0][1])
		case opLine:
			s.dc.LineTo(seg.pts[0][0], seg.pts[0][1])
		case opQuad:
			s.dc.QuadraticTo(seg.pts[0][0], seg.pts[0][1], seg.pts[1][0], seg.pts[1][1])
		case opCubic:
			s.dc.CubicTo(seg.pts[0][0], seg.pts[0][1], seg.pts[1][0], seg.pts[1][1], seg.pts[2][0], seg.pts[2][1])
		case opClose:
			s.dc.ClosePath()
		}
	}
}

func (s *ggSurface) FillPath(p *Path, color uint32, blend Blend) {
	if p.Empty() {
		return
	}
	r, g, b, a := rgbaParts(color)
	s.dc.SetRGBA(r, g, b, a)
	if p.EvenOdd {
		s.dc.SetFillRule(gg.FillRuleEvenOdd)
	} else {
		s.dc.SetFillRule(gg.FillRuleNonZero)
	}
	s.replay(p)
	s.dc.Fill() //nolint:errcheck
	s.dc.SetFillRule(gg.FillRuleNonZero)
}

func (s *ggSurface) StrokePath(p *Path, color uint32, blend Blend) {
	if p.Empty() {
		return
	}
	r, g, b, a := rgbaParts(color)
	s.dc.SetRGBA(r, g, b, a)
	s.dc.SetLineWidth(p.LineWidth)
	s.dc.SetLineCap(gg.LineCap(p.LineCap))
	s.dc.SetLineJoin(gg.LineJoin(p.LineJoin))
	if len(p.Dash) > 0 {
		s.dc.SetDash(p.Dash...)
		s.dc.SetDashOffset(p.DashPhase)
	}
	s.replay(p)
	s.dc.Stroke() //nolint:errcheck
	if len(p.Dash) > 0 {
		s.dc.ClearDash()
	}
}

func (s *ggSurface) AddClip(p *Path) {
	if p.Empty() {
		return
	}
	s.replay(p)
	s.dc.Clip()
}

func (s *ggSurface) ClipRect(x, y, w, h float64) {
	s.dc.ClipRect(x, y, w, h)
}

func (s *ggSurface) SetCTM(a, b, c, d, tx, ty float64) {
	s.ctm = [6]float64{a, b, c, d, tx, ty}
	// gg's Matrix maps x' = A·x + B·y + C, so the column-vector affine
	// (a, b, c, d, tx, ty) lands as rows (a, c, tx / b, d, ty).
	s.dc.SetTransform(gg.Matrix{A: a, B: c, C: tx, D: b, E: d, F: ty})
}

func (s *ggSurface) PushState() { s.dc.Push() }
func (s *ggSurface) PopState()  { s.dc.Pop() }

func (s *ggSurface) SetAntiAlias(enabled bool) { s.aa = enabled }
func (s *ggSurface) AntiAlias() bool           { return s.aa }

func (s *ggSurface) DrawText(f *Font, size float64, str string, x, y float64, anchor uint32, color uint32, spacing float64) float64 {
	if f == nil {
		f = DefaultFont()
	}
	face := f.Face(size)
	w := f.Measure(size, str, spacing)
	ascent, descent, _ := f.Metrics(size)

	switch {
	case anchor&AnchorLeft != 0:
	case anchor&AnchorRight != 0:
		x -= w
	default:
		x -= w / 2
	}
	var baseline float64
	switch {
	case anchor&AnchorTop != 0:
		baseline = y + ascent
	case anchor&AnchorBottom != 0:
		baseline = y - descent
	default:
		baseline = y - (ascent+descent)/2 + ascent
	}

	r, g, b, a := rgbaParts(color)
	s.dc.SetRGBA(r, g, b, a)
	s.dc.SetFont(face)
	if spacing == 0 {
		s.dc.DrawString(str, x, baseline)
		return w
	}
	// Tracking: place each rune individually.
	pen := x
	for _, rn := range str {
		g := string(rn)
		s.dc.DrawString(g, pen, baseline)
		gw, _ := text.Measure(g, face)
		pen += gw + spacing
	}
	return w
}

func (s *ggSurface) Blit(src []uint8, srcW, srcH, dstX, dstY int, blend Blend) {
	data := s.pm.Data()
	for sy := 0; sy < srcH; sy++ {
		dy := dstY + sy
		if dy < 0 || dy >= s.h {
			continue
		}
		for sx := 0; sx < srcW; sx++ {
			dx := dstX + sx
			if dx < 0 || dx >= s.w {
				continue
			}
			si := (sy*srcW + sx) * 4
			di := (dy*s.w + dx) * 4
			if blend == BlendCopy {
				copy(data[di:di+4], src[si:si+4])
				continue
			}
			sa := uint32(src[si+3])
			if sa == 0 {
				continue
			}
			if sa == 255 {
				copy(data[di:di+4], src[si:si+4])
				continue
			}
			inv := 255 - sa
			for k := 0; k < 3; k++ {
				data[di+k] = uint8((uint32(src[si+k])*sa + uint32(data[di+k])*inv) / 255)
			}
			da := uint32(data[di+3])
			data[di+3] = uint8(sa + da*inv/255)
		}
	}
}

func (s *ggSurface) Scroll(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	data := s.pm.Data()
	rowLen := s.w * 4
	// Vertical: copy rows in an order that avoids overwriting sources.
	if dy > 0 {
		for y := s.h - 1; y >= dy; y-- {
			copy(data[y*rowLen:(y+1)*rowLen], data[(y-dy)*rowLen:(y-dy+1)*rowLen])
		}
	} else if dy < 0 {
		for y := 0; y < s.h+dy; y++ {
			copy(data[y*rowLen:(y+1)*rowLen], data[(y-dy)*rowLen:(y-dy+1)*rowLen])
		}
	}
	if dx == 0 {
		return
	}
	shift := dx * 4
	for y := 0; y < s.h; y++ {
		row := data[y*rowLen : (y+1)*rowLen]
		if shift > 0 {
			copy(row[shift:], row[:rowLen-shift])
		} else {
			copy(row[:rowLen+shift], row[-shift:])
		}
	}
}

func (s *ggSurface) AlignChroma(x, y, w, h int) {
	x1 := max(x, 0) &^ 1
	x2 := min(x+w, s.w) &^ 1
	y1 := max(y, 0)
	y2 := min(y+h, s.h)
	const fade = 0.2

	data := s.pm.Data()
	for iy := y1; iy < y2; iy++ {
		for ix := x1; ix < x2; ix += 2 {
			i1 := (iy*s.w + ix) * 4
			i2 := i1 + 4
			a1 := data[i1+3]
			a2 := data[i2+3]
			// Only pairs with exactly one visible pixel need fixing.
			if (a1 == 0) == (a2 == 0) {
				continue
			}
			vi, ti := i1, i2
			if a1 == 0 {
				vi, ti = i2, i1
			}
			data[ti] = data[vi]
			data[ti+1] = data[vi+1]
			data[ti+2] = data[vi+2]
			data[ti+3] = uint8(float64(data[vi+3]) * fade)
		}
	}
}

func (s *ggSurface) Checkerboard(size int) {
	if size <= 0 {
		size = 8
	}
	const (
		light uint32 = 0xFFFFFFFF
		dark  uint32 = 0xCCCCCCFF
	)
	data := s.pm.Data()
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			c := light
			if (x/size+y/size)%2 == 1 {
				c = dark
			}
			i := (y*s.w + x) * 4
			data[i] = uint8(c >> 24)
			data[i+1] = uint8(c >> 16)
			data[i+2] = uint8(c >> 8)
			data[i+3] = uint8(c)
		}
	}
}
