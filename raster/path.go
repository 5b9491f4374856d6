package raster

import "math"

type segOp uint8

const (
	opMove segOp = iota
	opLine
	opQuad
	opCubic
	opClose
)

type segment struct {
	op segOp
	// pts holds the operands: 1 point for move/line, 2 for quad
	// (control, end), 3 for cubic (c1, c2, end), 0 for close.
	pts [3][2]float64
}

// Path is a sequence of straight and curved segments plus the stroke
// parameters used when the path is stroked. The zero value is an empty
// path with a 1px butt/miter stroke.
type Path struct {
	segs []segment

	LineWidth float64
	LineCap   uint8
	LineJoin  uint8
	Dash      []float64
	DashPhase float64
	// EvenOdd selects the even-odd fill rule instead of non-zero.
	EvenOdd bool

	cx, cy float64 // current point
	sx, sy float64 // subpath start
	open   bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{LineWidth: 1}
}

// RectPath returns a closed rectangular path.
func RectPath(x, y, w, h float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// kappa approximates a quarter circle with one cubic segment.
const kappa = 0.5522847498307936

// OvalPath returns a closed ellipse inscribed in the given rectangle.
func OvalPath(x, y, w, h float64) *Path {
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	ox, oy := rx*kappa, ry*kappa
	p := NewPath()
	p.MoveTo(cx, cy-ry)
	p.CurveTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.CurveTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CurveTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CurveTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.Close()
	return p
}

// RoundedRectPath returns a closed rectangle with corner radius r. The
// radius is clamped to half the shorter side.
func RoundedRectPath(x, y, w, h, r float64) *Path {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return RectPath(x, y, w, h)
	}
	k := r * kappa
	p := NewPath()
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CurveTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CurveTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CurveTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CurveTo(x, y+r-k, x+r-k, y, x+r, y)
	p.Close()
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, segment{op: opMove, pts: [3][2]float64{{x, y}}})
	p.cx, p.cy = x, y
	p.sx, p.sy = x, y
	p.open = true
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	p.segs = append(p.segs, segment{op: opLine, pts: [3][2]float64{{x, y}}})
	p.cx, p.cy = x, y
}

// QuadCurveTo appends a quadratic Bézier with control point (cpx, cpy).
func (p *Path) QuadCurveTo(cpx, cpy, x, y float64) {
	if !p.open {
		p.MoveTo(p.cx, p.cy)
	}
	p.segs = append(p.segs, segment{op: opQuad, pts: [3][2]float64{{cpx, cpy}, {x, y}}})
	p.cx, p.cy = x, y
}

// CurveTo appends a cubic Bézier with control points (c1x, c1y) and
// (c2x, c2y).
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.open {
		p.MoveTo(p.cx, p.cy)
	}
	p.segs = append(p.segs, segment{op: opCubic, pts: [3][2]float64{{c1x, c1y}, {c2x, c2y}, {x, y}}})
	p.cx, p.cy = x, y
}

// AddArc appends a circular arc around (cx, cy) with radius r from
// start to end (radians). When the path already has a current point, a
// line connects it to the arc's start. Angles advance clockwise on
// screen unless clockwise is false.
func (p *Path) AddArc(cx, cy, r, start, end float64, clockwise bool) {
	sweep := end - start
	if clockwise && sweep < 0 {
		sweep += 2 * math.Pi
	} else if !clockwise && sweep > 0 {
		sweep -= 2 * math.Pi
	}
	x0 := cx + r*math.Cos(start)
	y0 := cy + r*math.Sin(start)
	if p.open {
		p.LineTo(x0, y0)
	} else {
		p.MoveTo(x0, y0)
	}
	// Split into quarter-turn cubic segments.
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n == 0 {
		return
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a0 := start
	for i := 0; i < n; i++ {
		a1 := a0 + step
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		p.CurveTo(
			cx+r*(c0-k*s0), cy+r*(s0+k*c0),
			cx+r*(c1+k*s1), cy+r*(s1-k*c1),
			cx+r*c1, cy+r*s1,
		)
		a0 = a1
	}
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.segs = append(p.segs, segment{op: opClose})
	p.cx, p.cy = p.sx, p.sy
	p.open = false
}

// Append copies all segments of src onto p. Stroke parameters of p are
// unchanged.
func (p *Path) Append(src *Path) {
	p.segs = append(p.segs, src.segs...)
	p.cx, p.cy = src.cx, src.cy
	p.sx, p.sy = src.sx, src.sy
	p.open = src.open
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool { return len(p.segs) == 0 }

// CurrentPoint returns the path's current point.
func (p *Path) CurrentPoint() (x, y float64) { return p.cx, p.cy }

// curveSteps controls curve flattening for bounds and hit tests.
const curveSteps = 16

// flatten converts the path to polylines, one per subpath.
func (p *Path) flatten() [][][2]float64 {
	var out [][][2]float64
	var cur [][2]float64
	var cx, cy float64
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, s := range p.segs {
		switch s.op {
		case opMove:
			flush()
			cx, cy = s.pts[0][0], s.pts[0][1]
			cur = append(cur, [2]float64{cx, cy})
		case opLine:
			cx, cy = s.pts[0][0], s.pts[0][1]
			cur = append(cur, [2]float64{cx, cy})
		case opQuad:
			x0, y0 := cx, cy
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				mt := 1 - t
				x := mt*mt*x0 + 2*mt*t*s.pts[0][0] + t*t*s.pts[1][0]
				y := mt*mt*y0 + 2*mt*t*s.pts[0][1] + t*t*s.pts[1][1]
				cur = append(cur, [2]float64{x, y})
			}
			cx, cy = s.pts[1][0], s.pts[1][1]
		case opCubic:
			x0, y0 := cx, cy
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				mt := 1 - t
				x := mt*mt*mt*x0 + 3*mt*mt*t*s.pts[0][0] + 3*mt*t*t*s.pts[1][0] + t*t*t*s.pts[2][0]
				y := mt*mt*mt*y0 + 3*mt*mt*t*s.pts[0][1] + 3*mt*t*t*s.pts[1][1] + t*t*t*s.pts[2][1]
				cur = append(cur, [2]float64{x, y})
			}
			cx, cy = s.pts[2][0], s.pts[2][1]
		case opClose:
			if len(cur) > 0 {
				cur = append(cur, cur[0])
			}
		}
	}
	flush()
	return out
}

// Bounds returns the path's bounding rectangle. ok is false for an
// empty path.
func (p *Path) Bounds() (x, y, w, h float64, ok bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sub := range p.flatten() {
		for _, pt := range sub {
			minX = math.Min(minX, pt[0])
			minY = math.Min(minY, pt[1])
			maxX = math.Max(maxX, pt[0])
			maxY = math.Max(maxY, pt[1])
		}
	}
	if minX > maxX {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX - minX, maxY - minY, true
}

// HitTest reports whether (x, y) lies inside the filled path, honoring
// the path's fill rule. Open subpaths are treated as implicitly closed.
func (p *Path) HitTest(x, y float64) bool {
	winding := 0
	crossings := 0
	for _, sub := range p.flatten() {
		n := len(sub)
		for i := 0; i < n; i++ {
			x0, y0 := sub[i][0], sub[i][1]
			x1, y1 := sub[(i+1)%n][0], sub[(i+1)%n][1]
			if (y0 <= y) != (y1 <= y) {
				ix := x0 + (y-y0)/(y1-y0)*(x1-x0)
				if ix > x {
					crossings++
					if y1 > y0 {
						winding++
					} else {
						winding--
					}
				}
			}
		}
	}
	if p.EvenOdd {
		return crossings%2 == 1
	}
	return winding != 0
}
