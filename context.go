package pocketui

import "github.com/pocketui/pocketui/raster"

// Shadow describes a drop shadow applied to subsequent fills.
type Shadow struct {
	Color   Color
	OffsetX float64
	OffsetY float64
	Blur    float64
}

type gstate struct {
	color  Color
	blend  BlendMode
	alpha  float64
	origin Point
	shadow *Shadow
	ctm    Transform
}

// Context is the drawing state threaded through the render pass and
// into view draw hooks: current color, blend mode, alpha multiplier,
// shadow, screen-space origin, CTM, and a save/restore stack.
//
// The transform handed to the rasterizer is always
// translate(origin) ∘ CTM, so draw hooks emit view-local coordinates
// without knowing their screen position.
//
// A Context belongs to one window's render loop; it is not safe for
// concurrent use.
type Context struct {
	surface raster.Surface

	color  Color
	blend  BlendMode
	alpha  float64
	origin Point
	shadow *Shadow
	ctm    Transform

	stack []gstate
}

// NewContext returns a drawing context targeting surface, with black
// color, normal blending, identity CTM and zero origin.
func NewContext(surface raster.Surface) *Context {
	c := &Context{
		surface: surface,
		color:   Black,
		alpha:   1,
		ctm:     Identity(),
	}
	c.syncCTM()
	return c
}

// Surface returns the rasterization target.
func (c *Context) Surface() raster.Surface { return c.surface }

// SetColor sets the current fill and stroke color from any ParseColor
// form. Unparseable input falls back to black.
func (c *Context) SetColor(col any) {
	if parsed, ok := ParseColor(col); ok {
		c.color = parsed
	} else {
		c.color = Black
	}
}

// Color returns the current drawing color.
func (c *Context) Color() Color { return c.color }

// SetBlendMode sets the compositing mode for subsequent drawing.
func (c *Context) SetBlendMode(m BlendMode) { c.blend = m }

// BlendMode returns the current compositing mode.
func (c *Context) BlendMode() BlendMode { return c.blend }

// SetAlpha sets a global alpha multiplier, clamped to [0, 1], applied
// to all subsequent drawing. The render pass uses it to apply a view's
// alpha to everything the view paints.
func (c *Context) SetAlpha(a float64) { c.alpha = clamp01(a) }

// Alpha returns the global alpha multiplier.
func (c *Context) Alpha() float64 { return c.alpha }

// SetShadow configures a drop shadow for subsequent fills. An
// unparseable color clears the shadow.
func (c *Context) SetShadow(col any, dx, dy, blur float64) {
	if parsed, ok := ParseColor(col); ok {
		c.shadow = &Shadow{Color: parsed, OffsetX: dx, OffsetY: dy, Blur: blur}
	} else {
		c.shadow = nil
	}
}

// SetOrigin sets the screen-space origin folded into the surface
// transform. The render pass calls this with each view's absolute
// position.
func (c *Context) SetOrigin(x, y float64) {
	c.origin = Point{x, y}
	c.syncCTM()
}

// Origin returns the current screen-space origin.
func (c *Context) Origin() Point { return c.origin }

// ConcatCTM right-multiplies the CTM by t: NewCTM = CTM ∘ t.
func (c *Context) ConcatCTM(t Transform) {
	c.ctm = c.ctm.Concat(t)
	c.syncCTM()
}

// CTM returns the current transform matrix, excluding the origin
// translation.
func (c *Context) CTM() Transform { return c.ctm }

// syncCTM pushes translate(origin) ∘ CTM to the rasterizer, so path
// coordinates stay view-local while the surface lands them on screen.
func (c *Context) syncCTM() {
	m := c.ctm
	c.surface.SetCTM(m.A, m.B, m.C, m.D, m.TX+c.origin.X, m.TY+c.origin.Y)
}

// SaveGState pushes a snapshot of {color, blend, alpha, origin,
// shadow, CTM} and the surface clip. Every save must be paired with a
// RestoreGState before control returns to the render pass.
func (c *Context) SaveGState() {
	c.stack = append(c.stack, gstate{
		color:  c.color,
		blend:  c.blend,
		alpha:  c.alpha,
		origin: c.origin,
		shadow: c.shadow,
		ctm:    c.ctm,
	})
	c.surface.PushState()
}

// RestoreGState pops the most recent snapshot and re-syncs the CTM to
// the rasterizer. Unbalanced restores are no-ops.
func (c *Context) RestoreGState() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.color = s.color
	c.blend = s.blend
	c.alpha = s.alpha
	c.origin = s.origin
	c.shadow = s.shadow
	c.ctm = s.ctm
	c.surface.PopState()
	c.syncCTM()
}

// WithGState runs fn inside a balanced save/restore scope.
func (c *Context) WithGState(fn func()) {
	c.SaveGState()
	defer c.RestoreGState()
	fn()
}

// packed returns the current color as 0xRRGGBBAA with the global alpha
// applied.
func (c *Context) packed() uint32 {
	col := c.color
	if c.alpha != 1 {
		col.A *= c.alpha
	}
	return col.Packed()
}

func (c *Context) rasterBlend() raster.Blend {
	if c.blend == BlendCopy {
		return raster.BlendCopy
	}
	return raster.BlendNormal
}

// FillRect fills a rectangle with the current color.
func (c *Context) FillRect(x, y, w, h float64) {
	NewPathRect(x, y, w, h).Fill(c)
}

// StrokeLine strokes a line segment with the current color.
func (c *Context) StrokeLine(x0, y0, x1, y1, width float64) {
	p := NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	p.SetLineWidth(width)
	p.Stroke(c)
}
