// Package raster provides the pixel surface that pocketui renders into.
//
// A Surface is an RGBA framebuffer with path filling and stroking, clipping,
// an affine current transformation matrix, and text drawing. The reference
// implementation rasterizes in software through github.com/gogpu/gg and
// exposes the raw pixel buffer for presentation by a windowing backend.
package raster

// Blend selects how source pixels combine with the destination.
type Blend uint8

const (
	// BlendNormal is standard source-over alpha compositing.
	BlendNormal Blend = 0
	// BlendCopy replaces destination pixels, alpha included.
	BlendCopy Blend = 1
)

// Anchor positions text relative to its (x, y) reference point. Bits
// combine, e.g. AnchorTop|AnchorLeft.
const (
	AnchorCenter uint32 = 0
	AnchorTop    uint32 = 1
	AnchorBottom uint32 = 2
	AnchorLeft   uint32 = 4
	AnchorRight  uint32 = 8
)

// Line cap styles.
const (
	LineCapButt uint8 = iota
	LineCapRound
	LineCapSquare
)

// Line join styles.
const (
	LineJoinMiter uint8 = iota
	LineJoinRound
	LineJoinBevel
)

// Surface is a drawable RGBA framebuffer. Colors are packed 0xRRGGBBAA.
// Path coordinates pass through the surface CTM; clip regions and Blit
// destinations are in device pixels.
//
// Implementations are not safe for concurrent use; a surface belongs to
// the window loop that renders into it.
type Surface interface {
	Width() int
	Height() int

	// Pixels returns the live RGBA backing store, 4 bytes per pixel in
	// row-major order. Mutations are visible to subsequent draws.
	Pixels() []uint8

	// Fill replaces every pixel with color. FillOver composites instead.
	Fill(color uint32)
	FillOver(color uint32)

	// FillRect fills an axis-aligned rectangle through the CTM.
	FillRect(x, y, w, h float64, color uint32, blend Blend)

	SetPixel(x, y int, color uint32)
	GetPixel(x, y int) uint32

	// FillPath fills p with color. The path's EvenOdd flag selects the
	// fill rule. StrokePath strokes p using its line width, cap, join
	// and dash settings.
	FillPath(p *Path, color uint32, blend Blend)
	StrokePath(p *Path, color uint32, blend Blend)

	// AddClip intersects the clip region with the filled area of p.
	// ClipRect intersects with an axis-aligned rectangle. Clips restore
	// on PopState.
	AddClip(p *Path)
	ClipRect(x, y, w, h float64)

	// SetCTM replaces the current transformation matrix. Points map as
	// x' = a·x + c·y + tx, y' = b·x + d·y + ty.
	SetCTM(a, b, c, d, tx, ty float64)

	// PushState saves the CTM and clip region; PopState restores them.
	PushState()
	PopState()

	SetAntiAlias(enabled bool)
	AntiAlias() bool

	// DrawText draws a single line of text and returns its advance
	// width in pixels. (x, y) is interpreted per anchor; spacing is
	// extra per-character tracking.
	DrawText(f *Font, size float64, s string, x, y float64, anchor uint32, color uint32, spacing float64) float64

	// Blit copies an RGBA pixel block to (dstX, dstY) in device space.
	Blit(src []uint8, srcW, srcH, dstX, dstY int, blend Blend)

	// Scroll shifts the framebuffer contents by (dx, dy) device pixels.
	// Exposed areas keep their previous contents.
	Scroll(dx, dy int)

	// Checkerboard fills the surface with a gray checker pattern of the
	// given cell size. Used by picture widgets to show transparency.
	Checkerboard(size int)

	// AlignChroma conditions the region for YUV 4:2:2 scan-out, where
	// horizontal pixel pairs share chroma. When exactly one pixel of an
	// even-aligned pair is visible, its color bleeds into the
	// transparent neighbor at low alpha so the shared chroma sample
	// stays correct.
	AlignChroma(x, y, w, h int)
}
