package pocketui

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/pocketui/pocketui/raster"
)

// ImageContext is an offscreen drawing destination: a software surface
// with its own graphics context, independent of any window. Tests and
// screenshot tooling render into one and read the pixels back.
type ImageContext struct {
	surface raster.Surface
	ctx     *Context
}

// NewImageContext returns a transparent offscreen context of the given
// size, clamped to at least 1x1.
func NewImageContext(width, height int) *ImageContext {
	s := raster.New(width, height)
	s.SetAntiAlias(antialias)
	return &ImageContext{surface: s, ctx: NewContext(s)}
}

// Context returns the drawing context.
func (ic *ImageContext) Context() *Context { return ic.ctx }

// Surface returns the backing surface for direct pixel access.
func (ic *ImageContext) Surface() raster.Surface { return ic.surface }

// Image copies the surface into a straight-alpha NRGBA image.
func (ic *ImageContext) Image() *image.NRGBA {
	w, h := ic.surface.Width(), ic.surface.Height()
	pixels := ic.surface.Pixels()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// WritePNG encodes the surface to a PNG file at the given path.
func (ic *ImageContext) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, ic.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Snapshot renders a view tree into a fresh offscreen context sized to
// the view's frame. The view keeps its dirty flags cleared, exactly as
// after an on-screen frame.
func Snapshot(v *View) *ImageContext {
	f := v.Frame()
	ic := NewImageContext(int(f.Width), int(f.Height))
	Render(v, ic.ctx)
	return ic
}
