package raster

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps a parsed font usable with Surface.DrawText. Fonts are safe
// to share between surfaces.
type Font struct {
	name string
	src  *text.FontSource
}

// LoadFont parses TTF/OTF font data.
func LoadFont(data []byte) (*Font, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	return &Font{name: src.Name(), src: src}, nil
}

// LoadFontFile reads and parses a font file from disk.
func LoadFontFile(path string) (*Font, error) {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("raster: load font %s: %w", path, err)
	}
	return &Font{name: src.Name(), src: src}, nil
}

// Name returns the font's family name as recorded in the font file.
func (f *Font) Name() string { return f.name }

// Face returns a sized face for text shaping and drawing.
func (f *Font) Face(size float64) text.Face { return f.src.Face(size) }

// Close releases the font's parsing resources.
func (f *Font) Close() error { return f.src.Close() }

// Measure returns the advance width of s at the given size, including
// per-character spacing.
func (f *Font) Measure(size float64, s string, spacing float64) float64 {
	w, _ := text.Measure(s, f.Face(size))
	if n := utf8.RuneCountInString(s); n > 1 && spacing != 0 {
		w += spacing * float64(n-1)
	}
	return w
}

// Metrics returns the ascent, descent (positive, below baseline) and
// line height of the font at the given size.
func (f *Font) Metrics(size float64) (ascent, descent, height float64) {
	m := f.Face(size).Metrics()
	return m.Ascent, m.Descent, m.LineHeight()
}

var (
	defaultOnce sync.Once
	defaultFont *Font
	boldOnce    sync.Once
	boldFont    *Font
)

// DefaultFont returns the built-in regular font (Go Regular).
func DefaultFont() *Font {
	defaultOnce.Do(func() {
		f, err := LoadFont(goregular.TTF)
		if err != nil {
			panic("raster: built-in regular font: " + err.Error())
		}
		defaultFont = f
	})
	return defaultFont
}

// DefaultBoldFont returns the built-in bold font (Go Bold).
func DefaultBoldFont() *Font {
	boldOnce.Do(func() {
		f, err := LoadFont(gobold.TTF)
		if err != nil {
			panic("raster: built-in bold font: " + err.Error())
		}
		boldFont = f
	})
	return boldFont
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Font{}
)

// RegisterFont makes a font available for lookup under the given name,
// replacing any previous registration.
func RegisterFont(name string, f *Font) {
	registryMu.Lock()
	registry[name] = f
	registryMu.Unlock()
}

// FindFont returns the font registered under name. The names "<system>"
// and "" resolve to the default regular font, "<system-bold>" to the
// default bold font. Unknown names fall back to the default font.
func FindFont(name string) *Font {
	switch name {
	case "", "<system>":
		return DefaultFont()
	case "<system-bold>":
		return DefaultBoldFont()
	}
	registryMu.RLock()
	f := registry[name]
	registryMu.RUnlock()
	if f == nil {
		return DefaultFont()
	}
	return f
}
