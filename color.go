package pocketui

import (
	"regexp"
	"strconv"
	"strings"
)

// Color is an RGBA color with components in the 0..1 range.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Clear   = Color{0, 0, 0, 0}
	Black   = Color{0, 0, 0, 1}
	White   = Color{1, 1, 1, 1}
	Red     = Color{1, 0, 0, 1}
	Green   = Color{0, 0.5, 0, 1}
	Blue    = Color{0, 0, 1, 1}
	Yellow  = Color{1, 1, 0, 1}
	Gray    = Color{0.5, 0.5, 0.5, 1}
	Orange  = Color{1, 0.65, 0, 1}
	Magenta = Color{1, 0, 1, 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) Color { return Color{r, g, b, 1} }

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a float64) Color { return Color{r, g, b, a} }

// Gray8 returns an opaque gray with the given brightness, clamped to 0..1.
func Gray8(v float64) Color {
	v = clamp01(v)
	return Color{v, v, v, 1}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Packed returns the color as 0xRRGGBBAA.
func (c Color) Packed() uint32 {
	r := uint32(clamp01(c.R)*255 + 0.5)
	g := uint32(clamp01(c.G)*255 + 0.5)
	b := uint32(clamp01(c.B)*255 + 0.5)
	a := uint32(clamp01(c.A)*255 + 0.5)
	return r<<24 | g<<16 | b<<8 | a
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// cssColors maps CSS color names (lowercase, no spaces) to colors.
var cssColors = map[string]Color{
	"clear":       {0, 0, 0, 0},
	"transparent": {0, 0, 0, 0},
	"black":       {0, 0, 0, 1},
	"white":       {1, 1, 1, 1},
	"red":         {1, 0, 0, 1},
	"green":       {0, 0.5, 0, 1},
	"lime":        {0, 1, 0, 1},
	"blue":        {0, 0, 1, 1},
	"yellow":      {1, 1, 0, 1},
	"cyan":        {0, 1, 1, 1},
	"aqua":        {0, 1, 1, 1},
	"magenta":     {1, 0, 1, 1},
	"fuchsia":     {1, 0, 1, 1},
	"orange":      {1, 0.65, 0, 1},
	"purple":      {0.5, 0, 0.5, 1},
	"brown":       {0.6, 0.4, 0.2, 1},
	"pink":        {1, 0.75, 0.8, 1},
	"gray":        {0.5, 0.5, 0.5, 1},
	"grey":        {0.5, 0.5, 0.5, 1},
	"lightgray":   {0.83, 0.83, 0.83, 1},
	"lightgrey":   {0.83, 0.83, 0.83, 1},
	"darkgray":    {0.33, 0.33, 0.33, 1},
	"darkgrey":    {0.33, 0.33, 0.33, 1},
	"silver":      {0.75, 0.75, 0.75, 1},
	"navy":        {0, 0, 0.5, 1},
	"teal":        {0, 0.5, 0.5, 1},
	"maroon":      {0.5, 0, 0, 1},
	"olive":       {0.5, 0.5, 0, 1},
}

var (
	hex6 = regexp.MustCompile(`^[A-Fa-f0-9]{6}$`)
	hex8 = regexp.MustCompile(`^[A-Fa-f0-9]{8}$`)
)

// ParseColor converts a flexible color description to a Color. Accepted
// forms:
//
//	nil                    no color (ok == false)
//	Color                  passed through
//	[4]float64 / []float64 RGBA or RGB components
//	float64                scalar gray, clamped to 0..1
//	int / uint32           0xRRGGBB, or 0xAARRGGBB when above 0xFFFFFF
//	string                 CSS color name, "RRGGBB" or "RRGGBBAA" hex
//	                       with optional leading "#"
//
// Unrecognized values return ok == false.
func ParseColor(v any) (Color, bool) {
	switch c := v.(type) {
	case nil:
		return Color{}, false
	case Color:
		return c, true
	case [4]float64:
		return Color{c[0], c[1], c[2], c[3]}, true
	case [3]float64:
		return Color{c[0], c[1], c[2], 1}, true
	case []float64:
		switch len(c) {
		case 4:
			return Color{c[0], c[1], c[2], c[3]}, true
		case 3:
			return Color{c[0], c[1], c[2], 1}, true
		}
		return Color{}, false
	case float64:
		return Gray8(c), true
	case float32:
		return Gray8(float64(c)), true
	case int:
		return parseHexInt(uint32(c)), true
	case uint32:
		return parseHexInt(c), true
	case string:
		return parseColorString(c)
	}
	return Color{}, false
}

func parseHexInt(c uint32) Color {
	a := 1.0
	if c > 0xFFFFFF {
		a = float64(c>>24&0xFF) / 255
	}
	return Color{
		float64(c>>16&0xFF) / 255,
		float64(c>>8&0xFF) / 255,
		float64(c&0xFF) / 255,
		a,
	}
}

func parseColorString(s string) (Color, bool) {
	if c, ok := cssColors[strings.ReplaceAll(strings.ToLower(s), " ", "")]; ok {
		return c, true
	}
	h := strings.TrimPrefix(s, "#")
	if hex6.MatchString(h) {
		return Color{hexByte(h[0:2]), hexByte(h[2:4]), hexByte(h[4:6]), 1}, true
	}
	if hex8.MatchString(h) {
		return Color{hexByte(h[0:2]), hexByte(h[2:4]), hexByte(h[4:6]), hexByte(h[6:8])}, true
	}
	return Color{}, false
}

func hexByte(s string) float64 {
	n, _ := strconv.ParseUint(s, 16, 8)
	return float64(n) / 255
}

// lerpColor interpolates two colors component-wise.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		lerp(a.R, b.R, t),
		lerp(a.G, b.G, t),
		lerp(a.B, b.B, t),
		lerp(a.A, b.A, t),
	}
}
