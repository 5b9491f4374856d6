package pocketui

import (
	"fmt"
	"math"
)

// Transform is a 2D affine transformation matrix:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0  1  |
//
// A point (x, y) maps to (a·x + c·y + tx, b·x + d·y + ty).
type Transform struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Translation returns a transform that shifts by (tx, ty).
func Translation(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, TX: tx, TY: ty}
}

// Scale returns a transform that scales by (sx, sy).
func Scale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Rotation returns a transform that rotates by rad radians (clockwise,
// since Y grows downward).
func Rotation(rad float64) Transform {
	sin, cos := math.Sincos(rad)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// Concat returns t * other. When the result maps a point, other applies
// first, then t.
func (t Transform) Concat(other Transform) Transform {
	return Transform{
		A:  t.A*other.A + t.C*other.B,
		B:  t.B*other.A + t.D*other.B,
		C:  t.A*other.C + t.C*other.D,
		D:  t.B*other.C + t.D*other.D,
		TX: t.A*other.TX + t.C*other.TY + t.TX,
		TY: t.B*other.TX + t.D*other.TY + t.TY,
	}
}

// Invert returns the inverse transform, or an error when the matrix is
// singular.
func (t Transform) Invert() (Transform, error) {
	det := t.A*t.D - t.B*t.C
	if math.Abs(det) < 1e-10 {
		return Transform{}, fmt.Errorf("pocketui: transform has no inverse (determinant = 0)")
	}
	inv := 1 / det
	return Transform{
		A:  t.D * inv,
		B:  -t.B * inv,
		C:  -t.C * inv,
		D:  t.A * inv,
		TX: (t.C*t.TY - t.D*t.TX) * inv,
		TY: (t.B*t.TX - t.A*t.TY) * inv,
	}, nil
}

// Apply maps the point p through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.C*p.Y + t.TX,
		Y: t.B*p.X + t.D*p.Y + t.TY,
	}
}

// IsIdentity reports whether t is the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Transform{A: 1, D: 1}
}

func (t Transform) String() string {
	return fmt.Sprintf("Transform(a=%.2f, b=%.2f, c=%.2f, d=%.2f, tx=%.2f, ty=%.2f)",
		t.A, t.B, t.C, t.D, t.TX, t.TY)
}
