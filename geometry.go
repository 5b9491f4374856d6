package pocketui

import "math"

// Point is a 2D point. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Size is a 2D extent (width, height).
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle defined by origin and size.
type Rect struct {
	X, Y, Width, Height float64
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the right edge (x + width).
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge (y + height).
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{r.Width, r.Height} }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsRect reports whether s lies entirely within r.
func (r Rect) ContainsRect(s Rect) bool {
	return r.X <= s.X && r.Y <= s.Y &&
		r.MaxX() >= s.MaxX() && r.MaxY() >= s.MaxY()
}

// Inset returns a rectangle shrunk by dx horizontally and dy vertically.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{r.X + dx, r.Y + dy, r.Width - 2*dx, r.Height - 2*dy}
}

// Translate returns a rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{r.X + dx, r.Y + dy, r.Width, r.Height}
}

// Intersects reports whether r and s overlap.
func (r Rect) Intersects(s Rect) bool {
	return r.X < s.MaxX() && r.MaxX() > s.X &&
		r.Y < s.MaxY() && r.MaxY() > s.Y
}

// Intersection returns the overlapping region of r and s, or the zero
// Rect when they do not overlap.
func (r Rect) Intersection(s Rect) Rect {
	x := math.Max(r.X, s.X)
	y := math.Max(r.Y, s.Y)
	mx := math.Min(r.MaxX(), s.MaxX())
	my := math.Min(r.MaxY(), s.MaxY())
	if mx < x || my < y {
		return Rect{}
	}
	return Rect{x, y, mx - x, my - y}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	x := math.Min(r.X, s.X)
	y := math.Min(r.Y, s.Y)
	mx := math.Max(r.MaxX(), s.MaxX())
	my := math.Max(r.MaxY(), s.MaxY())
	return Rect{x, y, mx - x, my - y}
}

// lerp interpolates linearly between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpPoint interpolates two points component-wise.
func lerpPoint(a, b Point, t float64) Point {
	return Point{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t)}
}

// lerpRect interpolates two rectangles component-wise.
func lerpRect(a, b Rect, t float64) Rect {
	return Rect{
		lerp(a.X, b.X, t),
		lerp(a.Y, b.Y, t),
		lerp(a.Width, b.Width, t),
		lerp(a.Height, b.Height, t),
	}
}
