// Package geom provides real-valued rectangles for overlay layout.
//
// Coordinates follow screen conventions: x grows to the right and y grows
// downward, so MinY is the top edge and MaxY the bottom edge.
package geom

import "math"

// Epsilon is the tolerance used by ApproxEqual.
const Epsilon = 1e-9

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
// Width and Height are expected to be non-negative; see Standardized.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Insets describes per-edge distances, e.g. a safe area.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }
func (r Rect) MidX() float64 { return r.X + r.Width/2 }
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Standardized returns an equivalent rectangle with non-negative size.
func (r Rect) Standardized() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Inset shrinks the rectangle by dx on the left and right and dy on the
// top and bottom. Negative values grow it. An axis that would become
// negative collapses to a zero-length span at the original midpoint.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width - 2*dx,
		Height: r.Height - 2*dy,
	}
	if out.Width < 0 {
		out.X = r.MidX()
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y = r.MidY()
		out.Height = 0
	}
	return out
}

// InsetBy shrinks each edge by the matching inset.
func (r Rect) InsetBy(in Insets) Rect {
	out := Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Left - in.Right,
		Height: r.Height - in.Top - in.Bottom,
	}
	return out.clampSize()
}

// Outset grows each edge by the matching inset.
func (r Rect) Outset(in Insets) Rect {
	return r.InsetBy(Insets{Top: -in.Top, Left: -in.Left, Bottom: -in.Bottom, Right: -in.Right})
}

// Offset translates the rectangle.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// BoundingCircleFrame returns the frame of the smallest circle enclosing r.
// The frame is a square whose side equals the diagonal of r, centred on r.
func (r Rect) BoundingCircleFrame() Rect {
	diagonal := math.Hypot(r.Width, r.Height)
	dx := -(diagonal - r.Width) / 2
	dy := -(diagonal - r.Height) / 2
	return r.Inset(dx, dy)
}

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// ContainsRounded reports whether p lies inside r with corners rounded by
// radius. The radius is clamped to half the shorter side.
func (r Rect) ContainsRounded(p Point, radius float64) bool {
	if !r.Contains(p) {
		return false
	}
	radius = math.Max(0, math.Min(radius, math.Min(r.Width, r.Height)/2))
	if radius == 0 {
		return true
	}
	// Distance from p to the inner rectangle whose corners are the arc centres.
	cx := clamp(p.X, r.MinX()+radius, r.MaxX()-radius)
	cy := clamp(p.Y, r.MinY()+radius, r.MaxY()-radius)
	dx := p.X - cx
	dy := p.Y - cy
	return dx*dx+dy*dy <= radius*radius
}

// Union returns the smallest rectangle containing both.
// Empty operands are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Intersect returns the overlap of both rectangles, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	minX := math.Max(r.MinX(), o.MinX())
	minY := math.Max(r.MinY(), o.MinY())
	maxX := math.Min(r.MaxX(), o.MaxX())
	maxY := math.Min(r.MaxY(), o.MaxY())
	if maxX <= minX || maxY <= minY {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ApproxEqual compares two rectangles within Epsilon.
func (r Rect) ApproxEqual(o Rect) bool {
	return near(r.X, o.X) && near(r.Y, o.Y) && near(r.Width, o.Width) && near(r.Height, o.Height)
}

// Scale multiplies the rectangle's coordinates per axis.
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{X: r.X * sx, Y: r.Y * sy, Width: r.Width * sx, Height: r.Height * sy}
}

func (r Rect) clampSize() Rect {
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(v, hi))
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}
