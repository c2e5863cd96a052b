package vecmath

import "math"

// Cube is an axis-aligned bounding box in 3-space. An empty Cube has Min
// components greater than the corresponding Max components.
type Cube struct {
	Min, Max Vec3
}

// MakeEmpty returns a Cube in the canonical empty state, ready to be grown
// with Combine.
func MakeEmpty() Cube {
	inf := math.Inf(1)
	return Cube{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether c has not yet been grown to contain any point.
func (c Cube) IsEmpty() bool {
	return c.Min.X > c.Max.X || c.Min.Y > c.Max.Y || c.Min.Z > c.Max.Z
}

// Combine grows c to also contain p, returning the new box.
func (c Cube) Combine(p Vec3) Cube {
	return Cube{
		Min: Vec3{min(c.Min.X, p.X), min(c.Min.Y, p.Y), min(c.Min.Z, p.Z)},
		Max: Vec3{max(c.Max.X, p.X), max(c.Max.Y, p.Y), max(c.Max.Z, p.Z)},
	}
}

// Union returns the smallest Cube containing both c and other.
func (c Cube) Union(other Cube) Cube {
	if c.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return c
	}
	return c.Combine(other.Min).Combine(other.Max)
}

// Contains reports whether p lies within c (inclusive).
func (c Cube) Contains(p Vec3) bool {
	return p.X >= c.Min.X && p.X <= c.Max.X &&
		p.Y >= c.Min.Y && p.Y <= c.Max.Y &&
		p.Z >= c.Min.Z && p.Z <= c.Max.Z
}

// Rect is an axis-aligned bounding box in the plane.
type Rect struct {
	Min, Max Vec2
}

// MakeEmptyRect returns a Rect in the canonical empty state.
func MakeEmptyRect() Rect {
	inf := math.Inf(1)
	return Rect{
		Min: Vec2{inf, inf},
		Max: Vec2{-inf, -inf},
	}
}

// IsEmpty reports whether r has not yet been grown to contain any point.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Combine grows r to also contain p, returning the new box.
func (r Rect) Combine(p Vec2) Rect {
	return Rect{
		Min: Vec2{min(r.Min.X, p.X), min(r.Min.Y, p.Y)},
		Max: Vec2{max(r.Max.X, p.X), max(r.Max.Y, p.Y)},
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
