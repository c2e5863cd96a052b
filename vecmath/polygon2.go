package vecmath

import "math"

// AngleAt returns the interior angle at vertex formed by the rays to a and
// b, in radians, in [0, pi].
func AngleAt(vertex, a, b Vec2) float64 {
	va := a.Sub(vertex)
	vb := b.Sub(vertex)
	la, lb := va.Length(), vb.Length()
	if la < lengthTolerance || lb < lengthTolerance {
		return 0
	}
	cos := va.Dot(vb) / (la * lb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// IsPolygonClockwise reports whether the closed polygon described by verts
// (in loop order) winds clockwise, using the shoelace signed area.
func IsPolygonClockwise(verts []Vec2) bool {
	return signedArea(verts) < 0
}

// IsPolygonConvex reports whether the closed polygon described by verts (in
// loop order) is convex: every turn has the same cross-product sign.
func IsPolygonConvex(verts []Vec2) bool {
	n := len(verts)
	if n < 3 {
		return false
	}

	sign := 0.0
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		c := verts[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}

	return true
}

func signedArea(verts []Vec2) float64 {
	n := len(verts)
	area := 0.0
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area * 0.5
}
