package vecmath

// Plane is an oriented plane in 3-space: the set of points p with
// Normal.Dot(p) == Dist. Points on the side Normal points toward have
// positive GetDistance.
type Plane struct {
	Normal Vec3
	Dist   float64
}

// Build constructs a plane through point with the given (not necessarily
// unit) normal.
func Build(normal, point Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Dist: n.Dot(point)}
}

// BuildFromPoints constructs a plane through three non-collinear points,
// oriented so that a,b,c winds counter-clockwise when viewed from the
// side the normal points toward.
func BuildFromPoints(a, b, c Vec3) (Plane, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	n := e1.Cross(e2)
	if n.Length() < lengthTolerance {
		return Plane{}, false
	}
	return Build(n, a), true
}

// GetDistance returns the signed distance from p to the plane: positive on
// the side Normal points toward, negative on the other side.
func (p Plane) GetDistance(pos Vec3) float64 {
	return p.Normal.Dot(pos) - p.Dist
}

// Flip returns the plane with its normal (and orientation) reversed.
func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Scale(-1), Dist: -p.Dist}
}

// IntersectPlanes solves for the single point common to three planes, via
// Cramer's rule on the 3x3 system. The second return value is false when
// the planes are (near) parallel and have no unique intersection.
func IntersectPlanes(p0, p1, p2 Plane) (Vec3, bool) {
	n0, n1, n2 := p0.Normal, p1.Normal, p2.Normal

	det := n0.Dot(n1.Cross(n2))
	if det > -lengthTolerance && det < lengthTolerance {
		return Vec3{}, false
	}

	num := n1.Cross(n2).Scale(p0.Dist).
		Add(n2.Cross(n0).Scale(p1.Dist)).
		Add(n0.Cross(n1).Scale(p2.Dist))

	return num.Scale(1.0 / det), true
}
