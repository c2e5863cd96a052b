package he

import "github.com/flywave/halfedge/vecmath"

// SupportingPlanes returns the outward-facing plane of every face's
// border loop, in face order.
func (p *Polyhedron) SupportingPlanes() []vecmath.Plane {
	planes := make([]vecmath.Plane, 0, len(p.Faces))
	for _, f := range p.Faces {
		if pl, ok := LoopToPlane(f.Border); ok {
			planes = append(planes, pl)
		}
	}
	return planes
}

// Intersect returns the solid common to a and b. At least one operand must
// be closed (I6); the closed operand is clipped by every supporting plane
// of the other, capping each cut so the result stays closed. Returns an
// empty polyhedron if the solids do not overlap.
func Intersect(a, b *Polyhedron) *Polyhedron {
	var base, other *Polyhedron
	switch {
	case a.IsClosed():
		base, other = a, b
	case b.IsClosed():
		base, other = b, a
	default:
		return nil
	}

	result := base.Copy()
	for _, pl := range other.SupportingPlanes() {
		if len(result.Faces) == 0 {
			break
		}
		result.Clip(pl, KeepBelow, true)
	}
	return result
}

// Subtract returns the fragments of a that lie outside b, by recursively
// fragmenting a against each of b's supporting planes: the piece above a
// plane (outside b w.r.t. that plane) becomes a permanent result fragment,
// the piece below continues to the next plane. A fragment that survives
// every plane still entirely inside b contributes nothing to the result.
func Subtract(a, b *Polyhedron) []*Polyhedron {
	return doSubtract([]*Polyhedron{a.Copy()}, b.SupportingPlanes())
}

func doSubtract(fragments []*Polyhedron, planes []vecmath.Plane) []*Polyhedron {
	if len(planes) == 0 {
		return nil
	}
	plane, rest := planes[0], planes[1:]

	var results []*Polyhedron
	var continuing []*Polyhedron

	for _, f := range fragments {
		above := f.Copy()
		below := f.Copy()
		above.Clip(plane, KeepAbove, true)
		below.Clip(plane, KeepBelow, true)

		if len(above.Faces) > 0 {
			results = append(results, above)
		}
		if len(below.Faces) > 0 {
			continuing = append(continuing, below)
		}
	}

	results = append(results, doSubtract(continuing, rest)...)
	return results
}

// Union returns the solids covering the combined volume of a and b: if
// they don't overlap, both operands unchanged; otherwise each operand
// minus their shared intersection, so the seam between them is consistent
// on both sides.
func Union(a, b *Polyhedron) []*Polyhedron {
	i := Intersect(a, b)
	if i == nil || len(i.Faces) == 0 {
		return []*Polyhedron{a.Copy(), b.Copy()}
	}
	out := Subtract(a, i)
	out = append(out, Subtract(b, i)...)
	return out
}
