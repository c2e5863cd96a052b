package he

import "github.com/flywave/halfedge/vecmath"

// IsContain reports whether pos lies inside (or on the boundary of) a
// convex closed polyhedron: true iff its signed distance to every face's
// plane (border and, per the reference behavior, each hole treated the
// same way) is within PointStatusEpsilon of non-positive.
func (p *Polyhedron) IsContain(pos vecmath.Vec3) bool {
	for _, f := range p.Faces {
		plane, ok := LoopToPlane(f.Border)
		if !ok {
			continue
		}
		if plane.GetDistance(pos) > PointStatusEpsilon {
			return false
		}
		for _, h := range f.Holes {
			hp, ok := LoopToPlane(h)
			if !ok {
				continue
			}
			if hp.GetDistance(pos) > PointStatusEpsilon {
				return false
			}
		}
	}
	return true
}
