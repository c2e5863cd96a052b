package he

import "github.com/flywave/halfedge/vecmath"

// PointStatus classifies a point's position relative to a plane.
type PointStatus int

const (
	StatusAbove PointStatus = iota
	StatusBelow
	StatusInside
)

// FacePlaneStatus classifies an entire face's position relative to a
// plane: Cross means the face's vertices appear on both sides.
type FacePlaneStatus int

const (
	FaceAbove FacePlaneStatus = iota
	FaceBelow
	FaceInside
	FaceCross
)

// PointStatusEpsilon is the plane-distance tolerance below which a point is
// considered to lie on the plane rather than strictly to one side.
const PointStatusEpsilon = 1e-4

// EdgeSize counts the half-edges on loop's Next-cycle.
func EdgeSize[T Vector](loop *Loop[T]) int {
	n := 0
	EachEdge(loop, func(*HalfEdge[T]) bool {
		n++
		return true
	})
	return n
}

// LoopToVertices gathers vertex positions in loop order.
func LoopToVertices[T Vector](loop *Loop[T]) []T {
	out := make([]T, 0, EdgeSize(loop))
	EachEdge(loop, func(e *HalfEdge[T]) bool {
		out = append(out, e.Vert.Position)
		return true
	})
	return out
}

// IsLoopConvex reports whether a 2D loop's vertices form a convex polygon.
func IsLoopConvex(loop *loop2) bool {
	return vecmath.IsPolygonConvex(LoopToVertices(loop))
}

// IsLoopClockwise reports whether a 2D loop winds clockwise.
func IsLoopClockwise(loop *loop2) bool {
	return vecmath.IsPolygonClockwise(LoopToVertices(loop))
}

// CalcLoopNorm computes loop's normal by Newell's method (summing
// v_i x v_{i+1} over the cycle) and returns it normalized. Robust against
// one or two nearly-collinear vertices in an otherwise planar loop, unlike
// a normal taken from a single vertex triple.
func CalcLoopNorm(loop *loop3) vecmath.Vec3 {
	verts := LoopToVertices(loop)
	n := len(verts)
	if n < 3 {
		return vecmath.Vec3{}
	}

	sum := vecmath.Vec3{}
	for i := 0; i < n; i++ {
		cur := verts[i]
		next := verts[(i+1)%n]
		sum = sum.Add(vecmath.Vec3{
			X: (cur.Y - next.Y) * (cur.Z + next.Z),
			Y: (cur.Z - next.Z) * (cur.X + next.X),
			Z: (cur.X - next.X) * (cur.Y + next.Y),
		})
	}
	return sum.Normalize()
}

// LoopToPlane builds the plane through loop's first vertex with loop's
// Newell normal. Every builder in this package winds a face's border CCW
// as seen from outside the solid (see e.g. cubeFaceIndices), so the
// Newell normal already agrees with the outward face normal and needs no
// correcting flip. Returns false if the loop has fewer than three
// vertices or is degenerate (zero normal).
func LoopToPlane(loop *loop3) (vecmath.Plane, bool) {
	verts := LoopToVertices(loop)
	if len(verts) < 3 {
		return vecmath.Plane{}, false
	}
	n := CalcLoopNorm(loop)
	if n.Length() < 1e-9 {
		return vecmath.Plane{}, false
	}
	return vecmath.Build(n, verts[0]), true
}

// CalcFaceNorm returns the face's plane normal, taken from its border loop,
// or from the (inverted) first hole's normal when the face has no border.
func CalcFaceNorm(face Face) vecmath.Vec3 {
	if face.Border != nil {
		return CalcLoopNorm(face.Border)
	}
	if len(face.Holes) > 0 {
		return CalcLoopNorm(face.Holes[0]).Scale(-1)
	}
	return vecmath.Vec3{}
}

// CalcPointPlaneStatus classifies p relative to plane with tolerance
// PointStatusEpsilon.
func CalcPointPlaneStatus(plane vecmath.Plane, p vecmath.Vec3) PointStatus {
	d := plane.GetDistance(p)
	switch {
	case d > PointStatusEpsilon:
		return StatusAbove
	case d < -PointStatusEpsilon:
		return StatusBelow
	default:
		return StatusInside
	}
}

// CalcFacePlaneStatus classifies an entire face (border + holes) relative
// to plane by counting per-vertex statuses.
func CalcFacePlaneStatus(face Face, plane vecmath.Plane) FacePlaneStatus {
	sawAbove, sawBelow := false, false

	classify := func(loop *loop3) {
		EachEdge(loop, func(e *HalfEdge[vecmath.Vec3]) bool {
			switch CalcPointPlaneStatus(plane, e.Vert.Position) {
			case StatusAbove:
				sawAbove = true
			case StatusBelow:
				sawBelow = true
			}
			return true
		})
	}

	classify(face.Border)
	for _, h := range face.Holes {
		classify(h)
	}

	switch {
	case sawAbove && sawBelow:
		return FaceCross
	case sawAbove:
		return FaceAbove
	case sawBelow:
		return FaceBelow
	default:
		return FaceInside
	}
}

// FlipLoop reverses loop's cycle in place: every edge's new Next is its old
// Prev. The half-edges' Vert fields are left untouched, matching the
// reference implementation's flip.
func FlipLoop[T Vector](loop *Loop[T]) {
	var edges []*HalfEdge[T]
	EachEdge(loop, func(e *HalfEdge[T]) bool {
		edges = append(edges, e)
		return true
	})
	if len(edges) == 0 {
		return
	}

	oldNext := make(map[*HalfEdge[T]]*HalfEdge[T], len(edges))
	oldPrev := make(map[*HalfEdge[T]]*HalfEdge[T], len(edges))
	for _, e := range edges {
		oldNext[e] = e.Next
		oldPrev[e] = e.Prev
	}
	for _, e := range edges {
		e.Next = oldPrev[e]
		e.Prev = oldNext[e]
	}
}

// CloneLoop allocates one new half-edge per edge of src, reusing src's
// vertices, connects the new edges into a cycle, binds them to dst and
// returns the new cycle's head. *nextEdgeID is consumed and advanced for
// each new edge.
func CloneLoop[T Vector](src, dst *Loop[T], nextEdgeID *uint32) *HalfEdge[T] {
	var srcEdges []*HalfEdge[T]
	EachEdge(src, func(e *HalfEdge[T]) bool {
		srcEdges = append(srcEdges, e)
		return true
	})
	if len(srcEdges) == 0 {
		return nil
	}

	newEdges := make([]*HalfEdge[T], len(srcEdges))
	for i, e := range srcEdges {
		newEdges[i] = &HalfEdge[T]{ID: NewTopoID(*nextEdgeID), Vert: e.Vert}
		*nextEdgeID++
	}
	for i, ne := range newEdges {
		Connect(ne, newEdges[(i+1)%len(newEdges)])
	}
	BindEdgeLoop(dst, newEdges[0])
	return newEdges[0]
}

// CloneLoopFreshVerts behaves like CloneLoop but also clones a fresh vertex
// per edge (carrying the same position), instead of reusing src's
// vertices; used where the clone must not alias the source mesh's
// vertex records at all.
func CloneLoopFreshVerts[T Vector](src, dst *Loop[T], nextEdgeID, nextVertID *uint32) *HalfEdge[T] {
	var srcEdges []*HalfEdge[T]
	EachEdge(src, func(e *HalfEdge[T]) bool {
		srcEdges = append(srcEdges, e)
		return true
	})
	if len(srcEdges) == 0 {
		return nil
	}

	newEdges := make([]*HalfEdge[T], len(srcEdges))
	for i, e := range srcEdges {
		nv := &Vertex[T]{ID: NewTopoID(*nextVertID), Position: e.Vert.Position}
		*nextVertID++
		newEdges[i] = &HalfEdge[T]{ID: NewTopoID(*nextEdgeID), Vert: nv}
		nv.Edge = newEdges[i]
		*nextEdgeID++
	}
	for i, ne := range newEdges {
		Connect(ne, newEdges[(i+1)%len(newEdges)])
	}
	BindEdgeLoop(dst, newEdges[0])
	return newEdges[0]
}

// UniquePoints walks edgeList in list order and, whenever an edge's origin
// has already been claimed by an earlier edge, clones the vertex (a new
// TopoID appended from the source's path) and retargets the edge to the
// clone, appending the clone to vertList. The effect is that every
// half-edge ends up owning a distinct origin record.
func UniquePoints[T Vector](edgeList *CircularList[HalfEdge[T], *HalfEdge[T]], vertList *CircularList[Vertex[T], *Vertex[T]], nextVertID *uint32) {
	claimed := make(map[*Vertex[T]]bool)
	edgeList.Each(func(e *HalfEdge[T]) bool {
		v := e.Vert
		if claimed[v] {
			nv := &Vertex[T]{ID: v.ID.Append(*nextVertID), Position: v.Position, Edge: e}
			*nextVertID++
			vertList.PushBack(nv)
			e.Vert = nv
			claimed[nv] = true
			return true
		}
		claimed[v] = true
		if v.Edge == nil {
			v.Edge = e
		}
		return true
	})
}
