package he

import (
	"fmt"

	"github.com/flywave/halfedge/vecmath"
)

// Face is a value record naming one border loop plus zero or more hole
// loops; the loops themselves live in the polyhedron's loop list. A
// Polyhedron's Faces slice is cleared before its loop list is destroyed
// (see Polyhedron zero-value lifecycle: nothing beyond dropping references
// is required in Go, but the ordering is kept for fidelity with callers
// that reason about it).
type Face struct {
	ID     TopoID
	Border *loop3
	Holes  []*loop3
}

// Polyhedron is a single-owner, non-thread-safe 3D half-edge mesh: a
// vertex/edge/loop graph (C1-C3) plus an indexable Face vector and a cached
// AABB. Per-mesh id counters mint fresh TopoIDs; they are never shared
// across meshes except by explicit Offset during a merge.
type Polyhedron struct {
	Name string

	verts CircularList[vert3, *vert3]
	edges CircularList[edge3, *edge3]
	loops CircularList[loop3, *loop3]
	Faces []Face

	AABB vecmath.Cube

	nextVertID uint32
	nextEdgeID uint32
	nextLoopID uint32
	nextFaceID uint32
}

// NewPolyhedron returns an empty polyhedron with an empty AABB.
func NewPolyhedron(name string) *Polyhedron {
	return &Polyhedron{
		Name: name,
		AABB: vecmath.MakeEmpty(),
	}
}

// Verts returns the vertex list.
func (p *Polyhedron) Verts() *CircularList[vert3, *vert3] { return &p.verts }

// Edges returns the half-edge list.
func (p *Polyhedron) Edges() *CircularList[edge3, *edge3] { return &p.edges }

// Loops returns the loop list.
func (p *Polyhedron) Loops() *CircularList[loop3, *loop3] { return &p.loops }

func (p *Polyhedron) freshVertID() uint32 {
	id := p.nextVertID
	p.nextVertID++
	return id
}

func (p *Polyhedron) freshEdgeID() uint32 {
	id := p.nextEdgeID
	p.nextEdgeID++
	return id
}

func (p *Polyhedron) freshLoopID() uint32 {
	id := p.nextLoopID
	p.nextLoopID++
	return id
}

func (p *Polyhedron) freshFaceID() uint32 {
	id := p.nextFaceID
	p.nextFaceID++
	return id
}

// adoptVertID bumps the vertex counter past id so future fresh ids never
// collide with an adopted foreign one.
func (p *Polyhedron) adoptVertID(id uint32) {
	if id+1 > p.nextVertID {
		p.nextVertID = id + 1
	}
}

func (p *Polyhedron) adoptEdgeID(id uint32) {
	if id+1 > p.nextEdgeID {
		p.nextEdgeID = id + 1
	}
}

func (p *Polyhedron) adoptLoopID(id uint32) {
	if id+1 > p.nextLoopID {
		p.nextLoopID = id + 1
	}
}

func (p *Polyhedron) adoptFaceID(id uint32) {
	if id+1 > p.nextFaceID {
		p.nextFaceID = id + 1
	}
}

// adoptTopoID bumps *counter past every entry of id's path, so a foreign
// TopoID adopted during a build can never collide with a freshly minted
// one.
func adoptTopoID(counter *uint32, id TopoID) {
	if !id.IsValid() {
		return
	}
	for _, e := range id.Path() {
		if e+1 > *counter {
			*counter = e + 1
		}
	}
}

// IsClosed reports whether every half-edge in the mesh has a twin (I6).
func (p *Polyhedron) IsClosed() bool {
	closed := true
	p.edges.Each(func(e *edge3) bool {
		if e.Twin == nil {
			closed = false
			return false
		}
		return true
	})
	return closed
}

// UpdateAABB recomputes the cached bounding box from the current vertex
// list.
func (p *Polyhedron) UpdateAABB() {
	box := vecmath.MakeEmpty()
	p.verts.Each(func(v *vert3) bool {
		box = box.Combine(v.Position)
		return true
	})
	p.AABB = box
}

// GeometryStats summarizes edge length and face area distribution; a
// diagnostic, not a spec operation, kept because it exercises the same
// loop-walk and AABB machinery the rest of the kernel needs.
type GeometryStats struct {
	VertexCount   int
	EdgeCount     int
	FaceCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	TotalArea     float64
}

// CalculateGeometryStats walks the mesh once and summarizes edge lengths
// and face areas.
func (p *Polyhedron) CalculateGeometryStats() GeometryStats {
	stats := GeometryStats{
		VertexCount: p.verts.Size(),
		EdgeCount:   p.edges.Size(),
		FaceCount:   len(p.Faces),
	}

	minLen, maxLen, sumLen, n := -1.0, 0.0, 0.0, 0
	p.edges.Each(func(e *edge3) bool {
		l := e.Vert.Position.Distance(e.Dest().Position)
		if minLen < 0 || l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
		sumLen += l
		n++
		return true
	})
	if n > 0 {
		stats.MinEdgeLength = minLen
		stats.MaxEdgeLength = maxLen
		stats.AvgEdgeLength = sumLen / float64(n)
	}

	for _, f := range p.Faces {
		stats.TotalArea += polygonArea3(f.Border)
	}

	return stats
}

// polygonArea3 returns a border loop's area via the standard
// half-cross-product-sum formula.
func polygonArea3(loop *loop3) float64 {
	verts := LoopToVertices(loop)
	if len(verts) < 3 {
		return 0
	}
	sum := vecmath.Vec3{}
	origin := verts[0]
	for i := 1; i+1 < len(verts); i++ {
		a := verts[i].Sub(origin)
		b := verts[i+1].Sub(origin)
		sum = sum.Add(a.Cross(b))
	}
	return 0.5 * sum.Length()
}

// Stats renders a short human-readable summary, in the style of a
// polyhedron's debug string.
func (p *Polyhedron) Stats() string {
	s := p.CalculateGeometryStats()
	return fmt.Sprintf(
		"Polyhedron(%q): %d verts, %d edges, %d faces, area=%.4f, closed=%v",
		p.Name, s.VertexCount, s.EdgeCount, s.FaceCount, s.TotalArea, p.IsClosed(),
	)
}
