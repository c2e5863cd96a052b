package he

import "github.com/flywave/halfedge/vecmath"

// Face2 is the 2D analogue of Face: one border loop plus zero or more hole
// loops, all living in the owning Polygon's loop list.
type Face2 struct {
	ID     TopoID
	Border *loop2
	Holes  []*loop2
}

// Polygon is a single-owner, non-thread-safe 2D half-edge mesh: possibly
// several faces, each a border loop plus hole loops.
type Polygon struct {
	Name string

	verts CircularList[vert2, *vert2]
	edges CircularList[edge2, *edge2]
	loops CircularList[loop2, *loop2]
	Faces []Face2

	Bounds vecmath.Rect

	nextVertID uint32
	nextEdgeID uint32
	nextLoopID uint32
	nextFaceID uint32
}

// NewPolygon returns an empty polygon with an empty bounds rect.
func NewPolygon(name string) *Polygon {
	return &Polygon{Name: name, Bounds: vecmath.MakeEmptyRect()}
}

// Verts returns the vertex list.
func (p *Polygon) Verts() *CircularList[vert2, *vert2] { return &p.verts }

// Edges returns the half-edge list.
func (p *Polygon) Edges() *CircularList[edge2, *edge2] { return &p.edges }

// Loops returns the loop list.
func (p *Polygon) Loops() *CircularList[loop2, *loop2] { return &p.loops }

func (p *Polygon) freshVertID() uint32 { id := p.nextVertID; p.nextVertID++; return id }
func (p *Polygon) freshEdgeID() uint32 { id := p.nextEdgeID; p.nextEdgeID++; return id }
func (p *Polygon) freshLoopID() uint32 { id := p.nextLoopID; p.nextLoopID++; return id }
func (p *Polygon) freshFaceID() uint32 { id := p.nextFaceID; p.nextFaceID++; return id }

// UpdateBounds recomputes the cached bounding rect from the current vertex
// list.
func (p *Polygon) UpdateBounds() {
	box := vecmath.MakeEmptyRect()
	p.verts.Each(func(v *vert2) bool {
		box = box.Combine(v.Position)
		return true
	})
	p.Bounds = box
}

// FaceInput2D describes one face to be built by BuildPolygonFromFaces: an
// optional input TopoID, an ordered border index list, and zero or more
// hole index lists.
type FaceInput2D struct {
	ID     TopoID
	Border []int
	Holes  [][]int
}

type endpointKey2 struct{ from, to int }

// BuildPolygonFromFaces constructs a 2D polygon mesh the same way
// BuildFromFaces constructs a 3D one: one half-edge per border/hole index,
// connected into cycles, with reverse-endpoint pairs twinned across faces.
func BuildPolygonFromFaces(positions []vecmath.Vec2, faces []FaceInput2D) *Polygon {
	p := NewPolygon("")

	verts := make([]*vert2, len(positions))
	for i, pos := range positions {
		v := &vert2{ID: NewTopoID(p.freshVertID()), Position: pos}
		verts[i] = v
		p.verts.PushBack(v)
	}

	pairMap := make(map[endpointKey2]*edge2)

	buildLoop2 := func(indices []int) *loop2 {
		if len(indices) < 3 {
			return nil
		}
		edges := make([]*edge2, len(indices))
		for i, vi := range indices {
			e := &edge2{ID: NewTopoID(p.freshEdgeID()), Vert: verts[vi]}
			if verts[vi].Edge == nil {
				verts[vi].Edge = e
			}
			edges[i] = e
			p.edges.PushBack(e)
		}
		for i, e := range edges {
			Connect(e, edges[(i+1)%len(edges)])
		}
		loop := &loop2{ID: NewTopoID(p.freshLoopID())}
		p.loops.PushBack(loop)
		BindEdgeLoop(loop, edges[0])

		n := len(indices)
		for i := 0; i < n; i++ {
			from, to := indices[i], indices[(i+1)%n]
			pairMap[endpointKey2{from, to}] = edges[i]
		}
		return loop
	}

	for _, fi := range faces {
		face := Face2{}
		if fi.ID.IsEmpty() {
			face.ID = NewTopoID(p.freshFaceID())
		} else {
			face.ID = fi.ID
			adoptTopoID(&p.nextFaceID, fi.ID)
		}
		face.Border = buildLoop2(fi.Border)
		for _, hole := range fi.Holes {
			face.Holes = append(face.Holes, buildLoop2(hole))
		}
		p.Faces = append(p.Faces, face)
	}

	for key, e := range pairMap {
		if e.Twin != nil {
			continue
		}
		reverse := endpointKey2{key.to, key.from}
		if other, ok := pairMap[reverse]; ok && other.Twin == nil {
			_ = MakePair(e, other)
		}
	}

	p.UpdateBounds()
	return p
}

// Dump flattens p into a position array and a set of FaceInput2D index
// lists, suitable for feeding back into BuildPolygonFromFaces.
func (p *Polygon) Dump() ([]vecmath.Vec2, []FaceInput2D) {
	index := make(map[*vert2]int)
	var positions []vecmath.Vec2
	indexOf := func(v *vert2) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(positions)
		index[v] = i
		positions = append(positions, v.Position)
		return i
	}

	loopIndices := func(loop *loop2) []int {
		var out []int
		EachEdge(loop, func(e *edge2) bool {
			out = append(out, indexOf(e.Vert))
			return true
		})
		return out
	}

	faces := make([]FaceInput2D, 0, len(p.Faces))
	for _, f := range p.Faces {
		fi := FaceInput2D{ID: f.ID, Border: loopIndices(f.Border)}
		for _, h := range f.Holes {
			fi.Holes = append(fi.Holes, loopIndices(h))
		}
		faces = append(faces, fi)
	}

	return positions, faces
}
