package he

import "github.com/flywave/halfedge/vecmath"

// FaceInput describes one face to be built by BuildFromFaces: an optional
// input TopoID (the zero value means "mint a fresh one"), an ordered
// border index list, and zero or more hole index lists.
type FaceInput struct {
	ID     TopoID
	Border []int
	Holes  [][]int
}

// endpointKey is the ordered pair of vertex indices a half-edge spans;
// twin pairing looks up the reverse key (j, i) for each (i, j).
type endpointKey struct {
	from, to int
}

// BuildFromFaces constructs a polyhedron from a flat vertex position array
// and a set of faces (each an ordered index list for the border, plus
// optional hole index lists). Half-edges whose reverse endpoint pair
// exists elsewhere in the mesh are twinned; the rest remain twinless,
// leaving the mesh open along that boundary.
func BuildFromFaces(positions []vecmath.Vec3, faces []FaceInput) *Polyhedron {
	p := NewPolyhedron("")
	verts := buildVertices(p, positions)

	pairMap := make(map[endpointKey]*edge3)

	for _, fi := range faces {
		face := Face{}
		if fi.ID.IsEmpty() {
			face.ID = NewTopoID(p.freshFaceID())
		} else {
			face.ID = fi.ID
			adoptTopoID(&p.nextFaceID, fi.ID)
		}

		borderLoop := buildLoop(p, fi.Border, verts, pairMap)
		face.Border = borderLoop

		for _, hole := range fi.Holes {
			holeLoop := buildLoop(p, hole, verts, pairMap)
			face.Holes = append(face.Holes, holeLoop)
		}

		p.Faces = append(p.Faces, face)
	}

	pairTwins(pairMap)
	p.UpdateAABB()
	return p
}

// buildVertices allocates one vertex per position, in order, and returns
// them indexable by their position in positions.
func buildVertices(p *Polyhedron, positions []vecmath.Vec3) []*vert3 {
	verts := make([]*vert3, len(positions))
	for i, pos := range positions {
		v := &vert3{ID: NewTopoID(p.freshVertID()), Position: pos}
		verts[i] = v
		p.verts.PushBack(v)
	}
	return verts
}

// buildLoop allocates one half-edge per border index, connects them into a
// cycle, binds them to a fresh loop, registers each edge's endpoint pair in
// pairMap for later twin resolution, and returns the loop.
func buildLoop(p *Polyhedron, indices []int, verts []*vert3, pairMap map[endpointKey]*edge3) *loop3 {
	if len(indices) < 3 {
		return nil
	}

	edges := make([]*edge3, len(indices))
	for i, vi := range indices {
		e := &edge3{ID: NewTopoID(p.freshEdgeID()), Vert: verts[vi]}
		if verts[vi].Edge == nil {
			verts[vi].Edge = e
		}
		edges[i] = e
		p.edges.PushBack(e)
	}
	for i, e := range edges {
		Connect(e, edges[(i+1)%len(edges)])
	}

	loop := &loop3{ID: NewTopoID(p.freshLoopID())}
	p.loops.PushBack(loop)
	BindEdgeLoop(loop, edges[0])

	n := len(indices)
	for i := 0; i < n; i++ {
		from, to := indices[i], indices[(i+1)%n]
		pairMap[endpointKey{from, to}] = edges[i]
	}

	return loop
}

// pairTwins scans pairMap and twins every half-edge whose reverse
// endpoint pair is also present, skipping pairs already resolved from the
// other direction.
func pairTwins(pairMap map[endpointKey]*edge3) {
	for key, e := range pairMap {
		if e.Twin != nil {
			continue
		}
		reverse := endpointKey{key.to, key.from}
		if other, ok := pairMap[reverse]; ok && other.Twin == nil {
			_ = MakePair(e, other)
		}
	}
}

// cubeFaceIndices are the six faces of a unit cube (corners 0-7 as laid
// out in cubeCorners), each wound CCW as seen from outside so the Newell
// normal points outward.
var cubeFaceIndices = [6][4]int{
	{0, 3, 2, 1}, // z = min, normal -z
	{4, 5, 6, 7}, // z = max, normal +z
	{0, 1, 5, 4}, // y = min, normal -y
	{3, 7, 6, 2}, // y = max, normal +y
	{0, 4, 7, 3}, // x = min, normal -x
	{1, 2, 6, 5}, // x = max, normal +x
}

func cubeCorners(min, max vecmath.Vec3) [8]vecmath.Vec3 {
	return [8]vecmath.Vec3{
		{min.X, min.Y, min.Z},
		{max.X, min.Y, min.Z},
		{max.X, max.Y, min.Z},
		{min.X, max.Y, min.Z},
		{min.X, min.Y, max.Z},
		{max.X, min.Y, max.Z},
		{max.X, max.Y, max.Z},
		{min.X, max.Y, max.Z},
	}
}

// BuildFromCube constructs a closed polyhedron from an axis-aligned box:
// eight corner vertices and six outward-facing quad faces, with all twelve
// edge pairs twinned.
func BuildFromCube(box vecmath.Cube) *Polyhedron {
	corners := cubeCorners(box.Min, box.Max)

	faces := make([]FaceInput, len(cubeFaceIndices))
	for i, idx := range cubeFaceIndices {
		faces[i] = FaceInput{Border: []int{idx[0], idx[1], idx[2], idx[3]}}
	}

	p := BuildFromFaces(corners[:], faces)
	p.Name = "cube"
	return p
}

// Copy dumps p's vertex positions and face index structure and rebuilds a
// new polyhedron from them, then offsets every record's TopoID by the
// source's outgoing counters so the copy's ids stay disjoint from p's when
// the two are later spliced together (e.g. during a boolean operation).
func (p *Polyhedron) Copy() *Polyhedron {
	positions, faces := p.dump()
	out := BuildFromFaces(positions, faces)
	out.Name = p.Name

	out.offsetTopoIDs(p.nextVertID, p.nextEdgeID, p.nextLoopID, p.nextFaceID)
	return out
}

// Dump flattens p into a position array and a set of FaceInput index
// lists, suitable for feeding back into BuildFromFaces.
func (p *Polyhedron) Dump() ([]vecmath.Vec3, []FaceInput) {
	return p.dump()
}

// dump is Dump's unexported implementation, also used internally by Copy
// and FusePolyhedra.
func (p *Polyhedron) dump() ([]vecmath.Vec3, []FaceInput) {
	index := make(map[*vert3]int)
	var positions []vecmath.Vec3
	indexOf := func(v *vert3) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(positions)
		index[v] = i
		positions = append(positions, v.Position)
		return i
	}

	loopIndices := func(loop *loop3) []int {
		var out []int
		EachEdge(loop, func(e *edge3) bool {
			out = append(out, indexOf(e.Vert))
			return true
		})
		return out
	}

	faces := make([]FaceInput, 0, len(p.Faces))
	for _, f := range p.Faces {
		fi := FaceInput{ID: f.ID, Border: loopIndices(f.Border)}
		for _, h := range f.Holes {
			fi.Holes = append(fi.Holes, loopIndices(h))
		}
		faces = append(faces, fi)
	}

	return positions, faces
}

// offsetTopoIDs shifts every vertex/edge/loop/face TopoID in p by the given
// per-kind amounts and advances p's own counters past the shift.
func (p *Polyhedron) offsetTopoIDs(vertShift, edgeShift, loopShift, faceShift uint32) {
	p.verts.Each(func(v *vert3) bool {
		v.ID = v.ID.Offset(vertShift)
		return true
	})
	p.edges.Each(func(e *edge3) bool {
		e.ID = e.ID.Offset(edgeShift)
		return true
	})
	p.loops.Each(func(l *loop3) bool {
		l.ID = l.ID.Offset(loopShift)
		return true
	})
	for i := range p.Faces {
		p.Faces[i].ID = p.Faces[i].ID.Offset(faceShift)
	}

	p.nextVertID += vertShift
	p.nextEdgeID += edgeShift
	p.nextLoopID += loopShift
	p.nextFaceID += faceShift
}
