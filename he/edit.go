package he

import "github.com/flywave/halfedge/vecmath"

// Fill twins every currently twinless half-edge by synthesizing a matching
// boundary face per open gap: it walks each gap in the "missing twin"
// direction, builds one new half-edge per step (twinned to the gap edge it
// closes), and binds the new cycle to a fresh face. Returns the number of
// gaps closed.
func (p *Polyhedron) Fill() int {
	remaining := make(map[*edge3]bool)
	p.edges.Each(func(e *edge3) bool {
		if e.Twin == nil {
			remaining[e] = true
		}
		return true
	})
	if len(remaining) == 0 {
		return 0
	}

	filled := 0
	for len(remaining) > 0 {
		var start *edge3
		for e := range remaining {
			start = e
			break
		}

		var gap []*edge3
		cur := start
		for {
			gap = append(gap, cur)
			delete(remaining, cur)
			next := nextBoundaryEdge(cur.Dest())
			if next == nil || next == start {
				break
			}
			cur = next
		}

		n := len(gap)
		newEdges := make([]*edge3, n)
		for i, ge := range gap {
			ne := &edge3{ID: ge.ID.Append(p.freshEdgeID()), Vert: ge.Dest()}
			_ = MakePair(ne, ge)
			p.edges.PushBack(ne)
			newEdges[i] = ne
		}
		// The fill loop runs opposite the gap's walk direction: edge i's
		// successor is the fill edge for the gap edge that precedes it.
		for i, ne := range newEdges {
			Connect(ne, newEdges[(i-1+n)%n])
		}

		loop := &loop3{ID: start.ID.Append(p.freshLoopID())}
		p.loops.PushBack(loop)
		BindEdgeLoop(loop, newEdges[0])
		p.Faces = append(p.Faces, Face{ID: NewTopoID(p.freshFaceID()), Border: loop})
		filled++
	}

	p.UpdateAABB()
	return filled
}

// nextBoundaryEdge finds the next twinless outgoing half-edge at v by
// rotating through v's incident edges via twin.Next, the standard DCEL
// vertex-fan walk. It starts from v.Edge itself, so a vertex whose
// representative edge is already twinless is found immediately.
func nextBoundaryEdge(v *vert3) *edge3 {
	if v.Edge == nil {
		return nil
	}
	start := v.Edge
	cur := start
	for i := 0; i < 10000; i++ {
		if cur.Twin == nil {
			return cur
		}
		cur = cur.Twin.Next
		if cur == start {
			return nil
		}
	}
	return nil
}

// Fuse merges every pair of vertices within distance of each other,
// retargeting their incident half-edges onto the surviving vertex and
// re-deriving any twin pairing the merge makes possible (two formerly
// distinct, twinless boundary edges that now run between the same pair of
// vertices). Returns the number of vertices removed.
func (p *Polyhedron) Fuse(distance float64) int {
	verts := p.verts.Slice()
	parent := make(map[*vert3]*vert3)
	find := func(v *vert3) *vert3 {
		for {
			r, ok := parent[v]
			if !ok {
				return v
			}
			v = r
		}
	}

	merged := 0
	for i := 0; i < len(verts); i++ {
		vi := find(verts[i])
		if vi.Invalid {
			continue
		}
		for j := i + 1; j < len(verts); j++ {
			vj := find(verts[j])
			if vj == vi || vj.Invalid {
				continue
			}
			if vi.Position.Distance(vj.Position) <= distance {
				parent[vj] = vi
				vj.Invalid = true
				merged++
			}
		}
	}
	if merged == 0 {
		return 0
	}

	p.edges.Each(func(e *edge3) bool {
		nv := find(e.Vert)
		if nv != e.Vert {
			e.Vert = nv
		}
		return true
	})
	for _, v := range verts {
		if v.Invalid {
			p.verts.Remove(v)
		}
	}

	p.repairTwinsAfterMerge()
	p.UpdateAABB()
	return merged
}

// repairTwinsAfterMerge re-derives twin pairing among currently twinless
// edges by vertex-pointer identity, the same endpoint-matching idiom
// BuildFromFaces uses by index: a merge can make two previously unrelated
// boundary edges run between the same two (now-shared) vertex records.
func (p *Polyhedron) repairTwinsAfterMerge() {
	type key struct{ from, to *vert3 }
	pending := make(map[key]*edge3)
	p.edges.Each(func(e *edge3) bool {
		if e.Twin == nil {
			pending[key{e.Vert, e.Dest()}] = e
		}
		return true
	})
	for k, e := range pending {
		if e.Twin != nil {
			continue
		}
		reverse := key{k.to, k.from}
		if other, ok := pending[reverse]; ok && other != e && other.Twin == nil {
			_ = MakePair(e, other)
		}
	}
}

// UniquePoints splits every vertex shared by more than one half-edge into
// one distinct vertex record per half-edge that claims it, so downstream
// per-vertex mutation (e.g. Extrude's vertex repositioning) never
// accidentally aliases across unrelated incidences.
func (p *Polyhedron) UniquePoints() {
	UniquePoints[vecmath.Vec3](&p.edges, &p.verts, &p.nextVertID)
}

// FusePolyhedra concatenates a batch of polyhedra into one mesh and fuses
// every vertex pair within distance of each other, re-deriving twin pairing
// across the seam where two inputs touch. Unlike Fuse on a single mesh,
// this is the usual entry point for joining previously separate solids
// (e.g. the pieces of a Subtract result) back into shared-edge neighbors.
func FusePolyhedra(polys []*Polyhedron, distance float64) *Polyhedron {
	if len(polys) == 0 {
		return NewPolyhedron("")
	}

	var positions []vecmath.Vec3
	var faces []FaceInput
	for _, poly := range polys {
		pos, fis := poly.dump()
		offset := len(positions)
		positions = append(positions, pos...)
		for _, fi := range fis {
			nfi := FaceInput{Border: offsetIndices(fi.Border, offset)}
			for _, h := range fi.Holes {
				nfi.Holes = append(nfi.Holes, offsetIndices(h, offset))
			}
			faces = append(faces, nfi)
		}
	}

	out := BuildFromFaces(positions, faces)
	out.Name = "fused"
	out.Fuse(distance)
	return out
}

func offsetIndices(idx []int, offset int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = v + offset
	}
	return out
}
