package he

import (
	"log/slog"

	"github.com/flywave/halfedge/vecmath"
)

// KeepMode selects which side of a cutting plane a clip retains.
type KeepMode int

const (
	KeepAbove KeepMode = iota
	KeepBelow
	KeepAllSides
)

// Clip cuts p by plane, keeping the side(s) keep selects. When seamFace is
// set and material is discarded, the exposed seam is capped with a new
// face so the result stays closed if the input was closed. Clip runs
// against an independent scratch copy of p and only commits the result on
// success, so an aborted (ambiguous-seam) clip always leaves p unchanged.
func (p *Polyhedron) Clip(plane vecmath.Plane, keep KeepMode, seamFace bool) bool {
	work := p.Copy()
	statusOf := func(v *vert3) PointStatus { return CalcPointPlaneStatus(plane, v.Position) }

	anyAbove, anyBelow := false, false
	work.verts.Each(func(v *vert3) bool {
		switch statusOf(v) {
		case StatusAbove:
			anyAbove = true
		case StatusBelow:
			anyBelow = true
		}
		return true
	})

	if !anyAbove && !anyBelow {
		slog.Debug("clip: mesh entirely coplanar with cutting plane, no cut")
		return false
	}
	if !anyBelow { // everything Above or Inside: plane misses the mesh on the Below side
		if keep == KeepBelow {
			p.clearAll()
			return true
		}
		return false
	}
	if !anyAbove { // everything Below or Inside
		if keep == KeepAbove {
			p.clearAll()
			return true
		}
		return false
	}

	if keep == KeepAllSides {
		changed := work.splitAllCrossingFaces(plane, statusOf)
		if !changed {
			return false
		}
		p.adoptFrom(work)
		return true
	}

	seamEdges, ok := work.cutAndDiscard(plane, keep, statusOf)
	if !ok {
		slog.Warn("clip: ambiguous seam, mesh left unchanged")
		return false
	}

	if seamFace && len(seamEdges) > 0 {
		if !work.capSeam(seamEdges, plane, keep) {
			slog.Warn("clip: seam did not close into a single cycle, mesh left unchanged")
			return false
		}
	}

	work.UpdateAABB()
	p.adoptFrom(work)
	return true
}

// clearAll empties p in place (used when a plane entirely misses the mesh
// on the side being discarded).
func (p *Polyhedron) clearAll() {
	p.verts.Clear()
	p.edges.Clear()
	p.loops.Clear()
	p.Faces = nil
	p.AABB = vecmath.MakeEmpty()
}

// adoptFrom replaces p's fields with work's, keeping p's identity stable
// for callers holding a *Polyhedron reference.
func (p *Polyhedron) adoptFrom(work *Polyhedron) {
	p.verts = work.verts
	p.edges = work.edges
	p.loops = work.loops
	p.Faces = work.Faces
	p.AABB = work.AABB
	p.nextVertID = work.nextVertID
	p.nextEdgeID = work.nextEdgeID
	p.nextLoopID = work.nextLoopID
	p.nextFaceID = work.nextFaceID
}

// splitAllCrossingFaces implements KeepAllSides: every crossing face is
// split into two sibling faces sharing the seam as an ordinary internal
// edge (the two splitters stay twinned to each other), nothing is deleted.
func (p *Polyhedron) splitAllCrossingFaces(plane vecmath.Plane, statusOf func(*vert3) PointStatus) bool {
	changed := false
	n := len(p.Faces)
	for i := 0; i < n; i++ {
		face := &p.Faces[i]
		if CalcFacePlaneStatus(*face, plane) != FaceCross {
			continue
		}
		chainA, chainB, seamA, seamB, ok := p.splitLoopAtPlane(face.Border, plane)
		if !ok {
			continue
		}
		_, _ = seamA, seamB
		face.Border = chainA
		p.Faces = append(p.Faces, Face{ID: NewTopoID(p.freshFaceID()), Border: chainB})
		changed = true
	}
	return changed
}

// cutAndDiscard splits every crossing face, marks wrong-side vertices
// invalid, cascades the invalidation and sweeps dead records, per the
// clip engine's central algorithm. It returns the surviving kept-side seam
// half-edges (for optional capping) and false if any face's cut did not
// resolve to a clean two-vertex crossing (an ambiguous seam).
func (p *Polyhedron) cutAndDiscard(plane vecmath.Plane, keep KeepMode, statusOf func(*vert3) PointStatus) ([]*edge3, bool) {
	var seamEdges []*edge3

	n := len(p.Faces)
	for i := 0; i < n; i++ {
		face := &p.Faces[i]
		status := CalcFacePlaneStatus(*face, plane)
		if status != FaceCross {
			continue
		}

		chainA, chainB, seamA, seamB, ok := p.splitLoopAtPlane(face.Border, plane)
		if !ok {
			return nil, false
		}

		statusA := loopSideStatus(chainA, statusOf)
		statusB := loopSideStatus(chainB, statusOf)

		var keepLoop *loop3
		var keepSeam *edge3
		switch {
		case statusA == StatusAbove && keep == KeepAbove, statusA == StatusBelow && keep == KeepBelow:
			keepLoop, keepSeam = chainA, seamA
		case statusB == StatusAbove && keep == KeepAbove, statusB == StatusBelow && keep == KeepBelow:
			keepLoop, keepSeam = chainB, seamB
		default:
			return nil, false
		}

		face.Border = keepLoop
		seamEdges = append(seamEdges, keepSeam)
	}

	wrongSide := func(v *vert3) bool {
		s := statusOf(v)
		if keep == KeepAbove {
			return s == StatusBelow
		}
		return s == StatusAbove
	}
	p.verts.Each(func(v *vert3) bool {
		if wrongSide(v) {
			v.Invalid = true
		}
		return true
	})

	p.cascadeInvalid()
	p.repairAfterCascade()
	p.sweepInvalid()

	return seamEdges, true
}

// splitLoopAtPlane finds the (at most) two points where loop crosses
// plane, splitting any straddling edge to introduce them, then divides the
// loop into two sibling loops joined by a fresh twinned splitter pair. It
// returns false if the loop does not cross plane at exactly two points.
func (p *Polyhedron) splitLoopAtPlane(loop *loop3, plane vecmath.Plane) (chainA, chainB *loop3, seamA, seamB *edge3, ok bool) {
	statusOf := func(v *vert3) PointStatus { return CalcPointPlaneStatus(plane, v.Position) }

	origEdges := edgeSliceOf(loop)
	n := len(origEdges)
	if n < 3 {
		return nil, nil, nil, nil, false
	}

	statuses := make([]PointStatus, n)
	for i, e := range origEdges {
		statuses[i] = statusOf(e.Vert)
	}

	var crossingVerts []*vert3
	for i := 0; i < n; i++ {
		cur, next := statuses[i], statuses[(i+1)%n]
		switch {
		case cur == StatusInside:
			crossingVerts = append(crossingVerts, origEdges[i].Vert)
		case (cur == StatusAbove && next == StatusBelow) || (cur == StatusBelow && next == StatusAbove):
			nv := p.splitEdgeByPlane(origEdges[i], plane)
			crossingVerts = append(crossingVerts, nv)
		}
	}

	if len(crossingVerts) != 2 {
		return nil, nil, nil, nil, false
	}

	fullEdges := edgeSliceOf(loop)
	idxA, idxB := -1, -1
	for i, e := range fullEdges {
		if e.Vert == crossingVerts[0] {
			idxA = i
		}
		if e.Vert == crossingVerts[1] {
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxA == idxB {
		return nil, nil, nil, nil, false
	}
	if idxA > idxB {
		idxA, idxB = idxB, idxA
	}

	segA := fullEdges[idxA:idxB]
	segB := append(append([]*edge3{}, fullEdges[idxB:]...), fullEdges[:idxA]...)

	// Each splitter closes its chain by bridging back to the chain's own
	// head, so its origin is the OTHER chain's head vertex (where the
	// chain it closes naturally left off before the cut).
	splitterA := &edge3{ID: loop.ID.Append(p.freshEdgeID()), Vert: segB[0].Vert}
	splitterB := &edge3{ID: loop.ID.Append(p.freshEdgeID()), Vert: segA[0].Vert}
	p.edges.PushBack(splitterA)
	p.edges.PushBack(splitterB)
	_ = MakePair(splitterA, splitterB)

	Connect(segA[len(segA)-1], splitterA)
	Connect(splitterA, segA[0])
	Connect(segB[len(segB)-1], splitterB)
	Connect(splitterB, segB[0])

	BindEdgeLoop(loop, segA[0])
	newLoop := &loop3{ID: loop.ID.Append(p.freshLoopID())}
	p.loops.PushBack(newLoop)
	BindEdgeLoop(newLoop, segB[0])

	return loop, newLoop, splitterA, splitterB, true
}

// loopSideStatus returns the common Above/Below status of a loop's
// non-seam vertices (the seam's own two vertices are Inside by
// construction and carry no side information).
func loopSideStatus(loop *loop3, statusOf func(*vert3) PointStatus) PointStatus {
	result := StatusInside
	EachEdge(loop, func(e *edge3) bool {
		if s := statusOf(e.Vert); s != StatusInside {
			result = s
			return false
		}
		return true
	})
	return result
}

// edgeSliceOf gathers loop's half-edges in cycle order into an ordinary
// slice, snapshotting the Next-chain as it stands at call time.
func edgeSliceOf[T Vector](l *Loop[T]) []*HalfEdge[T] {
	var out []*HalfEdge[T]
	EachEdge(l, func(e *HalfEdge[T]) bool {
		out = append(out, e)
		return true
	})
	return out
}

// splitEdgeByPlane inserts a fresh vertex at e's parametric intersection
// with plane, replacing e with two edges on its loop (and mirroring the
// split on e's twin, if any, so both halves re-pair correctly).
func (p *Polyhedron) splitEdgeByPlane(e *edge3, plane vecmath.Plane) *vert3 {
	origin := e.Vert
	dest := e.Dest()
	ds := plane.GetDistance(origin.Position)
	de := plane.GetDistance(dest.Position)
	t := ds / (ds - de)
	pos := origin.Position.Lerp(dest.Position, t)

	nv := &vert3{ID: origin.ID.Append(p.freshVertID()), Position: pos}
	p.verts.PushBack(nv)

	ne := &edge3{ID: e.ID.Append(p.freshEdgeID()), Vert: nv, Loop: e.Loop}
	p.edges.PushBack(ne)
	oldNext := e.Next
	Connect(e, ne)
	Connect(ne, oldNext)
	nv.Edge = ne

	if twin := e.Twin; twin != nil {
		twinOldNext := twin.Next
		nt := &edge3{ID: twin.ID.Append(p.freshEdgeID()), Vert: nv, Loop: twin.Loop}
		p.edges.PushBack(nt)
		Connect(twin, nt)
		Connect(nt, twinOldNext)

		DelPair(e)
		_ = MakePair(e, nt)
		_ = MakePair(ne, twin)
	}

	return nv
}

// cascadeInvalid propagates invalidity from vertices to their incident
// edges and from edges to their loops, repeating until a pass makes no
// change, per the clip engine's invalidation cascade.
func (p *Polyhedron) cascadeInvalid() {
	for {
		changed := false

		p.edges.Each(func(e *edge3) bool {
			if !e.Invalid && e.Vert.Invalid {
				e.Invalid = true
				changed = true
			}
			return true
		})

		p.loops.Each(func(l *loop3) bool {
			if l.Invalid {
				return true
			}
			hasInvalid := false
			EachEdge(l, func(e *edge3) bool {
				if e.Invalid {
					hasInvalid = true
					return false
				}
				return true
			})
			if hasInvalid {
				l.Invalid = true
				changed = true
				EachEdge(l, func(e *edge3) bool {
					if !e.Invalid {
						e.Invalid = true
					}
					return true
				})
			}
			return true
		})

		if !changed {
			return
		}
	}
}

// repairAfterCascade reassigns representative pointers and severs twin
// links that now point at invalid records, and drops invalid Face
// records, leaving only the final sweep (deleting dead vertices/edges/
// loops from their lists) to the caller.
func (p *Polyhedron) repairAfterCascade() {
	needsRecascade := false

	p.verts.Each(func(v *vert3) bool {
		if v.Invalid || v.Edge == nil || !v.Edge.Invalid {
			return true
		}
		if replacement := findSurvivingIncidentEdge(v); replacement != nil {
			v.Edge = replacement
		} else {
			v.Invalid = true
			needsRecascade = true
		}
		return true
	})
	if needsRecascade {
		p.cascadeInvalid()
	}

	p.edges.Each(func(e *edge3) bool {
		if !e.Invalid && e.Twin != nil && e.Twin.Invalid {
			e.Twin = nil
		}
		return true
	})

	p.loops.Each(func(l *loop3) bool {
		if l.Invalid || l.Edge == nil || !l.Edge.Invalid {
			return true
		}
		EachEdge(l, func(e *edge3) bool {
			if !e.Invalid {
				l.Edge = e
				return false
			}
			return true
		})
		return true
	})

	kept := p.Faces[:0]
	for _, f := range p.Faces {
		if f.Border == nil || f.Border.Invalid {
			continue
		}
		bad := false
		var holes []*loop3
		for _, h := range f.Holes {
			if h == nil || h.Invalid {
				bad = true
				break
			}
			holes = append(holes, h)
		}
		if bad {
			continue
		}
		f.Holes = holes
		kept = append(kept, f)
	}
	p.Faces = kept
}

// findSurvivingIncidentEdge walks the half-edges incident to v
// (v.Edge.Twin.Next, repeated) looking for one that is not invalid.
func findSurvivingIncidentEdge(v *vert3) *edge3 {
	start := v.Edge
	cur := start
	for i := 0; i < 10000; i++ {
		if !cur.Invalid {
			return cur
		}
		if cur.Twin == nil {
			return nil
		}
		cur = cur.Twin.Next
		if cur == start {
			return nil
		}
	}
	return nil
}

// sweepInvalid removes every invalid vertex, edge and loop from p's lists.
func (p *Polyhedron) sweepInvalid() {
	var deadVerts []*vert3
	p.verts.Each(func(v *vert3) bool {
		if v.Invalid {
			deadVerts = append(deadVerts, v)
		}
		return true
	})
	for _, v := range deadVerts {
		p.verts.Remove(v)
	}

	var deadEdges []*edge3
	p.edges.Each(func(e *edge3) bool {
		if e.Invalid {
			deadEdges = append(deadEdges, e)
		}
		return true
	})
	for _, e := range deadEdges {
		p.edges.Remove(e)
	}

	var deadLoops []*loop3
	p.loops.Each(func(l *loop3) bool {
		if l.Invalid {
			deadLoops = append(deadLoops, l)
		}
		return true
	})
	for _, l := range deadLoops {
		p.loops.Remove(l)
	}
}

// capSeam stitches the surviving kept-side seam edges into a ring (by
// matching each edge's destination to the next edge's origin) and builds
// a new cap face bounding the exposed hole, pairing each cap edge with its
// seam edge. Returns false if the seam edges do not close into a single
// cycle.
func (p *Polyhedron) capSeam(seamEdges []*edge3, plane vecmath.Plane, keep KeepMode) bool {
	byOrigin := make(map[*vert3]*edge3, len(seamEdges))
	for _, e := range seamEdges {
		if e.Invalid {
			continue
		}
		byOrigin[e.Vert] = e
	}
	if len(byOrigin) == 0 {
		return false
	}

	var ordered []*edge3
	start := seamEdges[0]
	cur := start
	seen := make(map[*edge3]bool)
	for {
		if seen[cur] {
			return false
		}
		seen[cur] = true
		ordered = append(ordered, cur)
		next, ok := byOrigin[cur.Dest()]
		if !ok {
			return false
		}
		cur = next
		if cur == start {
			break
		}
	}
	if len(ordered) != len(byOrigin) {
		return false
	}

	capLoop := &loop3{ID: NewTopoID(p.freshLoopID())}
	p.loops.PushBack(capLoop)

	capEdges := make([]*edge3, len(ordered))
	for i, seam := range ordered {
		c := &edge3{ID: seam.ID.Append(p.freshEdgeID()), Vert: seam.Dest()}
		p.edges.PushBack(c)
		capEdges[i] = c
		DelPair(seam)
		_ = MakePair(seam, c)
	}
	// Cap walks the opposite direction of the seam, so each cap edge's
	// Next is the previous seam position's cap edge.
	for i, c := range capEdges {
		prev := capEdges[(i-1+len(capEdges))%len(capEdges)]
		Connect(c, prev)
	}
	BindEdgeLoop(capLoop, capEdges[0])

	// The cap faces out of the kept material: away from the plane's normal
	// when keeping the Above side, along it when keeping the Below side.
	capNormal := CalcLoopNorm(capLoop)
	desired := plane.Normal.Scale(-1)
	if keep == KeepBelow {
		desired = plane.Normal
	}
	if capNormal.Dot(desired) < 0 {
		FlipLoop(capLoop)
	}

	p.Faces = append(p.Faces, Face{ID: NewTopoID(p.freshFaceID()), Border: capLoop})
	return true
}
