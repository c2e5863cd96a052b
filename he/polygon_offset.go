package he

import (
	"math"

	"github.com/flywave/halfedge/vecmath"
)

// OffsetKeep selects which material an Offset keeps.
type OffsetKeep int

const (
	// KeepInside moves every loop's vertices to the offset positions.
	KeepInside OffsetKeep = iota
	// KeepBorder keeps the original border (displacing it outward for
	// distance > 0) and adds the offset ring as a new hole.
	KeepBorder
	// KeepAll behaves like KeepBorder and additionally, for distance > 0,
	// emits the annulus's inner island as its own face.
	KeepAll
)

// Offset applies a miter offset of the given signed distance to every face
// of p, per keep. Returns false (no-op) for a zero distance.
func (p *Polygon) Offset(distance float64, keep OffsetKeep) bool {
	if distance == 0 {
		return false
	}

	changed := false
	for i := range p.Faces {
		f := &p.Faces[i]

		switch keep {
		case KeepInside:
			offsetLoopInPlace(f.Border, distance)
			for _, h := range f.Holes {
				offsetLoopInPlace(h, distance)
			}
			changed = true

		case KeepBorder:
			p.offsetKeepBorder(f, distance)
			changed = true

		case KeepAll:
			innerPositions := LoopToVertices(f.Border)
			p.offsetKeepBorder(f, distance)
			if distance > 0 {
				p.addIslandFace(innerPositions)
			}
			changed = true
		}
	}

	if changed {
		p.UpdateBounds()
	}
	return changed
}

// offsetKeepBorder implements the KeepBorder mode for a single face: for
// distance > 0 the original border is cloned onto fresh vertices as a new
// inward hole (flipped to hole winding) and then the border itself is
// displaced outward, leaving the hole at the original positions; for
// distance < 0 the offset ring becomes a new hole and the border is left
// untouched.
func (p *Polygon) offsetKeepBorder(f *Face2, distance float64) {
	if distance > 0 {
		clone := &loop2{ID: NewTopoID(p.freshLoopID())}
		p.loops.PushBack(clone)
		CloneLoopFreshVerts(f.Border, clone, &p.nextEdgeID, &p.nextVertID)
		EachEdge(clone, func(e *edge2) bool {
			p.verts.PushBack(e.Vert)
			p.edges.PushBack(e)
			return true
		})
		FlipLoop(clone)
		f.Holes = append(f.Holes, clone)
		offsetLoopInPlace(f.Border, distance)
		return
	}

	hole := p.buildOffsetLoop(f.Border, distance)
	f.Holes = append(f.Holes, hole)
}

// addIslandFace appends a new face whose border is the inner ring at
// innerPositions, built in the given order (so positions taken from a CCW
// border give a CCW island border, not hole winding).
func (p *Polygon) addIslandFace(innerPositions []vecmath.Vec2) {
	loop := p.buildLoopFromPositions(innerPositions)
	p.Faces = append(p.Faces, Face2{
		ID:     NewTopoID(p.freshFaceID()),
		Border: loop,
	})
}

// offsetPositions computes the offset position of every vertex of loop, in
// loop order, without mutating the mesh.
func offsetPositions(loop *loop2, distance float64) []vecmath.Vec2 {
	verts := LoopToVertices(loop)
	n := len(verts)
	out := make([]vecmath.Vec2, n)
	for i := range verts {
		prev := verts[(i-1+n)%n]
		curr := verts[i]
		next := verts[(i+1)%n]
		out[i] = calcOffsetPoint(curr, prev, next, distance)
	}
	return out
}

// offsetLoopInPlace replaces every vertex position on loop with its offset
// position.
func offsetLoopInPlace(loop *loop2, distance float64) {
	positions := offsetPositions(loop, distance)
	i := 0
	EachEdge(loop, func(e *edge2) bool {
		e.Vert.Position = positions[i]
		i++
		return true
	})
}

// buildOffsetLoop computes loop's offset ring and builds it as a new,
// disconnected loop of fresh vertices and edges, flipped to hole winding.
func (p *Polygon) buildOffsetLoop(loop *loop2, distance float64) *loop2 {
	positions := offsetPositions(loop, distance)
	out := p.buildLoopFromPositions(positions)
	FlipLoop(out)
	return out
}

// buildLoopFromPositions allocates a fresh vertex and edge per position and
// connects them into a new loop, in the given order (CCW if positions are).
func (p *Polygon) buildLoopFromPositions(positions []vecmath.Vec2) *loop2 {
	edges := make([]*edge2, len(positions))
	for i, pos := range positions {
		v := &vert2{ID: NewTopoID(p.freshVertID()), Position: pos}
		p.verts.PushBack(v)
		e := &edge2{ID: NewTopoID(p.freshEdgeID()), Vert: v}
		v.Edge = e
		edges[i] = e
		p.edges.PushBack(e)
	}
	for i, e := range edges {
		Connect(e, edges[(i+1)%len(edges)])
	}
	loop := &loop2{ID: NewTopoID(p.freshLoopID())}
	p.loops.PushBack(loop)
	BindEdgeLoop(loop, edges[0])
	return loop
}

// calcOffsetPoint computes the miter-offset position of curr, given its
// neighbors prev and next on the loop: the inward normal bisects the
// interior angle at curr, and the offset point slides along it scaled by
// 1/cos(angle/2) so a straight run of the loop stays exactly distance away.
func calcOffsetPoint(curr, prev, next vecmath.Vec2, distance float64) vecmath.Vec2 {
	angle := vecmath.AngleAt(curr, prev, next)
	dir := prev.Sub(curr).Rotate(-angle / 2).Normalize()
	norm := dir.Scale(-1)
	return curr.Add(norm.Scale(distance / math.Cos(angle/2)))
}
