package he

import "github.com/flywave/halfedge/vecmath"

// Fork is the split variant of Clip: instead of keeping one side and
// discarding the other, it returns both halves as independent, separately
// capped polyhedra. Returns false (with both results nil) if either half's
// clip aborts (e.g. an ambiguous seam on a non-convex cut).
func (p *Polyhedron) Fork(plane vecmath.Plane) (above, below *Polyhedron, ok bool) {
	above = p.Copy()
	below = p.Copy()

	if !above.Clip(plane, KeepAbove, true) {
		return nil, nil, false
	}
	if !below.Clip(plane, KeepBelow, true) {
		return nil, nil, false
	}
	return above, below, true
}

// Join re-sews two polyhedra produced by Fork back into one mesh. Each
// half's seam cap is the last Face capSeam appended during its Clip, so
// Join drops exactly that face from each side before concatenating the
// rest; the cap's own border edges and loop vanish with it. What's left is
// each half's cut-adjacent faces, now exposing the edges that used to
// border the cap as a twinless boundary. Fuse then welds the two halves'
// coincident seam vertices (within distance) and re-derives twin pairing
// across them — the same vertex-identity mechanism behind an ordinary
// Fuse — which is exactly what turns the two exposed boundaries back into
// shared interior edges instead of leaving the caps behind as two
// redundant faces.
func Join(a, b *Polyhedron, distance float64) *Polyhedron {
	posA, facesA := a.dump()
	posB, facesB := b.dump()
	facesA = dropLastFace(facesA) // a's seam cap
	facesB = dropLastFace(facesB) // b's seam cap

	offset := len(posA)
	positions := append(posA, posB...)

	// Fresh FaceInputs (no ID carried over) the same way FusePolyhedra
	// builds its merged face list, since a's and b's own Face TopoIDs may
	// collide once both are fed into one BuildFromFaces call.
	faces := make([]FaceInput, 0, len(facesA)+len(facesB))
	for _, fi := range facesA {
		nfi := FaceInput{Border: fi.Border}
		nfi.Holes = append(nfi.Holes, fi.Holes...)
		faces = append(faces, nfi)
	}
	for _, fi := range facesB {
		nfi := FaceInput{Border: offsetIndices(fi.Border, offset)}
		for _, h := range fi.Holes {
			nfi.Holes = append(nfi.Holes, offsetIndices(h, offset))
		}
		faces = append(faces, nfi)
	}

	out := BuildFromFaces(positions, faces)
	out.Name = "joined"
	out.Fuse(distance)
	return out
}

// dropLastFace removes the final entry of faces, the convention Fork's
// capSeam relies on (the cap is always the most recently appended Face).
func dropLastFace(faces []FaceInput) []FaceInput {
	if len(faces) == 0 {
		return faces
	}
	return faces[:len(faces)-1]
}
