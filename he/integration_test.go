package he_test

import (
	"testing"

	"github.com/flywave/halfedge/he"
	"github.com/flywave/halfedge/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unitCube returns a closed unit cube centered at the origin, side 2.
func unitCube() *he.Polyhedron {
	return he.BuildFromCube(vecmath.Cube{
		Min: vecmath.Vec3{X: -1, Y: -1, Z: -1},
		Max: vecmath.Vec3{X: 1, Y: 1, Z: 1},
	})
}

// TestScenario1BuildAndDump covers spec scenario 1: build a unit cube from
// 8 corners and 6 right-hand faces, dump it back, and check the shape of
// the resulting graph.
func TestScenario1BuildAndDump(t *testing.T) {
	t.Parallel()

	p := unitCube()
	require.True(t, p.IsClosed())

	assert.Equal(t, 8, p.Verts().Size())
	assert.Equal(t, 24, p.Edges().Size())
	assert.Equal(t, 6, p.Loops().Size())
	assert.Len(t, p.Faces, 6)

	assert.InDelta(t, -1, p.AABB.Min.X, 1e-9)
	assert.InDelta(t, -1, p.AABB.Min.Y, 1e-9)
	assert.InDelta(t, -1, p.AABB.Min.Z, 1e-9)
	assert.InDelta(t, 1, p.AABB.Max.X, 1e-9)
	assert.InDelta(t, 1, p.AABB.Max.Y, 1e-9)
	assert.InDelta(t, 1, p.AABB.Max.Z, 1e-9)

	positions, faces := p.Dump()
	assert.Len(t, positions, 8)
	assert.Len(t, faces, 6)
	for _, fi := range faces {
		assert.Len(t, fi.Border, 4)
	}
}

// TestScenario2ClipKeepAboveCapped covers spec scenario 2: clip the unit
// cube at z=0, KeepAbove, capped. The result should be the top half of the
// cube: a closed polyhedron bounded below by a new square cap at z=0.
func TestScenario2ClipKeepAboveCapped(t *testing.T) {
	t.Parallel()

	p := unitCube()
	plane := vecmath.Build(vecmath.Vec3{Z: 1}, vecmath.Vec3{})

	ok := p.Clip(plane, he.KeepAbove, true)
	require.True(t, ok)
	require.True(t, p.IsClosed())

	assert.Len(t, p.Faces, 6)
	assert.Equal(t, 8, p.Verts().Size())

	assert.InDelta(t, -1, p.AABB.Min.X, 1e-9)
	assert.InDelta(t, -1, p.AABB.Min.Y, 1e-9)
	assert.InDelta(t, 0, p.AABB.Min.Z, 1e-9)
	assert.InDelta(t, 1, p.AABB.Max.X, 1e-9)
	assert.InDelta(t, 1, p.AABB.Max.Y, 1e-9)
	assert.InDelta(t, 1, p.AABB.Max.Z, 1e-9)
}

// TestScenario2ClipMissMeshUnchanged covers the boundary behavior: a plane
// that misses the mesh entirely, with the whole mesh on the kept side,
// leaves it provably unchanged.
func TestScenario2ClipMissMeshUnchanged(t *testing.T) {
	t.Parallel()

	p := unitCube()
	before := p.Stats()

	// Plane far below the mesh: everything is Above it.
	plane := vecmath.Build(vecmath.Vec3{Z: 1}, vecmath.Vec3{Z: -5})
	ok := p.Clip(plane, he.KeepAbove, true)

	assert.False(t, ok)
	assert.Equal(t, before, p.Stats())
}

// TestScenario3SubtractUnitCube covers spec scenario 3: subtracting a
// corner sub-cube [0,1]^3 from the unit cube [-1,1]^3 yields fragments
// that are each closed and together cover 7/8 of the original volume.
func TestScenario3SubtractUnitCube(t *testing.T) {
	t.Parallel()

	a := unitCube()
	b := he.BuildFromCube(vecmath.Cube{
		Min: vecmath.Vec3{X: 0, Y: 0, Z: 0},
		Max: vecmath.Vec3{X: 1, Y: 1, Z: 1},
	})

	fragments := he.Subtract(a, b)
	require.NotEmpty(t, fragments)

	totalVolume := 0.0
	for _, f := range fragments {
		require.True(t, f.IsClosed())
		totalVolume += approxVolume(f)
	}
	assert.InDelta(t, 7.0, totalVolume, 0.25)
}

// TestScenario4ExtrudeTopFace covers spec scenario 4: extruding the cube's
// top face outward by 1 with front+side but no back cap grows 4 new quad
// side faces and 4 new vertices, removes the old top face, and the mesh
// stays closed.
func TestScenario4ExtrudeTopFace(t *testing.T) {
	t.Parallel()

	p := unitCube()
	before := p.Verts().Size()

	var topID he.TopoID
	for _, f := range p.Faces {
		n := he.CalcLoopNorm(f.Border)
		if n.Z > 0.5 {
			topID = f.ID
		}
	}
	require.True(t, topID.IsValid())

	ok := p.Extrude(1.0, []he.TopoID{topID}, true, false, true)
	require.True(t, ok)
	require.True(t, p.IsClosed())

	assert.Equal(t, before+4, p.Verts().Size())
	assert.Len(t, p.Faces, 6+4)
}

// TestScenario5FuseCoincidentCubes covers spec scenario 5: fusing two
// identical coincident cubes (16 raw vertices, 12 faces) down to 8 shared
// vertices, and checks containment afterward.
func TestScenario5FuseCoincidentCubes(t *testing.T) {
	t.Parallel()

	box := vecmath.Cube{Min: vecmath.Vec3{X: -1, Y: -1, Z: -1}, Max: vecmath.Vec3{X: 1, Y: 1, Z: 1}}
	a := he.BuildFromCube(box)
	b := he.BuildFromCube(box)

	fused := he.FusePolyhedra([]*he.Polyhedron{a, b}, 1e-3)

	assert.Equal(t, 8, fused.Verts().Size())
	assert.Len(t, fused.Faces, 12)
	assert.True(t, fused.IsContain(vecmath.Vec3{}))
}

// TestScenario6PolygonOffsetKeepAll covers spec scenario 6: offsetting a
// unit square by +0.1 with KeepAll produces a border at +-0.5, a hole at
// +-0.4, and an extra island face.
func TestScenario6PolygonOffsetKeepAll(t *testing.T) {
	t.Parallel()

	positions := []vecmath.Vec2{
		{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5},
	}
	poly := he.BuildPolygonFromFaces(positions, []he.FaceInput2D{{Border: []int{0, 1, 2, 3}}})

	changed := poly.Offset(0.1, he.KeepAll)
	require.True(t, changed)

	require.Len(t, poly.Faces, 2)
	bordered := poly.Faces[0]
	assert.Len(t, bordered.Holes, 1)

	borderVerts := he.LoopToVertices(bordered.Border)
	for _, v := range borderVerts {
		assert.InDelta(t, 0.6, maxAbs(v), 1e-6)
	}

	holeVerts := he.LoopToVertices(bordered.Holes[0])
	for _, v := range holeVerts {
		assert.InDelta(t, 0.5, maxAbs(v), 1e-6)
	}

	island := poly.Faces[1]
	islandVerts := he.LoopToVertices(island.Border)
	for _, v := range islandVerts {
		assert.InDelta(t, 0.5, maxAbs(v), 1e-6)
	}
}

func maxAbs(v vecmath.Vec2) float64 {
	x, y := v.X, v.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	if x > y {
		return x
	}
	return y
}

// approxVolume estimates a closed polyhedron's volume via the divergence
// theorem (signed sum of tetrahedra from the origin to each face).
func approxVolume(p *he.Polyhedron) float64 {
	vol := 0.0
	for _, f := range p.Faces {
		verts := he.LoopToVertices(f.Border)
		if len(verts) < 3 {
			continue
		}
		origin := verts[0]
		for i := 1; i+1 < len(verts); i++ {
			a := verts[i].Sub(origin)
			b := verts[i+1].Sub(origin)
			vol += origin.Dot(a.Cross(b)) / 6.0
		}
	}
	if vol < 0 {
		vol = -vol
	}
	return vol
}
