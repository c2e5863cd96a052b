package he_test

import (
	"testing"

	"github.com/flywave/halfedge/he"
	"github.com/flywave/halfedge/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillOnClosedMeshIsNoop(t *testing.T) {
	p := unitCube()
	assert.Equal(t, 0, p.Fill())
	assert.True(t, p.IsClosed())
}

func TestFillClosesGapLeftByUncappedClip(t *testing.T) {
	p := unitCube()
	plane := vecmath.Build(vecmath.Vec3{Z: 1}, vecmath.Vec3{})

	// Clip without a seam cap leaves the cut edge twinless.
	ok := p.Clip(plane, he.KeepAbove, false)
	require.True(t, ok)
	assert.False(t, p.IsClosed())

	closed := p.Fill()
	assert.Equal(t, 1, closed)
	assert.True(t, p.IsClosed())
}

func TestFuseMergesCoincidentVertices(t *testing.T) {
	box := vecmath.Cube{Min: vecmath.Vec3{X: -1, Y: -1, Z: -1}, Max: vecmath.Vec3{X: 1, Y: 1, Z: 1}}
	a := he.BuildFromCube(box)
	b := he.BuildFromCube(box)

	fused := he.FusePolyhedra([]*he.Polyhedron{a, b}, 1e-3)
	merged := fused.Fuse(1e-3)

	assert.Equal(t, 0, merged) // already fused by FusePolyhedra
	assert.Equal(t, 8, fused.Verts().Size())
	assert.True(t, fused.IsClosed())
}

func TestFuseNoopWhenNothingCoincides(t *testing.T) {
	p := unitCube()
	merged := p.Fuse(1e-6)
	assert.Equal(t, 0, merged)
	assert.Equal(t, 8, p.Verts().Size())
}

func TestUniquePointsSplitsSharedVertex(t *testing.T) {
	p := unitCube()
	before := p.Verts().Size()

	p.UniquePoints()

	// Every cube vertex is shared by three faces' borders, so each one
	// should be split into three distinct records.
	assert.Greater(t, p.Verts().Size(), before)
}

func TestFusePolyhedraEmptyInput(t *testing.T) {
	out := he.FusePolyhedra(nil, 1e-3)
	assert.Equal(t, 0, out.Verts().Size())
	assert.Empty(t, out.Faces)
}
