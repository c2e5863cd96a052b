package he_test

import (
	"testing"

	"github.com/flywave/halfedge/he"
	"github.com/flywave/halfedge/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromPolylinesOpenChain(t *testing.T) {
	positions := []vecmath.Vec3{{X: 0}, {X: 1}, {X: 2}}
	pl := he.BuildFromPolylines(positions, []he.PolylineInput{{Indices: []int{0, 1, 2}}})

	require.Equal(t, 1, pl.Lines().Size())
	assert.Equal(t, 3, pl.Verts().Size())
	assert.Equal(t, 2, pl.Edges().Size())
}

func TestBuildFromPolylinesSkipsShortChains(t *testing.T) {
	positions := []vecmath.Vec3{{X: 0}, {X: 1}}
	pl := he.BuildFromPolylines(positions, []he.PolylineInput{{Indices: []int{0}}})

	assert.Equal(t, 0, pl.Lines().Size())
}

func TestPolylineFuseCollapsesNearDuplicates(t *testing.T) {
	positions := []vecmath.Vec3{{X: 0}, {X: 1}, {X: 1.0001}, {X: 2}}
	pl := he.BuildFromPolylines(positions, []he.PolylineInput{{Indices: []int{0, 1, 2, 3}}})

	removed := pl.Fuse(1e-3)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 3, pl.Verts().Size())
}

func TestPolylineFuseNoopWhenNothingClose(t *testing.T) {
	positions := []vecmath.Vec3{{X: 0}, {X: 1}, {X: 2}}
	pl := he.BuildFromPolylines(positions, []he.PolylineInput{{Indices: []int{0, 1, 2}}})

	removed := pl.Fuse(1e-3)
	assert.Equal(t, 0, removed)
	assert.Equal(t, 3, pl.Verts().Size())
}

func TestPolylineUniquePointsSplitsSharedVertex(t *testing.T) {
	positions := []vecmath.Vec3{{X: 0}, {X: 1}, {X: 2}}
	pl := he.BuildFromPolylines(positions, []he.PolylineInput{
		{Indices: []int{0, 1}},
		{Indices: []int{1, 2}},
	})
	before := pl.Verts().Size()

	pl.UniquePoints()

	assert.Greater(t, pl.Verts().Size(), before)
}
