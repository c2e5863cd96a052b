package he_test

import (
	"testing"

	"github.com/flywave/halfedge/he"
	"github.com/flywave/halfedge/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare() *he.Polygon {
	positions := []vecmath.Vec2{
		{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5},
	}
	return he.BuildPolygonFromFaces(positions, []he.FaceInput2D{{Border: []int{0, 1, 2, 3}}})
}

func TestOffsetZeroDistanceIsNoop(t *testing.T) {
	poly := unitSquare()
	changed := poly.Offset(0, he.KeepAll)
	assert.False(t, changed)
	assert.Len(t, poly.Faces, 1)
}

func TestOffsetKeepInsideMovesBorderInPlace(t *testing.T) {
	poly := unitSquare()
	changed := poly.Offset(-0.1, he.KeepInside)
	require.True(t, changed)
	require.Len(t, poly.Faces, 1)

	verts := he.LoopToVertices(poly.Faces[0].Border)
	for _, v := range verts {
		assert.InDelta(t, 0.4, maxAbs(v), 1e-6)
	}
}

func TestOffsetKeepBorderOutwardAddsInwardHole(t *testing.T) {
	poly := unitSquare()
	changed := poly.Offset(0.1, he.KeepBorder)
	require.True(t, changed)
	require.Len(t, poly.Faces, 1)

	f := poly.Faces[0]
	require.Len(t, f.Holes, 1)

	borderVerts := he.LoopToVertices(f.Border)
	for _, v := range borderVerts {
		assert.InDelta(t, 0.6, maxAbs(v), 1e-6)
	}
	holeVerts := he.LoopToVertices(f.Holes[0])
	for _, v := range holeVerts {
		assert.InDelta(t, 0.5, maxAbs(v), 1e-6)
	}
}

func TestOffsetKeepBorderInwardAddsOffsetHoleOnly(t *testing.T) {
	poly := unitSquare()
	changed := poly.Offset(-0.1, he.KeepBorder)
	require.True(t, changed)
	require.Len(t, poly.Faces, 1)

	f := poly.Faces[0]
	require.Len(t, f.Holes, 1)

	// The original border is untouched for distance < 0.
	borderVerts := he.LoopToVertices(f.Border)
	for _, v := range borderVerts {
		assert.InDelta(t, 0.5, maxAbs(v), 1e-6)
	}
}
