package he_test

import (
	"testing"

	"github.com/flywave/halfedge/he"
	"github.com/flywave/halfedge/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForkProducesTwoClosedHalves(t *testing.T) {
	p := unitCube()
	plane := vecmath.Build(vecmath.Vec3{Z: 1}, vecmath.Vec3{})

	above, below, ok := p.Fork(plane)
	require.True(t, ok)
	require.True(t, above.IsClosed())
	require.True(t, below.IsClosed())

	// The original mesh is untouched; Fork works on copies.
	assert.Equal(t, 8, p.Verts().Size())
	assert.True(t, above.IsContain(vecmath.Vec3{Z: 0.5}))
	assert.True(t, below.IsContain(vecmath.Vec3{Z: -0.5}))
}

func TestForkThenJoinRecoversClosedSolid(t *testing.T) {
	p := unitCube()
	plane := vecmath.Build(vecmath.Vec3{Z: 1}, vecmath.Vec3{})

	above, below, ok := p.Fork(plane)
	require.True(t, ok)

	rejoined := he.Join(above, below, 1e-3)
	assert.True(t, rejoined.IsClosed())
	// Joining doesn't collapse the cut back to the original 8-vertex cube:
	// the seam left 4 vertices at the midpoint of each vertical edge, so
	// each of the 4 side faces stays split into an upper and lower quad.
	// 4 top + 4 seam + 4 bottom = 12 verts; 4 upper + 4 lower side quads
	// plus the untouched top and bottom faces = 10 faces.
	assert.Equal(t, 12, rejoined.Verts().Size())
	assert.Len(t, rejoined.Faces, 10)
	assert.True(t, rejoined.IsContain(vecmath.Vec3{Z: 0}))
}

func TestForkMissingPlaneFails(t *testing.T) {
	p := unitCube()
	missPlane := vecmath.Build(vecmath.Vec3{Z: 1}, vecmath.Vec3{Z: 5})

	_, _, ok := p.Fork(missPlane)
	assert.False(t, ok)
}
