package he_test

import (
	"errors"
	"testing"

	"github.com/flywave/halfedge/he"
	"github.com/flywave/halfedge/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleEdges() (*he.Loop[vecmath.Vec3], []*he.HalfEdge[vecmath.Vec3]) {
	verts := []*he.Vertex[vecmath.Vec3]{
		{ID: he.NewTopoID(0), Position: vecmath.Vec3{X: 0}},
		{ID: he.NewTopoID(1), Position: vecmath.Vec3{X: 1}},
		{ID: he.NewTopoID(2), Position: vecmath.Vec3{Y: 1}},
	}
	edges := make([]*he.HalfEdge[vecmath.Vec3], 3)
	for i, v := range verts {
		edges[i] = &he.HalfEdge[vecmath.Vec3]{ID: he.NewTopoID(uint32(10 + i)), Vert: v}
	}
	for i := range edges {
		he.Connect(edges[i], edges[(i+1)%3])
	}
	loop := &he.Loop[vecmath.Vec3]{ID: he.NewTopoID(100)}
	he.BindEdgeLoop(loop, edges[0])
	return loop, edges
}

func TestConnectAndDest(t *testing.T) {
	_, edges := triangleEdges()

	assert.Same(t, edges[1], edges[0].Next)
	assert.Same(t, edges[0], edges[1].Prev)
	assert.Same(t, edges[1].Vert, edges[0].Dest())
}

func TestBindEdgeLoopSetsEveryMember(t *testing.T) {
	loop, edges := triangleEdges()

	for _, e := range edges {
		assert.Same(t, loop, e.Loop)
	}
	assert.Same(t, edges[0], loop.Edge)
}

func TestEachEdgeWalksOnceAndStops(t *testing.T) {
	loop, edges := triangleEdges()

	var seen []*he.HalfEdge[vecmath.Vec3]
	he.EachEdge(loop, func(e *he.HalfEdge[vecmath.Vec3]) bool {
		seen = append(seen, e)
		return true
	})
	assert.Equal(t, edges, seen)

	var count int
	he.EachEdge(loop, func(*he.HalfEdge[vecmath.Vec3]) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestMakePairAndDelPair(t *testing.T) {
	a := &he.HalfEdge[vecmath.Vec3]{ID: he.NewTopoID(1)}
	b := &he.HalfEdge[vecmath.Vec3]{ID: he.NewTopoID(2)}

	require.NoError(t, he.MakePair(a, b))
	assert.Same(t, b, a.Twin)
	assert.Same(t, a, b.Twin)

	he.DelPair(a)
	assert.Nil(t, a.Twin)
	assert.Nil(t, b.Twin)
}

func TestMakePairRejectsDistinctExistingTwin(t *testing.T) {
	a := &he.HalfEdge[vecmath.Vec3]{ID: he.NewTopoID(1)}
	b := &he.HalfEdge[vecmath.Vec3]{ID: he.NewTopoID(2)}
	c := &he.HalfEdge[vecmath.Vec3]{ID: he.NewTopoID(3)}

	require.NoError(t, he.MakePair(a, b))
	err := he.MakePair(a, c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, he.ErrAlreadyPaired))
	assert.Same(t, b, a.Twin)
}

func TestMakePairIsIdempotentForSamePair(t *testing.T) {
	a := &he.HalfEdge[vecmath.Vec3]{ID: he.NewTopoID(1)}
	b := &he.HalfEdge[vecmath.Vec3]{ID: he.NewTopoID(2)}

	require.NoError(t, he.MakePair(a, b))
	require.NoError(t, he.MakePair(a, b))
}

func TestDelPairOnUnpairedEdgeIsNoop(t *testing.T) {
	a := &he.HalfEdge[vecmath.Vec3]{ID: he.NewTopoID(1)}
	assert.NotPanics(t, func() { he.DelPair(a) })
}
