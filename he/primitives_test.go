package he_test

import (
	"testing"

	"github.com/flywave/halfedge/he"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatonicSolidsAreClosed(t *testing.T) {
	solids := []struct {
		name         string
		poly         *he.Polyhedron
		verts, faces int
	}{
		{"Tetrahedron", he.Tetrahedron(), 4, 4},
		{"Octahedron", he.Octahedron(), 6, 8},
		{"Icosahedron", he.Icosahedron(), 12, 20},
		{"Dodecahedron", he.Dodecahedron(), 20, 12},
	}

	for _, s := range solids {
		t.Run(s.name, func(t *testing.T) {
			require.True(t, s.poly.IsClosed())
			assert.Equal(t, s.verts, s.poly.Verts().Size())
			assert.Len(t, s.poly.Faces, s.faces)
		})
	}
}
