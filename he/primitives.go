package he

import (
	"math"

	"github.com/flywave/halfedge/vecmath"
)

// goldenRatio is (1+sqrt(5))/2, used by the dodecahedron/icosahedron vertex
// coordinates below.
func goldenRatio() float64 {
	return (1.0 + math.Sqrt(5)) / 2.0
}

// Tetrahedron returns a regular tetrahedron inscribed in the unit sphere.
func Tetrahedron() *Polyhedron {
	a := 1.0 / math.Sqrt(3)
	positions := []vecmath.Vec3{
		{X: a, Y: a, Z: a},
		{X: a, Y: -a, Z: -a},
		{X: -a, Y: a, Z: -a},
		{X: -a, Y: -a, Z: a},
	}
	faces := []FaceInput{
		{Border: []int{0, 1, 2}},
		{Border: []int{0, 3, 1}},
		{Border: []int{0, 2, 3}},
		{Border: []int{1, 3, 2}},
	}
	p := BuildFromFaces(positions, faces)
	p.Name = "Tetrahedron"
	return p
}

// Octahedron returns a regular octahedron inscribed in the unit sphere.
func Octahedron() *Polyhedron {
	positions := []vecmath.Vec3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	faces := []FaceInput{
		{Border: []int{0, 2, 4}},
		{Border: []int{0, 4, 3}},
		{Border: []int{0, 3, 5}},
		{Border: []int{0, 5, 2}},
		{Border: []int{1, 4, 2}},
		{Border: []int{1, 3, 4}},
		{Border: []int{1, 5, 3}},
		{Border: []int{1, 2, 5}},
	}
	p := BuildFromFaces(positions, faces)
	p.Name = "Octahedron"
	return p
}

// Icosahedron returns a regular icosahedron.
func Icosahedron() *Polyhedron {
	phi := goldenRatio()
	positions := []vecmath.Vec3{
		{Y: 1, Z: phi}, {Y: 1, Z: -phi}, {Y: -1, Z: phi}, {Y: -1, Z: -phi},
		{X: 1, Y: phi}, {X: 1, Y: -phi}, {X: -1, Y: phi}, {X: -1, Y: -phi},
		{X: phi, Z: 1}, {X: phi, Z: -1}, {X: -phi, Z: 1}, {X: -phi, Z: -1},
	}
	faces := []FaceInput{
		{Border: []int{0, 8, 2}},
		{Border: []int{0, 4, 8}},
		{Border: []int{0, 6, 4}},
		{Border: []int{0, 10, 6}},
		{Border: []int{0, 2, 10}},
		{Border: []int{3, 9, 1}},
		{Border: []int{3, 5, 9}},
		{Border: []int{3, 7, 5}},
		{Border: []int{3, 11, 7}},
		{Border: []int{3, 1, 11}},
		{Border: []int{2, 7, 10}},
		{Border: []int{2, 5, 7}},
		{Border: []int{2, 8, 5}},
		{Border: []int{8, 9, 5}},
		{Border: []int{8, 4, 9}},
		{Border: []int{4, 1, 9}},
		{Border: []int{4, 6, 1}},
		{Border: []int{6, 11, 1}},
		{Border: []int{6, 10, 11}},
		{Border: []int{10, 7, 11}},
	}
	p := BuildFromFaces(positions, faces)
	p.Name = "Icosahedron"
	return p
}

// Dodecahedron returns a regular dodecahedron.
func Dodecahedron() *Polyhedron {
	phi := goldenRatio()
	inv := 1.0 / phi
	positions := []vecmath.Vec3{
		{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1},
		{X: 0, Y: phi, Z: inv}, {X: 0, Y: phi, Z: -inv}, {X: 0, Y: -phi, Z: inv}, {X: 0, Y: -phi, Z: -inv},
		{X: inv, Y: 0, Z: phi}, {X: inv, Y: 0, Z: -phi}, {X: -inv, Y: 0, Z: phi}, {X: -inv, Y: 0, Z: -phi},
		{X: phi, Y: inv, Z: 0}, {X: phi, Y: -inv, Z: 0}, {X: -phi, Y: inv, Z: 0}, {X: -phi, Y: -inv, Z: 0},
	}
	faces := []FaceInput{
		{Border: []int{0, 8, 4, 14, 12}},
		{Border: []int{0, 12, 2, 17, 16}},
		{Border: []int{0, 16, 1, 9, 8}},
		{Border: []int{1, 16, 17, 3, 13}},
		{Border: []int{1, 13, 15, 5, 9}},
		{Border: []int{2, 12, 14, 6, 10}},
		{Border: []int{2, 10, 11, 3, 17}},
		{Border: []int{3, 11, 7, 15, 13}},
		{Border: []int{4, 8, 9, 5, 18}},
		{Border: []int{4, 18, 19, 6, 14}},
		{Border: []int{5, 15, 7, 19, 18}},
		{Border: []int{6, 19, 7, 11, 10}},
	}
	p := BuildFromFaces(positions, faces)
	p.Name = "Dodecahedron"
	return p
}
