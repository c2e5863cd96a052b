// Package halfedge implements a half-edge (doubly-connected edge list) kernel
// for editing 2D polygons and 3D polyhedra: building meshes from raw
// vertex/face data, clipping and boolean combination against planes,
// extrusion, seam repair and point containment. The kernel itself lives in
// the he subpackage; this root package exists only to carry the module's
// top-level documentation.
//
// # Basic Usage
//
// Build a closed polyhedron from a box and cut it in half:
//
//	cube := he.BuildFromCube(vecmath.Cube{
//		Min: vecmath.Vec3{X: -1, Y: -1, Z: -1},
//		Max: vecmath.Vec3{X: 1, Y: 1, Z: 1},
//	})
//	plane := vecmath.Build(vecmath.Vec3{Z: 1}, vecmath.Vec3{})
//	ok := cube.Clip(plane, he.KeepAbove, true)
//	fmt.Println(ok, cube.Stats())
//
// # Building
//
// he.BuildFromFaces builds an arbitrary closed or open mesh from a flat
// position array and a set of ordered face-index lists, twinning
// half-edges whose reverse endpoint pair appears elsewhere in the same
// call. he.BuildFromCube is a convenience wrapper over an axis-aligned box.
// he.Tetrahedron/Octahedron/Icosahedron/Dodecahedron return the four
// non-cube Platonic solids built the same way.
//
// # Editing operations
//
// The kernel's named operations, each grounded in the half-edge graph's
// Next/Prev/Twin links rather than a coordinate-only representation:
//   - Clip: cut a polyhedron by a plane, keeping one or both sides, capping
//     the exposed seam so a closed input stays closed.
//   - Fork/Join: split a polyhedron into two independently capped halves,
//     or re-sew two such halves back into one mesh.
//   - Intersect/Union/Subtract: boolean combination of two closed solids,
//     built from repeated Clip against each operand's supporting planes.
//   - Extrude: translate a selection of marked faces along their outward
//     normal, synthesizing front/back caps and side walls.
//   - Fill/Fuse/UniquePoints: stitch open boundary gaps, weld
//     coincident vertices across separate meshes, and split shared vertex
//     records into one-per-incident-edge.
//   - Offset: a 2D polygon's analogue of Extrude, miter-offsetting a
//     face's border inward or outward.
//   - IsContain: point-in-convex-solid test against every face's
//     supporting plane.
//
// # Single-owner, not thread-safe
//
// A he.Polyhedron, he.Polygon or he.Polyline is a single-owner, synchronous
// aggregate: callers must not mutate one concurrently from multiple
// goroutines, and must not alias a mesh into two places and mutate both.
// Per-mesh id counters are plain fields, not atomics.
package halfedge
