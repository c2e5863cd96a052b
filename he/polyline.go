package he

import "github.com/flywave/halfedge/vecmath"

// Polyline is an aggregate of open vertex chains sharing one vertex/edge
// pool, the open-chain sibling of Polygon/Polyhedron: each chain is a
// loop3 whose Next-links terminate in nil rather than wrapping back to the
// start, so it is walked with eachPolylineEdge/bindPolylineChain instead of
// EachEdge/BindEdgeLoop.
type Polyline struct {
	Name string

	verts CircularList[vert3, *vert3]
	edges CircularList[edge3, *edge3]
	lines CircularList[loop3, *loop3]

	nextVertID uint32
	nextEdgeID uint32
	nextLineID uint32
}

// NewPolyline returns an empty polyline set.
func NewPolyline(name string) *Polyline {
	return &Polyline{Name: name}
}

// Verts returns the vertex list.
func (pl *Polyline) Verts() *CircularList[vert3, *vert3] { return &pl.verts }

// Edges returns the half-edge list.
func (pl *Polyline) Edges() *CircularList[edge3, *edge3] { return &pl.edges }

// Lines returns the chain list; each loop3's Edge is the chain's first
// half-edge and its Next-cycle ends in nil.
func (pl *Polyline) Lines() *CircularList[loop3, *loop3] { return &pl.lines }

func (pl *Polyline) freshVertID() uint32 { id := pl.nextVertID; pl.nextVertID++; return id }
func (pl *Polyline) freshEdgeID() uint32 { id := pl.nextEdgeID; pl.nextEdgeID++; return id }
func (pl *Polyline) freshLineID() uint32 { id := pl.nextLineID; pl.nextLineID++; return id }

// PolylineInput describes one open chain to build: an optional input
// TopoID (zero value mints a fresh one) and an ordered vertex index list.
// A chain needs at least two vertices; shorter ones are skipped.
type PolylineInput struct {
	ID      TopoID
	Indices []int
}

// bindPolylineChain sets chain.Edge = head and assigns every half-edge's
// Loop along the (non-wrapping) Next chain starting at head.
func bindPolylineChain(chain *loop3, head *edge3) {
	chain.Edge = head
	cur := head
	for cur != nil {
		cur.Loop = chain
		cur = cur.Next
	}
}

// eachPolylineEdge walks chain's half-edges in order, stopping at the open
// end (a nil Next) rather than wrapping. Stops early if fn returns false.
func eachPolylineEdge(chain *loop3, fn func(*edge3) bool) {
	if chain == nil || chain.Edge == nil {
		return
	}
	cur := chain.Edge
	for cur != nil {
		next := cur.Next
		if !fn(cur) {
			return
		}
		cur = next
	}
}

// BuildFromPolylines constructs a Polyline set from a flat vertex position
// array and a set of index chains.
func BuildFromPolylines(positions []vecmath.Vec3, lines []PolylineInput) *Polyline {
	pl := NewPolyline("")

	verts := make([]*vert3, len(positions))
	for i, pos := range positions {
		v := &vert3{ID: NewTopoID(pl.freshVertID()), Position: pos}
		verts[i] = v
		pl.verts.PushBack(v)
	}

	for _, li := range lines {
		if len(li.Indices) < 2 {
			continue
		}

		var id TopoID
		if li.ID.IsEmpty() {
			id = NewTopoID(pl.freshLineID())
		} else {
			id = li.ID
			adoptTopoID(&pl.nextLineID, li.ID)
		}

		edges := make([]*edge3, len(li.Indices))
		for i, vi := range li.Indices {
			e := &edge3{ID: NewTopoID(pl.freshEdgeID()), Vert: verts[vi]}
			edges[i] = e
			pl.edges.PushBack(e)
		}
		for i := 0; i+1 < len(edges); i++ {
			Connect(edges[i], edges[i+1])
		}

		chain := &loop3{ID: id}
		pl.lines.PushBack(chain)
		bindPolylineChain(chain, edges[0])
	}

	return pl
}

// Fuse collapses every run of consecutive vertices closer than distance
// along each chain down to the first vertex of the run, removing the
// skipped vertices and their edges. Returns the number of vertices
// removed.
func (pl *Polyline) Fuse(distance float64) int {
	var toRemoveVerts []*vert3

	pl.lines.Each(func(chain *loop3) bool {
		var prevVert *vert3
		eachPolylineEdge(chain, func(e *edge3) bool {
			if prevVert == nil {
				prevVert = e.Vert
				return true
			}
			if prevVert.Position.Distance(e.Vert.Position) < distance {
				e.Vert.Invalid = true
				toRemoveVerts = append(toRemoveVerts, e.Vert)
			} else {
				prevVert = e.Vert
			}
			return true
		})
		return true
	})
	if len(toRemoveVerts) == 0 {
		return 0
	}

	var toRemoveEdges []*edge3
	pl.lines.Each(func(chain *loop3) bool {
		var prevEdge, newHead *edge3
		cur := chain.Edge
		for cur != nil {
			next := cur.Next
			if cur.Vert.Invalid {
				toRemoveEdges = append(toRemoveEdges, cur)
				if prevEdge != nil {
					prevEdge.Next = next
					if next != nil {
						next.Prev = prevEdge
					}
				}
			} else {
				if newHead == nil {
					newHead = cur
				}
				prevEdge = cur
			}
			cur = next
		}
		chain.Edge = newHead
		return true
	})

	for _, e := range toRemoveEdges {
		pl.edges.Remove(e)
	}
	for _, v := range toRemoveVerts {
		pl.verts.Remove(v)
	}
	return len(toRemoveVerts)
}

// UniquePoints splits every vertex shared by more than one half-edge into
// one distinct vertex record per half-edge that claims it.
func (pl *Polyline) UniquePoints() {
	UniquePoints[vecmath.Vec3](&pl.edges, &pl.verts, &pl.nextVertID)
}
