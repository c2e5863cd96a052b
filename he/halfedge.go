package he

import (
	"errors"
	"fmt"

	"github.com/flywave/halfedge/vecmath"
)

// Vector is the set of position types a half-edge graph can be generic
// over: a 2D polygon's graph carries vecmath.Vec2 positions, a 3D
// polyhedron's carries vecmath.Vec3.
type Vector interface {
	vecmath.Vec2 | vecmath.Vec3
}

// ErrAlreadyPaired is returned by MakePair when one of the two edges
// already has a distinct twin; pairing it again is a programming error.
var ErrAlreadyPaired = errors.New("he: edge already paired with a distinct twin")

// Vertex is a position plus a representative outgoing half-edge, generic
// over the position type T.
type Vertex[T Vector] struct {
	ID       TopoID
	Position T
	Edge     *HalfEdge[T]
	Invalid  bool

	prevL, nextL *Vertex[T]
}

func (v *Vertex[T]) linkNext() *Vertex[T]       { return v.nextL }
func (v *Vertex[T]) setLinkNext(n *Vertex[T])    { v.nextL = n }
func (v *Vertex[T]) linkPrev() *Vertex[T]       { return v.prevL }
func (v *Vertex[T]) setLinkPrev(p *Vertex[T])    { v.prevL = p }

// HalfEdge is an oriented edge belonging to exactly one loop. Its twin, if
// present, is the opposite-orientation half-edge on the neighboring loop.
type HalfEdge[T Vector] struct {
	ID   TopoID
	Vert *Vertex[T]
	Loop *Loop[T]
	Twin *HalfEdge[T]
	Next *HalfEdge[T]
	Prev *HalfEdge[T]

	Invalid bool

	prevL, nextL *HalfEdge[T]
}

func (e *HalfEdge[T]) linkNext() *HalfEdge[T]    { return e.nextL }
func (e *HalfEdge[T]) setLinkNext(n *HalfEdge[T]) { e.nextL = n }
func (e *HalfEdge[T]) linkPrev() *HalfEdge[T]    { return e.prevL }
func (e *HalfEdge[T]) setLinkPrev(p *HalfEdge[T]) { e.prevL = p }

// Dest returns the vertex at the far end of e, i.e. e.Next's origin.
func (e *HalfEdge[T]) Dest() *Vertex[T] {
	return e.Next.Vert
}

// Loop is a closed cycle of half-edges bounding one side of a surface.
type Loop[T Vector] struct {
	ID      TopoID
	Edge    *HalfEdge[T]
	Invalid bool

	prevL, nextL *Loop[T]
}

func (l *Loop[T]) linkNext() *Loop[T]    { return l.nextL }
func (l *Loop[T]) setLinkNext(n *Loop[T]) { l.nextL = n }
func (l *Loop[T]) linkPrev() *Loop[T]    { return l.prevL }
func (l *Loop[T]) setLinkPrev(p *Loop[T]) { l.prevL = p }

// Connect sets a.Next = b and b.Prev = a, returning b so chains of calls
// read left to right: Connect(a, Connect(b, c)).
func Connect[T Vector](a, b *HalfEdge[T]) *HalfEdge[T] {
	a.Next = b
	b.Prev = a
	return b
}

// MakePair sets e0.Twin = e1 and e1.Twin = e0. It returns ErrAlreadyPaired
// if either edge already has a distinct twin.
func MakePair[T Vector](e0, e1 *HalfEdge[T]) error {
	if e0.Twin != nil && e0.Twin != e1 {
		return fmt.Errorf("%w: e0 already paired", ErrAlreadyPaired)
	}
	if e1.Twin != nil && e1.Twin != e0 {
		return fmt.Errorf("%w: e1 already paired", ErrAlreadyPaired)
	}
	e0.Twin = e1
	e1.Twin = e0
	return nil
}

// DelPair severs e's twin relationship on both sides, if any.
func DelPair[T Vector](e *HalfEdge[T]) {
	if e.Twin == nil {
		return
	}
	e.Twin.Twin = nil
	e.Twin = nil
}

// BindEdgeLoop sets loop.Edge = e and walks the Next-cycle starting at e,
// setting every member's Loop to loop.
func BindEdgeLoop[T Vector](loop *Loop[T], e *HalfEdge[T]) {
	loop.Edge = e
	cur := e
	for {
		cur.Loop = loop
		cur = cur.Next
		if cur == e {
			break
		}
	}
}

// EachEdge walks the Next-cycle of a loop starting at loop.Edge, calling fn
// on each half-edge. EachEdge stops early if fn returns false.
func EachEdge[T Vector](loop *Loop[T], fn func(*HalfEdge[T]) bool) {
	if loop == nil || loop.Edge == nil {
		return
	}
	start := loop.Edge
	cur := start
	for {
		next := cur.Next
		if !fn(cur) {
			return
		}
		cur = next
		if cur == start {
			return
		}
	}
}

type (
	vert2 = Vertex[vecmath.Vec2]
	edge2 = HalfEdge[vecmath.Vec2]
	loop2 = Loop[vecmath.Vec2]
	vert3 = Vertex[vecmath.Vec3]
	edge3 = HalfEdge[vecmath.Vec3]
	loop3 = Loop[vecmath.Vec3]
)
