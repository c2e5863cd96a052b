// Package he implements a half-edge (doubly-connected edge list) kernel for
// editing 2D polygons and 3D polyhedra: building meshes from raw vertex/face
// data, clipping and boolean combination against planes, extrusion, seam
// repair and point containment.
package he

// linked is implemented by a pointer-to-T that participates in a
// CircularList: it owns the intrusive prev/next links the list manipulates
// directly, so one CircularList implementation serves every record kind
// (vertices, half-edges, loops) at every dimension without boxing or
// reflection.
type linked[T any] interface {
	*T
	linkNext() *T
	setLinkNext(*T)
	linkPrev() *T
	setLinkPrev(*T)
}

// CircularList is an intrusive doubly-linked circular list: nodes carry
// their own prev/next pointers (via the linked[T] constraint) rather than
// being wrapped in separate list elements. The zero value is an empty list.
type CircularList[T any, P linked[T]] struct {
	head *T
	size int
}

// Size returns the number of nodes in the list.
func (l *CircularList[T, P]) Size() int { return l.size }

// Head returns the list's anchor node, or nil if the list is empty. Walking
// via linkNext from Head visits every node exactly once before returning to
// Head.
func (l *CircularList[T, P]) Head() *T { return l.head }

// PushBack inserts node just before the head (i.e. at the end of the walk
// order), making it the new tail. If the list is empty, node becomes the
// head.
func (l *CircularList[T, P]) PushBack(node *T) {
	if l.head == nil {
		P(node).setLinkNext(node)
		P(node).setLinkPrev(node)
		l.head = node
		l.size++
		return
	}
	l.insertBefore(l.head, node)
	l.size++
}

// PushFront inserts node as the new head.
func (l *CircularList[T, P]) PushFront(node *T) {
	l.PushBack(node)
	l.head = node
}

// InsertAfter inserts node immediately after at in the walk order. at must
// already be a member of the list.
func (l *CircularList[T, P]) InsertAfter(at, node *T) {
	next := P(at).linkNext()
	P(node).setLinkPrev(at)
	P(node).setLinkNext(next)
	P(at).setLinkNext(node)
	P(next).setLinkPrev(node)
	l.size++
}

// InsertBefore inserts node immediately before at in the walk order.
func (l *CircularList[T, P]) InsertBefore(at, node *T) {
	l.insertBefore(at, node)
	if at == l.head {
		l.head = node
	}
	l.size++
}

func (l *CircularList[T, P]) insertBefore(at, node *T) {
	prev := P(at).linkPrev()
	P(node).setLinkNext(at)
	P(node).setLinkPrev(prev)
	P(prev).setLinkNext(node)
	P(at).setLinkPrev(node)
}

// Remove unlinks node from the list. It is the caller's responsibility to
// ensure node is actually a member of l.
func (l *CircularList[T, P]) Remove(node *T) {
	if l.size == 0 {
		return
	}
	if l.size == 1 {
		l.head = nil
		l.size = 0
		return
	}
	prev := P(node).linkPrev()
	next := P(node).linkNext()
	P(prev).setLinkNext(next)
	P(next).setLinkPrev(prev)
	if l.head == node {
		l.head = next
	}
	P(node).setLinkNext(node)
	P(node).setLinkPrev(node)
	l.size--
}

// Clear empties the list without touching node links.
func (l *CircularList[T, P]) Clear() {
	l.head = nil
	l.size = 0
}

// Concat splices other's ring into l in O(1), appending it after l's
// current tail, and empties other. If l is empty, l simply adopts other's
// ring. Concat on an empty other is a no-op.
func (l *CircularList[T, P]) Concat(other *CircularList[T, P]) {
	if other.head == nil {
		return
	}
	if l.head == nil {
		l.head = other.head
		l.size = other.size
		other.head = nil
		other.size = 0
		return
	}

	lTail := P(l.head).linkPrev()
	oTail := P(other.head).linkPrev()

	P(lTail).setLinkNext(other.head)
	P(other.head).setLinkPrev(lTail)
	P(oTail).setLinkNext(l.head)
	P(l.head).setLinkPrev(oTail)

	l.size += other.size
	other.head = nil
	other.size = 0
}

// Slice returns every node in walk order, starting from Head. It allocates;
// callers in hot paths should prefer Each.
func (l *CircularList[T, P]) Slice() []*T {
	out := make([]*T, 0, l.size)
	l.Each(func(n *T) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Each walks the list in order starting from Head, calling fn on each node.
// Each stops early if fn returns false. It is safe to call Remove on the
// current node from within fn (Each captures the next pointer before
// invoking fn).
func (l *CircularList[T, P]) Each(fn func(*T) bool) {
	if l.head == nil {
		return
	}
	n := l.head
	count := l.size
	for i := 0; i < count; i++ {
		next := P(n).linkNext()
		if !fn(n) {
			return
		}
		n = next
	}
}
