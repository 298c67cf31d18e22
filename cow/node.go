package cow

// Node is the owning, mutable handle over a value. After construction
// it always holds a payload; only Take and Replace, which model
// ownership transfer, leave a source node empty.
//
// Nodes must not be copied by struct assignment: assignment aliases
// the payload without recording the share, defeating the fork check.
// The two supported operations are explicit and differently named:
// Share produces a shallow share, Set overwrites the value.
type Node[T any] struct {
	handle[T]
}

// NewNode builds a node over a brand-new payload constructed from v.
// The node starts unique: no other handle can reach the payload yet.
func NewNode[T any](v T) Node[T] {
	var n Node[T]
	n.data = newCell(v)
	n.unique = true
	return n
}

// Share returns a new node sharing this node's payload. Both sides
// come out non-unique: after a Share the payload has two live mutable
// handles, so the source may no longer edit it in place either. The
// next Set or Mut on either handle forks.
func (n *Node[T]) Share() Node[T] {
	var s Node[T]
	s.attachTo(&n.handle)
	n.unique = false
	return s
}

// Take adopts other's cell and uniqueness claim, leaving other empty.
func (n *Node[T]) Take(other *Node[T]) {
	n.takeData(&other.handle)
}

// Replace moves other's cell into n, releasing n's previous payload
// without mutating it if shared. other is left empty.
func (n *Node[T]) Replace(other *Node[T]) {
	n.checkedReplace(&other.handle)
}

// Set assigns a plain value. A unique node edits its payload in
// place; a shared one installs a brand-new payload built from v, so a
// previously handed-out payload is never touched. The node is
// non-empty either way.
func (n *Node[T]) Set(v T) {
	if n.unique {
		*n.data.p = v
		return
	}
	n.replaceWith(newCell(v))
}

// Get returns the payload for reading. It never forks. The returned
// value must not be mutated; compare Get pointers to detect that a
// subtree is unchanged.
func (n *Node[T]) Get() *T { return n.data.p }

// Mut returns the payload for writing. This is the copy-on-write fork
// point: a non-unique node first replaces its cell with a fresh value
// copy of the current payload, becoming unique, and only then hands
// out the pointer.
func (n *Node[T]) Mut() *T {
	if !n.unique {
		n.replaceWith(newCell(forkValue(n.data.p)))
	}
	return n.data.p
}

// Detach returns an immutable snapshot of the current payload,
// independent of any future mutation of this node: a later fork gives
// the node a new payload and leaves the snapshot's untouched.
func (n *Node[T]) Detach() Detached[T] {
	return Detached[T]{snap[T]{n.data}}
}

// IsUnique reports the node's current uniqueness claim.
func (n *Node[T]) IsUnique() bool { return n.unique }

// Same reports whether two nodes hold the identical payload object.
// This is shallow identity, not value equality.
func (n *Node[T]) Same(other *Node[T]) bool { return n.data.p == other.data.p }
