package cow

// OptNode is the owning handle whose value may be absent. The zero
// value is absent and ready to use; Reset returns any node to the
// absent state.
//
// Dereferencing the pointer returned by Get or Mut while the node is
// absent is the caller's precondition to keep; the package does not
// guard it.
type OptNode[T any] struct {
	handle[T]
}

// NewOptNode builds a present node over a brand-new payload
// constructed from v.
func NewOptNode[T any](v T) OptNode[T] {
	var n OptNode[T]
	n.data = newCell(v)
	n.unique = true
	return n
}

// Share returns a new node sharing this node's payload. Sharing an
// absent node shares nothing and both claims are left alone; sharing
// a present node marks both sides non-unique, exactly as for Node.
func (n *OptNode[T]) Share() OptNode[T] {
	var s OptNode[T]
	s.data = n.data
	if n.data.empty() {
		s.unique = true
		return s
	}
	s.unique = false
	n.unique = false
	return s
}

// Take adopts other's cell and uniqueness claim, leaving other empty.
func (n *OptNode[T]) Take(other *OptNode[T]) {
	n.takeData(&other.handle)
}

// Replace moves other's cell into n, releasing n's previous payload
// without mutating it if shared. other is left empty.
func (n *OptNode[T]) Replace(other *OptNode[T]) {
	n.checkedReplace(&other.handle)
}

// TakeNode adopts an owning node's payload and claim, leaving the
// node empty. This is how a freshly built required value moves into
// an optional slot.
func (n *OptNode[T]) TakeNode(other *Node[T]) {
	n.takeData(&other.handle)
}

// Set assigns a plain value, making the node present. A present,
// unique node edits in place; otherwise a brand-new payload is built
// from v.
func (n *OptNode[T]) Set(v T) {
	if n.unique && !n.data.empty() {
		*n.data.p = v
		return
	}
	n.replaceWith(newCell(v))
}

// Reset returns the node to the absent state.
func (n *OptNode[T]) Reset() {
	n.data = cell[T]{}
}

// Present reports whether the node holds a value.
func (n *OptNode[T]) Present() bool { return !n.data.empty() }

// Get returns the payload for reading, nil when absent. It never
// forks.
func (n *OptNode[T]) Get() *T { return n.data.p }

// Mut returns the payload for writing, nil when absent. A present,
// shared node forks first, exactly as Node.Mut.
func (n *OptNode[T]) Mut() *T {
	if !n.data.empty() && !n.unique {
		n.replaceWith(newCell(forkValue(n.data.p)))
	}
	return n.data.p
}

// Detach returns an immutable snapshot of the current payload, absent
// when the node is absent.
func (n *OptNode[T]) Detach() OptDetached[T] {
	return OptDetached[T]{snap[T]{n.data}}
}

// IsUnique reports the node's current uniqueness claim. The claim is
// irrelevant while the node is absent.
func (n *OptNode[T]) IsUnique() bool { return n.unique }
