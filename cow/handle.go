package cow

// snap is the state common to every handle kind, including the
// detached snapshots which carry no uniqueness claim at all.
type snap[T any] struct {
	data cell[T]
}

// handle adds the uniqueness claim to the read surface and supplies
// the state transitions every concrete handle reuses.
//
// unique is the handle's private claim that no other live handle
// observable to the current writer shares its payload, and therefore
// that the payload may be edited in place rather than forked. It is
// not (share count == 1): obtaining a snapshot of a unique handle
// shares the payload, but the handle stays unique, because snapshots
// never write. It starts true on fresh construction of a value, is
// forced false on both handles whenever a payload gains a second
// mutable handle, and is restored true when the cell is replaced by a
// freshly forked copy.
type handle[T any] struct {
	snap[T]
	unique bool
}

// attachTo adopts other's cell by shallow copy. An attached handle is
// sharing, so it cannot be unique.
func (h *handle[T]) attachTo(other *handle[T]) {
	h.data = other.data
	h.unique = false
}

// takeData moves other's cell into h, leaving other empty. The
// uniqueness claim travels with the data.
func (h *handle[T]) takeData(other *handle[T]) {
	h.data = other.data.move()
	h.unique = other.unique
}

// replaceWith installs data that is known to be a fresh, exclusively
// owned copy. The handle is unique once more afterwards.
func (h *handle[T]) replaceWith(data cell[T]) {
	h.data = data
	h.unique = true
}

// checkedReplace moves other's cell into h, releasing h's previous
// payload without touching it. A unique h may take the data over
// directly; a shared h must go through replaceWith so it comes out
// unique either way. other is emptied.
func (h *handle[T]) checkedReplace(other *handle[T]) {
	if h.unique {
		h.data = other.data.move()
	} else {
		h.replaceWith(other.data.move())
	}
}
