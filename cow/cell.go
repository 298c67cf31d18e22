package cow

// cell is the data cell at the base of every handle. The payload it
// points at is immutable once shared: nothing in this package writes
// through a cell that another handle may observe.
//
// The garbage collector owns payload lifetime, so no reference count
// is kept: sharing is pointer copy, release is dropping the last
// pointer, and cell identity is pointer identity.
type cell[T any] struct {
	p *T
}

// newCell builds a fresh payload from v. The caller is the sole
// holder, so editing the payload in place is safe until the cell is
// copied into another handle.
func newCell[T any](v T) cell[T] {
	return cell[T]{p: &v}
}

func (c cell[T]) empty() bool { return c.p == nil }

// move transfers the cell out of c, leaving c empty.
func (c *cell[T]) move() cell[T] {
	m := *c
	c.p = nil
	return m
}
