package cow

// Forker is implemented by payload types whose fields are themselves
// nodes. Fork returns a copy of the value in which every child node
// is a Share of the original's child: the children's payloads are
// shared, and the copies are correctly marked as sharing, so the
// first Mut on a forked child forks again rather than editing a
// payload the original still observes.
//
//	func (p Profile) Fork() Profile {
//		return Profile{Name: p.Name.Share(), Email: p.Email.Share()}
//	}
//
// Plain values need not implement Forker: they fork by value copy.
// A struct holding nodes that does not implement Forker would copy
// its children's uniqueness claims verbatim, which breaks the
// isolation guarantee; give any such type a Fork method.
type Forker[T any] interface {
	Fork() T
}

// forkValue produces the value copy installed at the copy-on-write
// fork point.
func forkValue[T any](src *T) T {
	if f, ok := any(*src).(Forker[T]); ok {
		return f.Fork()
	}
	return *src
}
