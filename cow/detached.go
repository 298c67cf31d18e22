package cow

// Detached is an immutable snapshot of a payload, decoupled from any
// live, mutable tree. It never forks and never mutates, which is why
// it carries no uniqueness state. A Detached may be retained
// indefinitely and shared across goroutines; its payload's lifetime
// is independent of the originating tree's future transactions.
type Detached[T any] struct {
	snap[T]
}

// DetachedOf wraps an already-shared payload pointer. The payload
// must never be mutated once wrapped.
func DetachedOf[T any](payload *T) Detached[T] {
	return Detached[T]{snap[T]{cell[T]{p: payload}}}
}

// Get returns the snapshot payload. It must not be mutated.
func (d Detached[T]) Get() *T { return d.data.p }

// Same reports payload identity with another snapshot.
func (d Detached[T]) Same(other Detached[T]) bool { return d.data.p == other.data.p }

// Opt converts to the optional snapshot form.
func (d Detached[T]) Opt() OptDetached[T] { return OptDetached[T]{d.snap} }

// OptDetached is a Detached that may be absent. The zero value is
// absent.
type OptDetached[T any] struct {
	snap[T]
}

// OptDetachedOf wraps an already-shared payload pointer, which may be
// nil for absent.
func OptDetachedOf[T any](payload *T) OptDetached[T] {
	return OptDetached[T]{snap[T]{cell[T]{p: payload}}}
}

// Present reports whether the snapshot holds a value.
func (d OptDetached[T]) Present() bool { return d.data.p != nil }

// Get returns the snapshot payload, nil when absent. It must not be
// mutated.
func (d OptDetached[T]) Get() *T { return d.data.p }

// Same reports payload identity with another snapshot.
func (d OptDetached[T]) Same(other OptDetached[T]) bool { return d.data.p == other.data.p }
