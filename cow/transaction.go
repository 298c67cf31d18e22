package cow

import "errors"

// Tx is the scoped guard over an open transaction: a unique,
// scope-bound capability. Mutate through Value, optionally Cancel,
// and End exactly once, typically with defer. End commits unless the
// guard was cancelled.
//
// A deferred End cannot observe a panic unwinding the caller's stack.
// When the mutation can fail or panic, use Root.Update, which
// discards on both.
type Tx[T any] struct {
	v         *T
	root      *Root[T]
	cancelled bool
	done      bool
}

// Begin opens the guard form of the transaction protocol. It fails
// with ErrTransactionOpen if a transaction is already open.
func (r *Root[T]) Begin() (*Tx[T], error) {
	v, err := r.BeginTransaction()
	if err != nil {
		return nil, err
	}
	return &Tx[T]{v: v, root: r}, nil
}

// Value returns the mutable working copy. The pointer is valid until
// the guard ends.
func (tx *Tx[T]) Value() *T { return tx.v }

// Cancel forces the guard to discard regardless of how the scope
// exits.
func (tx *Tx[T]) Cancel() { tx.cancelled = true }

// Cancelled reports whether Cancel has been called.
func (tx *Tx[T]) Cancelled() bool { return tx.cancelled }

// End resolves the transaction: commit unless cancelled. A second End
// returns ErrTxDone.
func (tx *Tx[T]) End() error {
	return tx.end(true)
}

func (tx *Tx[T]) end(store bool) error {
	if tx.done {
		return ErrTxDone
	}
	tx.done = true
	return tx.root.EndTransaction(store && !tx.cancelled)
}

// Update runs fn inside a transaction and resolves it on every exit
// path: commit when fn returns nil without cancelling; discard when
// fn returns an error, calls Cancel, or panics. The error or panic
// propagates to the caller unchanged, with the canonical payload
// untouched. fn may resolve the guard itself with End; a guard
// already ended by a successful fn is not an error.
func (r *Root[T]) Update(fn func(tx *Tx[T]) error) error {
	tx, err := r.Begin()
	if err != nil {
		return err
	}
	defer func() {
		// Reached with the guard unresolved only when fn panicked.
		if !tx.done {
			_ = tx.end(false)
		}
	}()
	if err = fn(tx); err != nil {
		_ = tx.end(false)
		return err
	}
	if endErr := tx.end(true); endErr != nil && !errors.Is(endErr, ErrTxDone) {
		return endErr
	}
	return nil
}
