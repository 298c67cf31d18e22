package cow

import (
	"sync"
	"sync/atomic"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Broadcaster is the publisher collaborator. The root calls Broadcast
// exactly once per successful commit, after the canonical swap, and
// never on discard. How subscribers register is the collaborator's
// concern; see the pubsub package for the registry used here.
type Broadcaster[T any] interface {
	Broadcast(root *Root[T])
}

// Root holds the canonical, last-committed payload for T and stages
// transactional successors.
//
// Reads are safe from any goroutine at any time with no further
// locking: the canonical payload is only ever replaced wholesale at
// the single commit point, never edited in place. Writes follow the
// single-writer discipline: one transaction open per root at a time.
type Root[T any] struct {
	canonical atomic.Pointer[T]

	// txMu serializes the transaction protocol state. It is not held
	// during broadcast, so a subscriber may open a follow-up
	// transaction from its callback.
	txMu    sync.Mutex
	working Node[T]
	open    bool

	pub Broadcaster[T]
	log logger.Logger
}

// NewRoot builds a root whose canonical payload is constructed from
// v. Wire the publisher with WithBroadcaster and logging with
// WithLogger.
func NewRoot[T any](v T, opts ...Option) *Root[T] {
	o := RootOptions[T]{}
	for _, opt := range opts {
		opt(&o)
	}
	r := &Root[T]{pub: o.Broadcaster, log: o.Log}
	n := NewNode(v)
	r.canonical.Store(n.Get())
	return r
}

// BeginTransaction forks the canonical payload into an exclusively
// owned working copy and returns the mutable pointer into it. Exactly
// one transaction may be open on a root; a second open returns
// ErrTransactionOpen.
//
// Prefer Begin or Update, which resolve the transaction for you.
func (r *Root[T]) BeginTransaction() (*T, error) {
	r.txMu.Lock()
	defer r.txMu.Unlock()
	if r.open {
		return nil, ErrTransactionOpen
	}
	r.working = NewNode(forkValue(r.canonical.Load()))
	r.open = true
	// The working copy is fresh and unique, so Mut hands out its
	// pointer without a further fork.
	return r.working.Mut(), nil
}

// EndTransaction resolves the open transaction. With store true the
// working copy becomes canonical and the broadcaster, if wired, is
// invoked once; snapshots detached before the commit keep observing
// the prior payload, unaffected. With store false the working copy is
// dropped and the canonical payload is untouched. Returns
// ErrNoTransaction if no transaction is open.
func (r *Root[T]) EndTransaction(store bool) error {
	r.txMu.Lock()
	if !r.open {
		r.txMu.Unlock()
		return ErrNoTransaction
	}
	var committed *T
	if store {
		committed = r.working.Get()
		r.canonical.Store(committed)
	}
	r.working = Node[T]{}
	r.open = false
	r.txMu.Unlock()

	if !store {
		if r.log != nil {
			r.log.Debugf("cow: transaction discarded")
		}
		return nil
	}
	if r.log != nil {
		r.log.Debugf("cow: transaction committed %p", committed)
	}
	if r.pub != nil {
		// Happens-after the canonical swap: a subscriber detaching
		// from its callback observes the committed value.
		r.pub.Broadcast(r)
	}
	return nil
}

// Detach returns an immutable snapshot of the canonical payload,
// independent of all future transactions on this root.
func (r *Root[T]) Detach() Detached[T] {
	return DetachedOf(r.canonical.Load())
}

// DetachedPayload returns the canonical payload pointer directly. It
// must be treated as immutable.
func (r *Root[T]) DetachedPayload() *T { return r.canonical.Load() }
