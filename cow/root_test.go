package cow_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-statetree/cow"
	"github.com/forestrie/go-statetree/cowtest"
	"github.com/forestrie/go-statetree/pubsub"
)

func TestRootCommitApplies(t *testing.T) {
	r := cow.NewRoot(0)

	v, err := r.BeginTransaction()
	require.NoError(t, err)
	*v = 1
	require.NoError(t, r.EndTransaction(true))

	assert.Equal(t, 1, *r.DetachedPayload())
}

func TestRootDiscardDoesNot(t *testing.T) {
	r := cow.NewRoot(0)
	before := r.DetachedPayload()

	v, err := r.BeginTransaction()
	require.NoError(t, err)
	*v = 1
	require.NoError(t, r.EndTransaction(false))

	assert.Equal(t, 0, *r.DetachedPayload())
	assert.Same(t, before, r.DetachedPayload(), "discard must not touch the canonical cell")
}

func TestRootDetachImmutability(t *testing.T) {
	r := cow.NewRoot(0)
	s := r.Detach()

	v, err := r.BeginTransaction()
	require.NoError(t, err)
	*v = 1
	require.NoError(t, r.EndTransaction(true))

	assert.Equal(t, 0, *s.Get(), "a snapshot taken before the commit observes the old value")
	assert.Equal(t, 1, *r.Detach().Get())
	assert.False(t, s.Same(r.Detach()))
}

func TestRootSingleWriter(t *testing.T) {
	r := cow.NewRoot(0)

	_, err := r.BeginTransaction()
	require.NoError(t, err)

	_, err = r.BeginTransaction()
	assert.ErrorIs(t, err, cow.ErrTransactionOpen)

	require.NoError(t, r.EndTransaction(false))
	assert.ErrorIs(t, r.EndTransaction(false), cow.ErrNoTransaction)
}

func TestRootNotificationCardinality(t *testing.T) {
	b := &cowtest.RecordingBroadcaster[int]{}
	r := cow.NewRoot(0, cow.WithBroadcaster[int](b))

	v, err := r.BeginTransaction()
	require.NoError(t, err)
	*v = 1
	require.NoError(t, r.EndTransaction(true))
	assert.Equal(t, 1, b.Count(), "exactly one broadcast per commit")
	assert.Same(t, r, b.Last(), "the broadcast carries the committing root")

	v, err = r.BeginTransaction()
	require.NoError(t, err)
	*v = 2
	require.NoError(t, r.EndTransaction(false))
	assert.Equal(t, 1, b.Count(), "a discard broadcasts nothing")
}

func TestRootBroadcastAfterSwap(t *testing.T) {
	hub := pubsub.New[cow.Root[int]]()
	r := cow.NewRoot(0, cow.WithBroadcaster[int](hub))

	var seen []int
	hub.Subscribe(func(cr *cow.Root[int]) {
		// Detaching from the callback must observe the committed
		// value: notification happens-after the canonical swap.
		seen = append(seen, *cr.Detach().Get())
	})

	require.NoError(t, r.Update(func(tx *cow.Tx[int]) error {
		*tx.Value() = 5
		return nil
	}))
	require.NoError(t, r.Update(func(tx *cow.Tx[int]) error {
		*tx.Value() = 6
		return nil
	}))

	assert.Equal(t, []int{5, 6}, seen)
}

func TestRootSubscriberCanReopen(t *testing.T) {
	hub := pubsub.New[cow.Root[int]]()
	r := cow.NewRoot(0, cow.WithBroadcaster[int](hub))

	// The root must not hold its writer lock across broadcast: a
	// subscriber is allowed to open a follow-up transaction.
	var reopened bool
	hub.Subscribe(func(cr *cow.Root[int]) {
		if reopened {
			return
		}
		reopened = true
		require.NoError(t, cr.Update(func(tx *cow.Tx[int]) error {
			*tx.Value() = 99
			return nil
		}))
	})

	require.NoError(t, r.Update(func(tx *cow.Tx[int]) error {
		*tx.Value() = 1
		return nil
	}))
	assert.Equal(t, 99, *r.Detach().Get())
}

func TestRootConcurrentReaders(t *testing.T) {
	const commits = 200
	r := cow.NewRoot(0)

	var stop atomic.Bool
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			last := 0
			for !stop.Load() {
				// Readers take no lock; the canonical payload is
				// replaced wholesale, so observed values can only
				// move forward.
				got := *r.DetachedPayload()
				if got < last {
					t.Errorf("reader went backwards: %d after %d", got, last)
					return
				}
				last = got
			}
		}()
	}

	for i := 1; i <= commits; i++ {
		require.NoError(t, r.Update(func(tx *cow.Tx[int]) error {
			*tx.Value() = i
			return nil
		}))
	}
	stop.Store(true)
	wg.Wait()

	assert.Equal(t, commits, *r.DetachedPayload())
}
