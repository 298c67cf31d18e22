package cow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-statetree/cow"
)

func TestTxEndCommits(t *testing.T) {
	r := cow.NewRoot(0)

	tx, err := r.Begin()
	require.NoError(t, err)
	*tx.Value() = 5
	require.NoError(t, tx.End())

	assert.Equal(t, 5, *r.Detach().Get())
}

func TestTxCancelDiscards(t *testing.T) {
	r := cow.NewRoot(0)

	tx, err := r.Begin()
	require.NoError(t, err)
	*tx.Value() = 5
	tx.Cancel()
	assert.True(t, tx.Cancelled())
	require.NoError(t, tx.End())

	assert.Equal(t, 0, *r.Detach().Get())
}

func TestTxEndTwice(t *testing.T) {
	r := cow.NewRoot(0)

	tx, err := r.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.End())
	assert.ErrorIs(t, tx.End(), cow.ErrTxDone)
}

func TestUpdateCommits(t *testing.T) {
	r := cow.NewRoot(0)

	require.NoError(t, r.Update(func(tx *cow.Tx[int]) error {
		*tx.Value() = 5
		return nil
	}))
	assert.Equal(t, 5, *r.Detach().Get())
}

func TestUpdateErrorDiscards(t *testing.T) {
	r := cow.NewRoot(0)
	boom := errors.New("boom")

	err := r.Update(func(tx *cow.Tx[int]) error {
		*tx.Value() = 5
		return boom
	})
	assert.ErrorIs(t, err, boom, "the failure propagates unchanged")
	assert.Equal(t, 0, *r.Detach().Get())
}

func TestUpdateCancelDiscards(t *testing.T) {
	r := cow.NewRoot(0)

	require.NoError(t, r.Update(func(tx *cow.Tx[int]) error {
		*tx.Value() = 5
		tx.Cancel()
		return nil
	}))
	assert.Equal(t, 0, *r.Detach().Get())
}

func TestUpdatePanicDiscards(t *testing.T) {
	r := cow.NewRoot(0)

	assert.Panics(t, func() {
		_ = r.Update(func(tx *cow.Tx[int]) error {
			*tx.Value() = 5
			panic("boom")
		})
	})
	assert.Equal(t, 0, *r.Detach().Get(), "an unwinding failure discards, not commits")

	// The root is back to idle: a new transaction opens cleanly.
	require.NoError(t, r.Update(func(tx *cow.Tx[int]) error {
		*tx.Value() = 1
		return nil
	}))
	assert.Equal(t, 1, *r.Detach().Get())
}

func TestUpdateFnEndsGuardItself(t *testing.T) {
	r := cow.NewRoot(0)

	// fn resolving the guard early is allowed; a successful commit
	// must not be reported as an error.
	require.NoError(t, r.Update(func(tx *cow.Tx[int]) error {
		*tx.Value() = 5
		return tx.End()
	}))
	assert.Equal(t, 5, *r.Detach().Get())

	// Likewise an early cancel-and-end discard.
	require.NoError(t, r.Update(func(tx *cow.Tx[int]) error {
		*tx.Value() = 9
		tx.Cancel()
		return tx.End()
	}))
	assert.Equal(t, 5, *r.Detach().Get())
}

func TestUpdateWhileOpen(t *testing.T) {
	r := cow.NewRoot(0)

	err := r.Update(func(tx *cow.Tx[int]) error {
		return r.Update(func(tx *cow.Tx[int]) error { return nil })
	})
	assert.ErrorIs(t, err, cow.ErrTransactionOpen)
	assert.Equal(t, 0, *r.Detach().Get())
}
