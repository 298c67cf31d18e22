// Package cowtest provides test support for packages exercising the
// cow transaction protocol.
package cowtest

import (
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-statetree/cow"
)

var loggerOnce sync.Once

// InitLogger makes the global sugar logger available to tests. Safe
// to call from every test that needs it.
func InitLogger() {
	loggerOnce.Do(func() {
		logger.New("NOOP")
	})
}

// RecordingBroadcaster captures the roots passed to Broadcast so
// tests can assert notification cardinality and ordering guarantees.
type RecordingBroadcaster[T any] struct {
	mu    sync.Mutex
	calls []*cow.Root[T]
}

func (b *RecordingBroadcaster[T]) Broadcast(r *cow.Root[T]) {
	b.mu.Lock()
	b.calls = append(b.calls, r)
	b.mu.Unlock()
}

// Count reports how many broadcasts were observed.
func (b *RecordingBroadcaster[T]) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

// Last returns the most recently broadcast root, nil if none.
func (b *RecordingBroadcaster[T]) Last() *cow.Root[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.calls) == 0 {
		return nil
	}
	return b.calls[len(b.calls)-1]
}
