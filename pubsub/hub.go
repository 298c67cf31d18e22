package pubsub

import (
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
)

// Hub is the broadcast registry for a single root type R. It is safe
// for concurrent use; Broadcast may run while subscribers come and go.
type Hub[R any] struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]func(*R)
	log  logger.Logger
}

// New builds an empty hub.
func New[R any](opts ...Option) *Hub[R] {
	o := HubOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Hub[R]{
		subs: map[uuid.UUID]func(*R){},
		log:  o.Log,
	}
}

// Subscribe registers fn to be called on every broadcast and returns
// the token identifying the registration.
func (h *Hub[R]) Subscribe(fn func(*R)) uuid.UUID {
	id := uuid.New()
	h.mu.Lock()
	h.subs[id] = fn
	h.mu.Unlock()
	if h.log != nil {
		h.log.Debugf("pubsub: subscribed %s", id)
	}
	return id
}

// Unsubscribe removes a registration. Unknown tokens are ignored.
func (h *Hub[R]) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

// Subscribers reports the current registration count.
func (h *Hub[R]) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Broadcast fans r out to every current subscriber, synchronously, in
// no particular order. It satisfies the root's Broadcaster contract.
// The subscriber set is snapshotted first, so a callback may
// subscribe or unsubscribe without deadlocking; such changes take
// effect from the next broadcast.
func (h *Hub[R]) Broadcast(r *R) {
	h.mu.RLock()
	fns := make([]func(*R), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.RUnlock()

	if h.log != nil {
		h.log.Debugf("pubsub: broadcast to %d subscribers", len(fns))
	}
	for _, fn := range fns {
		fn(r)
	}
}
