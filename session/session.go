package session

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"

	"github.com/forestrie/go-statetree/cow"
	"github.com/forestrie/go-statetree/pubsub"
)

// Profile is the session's user state. The fields are nodes so that
// parts untouched by a transaction are shared, not copied, across
// commits.
type Profile struct {
	Name  cow.Node[string]
	Email cow.Node[string]
}

// Fork implements cow.Forker: the copy shares both children until one
// of them is written through Mut.
func (p Profile) Fork() Profile {
	return Profile{Name: p.Name.Share(), Email: p.Email.Share()}
}

// NetState is the session's connection state. A plain value: it forks
// by copy.
type NetState struct {
	Endpoint  string
	Connected bool
	Attempts  int
}

// Session aggregates the two state roots of an application session.
// All methods are safe for concurrent readers; updates to a given
// root follow the root's single-writer discipline.
type Session struct {
	profile *cow.Root[Profile]
	net     *cow.Root[NetState]

	profileHub *pubsub.Hub[cow.Root[Profile]]
	netHub     *pubsub.Hub[cow.Root[NetState]]

	log logger.Logger
}

// New builds a session with empty profile and disconnected network
// state.
func New(log logger.Logger) *Session {
	s := &Session{
		profileHub: pubsub.New[cow.Root[Profile]](pubsub.WithLogger(log)),
		netHub:     pubsub.New[cow.Root[NetState]](pubsub.WithLogger(log)),
		log:        log,
	}
	s.profile = cow.NewRoot(
		Profile{Name: cow.NewNode(""), Email: cow.NewNode("")},
		cow.WithBroadcaster[Profile](s.profileHub),
		cow.WithLogger(log),
	)
	s.net = cow.NewRoot(
		NetState{},
		cow.WithBroadcaster[NetState](s.netHub),
		cow.WithLogger(log),
	)
	return s
}

// UpdateProfile runs fn in a transaction on the profile root. Commit
// on nil return, discard on error, cancel or panic.
func (s *Session) UpdateProfile(fn func(tx *cow.Tx[Profile]) error) error {
	return s.profile.Update(fn)
}

// UpdateNet runs fn in a transaction on the network root.
func (s *Session) UpdateNet(fn func(tx *cow.Tx[NetState]) error) error {
	return s.net.Update(fn)
}

// Profile returns an immutable snapshot of the current profile.
func (s *Session) Profile() cow.Detached[Profile] {
	return s.profile.Detach()
}

// Net returns an immutable snapshot of the current network state.
func (s *Session) Net() cow.Detached[NetState] {
	return s.net.Detach()
}

// WatchProfile registers fn for every committed profile change. The
// snapshot passed to fn is the value just committed.
func (s *Session) WatchProfile(fn func(cow.Detached[Profile])) uuid.UUID {
	return s.profileHub.Subscribe(func(r *cow.Root[Profile]) {
		fn(r.Detach())
	})
}

// UnwatchProfile removes a profile registration.
func (s *Session) UnwatchProfile(id uuid.UUID) {
	s.profileHub.Unsubscribe(id)
}

// WatchNet registers fn for every committed network state change.
func (s *Session) WatchNet(fn func(cow.Detached[NetState])) uuid.UUID {
	return s.netHub.Subscribe(func(r *cow.Root[NetState]) {
		fn(r.Detach())
	})
}

// UnwatchNet removes a network registration.
func (s *Session) UnwatchNet(id uuid.UUID) {
	s.netHub.Unsubscribe(id)
}
