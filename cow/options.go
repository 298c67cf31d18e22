package cow

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// RootOptions carries the collaborators a root may be wired with.
type RootOptions[T any] struct {
	Broadcaster Broadcaster[T]
	Log         logger.Logger
}

func (o *RootOptions[T]) setLogger(log logger.Logger) { o.Log = log }

// Option is a generic option type. Targets type assert to their own
// options record and ignore options that do not match.
type Option func(any)

// WithBroadcaster wires the publisher collaborator invoked exactly
// once per successful commit.
func WithBroadcaster[T any](b Broadcaster[T]) Option {
	return func(opts any) {
		if o, ok := opts.(*RootOptions[T]); ok {
			o.Broadcaster = b
		}
	}
}

// WithLogger wires commit/discard debug logging. Without it the root
// is silent.
func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(interface{ setLogger(logger.Logger) }); ok {
			o.setLogger(log)
		}
	}
}
