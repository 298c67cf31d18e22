package pubsub

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// HubOptions carries the optional collaborators of a hub.
type HubOptions struct {
	Log logger.Logger
}

// Option is a generic option type. Targets type assert to their own
// options record and ignore options that do not match.
type Option func(any)

// WithLogger wires broadcast debug logging. Without it the hub is
// silent.
func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*HubOptions); ok {
			o.Log = log
		}
	}
}
