// Package pubsub provides the broadcast registry a state root notifies
// on commit.
//
// A Hub is parameterized by the concrete root type it carries, one hub
// value per root: an explicit, wired collaborator rather than any kind
// of global type-keyed registry. Subscribers
// register with Subscribe, which returns the token used to Unsubscribe.
// Broadcast fans out synchronously on the publishing goroutine; the
// root calls it after the canonical swap, so a subscriber that detaches
// from its callback always observes the committed value.
package pubsub
