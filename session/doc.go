// Package session composes two state roots into an application
// session: the user profile and the network state, each with its own
// publisher hub.
//
// It is the worked example for the cow package. Profile demonstrates a
// composite payload whose fields are nodes - after a commit that only
// changed the name, the email payload pointer is identical across the
// old and new snapshots, so consumers can skip work on unchanged
// subtrees.
package session
