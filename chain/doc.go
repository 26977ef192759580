// Package chain
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Filter chain core: a doubly-linked, named sequence of interceptors between
// fixed head and tail sentinels, owned by exactly one session.
//
// Dispatch is continuation-passing: firing an event invokes the first real
// filter with a NextFilter handle bound to its position; each filter decides
// whether to forward. The whole propagation is one synchronous call chain on
// the firing goroutine, ending at the session Handler (inbound) or the
// Transport collaborator (outbound).
//
// The linked structure is deliberately unlocked. Deployments that mutate a
// chain while events are in flight must serialize externally, or confine
// mutation to session setup; see the package tests for the contract.
package chain
