// File: api/chain.go
// Package api defines the filter chain contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "reflect"

// Entry is one named slot in a filter chain.
type Entry interface {
	// Name returns the entry's unique name within its chain.
	Name() string
	// Filter returns the interceptor held at this position.
	Filter() Filter
	// NextFilter returns the forwarding handle bound to this position.
	NextFilter() NextFilter
}

// FilterChain is the ordered, named, mutable sequence of filters owned by
// exactly one session. Real entries live between two fixed sentinels; the
// head side faces the transport, the tail side faces the handler.
//
// The linked structure carries no internal locking. Concurrent mutation and
// event firing from different goroutines must be serialized by the caller,
// or mutation restricted to session setup before delivery starts.
type FilterChain interface {
	// Session returns the owning session.
	Session() Session

	// Get returns the filter registered under name.
	Get(name string) (Filter, error)
	// GetEntry returns the entry registered under name.
	GetEntry(name string) (Entry, error)
	// GetAll returns all real entries in head-to-tail order.
	GetAll() []Entry
	// GetAllReversed returns all real entries in tail-to-head order.
	GetAllReversed() []Entry
	// ContainsName reports whether an entry named name exists.
	ContainsName(name string) bool
	// Contains reports whether the exact filter instance is in the chain.
	Contains(filter Filter) bool
	// ContainsType reports whether any entry holds a filter of type t,
	// or implementing t when t is an interface type.
	ContainsType(t reflect.Type) bool
	// String renders the chain for diagnostics: "{ empty }" without real
	// entries, otherwise "{ (name:filter), ... }" head-to-tail.
	String() string

	// AddFirst inserts filter right after the head sentinel.
	AddFirst(name string, filter Filter) error
	// AddLast inserts filter right before the tail sentinel.
	AddLast(name string, filter Filter) error
	// AddBefore inserts filter right before the entry named baseName.
	AddBefore(baseName, name string, filter Filter) error
	// AddAfter inserts filter right after the entry named baseName.
	AddAfter(baseName, name string, filter Filter) error
	// Replace swaps the filter held under name, keeping the position,
	// and returns the previous filter.
	Replace(name string, filter Filter) (Filter, error)
	// Remove unlinks the entry named name.
	Remove(name string) error
	// Clear removes all real entries in current order.
	Clear() error

	// Fire entry points used by the transport collaborator. Inbound events
	// start at the head; FireFilterWrite and FireFilterClose start at the
	// tail. Propagation is one synchronous call chain on the caller's
	// goroutine; errors from filters or the handler surface here unchanged.
	FireSessionCreated() error
	FireSessionOpened() error
	FireSessionClosed() error
	FireSessionIdle(status IdleStatus) error
	FireExceptionCaught(cause error) error
	FireMessageReceived(message any) error
	FireMessageSent(wr *WriteRequest) error
	FireFilterWrite(wr *WriteRequest) error
	FireFilterClose() error
}
