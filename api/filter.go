// File: api/filter.go
// Package api defines the interceptor contract for the filter chain.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Filter intercepts I/O lifecycle events flowing through a session's chain.
// Every event method receives the NextFilter bound to the filter's own chain
// position; forwarding the event is the filter's sole responsibility. Not
// calling next deliberately short-circuits propagation for that event.
//
// An error returned from an event method is not redirected into
// ExceptionCaught by the chain; it propagates unchanged to the caller of the
// chain's Fire method. ExceptionCaught is the channel for failures reported
// by the transport collaborator, not a fallback for filter bugs.
//
// Filters are shared references and may sit in several sessions' chains at
// once; stateful filters must handle that themselves.
type Filter interface {
	// SessionCreated is fired when the session has been created.
	SessionCreated(next NextFilter, s Session) error
	// SessionOpened is fired when the connection is ready for traffic.
	SessionOpened(next NextFilter, s Session) error
	// SessionClosed is fired once the connection is gone.
	SessionClosed(next NextFilter, s Session) error
	// SessionIdle is fired by the idle-time collaborator.
	SessionIdle(next NextFilter, s Session, status IdleStatus) error
	// ExceptionCaught is fired for errors reported during event processing.
	ExceptionCaught(next NextFilter, s Session, cause error) error
	// MessageReceived is fired for every inbound message.
	MessageReceived(next NextFilter, s Session, message any) error
	// MessageSent is fired after the transport finished a write request.
	MessageSent(next NextFilter, s Session, wr *WriteRequest) error

	// FilterWrite intercepts an outbound write on its way to the transport.
	FilterWrite(next NextFilter, s Session, wr *WriteRequest) error
	// FilterClose intercepts a close request on its way to the transport.
	FilterClose(next NextFilter, s Session) error

	// OnPreAdd runs before the filter is linked into chain under name.
	// A non-nil error vetoes the addition; the entry is never linked.
	OnPreAdd(chain FilterChain, name string, next NextFilter) error
	// OnPostAdd runs after the filter has been linked in.
	OnPostAdd(chain FilterChain, name string, next NextFilter) error
	// OnPreRemove runs before the filter is unlinked.
	// A non-nil error vetoes the removal.
	OnPreRemove(chain FilterChain, name string, next NextFilter) error
	// OnPostRemove runs after the filter has been unlinked.
	OnPostRemove(chain FilterChain, name string, next NextFilter) error
}

// NextFilter forwards an event to the next chain position in the event's
// propagation direction: toward the tail (and finally the Handler) for
// inbound events, toward the head (and finally the Transport) for FilterWrite
// and FilterClose. Each handle is bound to one entry of one chain.
type NextFilter interface {
	SessionCreated(s Session) error
	SessionOpened(s Session) error
	SessionClosed(s Session) error
	SessionIdle(s Session, status IdleStatus) error
	ExceptionCaught(s Session, cause error) error
	MessageReceived(s Session, message any) error
	MessageSent(s Session, wr *WriteRequest) error
	FilterWrite(s Session, wr *WriteRequest) error
	FilterClose(s Session) error
}
