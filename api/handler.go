// File: api/handler.go
// Package api defines the Handler interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Handler is the application's terminal consumer of inbound events: the
// implicit tail of every filter chain. Signatures mirror the Filter event set
// minus the NextFilter parameter. A handler instance is shared across
// sessions and outlives any single one of them.
type Handler interface {
	SessionCreated(s Session) error
	SessionOpened(s Session) error
	SessionClosed(s Session) error
	SessionIdle(s Session, status IdleStatus) error
	ExceptionCaught(s Session, cause error) error
	MessageReceived(s Session, message any) error
	MessageSent(s Session, wr *WriteRequest) error
}
