// File: api/session.go
// Package api defines the per-connection session contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "time"

// Session is the per-connection context. It exclusively owns one FilterChain
// and references the shared terminal Handler plus the Transport collaborator
// behind the chain head.
type Session interface {
	// ID returns the unique session identifier.
	ID() string
	// FilterChain returns the chain owned by this session.
	FilterChain() FilterChain
	// Handler returns the terminal event consumer.
	Handler() Handler
	// Transport returns the outbound collaborator behind the chain head.
	Transport() Transport
	// Attributes returns the session-scoped key-value store.
	Attributes() Attributes

	// IsConnected reports whether the session is still open.
	IsConnected() bool
	// SetConnected flips the open flag; called by the transport layer.
	SetConnected(connected bool)

	// Write fires an outbound write through the chain and returns the
	// request's completion future.
	Write(message any) (*WriteFuture, error)
	// Close fires filterClose through the chain toward the transport.
	Close() error

	// PendingWrites is the staging queue drained by the transport.
	PendingWrites() Queue[*WriteRequest]

	// LastReadTime and LastWriteTime feed idle detection.
	LastReadTime() time.Time
	LastWriteTime() time.Time
	// TouchRead and TouchWrite record I/O activity; called by transports.
	TouchRead()
	TouchWrite()
}

// Attributes is a session-scoped key-value store.
type Attributes interface {
	// Set assigns a value for a key.
	Set(key string, value any)
	// Get fetches a value, returning (value, exists).
	Get(key string) (any, bool)
	// Delete removes a key.
	Delete(key string)
	// Keys returns all present keys.
	Keys() []string
}
