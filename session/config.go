// File: session/config.go
// Package session
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package session

import "time"

// Config holds per-session parameters, immutable after construction.
type Config struct {
	// PendingWriteCapacity is the initial capacity of the pending-write
	// queue; it grows on demand.
	PendingWriteCapacity int
	// ReaderIdleTime is the silence interval after which the session counts
	// as reader-idle. Zero disables reader-idle detection.
	ReaderIdleTime time.Duration
	// WriterIdleTime is the counterpart for writes.
	WriterIdleTime time.Duration
}

// DefaultConfig returns the baseline session configuration.
func DefaultConfig() Config {
	return Config{
		PendingWriteCapacity: 16,
	}
}
