// File: api/idle.go
// Package api defines idle status notifications.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// IdleStatus classifies a sessionIdle notification. Idle detection itself is
// performed by an external timer collaborator; the chain only propagates it.
type IdleStatus int

const (
	// ReaderIdle means no read happened for the configured interval.
	ReaderIdle IdleStatus = iota
	// WriterIdle means no write happened for the configured interval.
	WriterIdle
	// BothIdle means neither a read nor a write happened.
	BothIdle
)

// String returns a human-readable form of the status.
func (s IdleStatus) String() string {
	switch s {
	case ReaderIdle:
		return "reader idle"
	case WriterIdle:
		return "writer idle"
	case BothIdle:
		return "both idle"
	default:
		return "unknown idle status"
	}
}
