// File: fake/transport.go
// Package fake provides in-memory collaborators for tests and examples.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import (
	"sync"

	"github.com/momentics/hioload-chain/api"
)

// Transport is an in-memory api.Transport. Write drains the session's
// pending queue into Written, completes each future and, like a loopback
// connection, immediately fires messageSent back through the chain. Close
// marks the session disconnected and fires sessionClosed.
type Transport struct {
	mu      sync.Mutex
	written []*api.WriteRequest

	// FireSent disables the synchronous messageSent echo when false.
	FireSent bool
}

var _ api.Transport = (*Transport)(nil)

// NewTransport creates a loopback transport with the messageSent echo on.
func NewTransport() *Transport {
	return &Transport{FireSent: true}
}

// Write drains and "transmits" all staged write requests in FIFO order.
func (t *Transport) Write(s api.Session, _ *api.WriteRequest) error {
	for {
		wr, ok := s.PendingWrites().Poll()
		if !ok {
			return nil
		}
		t.mu.Lock()
		t.written = append(t.written, wr)
		t.mu.Unlock()
		s.TouchWrite()
		wr.Future().Complete(nil)
		if t.FireSent {
			if err := s.FilterChain().FireMessageSent(wr); err != nil {
				return err
			}
		}
	}
}

// Close tears the fake connection down.
func (t *Transport) Close(s api.Session) error {
	s.SetConnected(false)
	return s.FilterChain().FireSessionClosed()
}

// Written returns a snapshot of transmitted requests in order.
func (t *Transport) Written() []*api.WriteRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*api.WriteRequest, len(t.written))
	copy(out, t.written)
	return out
}
