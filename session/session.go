// File: session/session.go
// Package session
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core session implementation owning the filter chain and pending writes.

package session

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/momentics/hioload-chain/api"
	"github.com/momentics/hioload-chain/chain"
	"github.com/momentics/hioload-chain/queue"
)

// BaseSession is the standard api.Session implementation. One instance per
// logical connection; the chain is created here and dies with the session.
type BaseSession struct {
	id        string
	cfg       Config
	handler   api.Handler
	transport api.Transport
	chain     api.FilterChain
	attrs     *attrStore
	pending   *queue.SyncRingBuffer[*api.WriteRequest]
	connected atomic.Bool
	closing   atomic.Bool
	lastRead  atomic.Int64
	lastWrite atomic.Int64
}

var _ api.Session = (*BaseSession)(nil)

// New creates a connected session with a fresh chain and a uuid identity.
// handler is the shared terminal consumer; tr the transport collaborator.
func New(cfg Config, handler api.Handler, tr api.Transport) *BaseSession {
	if cfg.PendingWriteCapacity <= 0 {
		cfg.PendingWriteCapacity = DefaultConfig().PendingWriteCapacity
	}
	s := &BaseSession{
		id:        uuid.NewString(),
		cfg:       cfg,
		handler:   handler,
		transport: tr,
		attrs:     newAttrStore(),
		pending:   queue.NewSyncWithCapacity[*api.WriteRequest](cfg.PendingWriteCapacity),
	}
	s.chain = chain.New(s)
	s.connected.Store(true)
	now := time.Now().UnixNano()
	s.lastRead.Store(now)
	s.lastWrite.Store(now)
	return s
}

// ID returns the unique session identifier.
func (s *BaseSession) ID() string { return s.id }

// Config returns the immutable session configuration.
func (s *BaseSession) Config() Config { return s.cfg }

// FilterChain returns the chain owned by this session.
func (s *BaseSession) FilterChain() api.FilterChain { return s.chain }

// Handler returns the terminal event consumer.
func (s *BaseSession) Handler() api.Handler { return s.handler }

// Transport returns the collaborator behind the chain head.
func (s *BaseSession) Transport() api.Transport { return s.transport }

// Attributes returns the session-scoped key-value store.
func (s *BaseSession) Attributes() api.Attributes { return s.attrs }

// IsConnected reports whether the session is still open.
func (s *BaseSession) IsConnected() bool { return s.connected.Load() }

// SetConnected flips the open flag; transports call it on teardown.
func (s *BaseSession) SetConnected(connected bool) {
	s.connected.Store(connected)
}

// Write fires message as a write request through the chain, tail-to-head.
func (s *BaseSession) Write(message any) (*api.WriteFuture, error) {
	if !s.IsConnected() {
		return nil, api.ErrSessionClosed
	}
	wr := api.NewWriteRequest(message)
	if err := s.chain.FireFilterWrite(wr); err != nil {
		return wr.Future(), err
	}
	return wr.Future(), nil
}

// Close fires filterClose through the chain once; later calls are no-ops.
func (s *BaseSession) Close() error {
	if s.closing.Swap(true) {
		return nil
	}
	return s.chain.FireFilterClose()
}

// PendingWrites is the staging queue drained by the transport.
func (s *BaseSession) PendingWrites() api.Queue[*api.WriteRequest] {
	return s.pending
}

// LastReadTime returns the moment of the last recorded read.
func (s *BaseSession) LastReadTime() time.Time {
	return time.Unix(0, s.lastRead.Load())
}

// LastWriteTime returns the moment of the last recorded write.
func (s *BaseSession) LastWriteTime() time.Time {
	return time.Unix(0, s.lastWrite.Load())
}

// TouchRead records read activity.
func (s *BaseSession) TouchRead() {
	s.lastRead.Store(time.Now().UnixNano())
}

// TouchWrite records write activity.
func (s *BaseSession) TouchWrite() {
	s.lastWrite.Store(time.Now().UnixNano())
}
