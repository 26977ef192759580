// File: queue/sync.go
// Package queue provides the external-mutex wrapper for shared use.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package queue

import (
	"sync"

	"github.com/momentics/hioload-chain/api"
)

// SyncRingBuffer serializes all access to an inner RingBuffer with a single
// mutex. This is the designated wrapper for queues shared across goroutines,
// e.g. a session's pending-write queue touched by both the chain head and
// the transport loop.
type SyncRingBuffer[T any] struct {
	mu sync.Mutex
	q  *RingBuffer[T]
}

var _ api.Queue[int] = (*SyncRingBuffer[int])(nil)

// NewSync wraps a fresh default-capacity buffer.
func NewSync[T any]() *SyncRingBuffer[T] {
	return &SyncRingBuffer[T]{q: New[T]()}
}

// NewSyncWithCapacity wraps a fresh buffer with the given initial capacity.
func NewSyncWithCapacity[T any](initialCapacity int) *SyncRingBuffer[T] {
	return &SyncRingBuffer[T]{q: NewWithCapacity[T](initialCapacity)}
}

// Offer appends item at the logical tail.
func (s *SyncRingBuffer[T]) Offer(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Offer(item)
}

// Poll removes and returns the logical head.
func (s *SyncRingBuffer[T]) Poll() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Poll()
}

// Peek returns the logical head without removing it.
func (s *SyncRingBuffer[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Peek()
}

// At returns the element at logical index.
func (s *SyncRingBuffer[T]) At(index int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.At(index)
}

// Len returns the number of queued items.
func (s *SyncRingBuffer[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Len()
}

// Cap returns the current backing capacity.
func (s *SyncRingBuffer[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Cap()
}

// Drain moves all queued items out in FIFO order under one lock hold.
func (s *SyncRingBuffer[T]) Drain() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.q.Len() == 0 {
		return nil
	}
	out := make([]T, 0, s.q.Len())
	for {
		item, ok := s.q.Poll()
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out
}
