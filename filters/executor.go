// File: filters/executor.go
// Package filters
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Moves event processing after this chain position off the firing
// goroutine, one ordered stream per session.

package filters

import (
	"log"
	"sync"

	"github.com/momentics/hioload-chain/adapters"
	"github.com/momentics/hioload-chain/api"
	"github.com/momentics/hioload-chain/internal/concurrency"
)

// ExecutorFilter forwards inbound events asynchronously through a
// per-session serial executor, preserving per-session FIFO order while
// freeing the transport goroutine. sessionCreated and the outbound events
// stay synchronous so setup and writes keep their call-stack semantics.
//
// Errors returned by downstream filters on the asynchronous path cannot
// reach the original Fire caller anymore; they are logged instead. Use at
// most one ExecutorFilter per chain.
type ExecutorFilter struct {
	adapters.FilterAdapter

	mu        sync.Mutex
	executors map[string]*concurrency.SerialExecutor
}

var _ api.Filter = (*ExecutorFilter)(nil)

// NewExecutorFilter creates an executor filter with no active executors.
func NewExecutorFilter() *ExecutorFilter {
	return &ExecutorFilter{
		executors: make(map[string]*concurrency.SerialExecutor),
	}
}

func (f *ExecutorFilter) executor(s api.Session) *concurrency.SerialExecutor {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.executors[s.ID()]
	if !ok {
		e = concurrency.NewSerialExecutor()
		f.executors[s.ID()] = e
	}
	return e
}

// Drain waits for all pending events of s to finish; test hook.
func (f *ExecutorFilter) Drain(s api.Session) {
	f.executor(s).Wait()
}

func (f *ExecutorFilter) dispatch(s api.Session, event string, fn func() error) error {
	f.executor(s).Submit(func() {
		if err := fn(); err != nil {
			log.Printf("[ExecutorFilter] session=%s %s: %v", s.ID(), event, err)
		}
	})
	return nil
}

func (f *ExecutorFilter) SessionOpened(next api.NextFilter, s api.Session) error {
	return f.dispatch(s, "sessionOpened", func() error { return next.SessionOpened(s) })
}

// SessionClosed is the last event of a session; the executor entry is
// dropped once it has been delivered.
func (f *ExecutorFilter) SessionClosed(next api.NextFilter, s api.Session) error {
	return f.dispatch(s, "sessionClosed", func() error {
		err := next.SessionClosed(s)
		f.mu.Lock()
		delete(f.executors, s.ID())
		f.mu.Unlock()
		return err
	})
}

func (f *ExecutorFilter) SessionIdle(next api.NextFilter, s api.Session, status api.IdleStatus) error {
	return f.dispatch(s, "sessionIdle", func() error { return next.SessionIdle(s, status) })
}

func (f *ExecutorFilter) ExceptionCaught(next api.NextFilter, s api.Session, cause error) error {
	return f.dispatch(s, "exceptionCaught", func() error { return next.ExceptionCaught(s, cause) })
}

func (f *ExecutorFilter) MessageReceived(next api.NextFilter, s api.Session, message any) error {
	return f.dispatch(s, "messageReceived", func() error { return next.MessageReceived(s, message) })
}

func (f *ExecutorFilter) MessageSent(next api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	return f.dispatch(s, "messageSent", func() error { return next.MessageSent(s, wr) })
}

func (f *ExecutorFilter) String() string { return "executor" }
