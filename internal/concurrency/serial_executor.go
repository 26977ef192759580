// File: internal/concurrency/serial_executor.go
// Package concurrency provides ordered task execution for filters.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SerialExecutor drains an unbounded FIFO on at most one goroutine at a
// time, so tasks submitted in order run in order without a dedicated
// long-lived worker.

package concurrency

import (
	"sync"

	"github.com/eapache/queue"
)

// SerialExecutor runs submitted tasks strictly in submission order.
type SerialExecutor struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   *queue.Queue
	running bool
}

// NewSerialExecutor creates an idle executor.
func NewSerialExecutor() *SerialExecutor {
	e := &SerialExecutor{tasks: queue.New()}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// Submit enqueues task and starts a drain goroutine if none is active.
func (e *SerialExecutor) Submit(task func()) {
	e.mu.Lock()
	e.tasks.Add(task)
	if !e.running {
		e.running = true
		go e.drain()
	}
	e.mu.Unlock()
}

// Pending returns the number of not-yet-started tasks.
func (e *SerialExecutor) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tasks.Length()
}

// Wait blocks until all submitted tasks have finished.
func (e *SerialExecutor) Wait() {
	e.mu.Lock()
	for e.running || e.tasks.Length() > 0 {
		e.cond.Wait()
	}
	e.mu.Unlock()
}

func (e *SerialExecutor) drain() {
	for {
		e.mu.Lock()
		if e.tasks.Length() == 0 {
			e.running = false
			e.cond.Broadcast()
			e.mu.Unlock()
			return
		}
		task := e.tasks.Remove().(func())
		e.mu.Unlock()
		task()
	}
}
