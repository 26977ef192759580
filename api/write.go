// File: api/write.go
// Package api defines the outbound write request value.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "sync"

// WriteRequest wraps an outbound message together with an optional completion
// future. It is immutable once constructed and flows tail-to-head through the
// filter chain; the chain never retains it beyond a single propagation.
type WriteRequest struct {
	message any
	future  *WriteFuture
}

// NewWriteRequest creates a write request carrying message, with a fresh
// completion future attached.
func NewWriteRequest(message any) *WriteRequest {
	return &WriteRequest{message: message, future: newWriteFuture()}
}

// Message returns the wrapped payload.
func (w *WriteRequest) Message() any { return w.message }

// WithMessage derives a request carrying message while sharing this
// request's completion future. Codec filters use it to swap the payload on
// the way out without detaching the original writer from completion.
func (w *WriteRequest) WithMessage(message any) *WriteRequest {
	return &WriteRequest{message: message, future: w.future}
}

// Future returns the completion future for this request.
func (w *WriteRequest) Future() *WriteFuture { return w.future }

// WriteFuture signals completion of one write request. Complete is one-shot;
// later calls are ignored.
type WriteFuture struct {
	done chan struct{}
	once sync.Once
	mu   sync.Mutex
	err  error
}

func newWriteFuture() *WriteFuture {
	return &WriteFuture{done: make(chan struct{})}
}

// Complete marks the write as finished, err being nil on success.
func (f *WriteFuture) Complete(err error) {
	f.once.Do(func() {
		f.mu.Lock()
		f.err = err
		f.mu.Unlock()
		close(f.done)
	})
}

// Done returns a channel closed upon completion.
func (f *WriteFuture) Done() <-chan struct{} { return f.done }

// IsDone reports whether the write already completed.
func (f *WriteFuture) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Err returns the write outcome; only meaningful after Done is closed.
func (f *WriteFuture) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Await blocks until the write completes and returns its outcome.
func (f *WriteFuture) Await() error {
	<-f.done
	return f.Err()
}
