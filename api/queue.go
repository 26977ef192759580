// Package api
// Author: momentics@gmail.com
//
// Growable FIFO queue contract backing pending writes and buffered events.

package api

// Queue is an unbounded FIFO contract. Implementations are array-backed
// circular buffers with power-of-two capacity and amortized O(1) operations.
type Queue[T any] interface {
	// Offer appends an item at the logical tail. Never fails.
	Offer(item T) bool
	// Poll removes and returns the logical head, false if empty.
	Poll() (T, bool)
	// Peek returns the logical head without removing, false if empty.
	Peek() (T, bool)
	// At returns the element at logical index (0 = head); ErrOutOfRange
	// when index is outside [0, Len).
	At(index int) (T, error)
	// Len returns current number of items.
	Len() int
	// Cap returns current backing capacity.
	Cap() int
}
