// Package queue
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unbounded, auto-resizing circular FIFO backed by a power-of-two array.
// Used wherever the framework stages buffered data: pending write requests,
// buffered events. Amortized O(1) offer/poll; grows by doubling, shrinks by
// halving with a high-water-mark guard against grow/shrink oscillation.
//
// A RingBuffer is single-mutator by contract. SyncRingBuffer wraps one in a
// mutex for shared use; that wrapper is the whole thread-safety story, by
// the same deliberate scope boundary the chain core draws.
package queue
