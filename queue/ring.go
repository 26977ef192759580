// File: queue/ring.go
// Package queue implements the growable circular buffer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package queue

import (
	"github.com/momentics/hioload-chain/api"
)

// defaultCapacity is the minimum backing array size.
const defaultCapacity = 4

// RingBuffer is an unbounded FIFO over a circular power-of-two array.
// Indices wrap via bit-masking; size is derived from first/last/full without
// a separate counter. Not safe for concurrent mutators.
type RingBuffer[T any] struct {
	items           []T
	mask            int
	first           int
	last            int
	full            bool
	initialCapacity int
	shrinkThreshold int
	modCount        int
}

// Compile-time contract check.
var _ api.Queue[int] = (*RingBuffer[int])(nil)

// New creates an empty buffer with the default initial capacity.
func New[T any]() *RingBuffer[T] {
	return NewWithCapacity[T](defaultCapacity)
}

// NewWithCapacity creates an empty buffer. The requested capacity is rounded
// up to the next power of two, minimum 4.
func NewWithCapacity[T any](initialCapacity int) *RingBuffer[T] {
	capacity := normalizeCapacity(initialCapacity)
	return &RingBuffer[T]{
		items:           make([]T, capacity),
		mask:            capacity - 1,
		initialCapacity: capacity,
	}
}

// normalizeCapacity rounds capacity up to a power of two, minimum 4.
func normalizeCapacity(capacity int) int {
	actual := defaultCapacity
	for actual < capacity {
		actual <<= 1
		if actual <= 0 {
			actual = 1 << 30
			break
		}
	}
	return actual
}

// Offer appends item at the logical tail, growing first if full.
// Always succeeds; the bool return satisfies the generic queue contract.
func (q *RingBuffer[T]) Offer(item T) bool {
	q.expandIfNeeded()
	q.items[q.last] = item
	q.increaseSize()
	q.modCount++
	return true
}

// Poll removes and returns the logical head; false when empty.
// A shrink check runs after every successful removal.
func (q *RingBuffer[T]) Poll() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	item := q.items[q.first]
	q.items[q.first] = zero
	q.decreaseSize()
	q.modCount++
	q.shrinkIfNeeded()
	return item, true
}

// Peek returns the logical head without removing it; false when empty.
func (q *RingBuffer[T]) Peek() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	return q.items[q.first], true
}

// At returns the element at logical index, 0 being the head.
func (q *RingBuffer[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= q.Len() {
		return zero, api.ErrOutOfRange
	}
	return q.items[(q.first+index)&q.mask], nil
}

// Len returns the number of queued items.
func (q *RingBuffer[T]) Len() int {
	if q.full {
		return len(q.items)
	}
	if q.last >= q.first {
		return q.last - q.first
	}
	return q.last - q.first + len(q.items)
}

// Cap returns the current backing capacity, always a power of two >= Len.
func (q *RingBuffer[T]) Cap() int {
	return len(q.items)
}

// Iterator starts a forward traversal over the current logical order.
// Any structural mutation invalidates it; see Iterator.Next.
func (q *RingBuffer[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{q: q, expectedMod: q.modCount}
}

func (q *RingBuffer[T]) increaseSize() {
	q.last = (q.last + 1) & q.mask
	q.full = q.first == q.last
}

func (q *RingBuffer[T]) decreaseSize() {
	q.first = (q.first + 1) & q.mask
	q.full = false
	if q.first == q.last {
		q.first = 0
		q.last = 0
	}
}

// expandIfNeeded doubles the capacity when the buffer is full, re-packing
// elements in logical order so that first=0, last=oldCap. Once the new
// capacity exceeds 8x the initial capacity the shrink threshold rises with
// it, so a buffer that demonstrated a high-water mark will not immediately
// collapse back.
func (q *RingBuffer[T]) expandIfNeeded() {
	if !q.full {
		return
	}
	oldLen := len(q.items)
	newLen := oldLen << 1
	tmp := make([]T, newLen)
	q.copyInto(tmp, oldLen)
	q.first = 0
	q.last = oldLen
	q.items = tmp
	q.mask = newLen - 1
	if newLen>>3 > q.initialCapacity {
		q.shrinkThreshold = newLen >> 3
	}
}

// shrinkIfNeeded halves the backing array once size has fallen to the shrink
// threshold. The new capacity is the smallest power of two holding size with
// slack, never below the initial capacity and never >= the current one.
func (q *RingBuffer[T]) shrinkIfNeeded() {
	size := q.Len()
	if size > q.shrinkThreshold {
		return
	}
	oldLen := len(q.items)
	newLen := normalizeCapacity(size)
	if size == newLen {
		newLen <<= 1
	}
	if newLen >= oldLen {
		return
	}
	if newLen < q.initialCapacity {
		if oldLen == q.initialCapacity {
			return
		}
		newLen = q.initialCapacity
	}
	tmp := make([]T, newLen)
	if size > 0 {
		q.copyInto(tmp, oldLen)
	}
	q.first = 0
	q.last = size
	q.items = tmp
	q.mask = newLen - 1
	q.shrinkThreshold = 0
}

// copyInto moves the occupied region into dst in logical order, handling the
// wrap-around split.
func (q *RingBuffer[T]) copyInto(dst []T, oldLen int) {
	if q.first < q.last {
		copy(dst, q.items[q.first:q.last])
	} else {
		n := copy(dst, q.items[q.first:oldLen])
		copy(dst[n:], q.items[:q.last])
	}
}

// Iterator is a lazy forward traversal. It fails fast when the underlying
// buffer is structurally mutated mid-iteration; callers rely on that to
// detect unsafe concurrent use, so the check is part of the contract.
type Iterator[T any] struct {
	q           *RingBuffer[T]
	index       int
	expectedMod int
	err         error
}

// Next yields the following element. It returns false at the end of the
// sequence or on invalidation; Err distinguishes the two.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T
	if it.err != nil {
		return zero, false
	}
	if it.q.modCount != it.expectedMod {
		it.err = api.ErrConcurrentMod
		return zero, false
	}
	if it.index >= it.q.Len() {
		return zero, false
	}
	item, err := it.q.At(it.index)
	if err != nil {
		it.err = err
		return zero, false
	}
	it.index++
	return item, true
}

// Err reports why iteration stopped; nil on normal exhaustion.
func (it *Iterator[T]) Err() error {
	return it.err
}
