// File: chain/entry.go
// Package chain implements the linked entry and its forwarding handle.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

import (
	"fmt"

	"github.com/momentics/hioload-chain/api"
)

// entry is one slot in the chain's doubly-linked list. The two sentinel
// entries (head, tail) are created once per chain and never removed.
type entry struct {
	chain  *DefaultChain
	prev   *entry
	next   *entry
	name   string
	filter api.Filter
	nf     *nextFilter
}

var _ api.Entry = (*entry)(nil)

func newEntry(c *DefaultChain, prev, next *entry, name string, filter api.Filter) *entry {
	e := &entry{
		chain:  c,
		prev:   prev,
		next:   next,
		name:   name,
		filter: filter,
	}
	e.nf = &nextFilter{entry: e}
	return e
}

// Name returns the entry's unique name within the chain.
func (e *entry) Name() string { return e.name }

// Filter returns the interceptor held at this position.
func (e *entry) Filter() api.Filter { return e.filter }

// NextFilter returns the forwarding handle bound to this position.
func (e *entry) NextFilter() api.NextFilter { return e.nf }

func (e *entry) String() string {
	return fmt.Sprintf("(%s:%s)", e.name, filterString(e.filter))
}

// nextFilter is the continuation a filter uses to push an event one position
// further. Inbound events resume at the following entry, outbound events at
// the preceding one; the sentinels terminate both directions.
type nextFilter struct {
	entry *entry
}

var _ api.NextFilter = (*nextFilter)(nil)

func (n *nextFilter) SessionCreated(s api.Session) error {
	return n.entry.chain.callSessionCreated(n.entry.next, s)
}

func (n *nextFilter) SessionOpened(s api.Session) error {
	return n.entry.chain.callSessionOpened(n.entry.next, s)
}

func (n *nextFilter) SessionClosed(s api.Session) error {
	return n.entry.chain.callSessionClosed(n.entry.next, s)
}

func (n *nextFilter) SessionIdle(s api.Session, status api.IdleStatus) error {
	return n.entry.chain.callSessionIdle(n.entry.next, s, status)
}

func (n *nextFilter) ExceptionCaught(s api.Session, cause error) error {
	return n.entry.chain.callExceptionCaught(n.entry.next, s, cause)
}

func (n *nextFilter) MessageReceived(s api.Session, message any) error {
	return n.entry.chain.callMessageReceived(n.entry.next, s, message)
}

func (n *nextFilter) MessageSent(s api.Session, wr *api.WriteRequest) error {
	return n.entry.chain.callMessageSent(n.entry.next, s, wr)
}

func (n *nextFilter) FilterWrite(s api.Session, wr *api.WriteRequest) error {
	return n.entry.chain.callFilterWrite(n.entry.prev, s, wr)
}

func (n *nextFilter) FilterClose(s api.Session) error {
	return n.entry.chain.callFilterClose(n.entry.prev, s)
}
