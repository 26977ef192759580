// File: chain/dispatch.go
// Package chain implements event propagation.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

import (
	"github.com/momentics/hioload-chain/api"
)

// Fire methods start propagation at the sentinel nearest the entry point:
// head for inbound events, tail for outbound ones. Each call* helper invokes
// one entry's filter with the handle bound to that entry, so the observed
// side-effect order across filters is exactly the chain order, including the
// bracket pattern of filters that work before and after forwarding.

// FireSessionCreated propagates sessionCreated head-to-tail.
func (c *DefaultChain) FireSessionCreated() error {
	return c.callSessionCreated(c.head, c.session)
}

// FireSessionOpened propagates sessionOpened head-to-tail.
func (c *DefaultChain) FireSessionOpened() error {
	return c.callSessionOpened(c.head, c.session)
}

// FireSessionClosed propagates sessionClosed head-to-tail.
func (c *DefaultChain) FireSessionClosed() error {
	return c.callSessionClosed(c.head, c.session)
}

// FireSessionIdle propagates an idle notification head-to-tail.
func (c *DefaultChain) FireSessionIdle(status api.IdleStatus) error {
	return c.callSessionIdle(c.head, c.session, status)
}

// FireExceptionCaught propagates a processing failure head-to-tail. The
// machinery never swallows it; a filter that does not forward terminates
// propagation for this cause, which is a legitimate recovery pattern.
func (c *DefaultChain) FireExceptionCaught(cause error) error {
	return c.callExceptionCaught(c.head, c.session, cause)
}

// FireMessageReceived propagates an inbound message head-to-tail.
func (c *DefaultChain) FireMessageReceived(message any) error {
	return c.callMessageReceived(c.head, c.session, message)
}

// FireMessageSent propagates a write completion head-to-tail. The transport
// collaborator fires it once the specific write request finished.
func (c *DefaultChain) FireMessageSent(wr *api.WriteRequest) error {
	return c.callMessageSent(c.head, c.session, wr)
}

// FireFilterWrite propagates a write request tail-to-head, ending at the
// transport behind the head sentinel.
func (c *DefaultChain) FireFilterWrite(wr *api.WriteRequest) error {
	return c.callFilterWrite(c.tail, c.session, wr)
}

// FireFilterClose propagates a close request tail-to-head.
func (c *DefaultChain) FireFilterClose() error {
	return c.callFilterClose(c.tail, c.session)
}

func (c *DefaultChain) callSessionCreated(e *entry, s api.Session) error {
	return e.filter.SessionCreated(e.nf, s)
}

func (c *DefaultChain) callSessionOpened(e *entry, s api.Session) error {
	return e.filter.SessionOpened(e.nf, s)
}

func (c *DefaultChain) callSessionClosed(e *entry, s api.Session) error {
	return e.filter.SessionClosed(e.nf, s)
}

func (c *DefaultChain) callSessionIdle(e *entry, s api.Session, status api.IdleStatus) error {
	return e.filter.SessionIdle(e.nf, s, status)
}

func (c *DefaultChain) callExceptionCaught(e *entry, s api.Session, cause error) error {
	return e.filter.ExceptionCaught(e.nf, s, cause)
}

func (c *DefaultChain) callMessageReceived(e *entry, s api.Session, message any) error {
	return e.filter.MessageReceived(e.nf, s, message)
}

func (c *DefaultChain) callMessageSent(e *entry, s api.Session, wr *api.WriteRequest) error {
	return e.filter.MessageSent(e.nf, s, wr)
}

func (c *DefaultChain) callFilterWrite(e *entry, s api.Session, wr *api.WriteRequest) error {
	return e.filter.FilterWrite(e.nf, s, wr)
}

func (c *DefaultChain) callFilterClose(e *entry, s api.Session) error {
	return e.filter.FilterClose(e.nf, s)
}
