// File: adapters/handler_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// HandlerAdapter no-op base and HandlerFunc glue for terminal consumers.

package adapters

import (
	"log"

	"github.com/momentics/hioload-chain/api"
)

// HandlerAdapter implements api.Handler with no-op methods, except that an
// unhandled exceptionCaught is logged so failures never vanish silently.
type HandlerAdapter struct{}

var _ api.Handler = (*HandlerAdapter)(nil)

func (*HandlerAdapter) SessionCreated(api.Session) error { return nil }
func (*HandlerAdapter) SessionOpened(api.Session) error  { return nil }
func (*HandlerAdapter) SessionClosed(api.Session) error  { return nil }
func (*HandlerAdapter) SessionIdle(api.Session, api.IdleStatus) error {
	return nil
}

func (*HandlerAdapter) ExceptionCaught(s api.Session, cause error) error {
	log.Printf("[Handler] Unhandled exception on session %s: %v", s.ID(), cause)
	return nil
}

func (*HandlerAdapter) MessageReceived(api.Session, any) error { return nil }
func (*HandlerAdapter) MessageSent(api.Session, *api.WriteRequest) error {
	return nil
}

// MessageHandlerFunc adapts a function into an api.Handler reacting to
// received messages only.
type MessageHandlerFunc func(s api.Session, message any) error

var _ api.Handler = (MessageHandlerFunc)(nil)

func (MessageHandlerFunc) SessionCreated(api.Session) error { return nil }
func (MessageHandlerFunc) SessionOpened(api.Session) error  { return nil }
func (MessageHandlerFunc) SessionClosed(api.Session) error  { return nil }
func (MessageHandlerFunc) SessionIdle(api.Session, api.IdleStatus) error {
	return nil
}

func (MessageHandlerFunc) ExceptionCaught(s api.Session, cause error) error {
	log.Printf("[Handler] Unhandled exception on session %s: %v", s.ID(), cause)
	return nil
}

func (f MessageHandlerFunc) MessageReceived(s api.Session, message any) error {
	return f(s, message)
}

func (MessageHandlerFunc) MessageSent(api.Session, *api.WriteRequest) error {
	return nil
}
