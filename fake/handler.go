// File: fake/handler.go
// Package fake provides in-memory collaborators for tests and examples.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import (
	"sync"

	"github.com/momentics/hioload-chain/api"
)

// Handler records every terminal event it receives, in arrival order.
type Handler struct {
	mu     sync.Mutex
	events []string

	// Messages collects payloads passed to MessageReceived.
	messages []any
}

var _ api.Handler = (*Handler)(nil)

// NewHandler creates an empty recording handler.
func NewHandler() *Handler { return &Handler{} }

func (h *Handler) record(ev string) {
	h.mu.Lock()
	h.events = append(h.events, ev)
	h.mu.Unlock()
}

func (h *Handler) SessionCreated(api.Session) error {
	h.record("sessionCreated")
	return nil
}

func (h *Handler) SessionOpened(api.Session) error {
	h.record("sessionOpened")
	return nil
}

func (h *Handler) SessionClosed(api.Session) error {
	h.record("sessionClosed")
	return nil
}

func (h *Handler) SessionIdle(_ api.Session, status api.IdleStatus) error {
	h.record("sessionIdle:" + status.String())
	return nil
}

func (h *Handler) ExceptionCaught(_ api.Session, cause error) error {
	h.record("exceptionCaught:" + cause.Error())
	return nil
}

func (h *Handler) MessageReceived(_ api.Session, message any) error {
	h.mu.Lock()
	h.events = append(h.events, "messageReceived")
	h.messages = append(h.messages, message)
	h.mu.Unlock()
	return nil
}

func (h *Handler) MessageSent(api.Session, *api.WriteRequest) error {
	h.record("messageSent")
	return nil
}

// Events returns a snapshot of recorded event names in order.
func (h *Handler) Events() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.events))
	copy(out, h.events)
	return out
}

// Messages returns a snapshot of received payloads in order.
func (h *Handler) Messages() []any {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]any, len(h.messages))
	copy(out, h.messages)
	return out
}
