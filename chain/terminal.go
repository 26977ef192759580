// File: chain/terminal.go
// Package chain implements the sentinel terminal filters.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

import (
	"github.com/momentics/hioload-chain/adapters"
	"github.com/momentics/hioload-chain/api"
)

// headFilter sits at the head sentinel. Inbound events pass straight
// through; outbound events terminate here at the transport collaborator.
type headFilter struct {
	adapters.FilterAdapter
}

// FilterWrite stages the request on the session's pending-write queue and
// hands it to the transport. Completion (future + messageSent) is the
// transport's responsibility, reported once the write actually finished.
func (*headFilter) FilterWrite(_ api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	s.PendingWrites().Offer(wr)
	return s.Transport().Write(s, wr)
}

// FilterClose terminates the close request at the transport.
func (*headFilter) FilterClose(_ api.NextFilter, s api.Session) error {
	return s.Transport().Close(s)
}

func (*headFilter) String() string { return "head" }

// tailFilter sits at the tail sentinel. Inbound events terminate here at
// the session handler; outbound events pass straight through.
type tailFilter struct {
	adapters.FilterAdapter
}

func (*tailFilter) SessionCreated(_ api.NextFilter, s api.Session) error {
	return s.Handler().SessionCreated(s)
}

func (*tailFilter) SessionOpened(_ api.NextFilter, s api.Session) error {
	return s.Handler().SessionOpened(s)
}

func (*tailFilter) SessionClosed(_ api.NextFilter, s api.Session) error {
	return s.Handler().SessionClosed(s)
}

func (*tailFilter) SessionIdle(_ api.NextFilter, s api.Session, status api.IdleStatus) error {
	return s.Handler().SessionIdle(s, status)
}

func (*tailFilter) ExceptionCaught(_ api.NextFilter, s api.Session, cause error) error {
	return s.Handler().ExceptionCaught(s, cause)
}

func (*tailFilter) MessageReceived(_ api.NextFilter, s api.Session, message any) error {
	return s.Handler().MessageReceived(s, message)
}

func (*tailFilter) MessageSent(_ api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	return s.Handler().MessageSent(s, wr)
}

func (*tailFilter) String() string { return "tail" }
