// File: adapters/filter_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Pass-through base filter. Embed it and override only the events you care
// about; everything else forwards unchanged in the event's direction.

package adapters

import (
	"github.com/momentics/hioload-chain/api"
)

// FilterAdapter implements api.Filter with forwarding event methods and
// no-op lifecycle hooks.
type FilterAdapter struct{}

var _ api.Filter = (*FilterAdapter)(nil)

func (*FilterAdapter) SessionCreated(next api.NextFilter, s api.Session) error {
	return next.SessionCreated(s)
}

func (*FilterAdapter) SessionOpened(next api.NextFilter, s api.Session) error {
	return next.SessionOpened(s)
}

func (*FilterAdapter) SessionClosed(next api.NextFilter, s api.Session) error {
	return next.SessionClosed(s)
}

func (*FilterAdapter) SessionIdle(next api.NextFilter, s api.Session, status api.IdleStatus) error {
	return next.SessionIdle(s, status)
}

func (*FilterAdapter) ExceptionCaught(next api.NextFilter, s api.Session, cause error) error {
	return next.ExceptionCaught(s, cause)
}

func (*FilterAdapter) MessageReceived(next api.NextFilter, s api.Session, message any) error {
	return next.MessageReceived(s, message)
}

func (*FilterAdapter) MessageSent(next api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	return next.MessageSent(s, wr)
}

func (*FilterAdapter) FilterWrite(next api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	return next.FilterWrite(s, wr)
}

func (*FilterAdapter) FilterClose(next api.NextFilter, s api.Session) error {
	return next.FilterClose(s)
}

func (*FilterAdapter) OnPreAdd(api.FilterChain, string, api.NextFilter) error  { return nil }
func (*FilterAdapter) OnPostAdd(api.FilterChain, string, api.NextFilter) error { return nil }
func (*FilterAdapter) OnPreRemove(api.FilterChain, string, api.NextFilter) error {
	return nil
}
func (*FilterAdapter) OnPostRemove(api.FilterChain, string, api.NextFilter) error {
	return nil
}
