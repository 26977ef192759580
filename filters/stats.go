// File: filters/stats.go
// Package filters
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package filters

import (
	"github.com/momentics/hioload-chain/adapters"
	"github.com/momentics/hioload-chain/api"
	"github.com/momentics/hioload-chain/control"
)

// StatsFilter counts events per kind into a shared metrics registry under
// "chain.<event>" keys, then forwards them unchanged. One registry may be
// shared across many sessions' chains.
type StatsFilter struct {
	adapters.FilterAdapter
	registry *control.MetricsRegistry
}

var _ api.Filter = (*StatsFilter)(nil)

// NewStatsFilter creates a stats filter publishing into registry.
func NewStatsFilter(registry *control.MetricsRegistry) *StatsFilter {
	return &StatsFilter{registry: registry}
}

func (f *StatsFilter) SessionCreated(next api.NextFilter, s api.Session) error {
	f.registry.Inc("chain.sessionCreated", 1)
	return next.SessionCreated(s)
}

func (f *StatsFilter) SessionOpened(next api.NextFilter, s api.Session) error {
	f.registry.Inc("chain.sessionOpened", 1)
	return next.SessionOpened(s)
}

func (f *StatsFilter) SessionClosed(next api.NextFilter, s api.Session) error {
	f.registry.Inc("chain.sessionClosed", 1)
	return next.SessionClosed(s)
}

func (f *StatsFilter) SessionIdle(next api.NextFilter, s api.Session, status api.IdleStatus) error {
	f.registry.Inc("chain.sessionIdle", 1)
	return next.SessionIdle(s, status)
}

func (f *StatsFilter) ExceptionCaught(next api.NextFilter, s api.Session, cause error) error {
	f.registry.Inc("chain.exceptionCaught", 1)
	return next.ExceptionCaught(s, cause)
}

func (f *StatsFilter) MessageReceived(next api.NextFilter, s api.Session, message any) error {
	f.registry.Inc("chain.messageReceived", 1)
	return next.MessageReceived(s, message)
}

func (f *StatsFilter) MessageSent(next api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	f.registry.Inc("chain.messageSent", 1)
	return next.MessageSent(s, wr)
}

func (f *StatsFilter) FilterWrite(next api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	f.registry.Inc("chain.filterWrite", 1)
	return next.FilterWrite(s, wr)
}

func (f *StatsFilter) String() string { return "stats" }
