// File: filters/logging.go
// Package filters
// Author: momentics <momentics@gmail.com>
//
// Event logging interceptor, in the spirit of the handler middleware glue:
// log entry, forward, log failures.

package filters

import (
	"log"

	"github.com/momentics/hioload-chain/adapters"
	"github.com/momentics/hioload-chain/api"
)

// LoggingFilter logs every event passing through its chain position and
// forwards it unchanged.
type LoggingFilter struct {
	adapters.FilterAdapter

	// Prefix tags log lines; defaults to "Chain".
	Prefix string
}

var _ api.Filter = (*LoggingFilter)(nil)

// NewLoggingFilter creates a logging filter with the default prefix.
func NewLoggingFilter() *LoggingFilter {
	return &LoggingFilter{Prefix: "Chain"}
}

func (f *LoggingFilter) logf(s api.Session, format string, args ...any) {
	prefix := f.Prefix
	if prefix == "" {
		prefix = "Chain"
	}
	args = append([]any{prefix, s.ID()}, args...)
	log.Printf("[%s] session=%s "+format, args...)
}

func (f *LoggingFilter) SessionCreated(next api.NextFilter, s api.Session) error {
	f.logf(s, "sessionCreated")
	return next.SessionCreated(s)
}

func (f *LoggingFilter) SessionOpened(next api.NextFilter, s api.Session) error {
	f.logf(s, "sessionOpened")
	return next.SessionOpened(s)
}

func (f *LoggingFilter) SessionClosed(next api.NextFilter, s api.Session) error {
	f.logf(s, "sessionClosed")
	return next.SessionClosed(s)
}

func (f *LoggingFilter) SessionIdle(next api.NextFilter, s api.Session, status api.IdleStatus) error {
	f.logf(s, "sessionIdle status=%s", status)
	return next.SessionIdle(s, status)
}

func (f *LoggingFilter) ExceptionCaught(next api.NextFilter, s api.Session, cause error) error {
	f.logf(s, "exceptionCaught cause=%v", cause)
	return next.ExceptionCaught(s, cause)
}

func (f *LoggingFilter) MessageReceived(next api.NextFilter, s api.Session, message any) error {
	f.logf(s, "messageReceived type=%T", message)
	return next.MessageReceived(s, message)
}

func (f *LoggingFilter) MessageSent(next api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	f.logf(s, "messageSent type=%T", wr.Message())
	return next.MessageSent(s, wr)
}

func (f *LoggingFilter) FilterWrite(next api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	f.logf(s, "filterWrite type=%T", wr.Message())
	return next.FilterWrite(s, wr)
}

func (f *LoggingFilter) FilterClose(next api.NextFilter, s api.Session) error {
	f.logf(s, "filterClose")
	return next.FilterClose(s)
}

func (f *LoggingFilter) String() string { return "logging" }
