// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// Event propagation contract: chain order inbound, reversed order outbound,
// bracket patterns, short-circuits and error surfacing.
package chain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-chain/adapters"
	"github.com/momentics/hioload-chain/api"
	"github.com/momentics/hioload-chain/fake"
	"github.com/momentics/hioload-chain/session"
)

// eventOrderFilter appends "<id><event>" markers and forwards.
type eventOrderFilter struct {
	id  string
	out *strings.Builder
}

func (f *eventOrderFilter) SessionCreated(next api.NextFilter, s api.Session) error {
	f.out.WriteString(f.id + "S0")
	return next.SessionCreated(s)
}

func (f *eventOrderFilter) SessionOpened(next api.NextFilter, s api.Session) error {
	f.out.WriteString(f.id + "SO")
	return next.SessionOpened(s)
}

func (f *eventOrderFilter) SessionClosed(next api.NextFilter, s api.Session) error {
	f.out.WriteString(f.id + "SC")
	return next.SessionClosed(s)
}

func (f *eventOrderFilter) SessionIdle(next api.NextFilter, s api.Session, status api.IdleStatus) error {
	f.out.WriteString(f.id + "SI")
	return next.SessionIdle(s, status)
}

func (f *eventOrderFilter) ExceptionCaught(next api.NextFilter, s api.Session, cause error) error {
	f.out.WriteString(f.id + "EC")
	return next.ExceptionCaught(s, cause)
}

func (f *eventOrderFilter) MessageReceived(next api.NextFilter, s api.Session, message any) error {
	f.out.WriteString(f.id + "MR")
	return next.MessageReceived(s, message)
}

func (f *eventOrderFilter) MessageSent(next api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	f.out.WriteString(f.id + "MS")
	return next.MessageSent(s, wr)
}

func (f *eventOrderFilter) FilterWrite(next api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	f.out.WriteString(f.id + "FW")
	return next.FilterWrite(s, wr)
}

func (f *eventOrderFilter) FilterClose(next api.NextFilter, s api.Session) error {
	return next.FilterClose(s)
}

func (f *eventOrderFilter) OnPreAdd(api.FilterChain, string, api.NextFilter) error  { return nil }
func (f *eventOrderFilter) OnPostAdd(api.FilterChain, string, api.NextFilter) error { return nil }
func (f *eventOrderFilter) OnPreRemove(api.FilterChain, string, api.NextFilter) error {
	return nil
}
func (f *eventOrderFilter) OnPostRemove(api.FilterChain, string, api.NextFilter) error {
	return nil
}

// orderHandler appends "H<event>" markers as the terminal consumer.
type orderHandler struct {
	out *strings.Builder
}

func (h *orderHandler) SessionCreated(api.Session) error {
	h.out.WriteString("HS0")
	return nil
}

func (h *orderHandler) SessionOpened(api.Session) error {
	h.out.WriteString("HSO")
	return nil
}

func (h *orderHandler) SessionClosed(api.Session) error {
	h.out.WriteString("HSC")
	return nil
}

func (h *orderHandler) SessionIdle(api.Session, api.IdleStatus) error {
	h.out.WriteString("HSI")
	return nil
}

func (h *orderHandler) ExceptionCaught(api.Session, error) error {
	h.out.WriteString("HEC")
	return nil
}

func (h *orderHandler) MessageReceived(api.Session, any) error {
	h.out.WriteString("HMR")
	return nil
}

func (h *orderHandler) MessageSent(api.Session, *api.WriteRequest) error {
	h.out.WriteString("HMS")
	return nil
}

func newOrderSession() (*session.BaseSession, *strings.Builder) {
	out := &strings.Builder{}
	s := session.New(session.DefaultConfig(), &orderHandler{out: out}, fake.NewTransport())
	return s, out
}

// fireAll fires the full event sequence once, the loopback transport
// echoing messageSent right after the write reaches the head.
func fireAll(t *testing.T, c api.FilterChain) {
	t.Helper()
	require.NoError(t, c.FireSessionCreated())
	require.NoError(t, c.FireSessionOpened())
	require.NoError(t, c.FireMessageReceived("ping"))
	require.NoError(t, c.FireFilterWrite(api.NewWriteRequest([]byte("pong"))))
	require.NoError(t, c.FireSessionIdle(api.ReaderIdle))
	require.NoError(t, c.FireExceptionCaught(errors.New("boom")))
	require.NoError(t, c.FireSessionClosed())
}

// With no filters every event lands directly on the handler.
func TestDispatchDefault(t *testing.T) {
	s, out := newOrderSession()
	fireAll(t, s.FilterChain())
	assert.Equal(t, "HS0"+"HSO"+"HMR"+"HMS"+"HSI"+"HEC"+"HSC", out.String())
}

// Two filters A, B: inbound events run A then B then handler; the write
// runs B then A (tail-to-head) before its completion echoes back inbound.
func TestDispatchChained(t *testing.T) {
	s, out := newOrderSession()
	c := s.FilterChain()
	require.NoError(t, c.AddLast("A", &eventOrderFilter{id: "A", out: out}))
	require.NoError(t, c.AddLast("B", &eventOrderFilter{id: "B", out: out}))

	fireAll(t, c)

	assert.Equal(t,
		"AS0BS0HS0"+
			"ASOBSOHSO"+
			"AMRBMRHMR"+
			"BFWAFW"+"AMSBMSHMS"+
			"ASIBSIHSI"+
			"AECBECHEC"+
			"ASCBSCHSC",
		out.String())
}

// bracketFilter works before and after forwarding.
type bracketFilter struct {
	adapters.FilterAdapter
	id  string
	out *strings.Builder
}

func (f *bracketFilter) MessageReceived(next api.NextFilter, s api.Session, message any) error {
	f.out.WriteString(f.id + "(")
	err := next.MessageReceived(s, message)
	f.out.WriteString(")" + f.id)
	return err
}

// A filter doing work on both sides of the forward call must bracket
// everything downstream of it, including the handler.
func TestDispatchBracketing(t *testing.T) {
	s, out := newOrderSession()
	c := s.FilterChain()
	require.NoError(t, c.AddLast("A", &bracketFilter{id: "A", out: out}))
	require.NoError(t, c.AddLast("B", &bracketFilter{id: "B", out: out}))

	require.NoError(t, c.FireMessageReceived("x"))
	assert.Equal(t, "A(B(HMR)B)A", out.String())
}

// swallowFilter never forwards messageReceived.
type swallowFilter struct {
	adapters.FilterAdapter
}

func (*swallowFilter) MessageReceived(api.NextFilter, api.Session, any) error {
	return nil
}

// Not calling next deliberately terminates propagation for that event.
func TestDispatchShortCircuit(t *testing.T) {
	s, out := newOrderSession()
	c := s.FilterChain()
	require.NoError(t, c.AddLast("A", &eventOrderFilter{id: "A", out: out}))
	require.NoError(t, c.AddLast("swallow", &swallowFilter{}))
	require.NoError(t, c.AddLast("B", &eventOrderFilter{id: "B", out: out}))

	require.NoError(t, c.FireMessageReceived("x"))
	assert.Equal(t, "AMR", out.String())

	// other events still flow through untouched
	require.NoError(t, c.FireSessionOpened())
	assert.Equal(t, "AMR"+"ASOBSOHSO", out.String())
}

// An exceptionCaught that a filter does not forward is a legitimate
// recovery: propagation ends there, nothing reaches the handler.
func TestDispatchExceptionSwallowed(t *testing.T) {
	s, out := newOrderSession()
	c := s.FilterChain()
	require.NoError(t, c.AddLast("catcher", &catchFilter{}))

	require.NoError(t, c.FireExceptionCaught(errors.New("boom")))
	assert.Equal(t, "", out.String())
}

type catchFilter struct {
	adapters.FilterAdapter
}

func (*catchFilter) ExceptionCaught(api.NextFilter, api.Session, error) error {
	return nil
}

// failFilter returns an error from its event method.
type failFilter struct {
	adapters.FilterAdapter
	err error
}

func (f *failFilter) MessageReceived(api.NextFilter, api.Session, any) error {
	return f.err
}

// An error from a filter's event method surfaces at the Fire caller and is
// not redirected into exceptionCaught by the chain.
func TestDispatchErrorPropagatesToFirer(t *testing.T) {
	s, out := newOrderSession()
	c := s.FilterChain()
	errBoom := errors.New("boom")
	require.NoError(t, c.AddLast("A", &eventOrderFilter{id: "A", out: out}))
	require.NoError(t, c.AddLast("fail", &failFilter{err: errBoom}))

	err := c.FireMessageReceived("x")
	assert.ErrorIs(t, err, errBoom)
	// A saw the event on the way in; neither the handler nor any
	// exceptionCaught marker may appear.
	assert.Equal(t, "AMR", out.String())
}

// The write path: the head stages the request and the transport completes
// its future; the staged queue is drained afterwards.
func TestDispatchWriteCompletesFuture(t *testing.T) {
	tr := fake.NewTransport()
	s := session.New(session.DefaultConfig(), fake.NewHandler(), tr)

	fut, err := s.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, fut.Await())
	assert.True(t, fut.IsDone())
	assert.Equal(t, 0, s.PendingWrites().Len())
	require.Len(t, tr.Written(), 1)
	assert.Equal(t, []byte("payload"), tr.Written()[0].Message())
}

// Close flows outbound through the chain into the transport, which fires
// sessionClosed back inbound; a second Close is a no-op.
func TestDispatchClose(t *testing.T) {
	h := fake.NewHandler()
	s := session.New(session.DefaultConfig(), h, fake.NewTransport())

	require.NoError(t, s.Close())
	assert.False(t, s.IsConnected())
	assert.Equal(t, []string{"sessionClosed"}, h.Events())

	require.NoError(t, s.Close())
	assert.Equal(t, []string{"sessionClosed"}, h.Events())

	_, err := s.Write([]byte("late"))
	assert.ErrorIs(t, err, api.ErrSessionClosed)
}
