// File: session/session_test.go
// Package session tests
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/momentics/hioload-chain/api"
	"github.com/momentics/hioload-chain/fake"
	"github.com/momentics/hioload-chain/session"
)

func newSession() (*session.BaseSession, *fake.Handler, *fake.Transport) {
	h := fake.NewHandler()
	tr := fake.NewTransport()
	return session.New(session.DefaultConfig(), h, tr), h, tr
}

func TestSessionIdentity(t *testing.T) {
	a, _, _ := newSession()
	b, _, _ := newSession()
	if a.ID() == "" || b.ID() == "" {
		t.Fatal("session id must not be empty")
	}
	if a.ID() == b.ID() {
		t.Errorf("two sessions share id %s", a.ID())
	}
	if a.FilterChain().Session() != api.Session(a) {
		t.Error("chain must point back at its owning session")
	}
	if !a.IsConnected() {
		t.Error("fresh session must be connected")
	}
}

func TestSessionWriteRoundTrip(t *testing.T) {
	s, h, tr := newSession()

	fut, err := s.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := fut.Await(); err != nil {
		t.Fatalf("Await: %v", err)
	}
	if got := len(tr.Written()); got != 1 {
		t.Fatalf("written = %d, want 1", got)
	}
	if s.PendingWrites().Len() != 0 {
		t.Error("pending queue should be drained after the write")
	}
	// loopback transport echoes messageSent back through the chain
	evs := h.Events()
	if len(evs) != 1 || evs[0] != "messageSent" {
		t.Errorf("events = %v, want [messageSent]", evs)
	}
}

func TestSessionWriteAfterClose(t *testing.T) {
	s, _, _ := newSession()
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if s.IsConnected() {
		t.Error("closed session still reports connected")
	}
	if _, err := s.Write([]byte("x")); !errors.Is(err, api.ErrSessionClosed) {
		t.Errorf("Write after Close = %v, want ErrSessionClosed", err)
	}
}

func TestSessionCloseIdempotent(t *testing.T) {
	s, h, _ := newSession()
	for i := 0; i < 3; i++ {
		if err := s.Close(); err != nil {
			t.Fatalf("Close #%d: %v", i+1, err)
		}
	}
	if got := h.Events(); len(got) != 1 || got[0] != "sessionClosed" {
		t.Errorf("events = %v, want exactly one sessionClosed", got)
	}
}

func TestSessionActivityTimestamps(t *testing.T) {
	s, _, _ := newSession()
	read0, write0 := s.LastReadTime(), s.LastWriteTime()

	time.Sleep(5 * time.Millisecond)
	s.TouchRead()
	if !s.LastReadTime().After(read0) {
		t.Error("TouchRead did not advance LastReadTime")
	}
	if s.LastWriteTime() != write0 {
		t.Error("TouchRead must not change LastWriteTime")
	}

	time.Sleep(5 * time.Millisecond)
	s.TouchWrite()
	if !s.LastWriteTime().After(write0) {
		t.Error("TouchWrite did not advance LastWriteTime")
	}
}

func TestSessionAttributes(t *testing.T) {
	s, _, _ := newSession()
	attrs := s.Attributes()

	if _, ok := attrs.Get("user"); ok {
		t.Error("fresh store must be empty")
	}
	attrs.Set("user", "alice")
	attrs.Set("hits", 42)
	if v, ok := attrs.Get("user"); !ok || v != "alice" {
		t.Errorf("Get(user) = %v, %v", v, ok)
	}
	if got := len(attrs.Keys()); got != 2 {
		t.Errorf("Keys len = %d, want 2", got)
	}
	attrs.Delete("user")
	if _, ok := attrs.Get("user"); ok {
		t.Error("deleted key still present")
	}
	// attributes live independently per session
	other, _, _ := newSession()
	if _, ok := other.Attributes().Get("hits"); ok {
		t.Error("attribute leaked across sessions")
	}
}
