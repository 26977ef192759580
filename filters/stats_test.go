// File: filters/stats_test.go
// Package filters tests
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package filters_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-chain/control"
	"github.com/momentics/hioload-chain/fake"
	"github.com/momentics/hioload-chain/filters"
	"github.com/momentics/hioload-chain/session"
)

func TestStatsCountsEvents(t *testing.T) {
	reg := control.NewMetricsRegistry()
	h := fake.NewHandler()
	s := session.New(session.DefaultConfig(), h, fake.NewTransport())
	if err := s.FilterChain().AddLast("stats", filters.NewStatsFilter(reg)); err != nil {
		t.Fatalf("AddLast: %v", err)
	}

	c := s.FilterChain()
	if err := c.FireSessionCreated(); err != nil {
		t.Fatal(err)
	}
	if err := c.FireSessionOpened(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := c.FireMessageReceived("m"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.Write([]byte("out")); err != nil {
		t.Fatal(err)
	}
	if err := c.FireExceptionCaught(errors.New("boom")); err != nil {
		t.Fatal(err)
	}

	want := map[string]int64{
		"chain.sessionCreated":  1,
		"chain.sessionOpened":   1,
		"chain.messageReceived": 3,
		"chain.filterWrite":     1,
		// loopback transport echoes one messageSent per write
		"chain.messageSent":     1,
		"chain.exceptionCaught": 1,
		"chain.sessionClosed":   0,
		"chain.sessionIdle":     0,
	}
	for key, n := range want {
		if got := reg.Counter(key); got != n {
			t.Errorf("%s = %d, want %d", key, got, n)
		}
	}
}

func TestStatsSharedAcrossSessions(t *testing.T) {
	reg := control.NewMetricsRegistry()
	for i := 0; i < 4; i++ {
		s := session.New(session.DefaultConfig(), fake.NewHandler(), fake.NewTransport())
		if err := s.FilterChain().AddLast("stats", filters.NewStatsFilter(reg)); err != nil {
			t.Fatalf("AddLast: %v", err)
		}
		if err := s.FilterChain().FireSessionOpened(); err != nil {
			t.Fatal(err)
		}
	}
	if got := reg.Counter("chain.sessionOpened"); got != 4 {
		t.Errorf("chain.sessionOpened = %d, want 4", got)
	}
}

func TestStatsForwardsUnchanged(t *testing.T) {
	reg := control.NewMetricsRegistry()
	h := fake.NewHandler()
	s := session.New(session.DefaultConfig(), h, fake.NewTransport())
	if err := s.FilterChain().AddLast("stats", filters.NewStatsFilter(reg)); err != nil {
		t.Fatalf("AddLast: %v", err)
	}
	payload := map[string]int{"a": 1}
	if err := s.FilterChain().FireMessageReceived(payload); err != nil {
		t.Fatal(err)
	}
	msgs := h.Messages()
	if len(msgs) != 1 {
		t.Fatalf("handler saw %d messages", len(msgs))
	}
	if got, ok := msgs[0].(map[string]int); !ok || got["a"] != 1 {
		t.Errorf("payload altered: %v", msgs[0])
	}
}
