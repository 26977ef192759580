// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package tcp provides a minimal TCP acceptor wiring accepted connections
// into sessions and their filter chains. It is deliberately thin: transport
// multiplexing strategies stay outside the chain core.
package tcp

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"

	"github.com/momentics/hioload-chain/session"
	"github.com/momentics/hioload-chain/transport"
)

// ListenerConfig holds configuration for the TCP acceptor.
type ListenerConfig struct {
	Addr           string // TCP address to bind (e.g., ":9001")
	ReuseAddr      bool   // Set SO_REUSEADDR before bind (Linux)
	ReadBufferSize int    // Per-connection read buffer; 0 selects default
}

// Acceptor accepts connections and runs one session per connection.
type Acceptor struct {
	cfg     ListenerConfig
	manager *session.Manager
	ln      net.Listener
	mu      sync.Mutex
	closed  bool
}

// NewAcceptor creates an acceptor registering sessions with manager.
func NewAcceptor(cfg ListenerConfig, manager *session.Manager) *Acceptor {
	return &Acceptor{cfg: cfg, manager: manager}
}

// ListenAndServe binds cfg.Addr and runs the accept loop until Close.
func (a *Acceptor) ListenAndServe() error {
	lc := net.ListenConfig{Control: listenControl(a.cfg.ReuseAddr)}
	ln, err := lc.Listen(context.Background(), "tcp", a.cfg.Addr)
	if err != nil {
		return fmt.Errorf("tcp listen failed: %w", err)
	}
	a.mu.Lock()
	a.ln = ln
	a.mu.Unlock()
	return a.Serve(ln)
}

// Serve runs the accept loop over ln.
func (a *Acceptor) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			a.mu.Lock()
			closed := a.closed
			a.mu.Unlock()
			if closed {
				return nil
			}
			return err
		}
		go a.handle(conn)
	}
}

// Addr returns the bound listener address, nil before ListenAndServe.
func (a *Acceptor) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ln == nil {
		return nil
	}
	return a.ln.Addr()
}

// Close stops accepting; running sessions keep their connections.
func (a *Acceptor) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	if a.ln == nil {
		return nil
	}
	return a.ln.Close()
}

// handle runs the full session lifecycle for one accepted connection.
func (a *Acceptor) handle(conn net.Conn) {
	nc := transport.NewNetConn(conn, a.cfg.ReadBufferSize)
	s, err := a.manager.Create(nc)
	if err != nil {
		log.Printf("[Acceptor] session setup failed: %v", err)
		conn.Close()
		return
	}
	chain := s.FilterChain()

	if err := chain.FireSessionCreated(); err != nil {
		log.Printf("[Acceptor] session=%s sessionCreated: %v", s.ID(), err)
		conn.Close()
		a.manager.Delete(s.ID())
		return
	}
	if err := chain.FireSessionOpened(); err != nil {
		log.Printf("[Acceptor] session=%s sessionOpened: %v", s.ID(), err)
	}

	nc.ReadLoop(s)
	a.manager.Delete(s.ID())
}
