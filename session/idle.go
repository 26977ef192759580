// File: session/idle.go
// Package session
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Idle-time collaborator. The chain core never computes idleness; this
// checker scans live sessions on a ticker and fires sessionIdle into their
// chains.

package session

import (
	"log"
	"sync"
	"time"

	"github.com/momentics/hioload-chain/api"
)

// IdleChecker periodically fires sessionIdle notifications for sessions
// whose configured reader/writer idle intervals have elapsed.
type IdleChecker struct {
	manager  *Manager
	interval time.Duration
	stopCh   chan struct{}
	once     sync.Once
}

// NewIdleChecker creates a checker scanning manager every interval.
func NewIdleChecker(manager *Manager, interval time.Duration) *IdleChecker {
	if interval <= 0 {
		interval = time.Second
	}
	return &IdleChecker{
		manager:  manager,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the scan loop on its own goroutine.
func (ic *IdleChecker) Start() {
	go ic.run()
}

// Stop terminates the scan loop; idempotent.
func (ic *IdleChecker) Stop() {
	ic.once.Do(func() { close(ic.stopCh) })
}

func (ic *IdleChecker) run() {
	ticker := time.NewTicker(ic.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ic.stopCh:
			return
		case now := <-ticker.C:
			ic.manager.Range(func(s *BaseSession) {
				ic.notify(s, now)
			})
		}
	}
}

// notify fires at most one status per scan: both when reader and writer are
// silent, otherwise whichever side crossed its interval.
func (ic *IdleChecker) notify(s *BaseSession, now time.Time) {
	if !s.IsConnected() {
		return
	}
	cfg := s.Config()
	readerIdle := cfg.ReaderIdleTime > 0 && now.Sub(s.LastReadTime()) >= cfg.ReaderIdleTime
	writerIdle := cfg.WriterIdleTime > 0 && now.Sub(s.LastWriteTime()) >= cfg.WriterIdleTime

	var status api.IdleStatus
	switch {
	case readerIdle && writerIdle:
		status = api.BothIdle
	case readerIdle:
		status = api.ReaderIdle
	case writerIdle:
		status = api.WriterIdle
	default:
		return
	}
	if err := s.FilterChain().FireSessionIdle(status); err != nil {
		log.Printf("[IdleChecker] session %s: %v", s.ID(), err)
	}
}
