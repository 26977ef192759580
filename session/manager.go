// File: session/manager.go
// Package session
// Author: momentics <momentics@gmail.com>
//
// Sharded, thread-safe session manager for high concurrency.

package session

import (
	"hash/fnv"
	"sync"

	"github.com/momentics/hioload-chain/api"
)

// ChainBuilder populates a freshly created session's filter chain.
type ChainBuilder func(chain api.FilterChain) error

// Manager tracks live sessions, sharded by id hash to spread lock pressure.
type Manager struct {
	cfg     Config
	handler api.Handler
	builder ChainBuilder
	shards  []*shard
	mask    uint32
}

type shard struct {
	mu       sync.RWMutex
	sessions map[string]*BaseSession
}

// NewManager constructs a manager with shardCount shards (rounded up to a
// power of two, default 16). cfg and handler apply to every created session.
func NewManager(cfg Config, handler api.Handler, shardCount int) *Manager {
	if shardCount <= 0 {
		shardCount = 16
	}
	m := nextPowerOfTwo(uint32(shardCount))
	shards := make([]*shard, m)
	for i := range shards {
		shards[i] = &shard{sessions: make(map[string]*BaseSession)}
	}
	return &Manager{cfg: cfg, handler: handler, shards: shards, mask: m - 1}
}

func (m *Manager) shard(id string) *shard {
	return m.shards[fnv32(id)&m.mask]
}

// SetChainBuilder installs the per-session chain configuration hook.
// Applies to sessions created afterwards.
func (m *Manager) SetChainBuilder(b ChainBuilder) {
	m.builder = b
}

// Create builds a new session bound to tr, runs the chain builder and
// registers the session. A failing builder aborts creation.
func (m *Manager) Create(tr api.Transport) (*BaseSession, error) {
	s := New(m.cfg, m.handler, tr)
	if m.builder != nil {
		if err := m.builder(s.FilterChain()); err != nil {
			return nil, err
		}
	}
	sh := m.shard(s.ID())
	sh.mu.Lock()
	sh.sessions[s.ID()] = s
	sh.mu.Unlock()
	return s, nil
}

// Get fetches a session if present.
func (m *Manager) Get(id string) (*BaseSession, bool) {
	sh := m.shard(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	s, ok := sh.sessions[id]
	return s, ok
}

// Delete removes the session and marks it disconnected.
func (m *Manager) Delete(id string) {
	sh := m.shard(id)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if s, ok := sh.sessions[id]; ok {
		s.SetConnected(false)
		delete(sh.sessions, id)
	}
}

// Range applies fn to all live sessions.
func (m *Manager) Range(fn func(*BaseSession)) {
	for _, sh := range m.shards {
		sh.mu.RLock()
		for _, s := range sh.sessions {
			fn(s)
		}
		sh.mu.RUnlock()
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	n := 0
	for _, sh := range m.shards {
		sh.mu.RLock()
		n += len(sh.sessions)
		sh.mu.RUnlock()
	}
	return n
}

// fnv32 hashes a string to uint32.
func fnv32(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}

// nextPowerOfTwo returns the next power-of-two >= v.
func nextPowerOfTwo(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}
