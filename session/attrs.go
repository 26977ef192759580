// File: session/attrs.go
// Package session
// Author: momentics <momentics@gmail.com>
//
// Thread-safe attribute store scoped to one session.

package session

import (
	"sync"

	"github.com/momentics/hioload-chain/api"
)

type attrStore struct {
	mu    sync.RWMutex
	store map[string]any
}

var _ api.Attributes = (*attrStore)(nil)

func newAttrStore() *attrStore {
	return &attrStore{store: make(map[string]any)}
}

// Set assigns a value for a key.
func (a *attrStore) Set(key string, value any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.store[key] = value
}

// Get retrieves a value and its existence.
func (a *attrStore) Get(key string) (any, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.store[key]
	return v, ok
}

// Delete removes a key.
func (a *attrStore) Delete(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.store, key)
}

// Keys returns all present keys.
func (a *attrStore) Keys() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	keys := make([]string, 0, len(a.store))
	for k := range a.store {
		keys = append(keys, k)
	}
	return keys
}
