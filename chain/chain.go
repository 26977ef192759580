// File: chain/chain.go
// Package chain implements the mutable filter chain.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package chain

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/momentics/hioload-chain/api"
)

// DefaultChain is the standard api.FilterChain implementation. Entries form
// a doubly-linked list between the head and tail sentinels; a name index
// gives O(1) lookup while traversal order stays the list order.
type DefaultChain struct {
	session api.Session
	head    *entry
	tail    *entry
	byName  map[string]*entry
}

var _ api.FilterChain = (*DefaultChain)(nil)

// New creates the chain for s. Called once from the session constructor;
// a chain never outlives or migrates between sessions.
func New(s api.Session) *DefaultChain {
	c := &DefaultChain{
		session: s,
		byName:  make(map[string]*entry),
	}
	c.head = newEntry(c, nil, nil, "head", &headFilter{})
	c.tail = newEntry(c, c.head, nil, "tail", &tailFilter{})
	c.head.next = c.tail
	return c
}

// Session returns the owning session.
func (c *DefaultChain) Session() api.Session { return c.session }

// Get returns the filter registered under name.
func (c *DefaultChain) Get(name string) (api.Filter, error) {
	e, err := c.entryByName(name)
	if err != nil {
		return nil, err
	}
	return e.filter, nil
}

// GetEntry returns the entry registered under name.
func (c *DefaultChain) GetEntry(name string) (api.Entry, error) {
	return c.entryByName(name)
}

// GetAll returns all real entries in head-to-tail order.
func (c *DefaultChain) GetAll() []api.Entry {
	out := make([]api.Entry, 0, len(c.byName))
	for e := c.head.next; e != c.tail; e = e.next {
		out = append(out, e)
	}
	return out
}

// GetAllReversed returns all real entries in tail-to-head order.
func (c *DefaultChain) GetAllReversed() []api.Entry {
	out := make([]api.Entry, 0, len(c.byName))
	for e := c.tail.prev; e != c.head; e = e.prev {
		out = append(out, e)
	}
	return out
}

// ContainsName reports whether an entry named name exists.
func (c *DefaultChain) ContainsName(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Contains reports whether the exact filter instance is in the chain.
func (c *DefaultChain) Contains(filter api.Filter) bool {
	for e := c.head.next; e != c.tail; e = e.next {
		if e.filter == filter {
			return true
		}
	}
	return false
}

// ContainsType reports whether any entry holds a filter assignable to t.
func (c *DefaultChain) ContainsType(t reflect.Type) bool {
	for e := c.head.next; e != c.tail; e = e.next {
		ft := reflect.TypeOf(e.filter)
		if ft == t || ft.AssignableTo(t) {
			return true
		}
		if t.Kind() == reflect.Interface && ft.Implements(t) {
			return true
		}
	}
	return false
}

// AddFirst inserts filter right after the head sentinel.
func (c *DefaultChain) AddFirst(name string, filter api.Filter) error {
	if err := c.checkAddable(name); err != nil {
		return err
	}
	return c.register(c.head, name, filter)
}

// AddLast inserts filter right before the tail sentinel.
func (c *DefaultChain) AddLast(name string, filter api.Filter) error {
	if err := c.checkAddable(name); err != nil {
		return err
	}
	return c.register(c.tail.prev, name, filter)
}

// AddBefore inserts filter right before the entry named baseName.
func (c *DefaultChain) AddBefore(baseName, name string, filter api.Filter) error {
	base, err := c.entryByName(baseName)
	if err != nil {
		return err
	}
	if err := c.checkAddable(name); err != nil {
		return err
	}
	return c.register(base.prev, name, filter)
}

// AddAfter inserts filter right after the entry named baseName.
func (c *DefaultChain) AddAfter(baseName, name string, filter api.Filter) error {
	base, err := c.entryByName(baseName)
	if err != nil {
		return err
	}
	if err := c.checkAddable(name); err != nil {
		return err
	}
	return c.register(base, name, filter)
}

// Replace swaps the filter held under name without moving the entry and
// returns the previous filter. Lifecycle hooks do not fire on replacement.
func (c *DefaultChain) Replace(name string, filter api.Filter) (api.Filter, error) {
	e, err := c.entryByName(name)
	if err != nil {
		return nil, err
	}
	old := e.filter
	e.filter = filter
	return old, nil
}

// Remove unlinks the entry named name.
func (c *DefaultChain) Remove(name string) error {
	e, err := c.entryByName(name)
	if err != nil {
		return err
	}
	return c.deregister(e)
}

// Clear removes all real entries in current order, firing teardown hooks
// for each. A veto from a pre-remove hook stops the sweep at that entry.
func (c *DefaultChain) Clear() error {
	for e := c.head.next; e != c.tail; {
		next := e.next
		if err := c.deregister(e); err != nil {
			return err
		}
		e = next
	}
	return nil
}

// String renders the chain for diagnostics: "{ empty }" with no real
// entries, otherwise "{ (name:filter), ... }" in head-to-tail order.
func (c *DefaultChain) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	empty := true
	for e := c.head.next; e != c.tail; e = e.next {
		if !empty {
			b.WriteString(", ")
		}
		empty = false
		fmt.Fprintf(&b, "(%s:%s)", e.name, filterString(e.filter))
	}
	if empty {
		b.WriteString("empty ")
	} else {
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

func filterString(f api.Filter) string {
	if s, ok := f.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", f)
}

func (c *DefaultChain) entryByName(name string) (*entry, error) {
	e, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("chain: filter %q: %w", name, api.ErrNotFound)
	}
	return e, nil
}

func (c *DefaultChain) checkAddable(name string) error {
	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("chain: filter %q: %w", name, api.ErrDuplicateName)
	}
	return nil
}

// register links a new entry after prev. The pre-add hook runs before any
// link is touched so a veto leaves the chain unchanged; a failing post-add
// hook rolls the link back without firing remove hooks.
func (c *DefaultChain) register(prev *entry, name string, filter api.Filter) error {
	e := newEntry(c, prev, prev.next, name, filter)

	if err := filter.OnPreAdd(c, name, e.nf); err != nil {
		return fmt.Errorf("chain: add %q: %w: %w", name, api.ErrVetoed, err)
	}

	prev.next.prev = e
	prev.next = e
	c.byName[name] = e

	if err := filter.OnPostAdd(c, name, e.nf); err != nil {
		c.unlink(e)
		return fmt.Errorf("chain: post-add %q: %w", name, err)
	}
	return nil
}

// deregister unlinks e. The pre-remove hook runs first and may veto.
func (c *DefaultChain) deregister(e *entry) error {
	if err := e.filter.OnPreRemove(c, e.name, e.nf); err != nil {
		return fmt.Errorf("chain: remove %q: %w: %w", e.name, api.ErrVetoed, err)
	}

	c.unlink(e)

	if err := e.filter.OnPostRemove(c, e.name, e.nf); err != nil {
		return fmt.Errorf("chain: post-remove %q: %w", e.name, err)
	}
	return nil
}

func (c *DefaultChain) unlink(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.byName, e.name)
}
