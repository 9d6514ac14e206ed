// /home/krylon/go/src/github.com/blicero/jadwal/center/center.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

package center

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/blicero/jadwal/objects"
)

// ErrNoSuchItem is returned when an operation refers to an entry that
// is not in the list.
var ErrNoSuchItem = errors.New("No such notification")

// ReadStore is where the IDs of entries the user has read are kept,
// if the Center is asked to remember them.
type ReadStore interface {
	ReadStateLoad() ([]string, error)
	ReadStateSave(ids []string) error
}

// Center holds the current list of NotificationItems.
//
// Without a ReadStore, Refresh replaces the list wholesale, so entries
// the user marked as read or deleted come back unread the next time the
// Assignments change. With a ReadStore, the read flag is remembered by
// entry ID across Refresh and restarts.
type Center struct {
	lock      sync.RWMutex
	items     []objects.NotificationItem
	generated map[string]bool
	read      map[string]bool
	store     ReadStore
}

// New creates a Center. store may be nil.
func New(store ReadStore) (*Center, error) {
	var c = &Center{
		items:     make([]objects.NotificationItem, 0),
		generated: make(map[string]bool),
		store:     store,
	}

	if store != nil {
		var (
			err error
			ids []string
		)

		if ids, err = store.ReadStateLoad(); err != nil {
			return nil, fmt.Errorf("Cannot load read state: %w", err)
		}

		c.read = make(map[string]bool, len(ids))
		for _, id := range ids {
			c.read[id] = true
		}
	}

	return c, nil
} // func New(store ReadStore) (*Center, error)

// KeepsReadState returns true if the Center remembers read entries
// across Refresh.
func (c *Center) KeepsReadState() bool {
	return c.store != nil
} // func (c *Center) KeepsReadState() bool

// Refresh regenerates the list from the given Assignments.
func (c *Center) Refresh(assignments []objects.Assignment, now time.Time) error {
	var items = Generate(assignments, now)

	c.lock.Lock()
	defer c.lock.Unlock()

	c.items = items
	c.generated = make(map[string]bool, len(items))
	for idx := range items {
		c.generated[items[idx].ID] = true
	}

	if c.store == nil {
		return nil
	}

	var (
		pruned = false
		live   = make(map[string]bool, len(items))
	)

	for idx := range c.items {
		live[c.items[idx].ID] = true
		c.items[idx].Read = c.read[c.items[idx].ID]
	}

	for id := range c.read {
		if !live[id] {
			delete(c.read, id)
			pruned = true
		}
	}

	if pruned {
		return c.save()
	}

	return nil
} // func (c *Center) Refresh(assignments []objects.Assignment, now time.Time) error

// Stale returns true if a Refresh with the given Assignments at now
// would produce a different set of entries than the last one did.
// Entries the user deleted since then do not count.
func (c *Center) Stale(assignments []objects.Assignment, now time.Time) bool {
	var items = Generate(assignments, now)

	c.lock.RLock()
	defer c.lock.RUnlock()

	if len(items) != len(c.generated) {
		return true
	}

	for idx := range items {
		if !c.generated[items[idx].ID] {
			return true
		}
	}

	return false
} // func (c *Center) Stale(assignments []objects.Assignment, now time.Time) bool

// Items returns a copy of the current list.
func (c *Center) Items() []objects.NotificationItem {
	c.lock.RLock()
	defer c.lock.RUnlock()

	var res = make([]objects.NotificationItem, len(c.items))
	copy(res, c.items)
	return res
} // func (c *Center) Items() []objects.NotificationItem

// MarkRead sets the read flag on the entry with the given ID.
func (c *Center) MarkRead(id string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	for idx := range c.items {
		if c.items[idx].ID == id {
			c.items[idx].Read = true
			if c.store != nil {
				c.read[id] = true
				return c.save()
			}
			return nil
		}
	}

	return ErrNoSuchItem
} // func (c *Center) MarkRead(id string) error

// MarkAllRead sets the read flag on all entries.
func (c *Center) MarkAllRead() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	for idx := range c.items {
		c.items[idx].Read = true
		if c.store != nil {
			c.read[c.items[idx].ID] = true
		}
	}

	if c.store != nil {
		return c.save()
	}

	return nil
} // func (c *Center) MarkAllRead() error

// Delete removes the entry with the given ID from the list. The
// Assignment it was derived from is not touched.
func (c *Center) Delete(id string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	for idx := range c.items {
		if c.items[idx].ID == id {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return nil
		}
	}

	return ErrNoSuchItem
} // func (c *Center) Delete(id string) error

// Clear empties the list.
func (c *Center) Clear() {
	c.lock.Lock()
	c.items = make([]objects.NotificationItem, 0)
	c.lock.Unlock()
} // func (c *Center) Clear()

// UnreadCount returns the number of entries that have not been read.
func (c *Center) UnreadCount() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	var cnt int
	for idx := range c.items {
		if !c.items[idx].Read {
			cnt++
		}
	}

	return cnt
} // func (c *Center) UnreadCount() int

// Urgent returns the urgent entries that have not been read yet.
func (c *Center) Urgent() []objects.NotificationItem {
	return c.filter(func(n *objects.NotificationItem) bool {
		return n.Urgent && !n.Read
	})
} // func (c *Center) Urgent() []objects.NotificationItem

// Regular returns the entries that are not urgent.
func (c *Center) Regular() []objects.NotificationItem {
	return c.filter(func(n *objects.NotificationItem) bool {
		return !n.Urgent
	})
} // func (c *Center) Regular() []objects.NotificationItem

func (c *Center) filter(pred func(n *objects.NotificationItem) bool) []objects.NotificationItem {
	c.lock.RLock()
	defer c.lock.RUnlock()

	var res = make([]objects.NotificationItem, 0, len(c.items))

	for idx := range c.items {
		if pred(&c.items[idx]) {
			res = append(res, c.items[idx])
		}
	}

	return res
} // func (c *Center) filter(pred func(n *objects.NotificationItem) bool) []objects.NotificationItem

// save must be called with the lock held.
func (c *Center) save() error {
	var ids = make([]string, 0, len(c.read))

	for id := range c.read {
		ids = append(ids, id)
	}

	return c.store.ReadStateSave(ids)
} // func (c *Center) save() error
