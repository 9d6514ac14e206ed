// /home/krylon/go/src/github.com/blicero/jadwal/center/02_center_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

package center

import (
	"sort"
	"testing"
	"time"

	"github.com/blicero/jadwal/objects"
)

type memReadStore struct {
	ids   []string
	saves int
}

func (m *memReadStore) ReadStateLoad() ([]string, error) {
	return m.ids, nil
}

func (m *memReadStore) ReadStateSave(ids []string) error {
	m.ids = append([]string(nil), ids...)
	m.saves++
	return nil
}

func fixture() []objects.Assignment {
	return []objects.Assignment{
		mkAssignment("c1", -time.Hour*48, objects.Toggles{}),
		mkAssignment("c2", time.Hour*36, objects.AllToggles()),
		mkAssignment("c3", time.Minute*90, objects.Toggles{EightHoursBefore: true}),
	}
} // func fixture() []objects.Assignment

func TestCenterOperations(t *testing.T) {
	var (
		err error
		c   *Center
	)

	if c, err = New(nil); err != nil {
		t.Fatalf("Cannot create Center: %s", err.Error())
	} else if err = c.Refresh(fixture(), now); err != nil {
		t.Fatalf("Cannot refresh Center: %s", err.Error())
	}

	if cnt := c.UnreadCount(); cnt != 3 {
		t.Errorf("Expected 3 unread entries, got %d", cnt)
	} else if u := c.Urgent(); len(u) != 2 {
		t.Errorf("Expected 2 urgent entries, got %d", len(u))
	} else if r := c.Regular(); len(r) != 1 || r[0].ID != "c2-2days" {
		t.Errorf("Unexpected regular entries: %v", ids(r))
	}

	if err = c.MarkRead("c1-overdue"); err != nil {
		t.Errorf("Cannot mark entry as read: %s", err.Error())
	} else if cnt := c.UnreadCount(); cnt != 2 {
		t.Errorf("Expected 2 unread entries, got %d", cnt)
	} else if u := c.Urgent(); len(u) != 1 {
		t.Errorf("Read entries should not be listed as urgent: %v", ids(u))
	}

	if err = c.MarkRead("nope"); err != ErrNoSuchItem {
		t.Errorf("Marking an unknown entry should fail with ErrNoSuchItem, not %v", err)
	}

	if err = c.Delete("c2-2days"); err != nil {
		t.Errorf("Cannot delete entry: %s", err.Error())
	} else if len(c.Items()) != 2 {
		t.Errorf("Expected 2 entries after delete, got %d", len(c.Items()))
	} else if err = c.Delete("c2-2days"); err != ErrNoSuchItem {
		t.Errorf("Deleting twice should fail with ErrNoSuchItem, not %v", err)
	}

	if err = c.MarkAllRead(); err != nil {
		t.Errorf("Cannot mark all entries as read: %s", err.Error())
	} else if cnt := c.UnreadCount(); cnt != 0 {
		t.Errorf("Expected no unread entries, got %d", cnt)
	}

	c.Clear()
	if len(c.Items()) != 0 {
		t.Errorf("Center should be empty after Clear")
	}
} // func TestCenterOperations(t *testing.T)

func TestCenterForgetsReadState(t *testing.T) {
	var c, err = New(nil)

	if err != nil {
		t.Fatalf("Cannot create Center: %s", err.Error())
	}

	c.Refresh(fixture(), now) // nolint: errcheck
	c.MarkAllRead()           // nolint: errcheck
	c.Refresh(fixture(), now) // nolint: errcheck

	if cnt := c.UnreadCount(); cnt != 3 {
		t.Errorf("Without a ReadStore, Refresh should reset the read flags; %d unread", cnt)
	}
} // func TestCenterForgetsReadState(t *testing.T)

func TestCenterKeepsReadState(t *testing.T) {
	var (
		err   error
		c     *Center
		store = &memReadStore{ids: []string{"c3-8hours"}}
	)

	if c, err = New(store); err != nil {
		t.Fatalf("Cannot create Center: %s", err.Error())
	} else if err = c.Refresh(fixture(), now); err != nil {
		t.Fatalf("Cannot refresh: %s", err.Error())
	} else if cnt := c.UnreadCount(); cnt != 2 {
		t.Errorf("Stored read state was not applied, %d unread", cnt)
	}

	if err = c.MarkRead("c1-overdue"); err != nil {
		t.Fatalf("Cannot mark entry as read: %s", err.Error())
	}

	sort.Strings(store.ids)
	if len(store.ids) != 2 || store.ids[0] != "c1-overdue" {
		t.Errorf("Unexpected stored read state %v", store.ids)
	}

	// Completing c1 makes its entry go away, so its read flag is pruned.
	var list = fixture()
	list[0].Completed = true

	if err = c.Refresh(list, now); err != nil {
		t.Fatalf("Cannot refresh: %s", err.Error())
	} else if cnt := c.UnreadCount(); cnt != 1 {
		t.Errorf("Expected 1 unread entry, got %d", cnt)
	} else if len(store.ids) != 1 || store.ids[0] != "c3-8hours" {
		t.Errorf("Read state was not pruned: %v", store.ids)
	}
} // func TestCenterKeepsReadState(t *testing.T)

func TestCenterStale(t *testing.T) {
	var c, err = New(nil)

	if err != nil {
		t.Fatalf("Cannot create Center: %s", err.Error())
	} else if !c.Stale(fixture(), now) {
		t.Error("A Center that was never refreshed should be stale")
	} else if err = c.Refresh(fixture(), now); err != nil {
		t.Fatalf("Cannot refresh Center: %s", err.Error())
	}

	c.MarkAllRead() // nolint: errcheck

	if err = c.Delete("c2-2days"); err != nil {
		t.Fatalf("Cannot delete entry: %s", err.Error())
	}

	// An hour later, every entry is still in the same bucket.
	if c.Stale(fixture(), now.Add(time.Hour)) {
		t.Error("Center should not be stale while no entry changes its bucket")
	} else if cnt := c.UnreadCount(); cnt != 0 {
		t.Errorf("Read flags should be untouched, %d unread", cnt)
	} else if len(c.Items()) != 2 {
		t.Errorf("Deleted entry should stay deleted, have %d entries", len(c.Items()))
	}

	// By then c2 is due tomorrow and c3 is past its deadline.
	if !c.Stale(fixture(), now.Add(time.Hour*13)) {
		t.Error("Center should be stale once c2 is due tomorrow")
	}
} // func TestCenterStale(t *testing.T)
