// /home/krylon/go/src/github.com/blicero/jadwal/state/02_store_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

package state

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/blicero/jadwal/objects"
)

type memPersister struct {
	schedule    []objects.ScheduleItem
	assignments []objects.Assignment
	scheduleN   int
	assignN     int
	fail        error
}

func (m *memPersister) LoadSchedule() ([]objects.ScheduleItem, error) {
	return m.schedule, nil
}

func (m *memPersister) LoadAssignments() ([]objects.Assignment, error) {
	return m.assignments, nil
}

func (m *memPersister) SaveSchedule(items []objects.ScheduleItem) error {
	m.scheduleN++
	if m.fail != nil {
		return m.fail
	}
	m.schedule = append([]objects.ScheduleItem(nil), items...)
	return nil
}

func (m *memPersister) SaveAssignments(list []objects.Assignment) error {
	m.assignN++
	if m.fail != nil {
		return m.fail
	}
	m.assignments = append([]objects.Assignment(nil), list...)
	return nil
}

func TestStoreDispatch(t *testing.T) {
	var (
		err   error
		store *Store
		snap  State
		calls int
		db    = &memPersister{
			schedule: []objects.ScheduleItem{class("a", "Senin", "08:00", "09:40")},
		}
	)

	if store, err = NewStore(db); err != nil {
		t.Fatalf("Cannot create Store: %s", err.Error())
	} else if snap = store.Snapshot(); len(snap.Schedule) != 1 {
		t.Fatalf("Expected 1 class after load, got %d", len(snap.Schedule))
	}

	store.Subscribe(func(s State, a Action) {
		calls++
	})

	var hw = homework("", time.Date(2024, 1, 12, 23, 59, 0, 0, time.UTC))

	if snap, err = store.Dispatch(AddAssignment{Assignment: hw}); err != nil {
		t.Fatalf("Cannot add assignment: %s", err.Error())
	} else if len(snap.Assignments) != 1 {
		t.Fatalf("Expected 1 assignment, got %d", len(snap.Assignments))
	} else if snap.Assignments[0].ID == "" {
		t.Error("Store did not assign an ID to the new assignment")
	} else if db.assignN != 1 || db.scheduleN != 0 {
		t.Errorf("Expected one assignment save and no schedule save, got %d/%d",
			db.assignN,
			db.scheduleN)
	} else if len(db.assignments) != 1 {
		t.Errorf("Persisted assignment list has %d entries", len(db.assignments))
	}

	if _, err = store.Dispatch(DeleteSchedule{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	} else if db.scheduleN != 0 {
		t.Error("Failed action must not be persisted")
	} else if calls != 1 {
		t.Errorf("Expected listener to be called once, not %d times", calls)
	}

	if _, err = store.Dispatch(DeleteSchedule{ID: "a"}); err != nil {
		t.Fatalf("Cannot delete class: %s", err.Error())
	} else if len(db.schedule) != 0 {
		t.Errorf("Persisted schedule still has %d entries", len(db.schedule))
	}
} // func TestStoreDispatch(t *testing.T)

func TestStorePersistFailure(t *testing.T) {
	var (
		err   error
		store *Store
		oops  = errors.New("disk full")
		db    = &memPersister{fail: oops}
	)

	if store, err = NewStore(db); err != nil {
		t.Fatalf("Cannot create Store: %s", err.Error())
	}

	_, err = store.Dispatch(AddSchedule{Item: class("", "Kamis", "13:00", "14:40")})
	if !errors.Is(err, ErrPersist) || !errors.Is(err, oops) {
		t.Errorf("Expected wrapped persistence error, got %v", err)
	} else if snap := store.Snapshot(); len(snap.Schedule) != 1 {
		t.Errorf("In-memory state should keep the new class, has %d", len(snap.Schedule))
	}
} // func TestStorePersistFailure(t *testing.T)

func TestStoreListenerOrder(t *testing.T) {
	var (
		err     error
		store   *Store
		lock    sync.Mutex
		seen    []int
		first   = true
		entered = make(chan struct{})
		release = make(chan struct{})
		done    sync.WaitGroup
		db      = &memPersister{}
	)

	if store, err = NewStore(db); err != nil {
		t.Fatalf("Cannot create Store: %s", err.Error())
	}

	// The first call blocks until the second Dispatch has had a chance
	// to overtake it.
	store.Subscribe(func(s State, a Action) {
		lock.Lock()
		var wait = first
		first = false
		lock.Unlock()

		if wait {
			close(entered)
			<-release
		}

		lock.Lock()
		seen = append(seen, len(s.Assignments))
		lock.Unlock()
	})

	var due = time.Date(2024, 1, 12, 23, 59, 0, 0, time.UTC)

	done.Add(2)
	go func() {
		defer done.Done()
		store.Dispatch(AddAssignment{Assignment: homework("h1", due)}) // nolint: errcheck
	}()

	<-entered

	go func() {
		defer done.Done()
		store.Dispatch(AddAssignment{Assignment: homework("h2", due)}) // nolint: errcheck
	}()

	time.Sleep(time.Millisecond * 50)
	close(release)
	done.Wait()

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("Listeners saw the States out of order: %v", seen)
	} else if snap := store.Snapshot(); len(snap.Assignments) != 2 {
		t.Errorf("Store should have 2 assignments, has %d", len(snap.Assignments))
	}
} // func TestStoreListenerOrder(t *testing.T)
