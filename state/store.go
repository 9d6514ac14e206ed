// /home/krylon/go/src/github.com/blicero/jadwal/state/store.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

package state

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/logdomain"
	"github.com/blicero/jadwal/objects"
)

// ErrPersist is wrapped around errors from the storage layer. When
// Dispatch returns an error matching it, the Action was still applied.
var ErrPersist = errors.New("Cannot persist state")

// Persister loads and saves the two collections of the State.
// Each Save call replaces the stored collection as a whole.
type Persister interface {
	LoadSchedule() ([]objects.ScheduleItem, error)
	LoadAssignments() ([]objects.Assignment, error)
	SaveSchedule(items []objects.ScheduleItem) error
	SaveAssignments(list []objects.Assignment) error
}

// Storage is everything the application keeps on disk.
type Storage interface {
	Persister
	NotesLoad(subjectID string) ([]objects.SubjectNote, error)
	NotesSave(subjectID string, notes []objects.SubjectNote) error
	MarkerExists(key string) (bool, error)
	MarkerSet(key string) error
	MarkerPrune(age time.Duration) (int64, error)
	ReadStateLoad() ([]string, error)
	ReadStateSave(ids []string) error
	Close() error
}

// Listener is called after every successful Dispatch with the new State.
// Listeners see the States in the order the Actions were applied. They
// must not call Dispatch themselves.
type Listener func(s State, a Action)

// Store holds the current State and serializes all changes to it.
type Store struct {
	log       *log.Logger
	seq       sync.Mutex
	lock      sync.RWMutex
	state     State
	db        Persister
	listeners []Listener
	newID     func() string
}

// NewStore creates a Store, loading the initial State from db.
func NewStore(db Persister) (*Store, error) {
	var (
		err error
		s   = &Store{
			db:    db,
			newID: common.GetUUID,
		}
	)

	if s.log, err = common.GetLogger(logdomain.State); err != nil {
		return nil, err
	} else if s.state.Schedule, err = db.LoadSchedule(); err != nil {
		s.log.Printf("[ERROR] Cannot load schedule: %s\n", err.Error())
		return nil, err
	} else if s.state.Assignments, err = db.LoadAssignments(); err != nil {
		s.log.Printf("[ERROR] Cannot load assignments: %s\n", err.Error())
		return nil, err
	}

	s.log.Printf("[DEBUG] Loaded %d classes, %d assignments\n",
		len(s.state.Schedule),
		len(s.state.Assignments))

	return s, nil
} // func NewStore(db Persister) (*Store, error)

// Snapshot returns a copy of the current State.
func (s *Store) Snapshot() State {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.state.Clone()
} // func (s *Store) Snapshot() State

// Subscribe registers a Listener.
func (s *Store) Subscribe(l Listener) {
	s.lock.Lock()
	s.listeners = append(s.listeners, l)
	s.lock.Unlock()
} // func (s *Store) Subscribe(l Listener)

// Dispatch applies an Action to the current State, saves the collection
// it touched and notifies all Listeners.
// Adding an item without an ID assigns it a fresh one.
// Concurrent calls are handled one at a time, Listeners included, so the
// last State a Listener sees is always the current one.
func (s *Store) Dispatch(a Action) (State, error) {
	var (
		err, perr error
		next      State
		listeners []Listener
	)

	s.seq.Lock()
	defer s.seq.Unlock()

	switch act := a.(type) {
	case AddSchedule:
		if act.Item.ID == "" {
			act.Item.ID = s.newID()
			a = act
		}
	case AddAssignment:
		if act.Assignment.ID == "" {
			act.Assignment.ID = s.newID()
			a = act
		}
	}

	s.lock.Lock()

	if next, err = Apply(s.state, a); err != nil {
		s.lock.Unlock()
		s.log.Printf("[INFO] Cannot apply %T: %s\n", a, err.Error())
		return next, err
	}

	s.state = next

	switch a.Touches() {
	case ScheduleCollection:
		perr = s.db.SaveSchedule(next.Schedule)
	case AssignmentCollection:
		perr = s.db.SaveAssignments(next.Assignments)
	}

	listeners = make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	next = next.Clone()
	s.lock.Unlock()

	if perr != nil {
		s.log.Printf("[ERROR] Cannot save state after %T: %s\n",
			a,
			perr.Error())
		perr = fmt.Errorf("%w: %w", ErrPersist, perr)
	}

	for _, l := range listeners {
		l(next.Clone(), a)
	}

	return next, perr
} // func (s *Store) Dispatch(a Action) (State, error)
