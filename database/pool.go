// /home/krylon/go/src/github.com/blicero/jadwal/database/pool.go
// -*- mode: go; coding: utf-8; -*-
// Created on 10. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 21:50:12 krylon>

package database

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

// ErrPoolClosed is returned by Get when the Pool has been closed.
var ErrPoolClosed = errors.New("Database pool is closed")

// Pool is a pool of database connections.
// Since a Database is not safe for concurrent use, goroutines that need
// one take it from the Pool and put it back when they are done.
type Pool struct {
	cnt    int
	path   string
	log    *log.Logger
	link   chan *Database
	lock   sync.Mutex
	closed bool
}

// NewPool creates a Pool of cnt Database connections to the database at path.
func NewPool(path string, cnt int) (*Pool, error) {
	var (
		err  error
		pool = &Pool{
			cnt:  cnt,
			path: path,
			link: make(chan *Database, cnt),
		}
	)

	if cnt < 1 {
		return nil, fmt.Errorf("Pool size must be positive, not %d", cnt)
	} else if pool.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	}

	for i := 0; i < cnt; i++ {
		var db *Database

		if db, err = Open(path); err != nil {
			pool.log.Printf("[ERROR] Cannot open database connection #%d: %s\n",
				i,
				err.Error())
			pool.Close() // nolint: errcheck
			return nil, err
		}

		pool.link <- db
	}

	return pool, nil
} // func NewPool(path string, cnt int) (*Pool, error)

// Close closes all connections in the Pool. Connections currently
// checked out are closed when they are put back.
func (pool *Pool) Close() error {
	pool.lock.Lock()
	defer pool.lock.Unlock()

	if pool.closed {
		return nil
	}

	pool.closed = true

	for {
		select {
		case db := <-pool.link:
			db.Close() // nolint: errcheck
		default:
			return nil
		}
	}
} // func (pool *Pool) Close() error

// IsEmpty returns true if all connections are currently in use.
func (pool *Pool) IsEmpty() bool {
	return len(pool.link) == 0
} // func (pool *Pool) IsEmpty() bool

// Get returns a Database connection from the Pool, waiting for one to
// become available if necessary.
func (pool *Pool) Get() (*Database, error) {
	pool.lock.Lock()
	var closed = pool.closed
	pool.lock.Unlock()

	if closed {
		return nil, ErrPoolClosed
	}

	return <-pool.link, nil
} // func (pool *Pool) Get() (*Database, error)

// GetNoWait returns a Database connection from the Pool if one is
// available, or nil otherwise.
func (pool *Pool) GetNoWait() *Database {
	select {
	case db := <-pool.link:
		return db
	default:
		return nil
	}
} // func (pool *Pool) GetNoWait() *Database

// Put returns a Database connection to the Pool.
func (pool *Pool) Put(db *Database) {
	pool.lock.Lock()
	defer pool.lock.Unlock()

	if pool.closed {
		db.Close() // nolint: errcheck
		return
	}

	pool.link <- db
} // func (pool *Pool) Put(db *Database)

func (pool *Pool) with(fn func(db *Database) error) error {
	var (
		err error
		db  *Database
	)

	if db, err = pool.Get(); err != nil {
		return err
	}

	defer pool.Put(db)
	return fn(db)
} // func (pool *Pool) with(fn func(db *Database) error) error

// The methods below let a Pool serve as the application's storage,
// each call borrowing a connection for its duration.

// LoadSchedule loads all classes.
func (pool *Pool) LoadSchedule() (items []objects.ScheduleItem, err error) {
	err = pool.with(func(db *Database) (e error) {
		items, e = db.LoadSchedule()
		return
	})
	return
} // func (pool *Pool) LoadSchedule() ([]objects.ScheduleItem, error)

// LoadAssignments loads all assignments.
func (pool *Pool) LoadAssignments() (list []objects.Assignment, err error) {
	err = pool.with(func(db *Database) (e error) {
		list, e = db.LoadAssignments()
		return
	})
	return
} // func (pool *Pool) LoadAssignments() ([]objects.Assignment, error)

// SaveSchedule replaces the stored classes.
func (pool *Pool) SaveSchedule(items []objects.ScheduleItem) error {
	return pool.with(func(db *Database) error { return db.SaveSchedule(items) })
} // func (pool *Pool) SaveSchedule(items []objects.ScheduleItem) error

// SaveAssignments replaces the stored assignments.
func (pool *Pool) SaveAssignments(list []objects.Assignment) error {
	return pool.with(func(db *Database) error { return db.SaveAssignments(list) })
} // func (pool *Pool) SaveAssignments(list []objects.Assignment) error

// NotesLoad returns the notes attached to a class.
func (pool *Pool) NotesLoad(subjectID string) (notes []objects.SubjectNote, err error) {
	err = pool.with(func(db *Database) (e error) {
		notes, e = db.NotesLoad(subjectID)
		return
	})
	return
} // func (pool *Pool) NotesLoad(subjectID string) ([]objects.SubjectNote, error)

// NotesSave replaces the notes attached to a class.
func (pool *Pool) NotesSave(subjectID string, notes []objects.SubjectNote) error {
	return pool.with(func(db *Database) error { return db.NotesSave(subjectID, notes) })
} // func (pool *Pool) NotesSave(subjectID string, notes []objects.SubjectNote) error

// MarkerExists returns true if the marker was set.
func (pool *Pool) MarkerExists(key string) (ok bool, err error) {
	err = pool.with(func(db *Database) (e error) {
		ok, e = db.MarkerExists(key)
		return
	})
	return
} // func (pool *Pool) MarkerExists(key string) (bool, error)

// MarkerSet sets a marker.
func (pool *Pool) MarkerSet(key string) error {
	return pool.with(func(db *Database) error { return db.MarkerSet(key) })
} // func (pool *Pool) MarkerSet(key string) error

// MarkerPrune removes markers older than the given age.
func (pool *Pool) MarkerPrune(age time.Duration) (cnt int64, err error) {
	err = pool.with(func(db *Database) (e error) {
		cnt, e = db.MarkerPrune(time.Now().Add(-age))
		return
	})
	return
} // func (pool *Pool) MarkerPrune(age time.Duration) (int64, error)

// ReadStateLoad returns the IDs of notifications marked as read.
func (pool *Pool) ReadStateLoad() (ids []string, err error) {
	err = pool.with(func(db *Database) (e error) {
		ids, e = db.ReadStateLoad()
		return
	})
	return
} // func (pool *Pool) ReadStateLoad() ([]string, error)

// ReadStateSave replaces the set of notifications marked as read.
func (pool *Pool) ReadStateSave(ids []string) error {
	return pool.with(func(db *Database) error { return db.ReadStateSave(ids) })
} // func (pool *Pool) ReadStateSave(ids []string) error
