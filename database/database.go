// /home/krylon/go/src/github.com/blicero/jadwal/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 21:33:40 krylon>

// Package database provides persistence for the application's data in
// an SQLite database.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/database/query"
	"github.com/blicero/jadwal/logdomain"
	"github.com/blicero/jadwal/objects"
	"github.com/blicero/jadwal/objects/offset"
	"github.com/blicero/jadwal/objects/priority"
	"github.com/blicero/krylib"
	"github.com/pquerna/ffjson/ffjson"

	sqlite3 "github.com/mattn/go-sqlite3"
)

var (
	openLock sync.Mutex
	idCnt    int64
)

// ErrTxInProgress indicates that an attempt to initiate a transaction failed
// because there is already one in progress.
var ErrTxInProgress = errors.New("A Transaction is already in progress")

// ErrNoTxInProgress indicates that an attempt was made to finish a
// transaction when none was active.
var ErrNoTxInProgress = errors.New("There is no transaction in progress")

// If a query fails because the database is busy, we consider the error
// as transient and try again after a short delay.
const retryDelay = 25 * time.Millisecond

// worthARetry returns true if an error returned from the database
// indicates the database was busy or locked.
func worthARetry(e error) bool {
	var serr sqlite3.Error

	if errors.As(e, &serr) {
		return serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked
	}

	return strings.Contains(e.Error(), "database is locked")
} // func worthARetry(e error) bool

func waitForRetry() {
	time.Sleep(retryDelay)
} // func waitForRetry()

// Database is the storage backend for managing classes, assignments
// and the bits of bookkeeping around them.
//
// It is not safe to share a Database instance between goroutines, however
// opening multiple connections to the same Database is safe.
type Database struct {
	id      int64
	db      *sql.DB
	tx      *sql.Tx
	log     *log.Logger
	path    string
	queries map[query.ID]*sql.Stmt
}

// Open opens a Database. If the database specified by the path does not exist,
// yet, it is created and initialized.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:    path,
			queries: make(map[query.ID]*sql.Stmt),
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	} else if common.Debug {
		db.log.Printf("[DEBUG] Open database %s\n", path)
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=true&recursive_triggers=true",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Failed to check if %s already exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	if !dbExists {
		if err = db.initialize(); err != nil {
			var e2 error
			if e2 = db.db.Close(); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to close database: %s\n",
					e2.Error())
				return nil, e2
			} else {
				krylib.Trace()
			}
			return nil, err
		}
		db.log.Println("[INFO] Database has been initialized.")
	}

	return db, nil
} // func Open(path string) (*Database, error)

func (db *Database) initialize() error {
	var err error
	var tx *sql.Tx

	if common.Debug {
		db.log.Printf("[DEBUG] Initialize fresh database at %s\n",
			db.path)
	}

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range initQueries {
		db.log.Printf("[TRACE] Execute init query:\n%s\n",
			q)
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query: %s\n%s\n",
				err.Error(),
				q)
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
				return rbErr
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[CANTHAPPEN] Failed to commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Close closes the database.
// If there is a pending transaction, it is rolled back.
func (db *Database) Close() error {
	if db.tx != nil {
		if err := db.tx.Rollback(); err != nil {
			db.log.Printf("[ERROR] Cannot roll back pending transaction: %s\n",
				err.Error())
			return err
		}
		db.tx = nil
	}

	for key, stmt := range db.queries {
		if err := stmt.Close(); err != nil {
			db.log.Printf("[CRITICAL] Cannot close statement handle %s: %s\n",
				key,
				err.Error())
			return err
		}
		delete(db.queries, key)
	}

	if err := db.db.Close(); err != nil {
		db.log.Printf("[CRITICAL] Cannot close database: %s\n",
			err.Error())
	}

	db.db = nil
	return nil
} // func (db *Database) Close() error

func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt  *sql.Stmt
		found bool
		err   error
	)

	if stmt, found = db.queries[id]; found {
		return stmt, nil
	} else if _, found = dbQueries[id]; !found {
		return nil, fmt.Errorf("Unknown Query %d",
			id)
	}

	db.log.Printf("[TRACE] Prepare query %s\n", id)

PREPARE_QUERY:
	if stmt, err = db.db.Prepare(dbQueries[id]); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannot parse query %s: %s\n%s\n",
			id,
			err.Error(),
			dbQueries[id])
		return nil, err
	}

	db.queries[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(query.ID) (*sql.Stmt, error)

func (db *Database) resetSQLError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}

	return err
} // func (db *Database) resetSQLError(err error) error

// PerformMaintenance performs some maintenance operations on the database.
// It cannot be called while a transaction is in progress and will block
// pretty much all access to the database while it is running.
func (db *Database) PerformMaintenance() error {
	var mQueries = []string{
		"PRAGMA wal_checkpoint(TRUNCATE)",
		"VACUUM",
		"REINDEX",
		"ANALYZE",
	}
	var err error

	if db.tx != nil {
		return ErrTxInProgress
	}

	for _, q := range mQueries {
		if _, err = db.db.Exec(q); err != nil {
			db.log.Printf("[ERROR] Failed to execute %s: %s\n",
				q,
				err.Error())
		}
	}

	return nil
} // func (db *Database) PerformMaintenance() error

// Begin begins an explicit database transaction.
// Only one transaction can be in progress at once, attempting to start one,
// while another transaction is already in progress will yield ErrTxInProgress.
func (db *Database) Begin() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Begin Transaction\n",
		db.id)

	if db.tx != nil {
		return ErrTxInProgress
	}

BEGIN_TX:
	for db.tx == nil {
		if db.tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				continue BEGIN_TX
			} else {
				db.log.Printf("[ERROR] Failed to start transaction: %s\n",
					err.Error())
				return err
			}
		}
	}

	return nil
} // func (db *Database) Begin() error

// Rollback terminates a pending transaction, undoing any changes to the
// database made during that transaction.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Rollback() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Roll back Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Rollback(); err != nil {
		return fmt.Errorf("Cannot roll back database transaction: %s",
			err.Error())
	}

	db.tx = nil
	return nil
} // func (db *Database) Rollback() error

// Commit ends the active transaction, making any changes made during that
// transaction permanent and visible to other connections.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Commit() error {
	var err error

	db.log.Printf("[DEBUG] Database#%d Commit Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Commit(); err != nil {
		return fmt.Errorf("Cannot commit transaction: %s",
			err.Error())
	}

	db.tx = nil
	return nil
} // func (db *Database) Commit() error

// stmt returns the prepared statement for the given query, bound to the
// pending transaction if there is one.
func (db *Database) stmt(id query.ID) (*sql.Stmt, error) {
	var (
		err error
		s   *sql.Stmt
	)

	if s, err = db.getQuery(id); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			id,
			err.Error())
		return nil, err
	} else if db.tx != nil {
		s = db.tx.Stmt(s)
	}

	return s, nil
} // func (db *Database) stmt(id query.ID) (*sql.Stmt, error)

func (db *Database) exec(id query.ID, args ...any) (sql.Result, error) {
	var (
		err error
		s   *sql.Stmt
		res sql.Result
	)

	if s, err = db.stmt(id); err != nil {
		return nil, err
	}

EXEC_QUERY:
	if res, err = s.Exec(args...); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot execute query %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	return res, nil
} // func (db *Database) exec(id query.ID, args ...any) (sql.Result, error)

func (db *Database) rows(id query.ID, args ...any) (*sql.Rows, error) {
	var (
		err  error
		s    *sql.Stmt
		rows *sql.Rows
	)

	if s, err = db.stmt(id); err != nil {
		return nil, err
	}

EXEC_QUERY:
	if rows, err = s.Query(args...); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query %s: %s\n",
			id,
			err.Error())
		return nil, err
	}

	return rows, nil
} // func (db *Database) rows(id query.ID, args ...any) (*sql.Rows, error)

// replace runs fn inside a transaction, starting one unless the caller
// already did.
func (db *Database) replace(fn func() error) error {
	var (
		err   error
		owner = db.tx == nil
	)

	if owner {
		if err = db.Begin(); err != nil {
			return err
		}
	}

	if err = fn(); err != nil {
		if owner {
			db.Rollback() // nolint: errcheck
		}
		return err
	}

	if owner {
		return db.Commit()
	}

	return nil
} // func (db *Database) replace(fn func() error) error

////////////////////////////////////////////////////////////////////////////////
///// Schedule /////////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

// LoadSchedule loads all classes, in the order they were saved in.
func (db *Database) LoadSchedule() ([]objects.ScheduleItem, error) {
	var (
		err   error
		rows  *sql.Rows
		items = make([]objects.ScheduleItem, 0, 16)
	)

	if rows, err = db.rows(query.ScheduleGetAll); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	for rows.Next() {
		var item objects.ScheduleItem

		if err = rows.Scan(
			&item.ID,
			&item.Title,
			&item.Room,
			&item.Day,
			&item.StartTime,
			&item.EndTime,
			&item.Notes,
			&item.Color); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
} // func (db *Database) LoadSchedule() ([]objects.ScheduleItem, error)

// SaveSchedule replaces the stored classes with items.
func (db *Database) SaveSchedule(items []objects.ScheduleItem) error {
	return db.replace(func() error {
		if _, err := db.exec(query.ScheduleClear); err != nil {
			return err
		}

		for idx := range items {
			var i = &items[idx]
			if _, err := db.exec(query.ScheduleAdd,
				i.ID,
				idx,
				i.Title,
				i.Room,
				i.Day,
				i.StartTime,
				i.EndTime,
				i.Notes,
				i.Color); err != nil {
				db.log.Printf("[ERROR] Cannot add class %s: %s\n",
					i.Title,
					err.Error())
				return err
			}
		}

		return nil
	})
} // func (db *Database) SaveSchedule(items []objects.ScheduleItem) error

////////////////////////////////////////////////////////////////////////////////
///// Assignment ///////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

func toggleBits(t objects.Toggles) int64 {
	var bits int64

	for idx, o := range offset.All() {
		if t.On(o) {
			bits |= 1 << idx
		}
	}

	return bits
} // func toggleBits(t objects.Toggles) int64

func bitToggles(bits int64) objects.Toggles {
	var t objects.Toggles

	for idx, o := range offset.All() {
		t.Set(o, bits&(1<<idx) != 0)
	}

	return t
} // func bitToggles(bits int64) objects.Toggles

// LoadAssignments loads all assignments, in the order they were saved in.
func (db *Database) LoadAssignments() ([]objects.Assignment, error) {
	var (
		err  error
		rows *sql.Rows
		list = make([]objects.Assignment, 0, 16)
	)

	if rows, err = db.rows(query.AssignmentGetAll); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	for rows.Next() {
		var (
			a               objects.Assignment
			due, prio, bits int64
		)

		if err = rows.Scan(
			&a.ID,
			&a.Title,
			&a.Description,
			&due,
			&a.Subject,
			&prio,
			&a.Completed,
			&bits); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		a.DueDate = time.Unix(due, 0)
		a.Priority = priority.Priority(prio)
		a.Notifications = bitToggles(bits)
		list = append(list, a)
	}

	return list, rows.Err()
} // func (db *Database) LoadAssignments() ([]objects.Assignment, error)

// SaveAssignments replaces the stored assignments with list.
func (db *Database) SaveAssignments(list []objects.Assignment) error {
	return db.replace(func() error {
		if _, err := db.exec(query.AssignmentClear); err != nil {
			return err
		}

		for idx := range list {
			var a = &list[idx]
			if _, err := db.exec(query.AssignmentAdd,
				a.ID,
				idx,
				a.Title,
				a.Description,
				a.DueDate.Unix(),
				a.Subject,
				int64(a.Priority),
				a.Completed,
				toggleBits(a.Notifications)); err != nil {
				db.log.Printf("[ERROR] Cannot add assignment %s: %s\n",
					a.Title,
					err.Error())
				return err
			}
		}

		return nil
	})
} // func (db *Database) SaveAssignments(list []objects.Assignment) error

////////////////////////////////////////////////////////////////////////////////
///// Notes ////////////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

// NotesLoad returns the notes attached to a class, newest first.
func (db *Database) NotesLoad(subjectID string) ([]objects.SubjectNote, error) {
	var (
		err   error
		rows  *sql.Rows
		notes = make([]objects.SubjectNote, 0)
	)

	if rows, err = db.rows(query.NoteGetBySubject, subjectID); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	for rows.Next() {
		var (
			n       objects.SubjectNote
			created int64
			images  string
		)

		if err = rows.Scan(&n.ID, &n.Text, &images, &created); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		} else if err = ffjson.Unmarshal([]byte(images), &n.Images); err != nil {
			db.log.Printf("[ERROR] Cannot parse images of note %s: %s\n",
				n.ID,
				err.Error())
			return nil, err
		}

		n.CreatedAt = time.Unix(created, 0)
		notes = append(notes, n)
	}

	return notes, rows.Err()
} // func (db *Database) NotesLoad(subjectID string) ([]objects.SubjectNote, error)

// NotesSave replaces the notes attached to a class.
func (db *Database) NotesSave(subjectID string, notes []objects.SubjectNote) error {
	return db.replace(func() error {
		if _, err := db.exec(query.NoteClear, subjectID); err != nil {
			return err
		}

		for idx := range notes {
			var (
				err    error
				buf    []byte
				images = notes[idx].Images
			)

			if images == nil {
				images = []string{}
			}

			if buf, err = ffjson.Marshal(images); err != nil {
				return err
			} else if _, err = db.exec(query.NoteAdd,
				notes[idx].ID,
				subjectID,
				idx,
				notes[idx].Text,
				string(buf),
				notes[idx].CreatedAt.Unix()); err != nil {
				return err
			}
		}

		return nil
	})
} // func (db *Database) NotesSave(subjectID string, notes []objects.SubjectNote) error

////////////////////////////////////////////////////////////////////////////////
///// Class markers ////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

// MarkerExists returns true if the marker with the given key was set.
func (db *Database) MarkerExists(key string) (bool, error) {
	var (
		err  error
		rows *sql.Rows
		cnt  int64
	)

	if rows, err = db.rows(query.MarkerGet, key); err != nil {
		return false, err
	}

	defer rows.Close() // nolint: errcheck

	if rows.Next() {
		if err = rows.Scan(&cnt); err != nil {
			return false, db.resetSQLError(err)
		}
	}

	return cnt > 0, nil
} // func (db *Database) MarkerExists(key string) (bool, error)

// MarkerSet records that the reminder identified by key was delivered.
func (db *Database) MarkerSet(key string) error {
	_, err := db.exec(query.MarkerSet, key, time.Now().Unix())
	return err
} // func (db *Database) MarkerSet(key string) error

// MarkerPrune removes all markers set before the given time.
func (db *Database) MarkerPrune(before time.Time) (int64, error) {
	var (
		err error
		res sql.Result
	)

	if res, err = db.exec(query.MarkerPrune, before.Unix()); err != nil {
		return 0, err
	}

	return res.RowsAffected()
} // func (db *Database) MarkerPrune(before time.Time) (int64, error)

////////////////////////////////////////////////////////////////////////////////
///// Read state ///////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

// ReadStateLoad returns the IDs of all notifications marked as read.
func (db *Database) ReadStateLoad() ([]string, error) {
	var (
		err  error
		rows *sql.Rows
		ids  = make([]string, 0)
	)

	if rows, err = db.rows(query.ReadStateGetAll); err != nil {
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
} // func (db *Database) ReadStateLoad() ([]string, error)

// ReadStateSave replaces the set of notifications marked as read.
func (db *Database) ReadStateSave(ids []string) error {
	return db.replace(func() error {
		if _, err := db.exec(query.ReadStateClear); err != nil {
			return err
		}

		for _, id := range ids {
			if _, err := db.exec(query.ReadStateAdd, id); err != nil {
				return err
			}
		}

		return nil
	})
} // func (db *Database) ReadStateSave(ids []string) error
