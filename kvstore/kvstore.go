// /home/krylon/go/src/github.com/blicero/jadwal/kvstore/kvstore.go
// -*- mode: go; coding: utf-8; -*-
// Created on 10. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 18:21:44 krylon>

// Package kvstore stores the application's data in a bbolt key-value
// store, one JSON document per key.
package kvstore

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/logdomain"
	"github.com/blicero/jadwal/objects"
	"github.com/pquerna/ffjson/ffjson"
	"go.etcd.io/bbolt"
)

// Keys under which the collections are stored.
const (
	KeySchedule    = "schedule-items"
	KeyAssignments = "assignments"
	KeyReadState   = "notification-read"
	notePrefix     = "subject-notes-"
	markerPrefix   = "schedule-"
	markerDateLen  = len("2006-01-02")
)

var bucket = []byte("jadwal")

// ErrCorrupt indicates a stored value could not be decoded.
var ErrCorrupt = errors.New("Stored value cannot be decoded")

// Store is a bbolt-backed storage for classes, assignments and the
// bits of bookkeeping around them. It is safe for concurrent use.
type Store struct {
	db  *bbolt.DB
	log *log.Logger
}

// Open opens the store at path, creating it if necessary.
func Open(path string) (*Store, error) {
	var (
		err error
		s   = new(Store)
	)

	if s.log, err = common.GetLogger(logdomain.KVStore); err != nil {
		return nil, err
	} else if s.db, err = bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second * 5}); err != nil {
		s.log.Printf("[ERROR] Cannot open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	if err = s.db.Update(func(tx *bbolt.Tx) error {
		_, e := tx.CreateBucketIfNotExists(bucket)
		return e
	}); err != nil {
		s.log.Printf("[ERROR] Cannot create bucket in %s: %s\n",
			path,
			err.Error())
		s.db.Close() // nolint: errcheck
		return nil, err
	}

	return s, nil
} // func Open(path string) (*Store, error)

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
} // func (s *Store) Close() error

func save[T any](s *Store, key string, value T) error {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(value); err != nil {
		s.log.Printf("[ERROR] Cannot serialize %s: %s\n",
			key,
			err.Error())
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), buf)
	})
} // func save[T any](s *Store, key string, value T) error

// load decodes the value stored under key into out. A missing key
// leaves out untouched.
func load[T any](s *Store, key string, out *T) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		var v = tx.Bucket(bucket).Get([]byte(key))
		if v == nil {
			return nil
		} else if err := ffjson.Unmarshal(v, out); err != nil {
			s.log.Printf("[ERROR] Cannot decode %s: %s\n",
				key,
				err.Error())
			return fmt.Errorf("%w: %s: %w", ErrCorrupt, key, err)
		}
		return nil
	})
} // func load[T any](s *Store, key string, out *T) error

// LoadSchedule returns all stored classes.
func (s *Store) LoadSchedule() ([]objects.ScheduleItem, error) {
	var items = make([]objects.ScheduleItem, 0)
	if err := load(s, KeySchedule, &items); err != nil {
		return nil, err
	}
	return items, nil
} // func (s *Store) LoadSchedule() ([]objects.ScheduleItem, error)

// LoadAssignments returns all stored assignments.
func (s *Store) LoadAssignments() ([]objects.Assignment, error) {
	var list = make([]objects.Assignment, 0)
	if err := load(s, KeyAssignments, &list); err != nil {
		return nil, err
	}
	return list, nil
} // func (s *Store) LoadAssignments() ([]objects.Assignment, error)

// SaveSchedule replaces the stored classes.
func (s *Store) SaveSchedule(items []objects.ScheduleItem) error {
	if items == nil {
		items = []objects.ScheduleItem{}
	}
	return save(s, KeySchedule, items)
} // func (s *Store) SaveSchedule(items []objects.ScheduleItem) error

// SaveAssignments replaces the stored assignments.
func (s *Store) SaveAssignments(list []objects.Assignment) error {
	if list == nil {
		list = []objects.Assignment{}
	}
	return save(s, KeyAssignments, list)
} // func (s *Store) SaveAssignments(list []objects.Assignment) error

// NotesLoad returns the notes attached to a class.
func (s *Store) NotesLoad(subjectID string) ([]objects.SubjectNote, error) {
	var notes = make([]objects.SubjectNote, 0)
	if err := load(s, notePrefix+subjectID, &notes); err != nil {
		return nil, err
	}
	return notes, nil
} // func (s *Store) NotesLoad(subjectID string) ([]objects.SubjectNote, error)

// NotesSave replaces the notes attached to a class. An empty list
// removes the key.
func (s *Store) NotesSave(subjectID string, notes []objects.SubjectNote) error {
	if len(notes) == 0 {
		return s.db.Update(func(tx *bbolt.Tx) error {
			return tx.Bucket(bucket).Delete([]byte(notePrefix + subjectID))
		})
	}

	return save(s, notePrefix+subjectID, notes)
} // func (s *Store) NotesSave(subjectID string, notes []objects.SubjectNote) error

// MarkerExists returns true if the marker with the given key was set.
func (s *Store) MarkerExists(key string) (bool, error) {
	var exists bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		exists = tx.Bucket(bucket).Get([]byte(key)) != nil
		return nil
	})

	return exists, err
} // func (s *Store) MarkerExists(key string) (bool, error)

// MarkerSet sets the marker with the given key.
func (s *Store) MarkerSet(key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), []byte("true"))
	})
} // func (s *Store) MarkerSet(key string) error

// MarkerPrune removes class markers whose date lies more than age in
// the past. The date is taken from the key itself.
func (s *Store) MarkerPrune(age time.Duration) (int64, error) {
	var (
		cnt    int64
		cutoff = time.Now().Add(-age).Format(common.TimestampFormatDate)
	)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		var (
			b      = tx.Bucket(bucket)
			c      = b.Cursor()
			prefix = []byte(markerPrefix)
			stale  [][]byte
		)

		for k, _ := c.Seek(prefix); k != nil && strings.HasPrefix(string(k), markerPrefix); k, _ = c.Next() {
			var key = string(k)

			if key == KeySchedule || len(key) < len(markerPrefix)+markerDateLen {
				continue
			}

			var date = key[len(key)-markerDateLen:]
			if _, err := time.Parse(common.TimestampFormatDate, date); err != nil {
				continue
			} else if date < cutoff {
				stale = append(stale, append([]byte(nil), k...))
			}
		}

		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
			cnt++
		}

		return nil
	})

	return cnt, err
} // func (s *Store) MarkerPrune(age time.Duration) (int64, error)

// ReadStateLoad returns the IDs of notifications marked as read.
func (s *Store) ReadStateLoad() ([]string, error) {
	var ids = make([]string, 0)
	if err := load(s, KeyReadState, &ids); err != nil {
		return nil, err
	}
	return ids, nil
} // func (s *Store) ReadStateLoad() ([]string, error)

// ReadStateSave replaces the set of notifications marked as read.
func (s *Store) ReadStateSave(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return save(s, KeyReadState, ids)
} // func (s *Store) ReadStateSave(ids []string) error
