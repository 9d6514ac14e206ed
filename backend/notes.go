// /home/krylon/go/src/github.com/blicero/jadwal/backend/notes.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 19:03:10 krylon>

package backend

import (
	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/objects"
	"github.com/blicero/jadwal/state"
)

// Notes returns the notes attached to a class, newest first.
func (d *Daemon) Notes(subjectID string) ([]objects.SubjectNote, error) {
	return d.db.NotesLoad(subjectID)
} // func (d *Daemon) Notes(subjectID string) ([]objects.SubjectNote, error)

// AddNote attaches a note to a class. The note gets a fresh ID and
// creation time.
func (d *Daemon) AddNote(subjectID string, note objects.SubjectNote) (objects.SubjectNote, error) {
	var (
		err   error
		notes []objects.SubjectNote
		snap  = d.store.Snapshot()
	)

	if _, ok := snap.ScheduleItem(subjectID); !ok {
		return note, state.ErrNotFound
	}

	note.ID = common.GetUUID()
	note.CreatedAt = d.now()

	d.noteLock.Lock()
	defer d.noteLock.Unlock()

	if notes, err = d.db.NotesLoad(subjectID); err != nil {
		return note, err
	} else if notes, err = state.AddNote(notes, note); err != nil {
		return note, err
	} else if err = d.db.NotesSave(subjectID, notes); err != nil {
		d.log.Printf("[ERROR] Cannot save notes for %s: %s\n",
			subjectID,
			err.Error())
		return note, err
	}

	return note, nil
} // func (d *Daemon) AddNote(subjectID string, note objects.SubjectNote) (objects.SubjectNote, error)

// DeleteNote removes a note from a class.
func (d *Daemon) DeleteNote(subjectID, noteID string) error {
	var (
		err   error
		notes []objects.SubjectNote
	)

	d.noteLock.Lock()
	defer d.noteLock.Unlock()

	if notes, err = d.db.NotesLoad(subjectID); err != nil {
		return err
	} else if notes, err = state.DeleteNote(notes, noteID); err != nil {
		return err
	}

	return d.db.NotesSave(subjectID, notes)
} // func (d *Daemon) DeleteNote(subjectID, noteID string) error
