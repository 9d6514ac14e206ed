// /home/krylon/go/src/github.com/blicero/jadwal/state/notes.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 16:20:55 krylon>

package state

import "github.com/blicero/jadwal/objects"

// AddNote returns a new list with note placed in front of notes.
func AddNote(notes []objects.SubjectNote, note objects.SubjectNote) ([]objects.SubjectNote, error) {
	if note.IsEmpty() {
		return notes, ErrEmptyNote
	} else if note.ID == "" {
		return notes, ErrMissingID
	}

	var res = make([]objects.SubjectNote, 0, len(notes)+1)
	res = append(res, note)
	res = append(res, notes...)
	return res, nil
} // func AddNote(notes []objects.SubjectNote, note objects.SubjectNote) ([]objects.SubjectNote, error)

// DeleteNote returns a new list without the note with the given ID.
func DeleteNote(notes []objects.SubjectNote, id string) ([]objects.SubjectNote, error) {
	var res = make([]objects.SubjectNote, 0, len(notes))

	for _, n := range notes {
		if n.ID != id {
			res = append(res, n)
		}
	}

	if len(res) == len(notes) {
		return notes, ErrNotFound
	}

	return res, nil
} // func DeleteNote(notes []objects.SubjectNote, id string) ([]objects.SubjectNote, error)
