// /home/krylon/go/src/github.com/blicero/jadwal/state/01_apply_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

package state

import (
	"errors"
	"testing"
	"time"

	"github.com/blicero/jadwal/objects"
)

func class(id, day, start, end string) objects.ScheduleItem {
	return objects.ScheduleItem{
		ID:        id,
		Title:     "Kelas " + id,
		Room:      "R" + id,
		Day:       day,
		StartTime: start,
		EndTime:   end,
	}
} // func class(id, day, start, end string) objects.ScheduleItem

func homework(id string, due time.Time) objects.Assignment {
	var a = objects.NewAssignment("Tugas "+id, due)
	a.ID = id
	return a
} // func homework(id string, due time.Time) objects.Assignment

func TestApplySchedule(t *testing.T) {
	type testCase struct {
		act Action
		err error
		cnt int
	}

	var (
		s     State
		err   error
		cases = []testCase{
			{act: AddSchedule{Item: class("a", "Senin", "08:00", "09:40")}, cnt: 1},
			{act: AddSchedule{Item: class("a", "Senin", "10:00", "11:40")}, err: ErrDuplicateID, cnt: 1},
			{act: AddSchedule{Item: class("", "Senin", "10:00", "11:40")}, err: ErrMissingID, cnt: 1},
			{act: AddSchedule{Item: class("b", "Funday", "10:00", "11:40")}, err: ErrInvalidDay, cnt: 1},
			{act: AddSchedule{Item: class("b", "Selasa", "10:00", "09:00")}, err: ErrInvertedRange, cnt: 1},
			{act: AddSchedule{Item: class("b", "Selasa", "10:00", "10:00")}, err: ErrInvertedRange, cnt: 1},
			{act: AddSchedule{Item: class("b", "Selasa", "1000", "11:00")}, err: ErrInvalidTime, cnt: 1},
			{act: AddSchedule{Item: class("b", "Selasa", "10:00", "11:40")}, cnt: 2},
			{act: UpdateSchedule{Item: class("x", "Selasa", "10:00", "11:40")}, err: ErrNotFound, cnt: 2},
			{act: DeleteSchedule{ID: "a"}, cnt: 1},
			{act: DeleteSchedule{ID: "a"}, err: ErrNotFound, cnt: 1},
		}
	)

	for idx, c := range cases {
		var next State
		next, err = Apply(s, c.act)
		if !errors.Is(err, c.err) {
			t.Errorf("Test case #%d (%T): expected error %v, got %v",
				idx, c.act, c.err, err)
		} else if len(next.Schedule) != c.cnt {
			t.Errorf("Test case #%d (%T): expected %d classes, got %d",
				idx, c.act, c.cnt, len(next.Schedule))
		}
		s = next
	}

	if s.Schedule[0].Color != objects.DefaultColor {
		t.Errorf("Class without color should get %s, not %q",
			objects.DefaultColor,
			s.Schedule[0].Color)
	}
} // func TestApplySchedule(t *testing.T)

func TestApplyUpdateSchedule(t *testing.T) {
	var (
		err  error
		s    State
		item = class("a", "Rabu", "08:00", "09:40")
	)

	if s, err = Apply(s, AddSchedule{Item: item}); err != nil {
		t.Fatalf("Cannot add class: %s", err.Error())
	}

	item.Room = "Aula"
	item.Color = "#ef4444"

	if s, err = Apply(s, UpdateSchedule{Item: item}); err != nil {
		t.Fatalf("Cannot update class: %s", err.Error())
	} else if s.Schedule[0].Room != "Aula" || s.Schedule[0].Color != "#ef4444" {
		t.Errorf("Update was not applied: %#v", s.Schedule[0])
	}

	item.Color = "red"
	if _, err = Apply(s, UpdateSchedule{Item: item}); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Expected ErrInvalidColor, got %v", err)
	}
} // func TestApplyUpdateSchedule(t *testing.T)

func TestApplyAssignments(t *testing.T) {
	var (
		err  error
		s    State
		due  = time.Date(2024, 1, 12, 23, 59, 0, 0, time.UTC)
		hw   = homework("t1", due)
		bad  = homework("t2", time.Time{})
		anon = homework("t3", due)
	)

	anon.Title = "   "

	if s, err = Apply(s, AddAssignment{Assignment: hw}); err != nil {
		t.Fatalf("Cannot add assignment: %s", err.Error())
	} else if _, err = Apply(s, AddAssignment{Assignment: bad}); !errors.Is(err, ErrMissingDueDate) {
		t.Errorf("Expected ErrMissingDueDate, got %v", err)
	} else if _, err = Apply(s, AddAssignment{Assignment: anon}); !errors.Is(err, ErrMissingTitle) {
		t.Errorf("Expected ErrMissingTitle, got %v", err)
	}

	if s, err = Apply(s, ToggleAssignment{ID: "t1"}); err != nil {
		t.Fatalf("Cannot toggle assignment: %s", err.Error())
	} else if !s.Assignments[0].Completed {
		t.Error("Assignment should be completed after toggle")
	} else if s, err = Apply(s, ToggleAssignment{ID: "t1"}); err != nil {
		t.Fatalf("Cannot toggle assignment: %s", err.Error())
	} else if s.Assignments[0].Completed {
		t.Error("Toggling twice should restore the original flag")
	}

	hw.Subject = "Kalkulus"
	if s, err = Apply(s, UpdateAssignment{Assignment: hw}); err != nil {
		t.Fatalf("Cannot update assignment: %s", err.Error())
	} else if s.Assignments[0].Subject != "Kalkulus" {
		t.Errorf("Update was not applied: %#v", s.Assignments[0])
	}

	if _, err = Apply(s, ToggleAssignment{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	} else if s, err = Apply(s, DeleteAssignment{ID: "t1"}); err != nil {
		t.Fatalf("Cannot delete assignment: %s", err.Error())
	} else if len(s.Assignments) != 0 {
		t.Errorf("Expected no assignments, got %d", len(s.Assignments))
	}
} // func TestApplyAssignments(t *testing.T)

func TestApplyPatchAssignment(t *testing.T) {
	var (
		err error
		s   State
		due = time.Date(2024, 1, 12, 23, 59, 0, 0, time.UTC)
		hw  = homework("t1", due)
	)

	hw.Subject = "Kalkulus"

	if s, err = Apply(s, AddAssignment{Assignment: hw}); err != nil {
		t.Fatalf("Cannot add assignment: %s", err.Error())
	} else if s, err = Apply(s, ToggleAssignment{ID: "t1"}); err != nil {
		t.Fatalf("Cannot toggle assignment: %s", err.Error())
	}

	// An edit that was prepared before the toggle must not undo it.
	if s, err = Apply(s, PatchAssignment{ID: "t1", Payload: []byte(`{"description":"Bab 1 sampai 3"}`)}); err != nil {
		t.Fatalf("Cannot patch assignment: %s", err.Error())
	} else if a := s.Assignments[0]; !a.Completed || a.Subject != "Kalkulus" || a.Description != "Bab 1 sampai 3" {
		t.Errorf("Patch clobbered fields it did not mention: %#v", a)
	}

	if s, err = Apply(s, PatchAssignment{ID: "t1", Payload: []byte(`{"id":"other","title":"Esai"}`)}); err != nil {
		t.Fatalf("Cannot patch assignment: %s", err.Error())
	} else if a := s.Assignments[0]; a.ID != "t1" || a.Title != "Esai" {
		t.Errorf("Patch should change the title but not the ID: %#v", a)
	}

	if _, err = Apply(s, PatchAssignment{ID: "t1", Payload: []byte(`{"title":"  "}`)}); !errors.Is(err, ErrMissingTitle) {
		t.Errorf("Expected ErrMissingTitle, got %v", err)
	} else if _, err = Apply(s, PatchAssignment{ID: "t1", Payload: []byte(`{"title":`)}); !errors.Is(err, ErrBadPayload) {
		t.Errorf("Expected ErrBadPayload, got %v", err)
	} else if _, err = Apply(s, PatchAssignment{ID: "nope", Payload: []byte(`{}`)}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	} else if s.Assignments[0].Title != "Esai" {
		t.Errorf("Failed patch modified the State: %#v", s.Assignments[0])
	}
} // func TestApplyPatchAssignment(t *testing.T)

func TestApplyPatchSchedule(t *testing.T) {
	var (
		err  error
		s    State
		item = class("a", "Rabu", "08:00", "09:40")
	)

	item.Notes = "Bawa kalkulator"

	if s, err = Apply(s, AddSchedule{Item: item}); err != nil {
		t.Fatalf("Cannot add class: %s", err.Error())
	} else if s, err = Apply(s, PatchSchedule{ID: "a", Payload: []byte(`{"room":"Aula"}`)}); err != nil {
		t.Fatalf("Cannot patch class: %s", err.Error())
	}

	var got = s.Schedule[0]

	if got.Room != "Aula" || got.Notes != "Bawa kalkulator" || got.Title != item.Title || got.StartTime != "08:00" {
		t.Errorf("Patch clobbered fields it did not mention: %#v", got)
	} else if got.Color != objects.DefaultColor {
		t.Errorf("Class should have the default color, not %q", got.Color)
	}

	if _, err = Apply(s, PatchSchedule{ID: "a", Payload: []byte(`{"startTime":"10:00"}`)}); !errors.Is(err, ErrInvertedRange) {
		t.Errorf("Expected ErrInvertedRange, got %v", err)
	} else if _, err = Apply(s, PatchSchedule{ID: "a", Payload: []byte(`[]`)}); !errors.Is(err, ErrBadPayload) {
		t.Errorf("Expected ErrBadPayload, got %v", err)
	} else if _, err = Apply(s, PatchSchedule{ID: "b", Payload: []byte(`{}`)}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
} // func TestApplyPatchSchedule(t *testing.T)

func TestApplyIsPure(t *testing.T) {
	var (
		err   error
		orig  State
		after State
	)

	orig.Schedule = []objects.ScheduleItem{
		class("a", "Senin", "08:00", "09:00"),
		class("b", "Senin", "09:00", "10:00"),
	}
	orig.Assignments = []objects.Assignment{
		homework("t1", time.Date(2024, 1, 12, 23, 59, 0, 0, time.UTC)),
	}

	if after, err = Apply(orig, DeleteSchedule{ID: "a"}); err != nil {
		t.Fatalf("Cannot delete class: %s", err.Error())
	} else if len(after.Schedule) != 1 {
		t.Errorf("Expected 1 class after delete, got %d", len(after.Schedule))
	} else if orig.Schedule[0].ID != "a" || orig.Schedule[1].ID != "b" {
		t.Errorf("Original schedule was modified: %v", orig.Schedule)
	}

	if _, err = Apply(orig, ToggleAssignment{ID: "t1"}); err != nil {
		t.Fatalf("Cannot toggle assignment: %s", err.Error())
	} else if orig.Assignments[0].Completed {
		t.Error("Original assignment was modified")
	}
} // func TestApplyIsPure(t *testing.T)

func TestNotes(t *testing.T) {
	var (
		err   error
		notes []objects.SubjectNote
		first = objects.SubjectNote{ID: "n1", Text: "Bab 1"}
		pic   = objects.SubjectNote{ID: "n2", Images: []string{"data:image/png;base64,AAAA"}}
	)

	if _, err = AddNote(notes, objects.SubjectNote{ID: "n0", Text: " \n"}); !errors.Is(err, ErrEmptyNote) {
		t.Errorf("Expected ErrEmptyNote, got %v", err)
	} else if notes, err = AddNote(notes, first); err != nil {
		t.Fatalf("Cannot add note: %s", err.Error())
	} else if notes, err = AddNote(notes, pic); err != nil {
		t.Fatalf("Cannot add note: %s", err.Error())
	} else if len(notes) != 2 || notes[0].ID != "n2" {
		t.Errorf("Newest note should come first: %v", notes)
	}

	if notes, err = DeleteNote(notes, "n1"); err != nil {
		t.Fatalf("Cannot delete note: %s", err.Error())
	} else if len(notes) != 1 {
		t.Errorf("Expected 1 note, got %d", len(notes))
	} else if _, err = DeleteNote(notes, "n1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
} // func TestNotes(t *testing.T)
