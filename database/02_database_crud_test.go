// /home/krylon/go/src/github.com/blicero/jadwal/database/02_database_crud_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 10. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 22:31:07 krylon>

package database

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/objects"
	"github.com/blicero/jadwal/objects/priority"
)

const (
	itemCnt   = 16
	maxOffset = time.Hour * 168
)

var (
	classes []objects.ScheduleItem
	work    []objects.Assignment
)

func init() {
	var now = time.Now().Truncate(time.Second)

	classes = make([]objects.ScheduleItem, itemCnt)
	work = make([]objects.Assignment, itemCnt)

	for i := range classes {
		classes[i] = objects.ScheduleItem{
			ID:        common.GetUUID(),
			Title:     fmt.Sprintf("Kelas #%02d", i),
			Room:      fmt.Sprintf("R%03d", i),
			Day:       objects.Days[i%len(objects.Days)],
			StartTime: fmt.Sprintf("%02d:00", 7+i%10),
			EndTime:   fmt.Sprintf("%02d:40", 7+i%10),
			Color:     objects.Palette[i%len(objects.Palette)],
		}
	}

	for i := range work {
		var a = objects.NewAssignment(
			fmt.Sprintf("Tugas #%02d", i),
			now.Add(time.Duration(rand.Int63n(int64(maxOffset)))).Truncate(time.Second))
		a.ID = common.GetUUID()
		a.Priority = priority.Priority(i % 3)
		a.Completed = i%4 == 0
		a.Notifications.SameDay = i%2 == 0
		work[i] = a
	}
} // func init()

func TestScheduleSaveLoad(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err   error
		items []objects.ScheduleItem
	)

	if err = db.SaveSchedule(classes); err != nil {
		t.Fatalf("Cannot save schedule: %s", err.Error())
	} else if items, err = db.LoadSchedule(); err != nil {
		t.Fatalf("Cannot load schedule: %s", err.Error())
	} else if len(items) != len(classes) {
		t.Fatalf("Unexpected number of classes: %d (expected %d)",
			len(items),
			len(classes))
	}

	for i := range items {
		if items[i] != classes[i] {
			t.Errorf("Class #%d differs:\n\texpected %#v\n\tgot      %#v",
				i,
				classes[i],
				items[i])
		}
	}

	// Saving a shorter list must replace, not merge.
	if err = db.SaveSchedule(classes[:3]); err != nil {
		t.Fatalf("Cannot save schedule: %s", err.Error())
	} else if items, err = db.LoadSchedule(); err != nil {
		t.Fatalf("Cannot load schedule: %s", err.Error())
	} else if len(items) != 3 {
		t.Errorf("Expected 3 classes after replace, got %d", len(items))
	}
} // func TestScheduleSaveLoad(t *testing.T)

func TestAssignmentSaveLoad(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err  error
		list []objects.Assignment
	)

	if err = db.SaveAssignments(work); err != nil {
		t.Fatalf("Cannot save assignments: %s", err.Error())
	} else if list, err = db.LoadAssignments(); err != nil {
		t.Fatalf("Cannot load assignments: %s", err.Error())
	} else if len(list) != len(work) {
		t.Fatalf("Unexpected number of assignments: %d (expected %d)",
			len(list),
			len(work))
	}

	for i := range list {
		var a, b = &work[i], &list[i]

		if a.ID != b.ID || a.Title != b.Title {
			t.Errorf("Assignment #%d: expected %s, got %s", i, a, b)
		} else if !a.DueDate.Equal(b.DueDate) {
			t.Errorf("Assignment #%d: due date %s != %s",
				i,
				a.DueDate,
				b.DueDate)
		} else if a.Priority != b.Priority || a.Completed != b.Completed {
			t.Errorf("Assignment #%d: priority/completed mismatch: %s/%t vs. %s/%t",
				i,
				a.Priority,
				a.Completed,
				b.Priority,
				b.Completed)
		} else if a.Notifications != b.Notifications {
			t.Errorf("Assignment #%d: toggles %#v != %#v",
				i,
				a.Notifications,
				b.Notifications)
		}
	}
} // func TestAssignmentSaveLoad(t *testing.T)

func TestNotes(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err   error
		notes []objects.SubjectNote
		now   = time.Now().Truncate(time.Second)
		input = []objects.SubjectNote{
			{ID: "n2", Images: []string{"data:image/png;base64,AAAA"}, CreatedAt: now},
			{ID: "n1", Text: "Baca bab 3", CreatedAt: now.Add(-time.Hour)},
		}
	)

	if err = db.NotesSave("class-1", input); err != nil {
		t.Fatalf("Cannot save notes: %s", err.Error())
	} else if notes, err = db.NotesLoad("class-1"); err != nil {
		t.Fatalf("Cannot load notes: %s", err.Error())
	} else if len(notes) != 2 {
		t.Fatalf("Expected 2 notes, got %d", len(notes))
	} else if notes[0].ID != "n2" || len(notes[0].Images) != 1 {
		t.Errorf("Unexpected first note: %#v", notes[0])
	} else if len(notes[1].Images) != 0 || notes[1].Text != "Baca bab 3" {
		t.Errorf("Unexpected second note: %#v", notes[1])
	}

	if notes, err = db.NotesLoad("class-2"); err != nil {
		t.Fatalf("Cannot load notes: %s", err.Error())
	} else if len(notes) != 0 {
		t.Errorf("Class without notes returned %d notes", len(notes))
	}
} // func TestNotes(t *testing.T)

func TestMarkers(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err    error
		exists bool
		cnt    int64
		key    = "schedule-x-2024-01-10"
	)

	if exists, err = db.MarkerExists(key); err != nil {
		t.Fatalf("Cannot check marker: %s", err.Error())
	} else if exists {
		t.Fatal("Marker should not exist yet")
	} else if err = db.MarkerSet(key); err != nil {
		t.Fatalf("Cannot set marker: %s", err.Error())
	} else if err = db.MarkerSet(key); err != nil {
		t.Fatalf("Setting a marker twice failed: %s", err.Error())
	} else if exists, err = db.MarkerExists(key); err != nil {
		t.Fatalf("Cannot check marker: %s", err.Error())
	} else if !exists {
		t.Fatal("Marker was not set")
	}

	if cnt, err = db.MarkerPrune(time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Cannot prune markers: %s", err.Error())
	} else if cnt != 1 {
		t.Errorf("Expected 1 pruned marker, got %d", cnt)
	}
} // func TestMarkers(t *testing.T)

func TestReadState(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err error
		ids []string
	)

	if err = db.ReadStateSave([]string{"b-1day", "a-2days", "a-2days"}); err != nil {
		t.Fatalf("Cannot save read state: %s", err.Error())
	} else if ids, err = db.ReadStateLoad(); err != nil {
		t.Fatalf("Cannot load read state: %s", err.Error())
	} else if len(ids) != 2 || ids[0] != "a-2days" {
		t.Errorf("Unexpected read state: %v", ids)
	}
} // func TestReadState(t *testing.T)

func TestTransactionRollback(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var (
		err   error
		items []objects.ScheduleItem
	)

	if err = db.SaveSchedule(classes[:2]); err != nil {
		t.Fatalf("Cannot save schedule: %s", err.Error())
	} else if err = db.Begin(); err != nil {
		t.Fatalf("Cannot begin transaction: %s", err.Error())
	} else if err = db.Begin(); err != ErrTxInProgress {
		t.Errorf("Nested Begin should fail with ErrTxInProgress, got %v", err)
	} else if err = db.SaveSchedule(nil); err != nil {
		t.Fatalf("Cannot clear schedule: %s", err.Error())
	} else if err = db.Rollback(); err != nil {
		t.Fatalf("Cannot roll back: %s", err.Error())
	} else if items, err = db.LoadSchedule(); err != nil {
		t.Fatalf("Cannot load schedule: %s", err.Error())
	} else if len(items) != 2 {
		t.Errorf("Rollback did not restore the schedule: %d classes", len(items))
	}
} // func TestTransactionRollback(t *testing.T)
