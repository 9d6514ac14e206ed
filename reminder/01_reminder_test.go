// /home/krylon/go/src/github.com/blicero/jadwal/reminder/01_reminder_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

package reminder

import (
	"reflect"
	"testing"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/objects"
	"github.com/blicero/jadwal/objects/offset"
)

func mkAssignment(id string, due time.Time, tog objects.Toggles) objects.Assignment {
	var a = objects.NewAssignment("Laporan "+id, due)
	a.ID = id
	a.Notifications = tog
	return a
} // func mkAssignment(id string, due time.Time, tog objects.Toggles) objects.Assignment

func TestFireAt(t *testing.T) {
	type testCase struct {
		o      offset.Offset
		expect time.Time
	}

	var (
		due   = time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
		cases = []testCase{
			{offset.TwoDaysBefore, time.Date(2024, 1, 8, 23, 59, 0, 0, time.UTC)},
			{offset.OneDayBefore, time.Date(2024, 1, 9, 23, 59, 0, 0, time.UTC)},
			{offset.SameDay, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)},
			{offset.EightHoursBefore, time.Date(2024, 1, 10, 15, 59, 0, 0, time.UTC)},
		}
	)

	for _, c := range cases {
		if at := FireAt(due, c.o); !at.Equal(c.expect) {
			t.Errorf("Unexpected fire time for %s:\nExpected: %s\nGot:      %s",
				c.o,
				c.expect.Format(common.TimestampFormat),
				at.Format(common.TimestampFormat))
		}
	}
} // func TestFireAt(t *testing.T)

func TestFireAtForeignZone(t *testing.T) {
	var (
		jakarta = time.FixedZone("WIB", 7*60*60)
		// 02:00 in Jakarta is still the previous evening locally.
		due     = time.Date(2024, 1, 10, 2, 0, 0, 0, jakarta)
		morning = time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC)
	)

	if at := FireAt(due, offset.SameDay); !at.Equal(morning) {
		t.Errorf("SameDay reminder should fire on the local date:\nExpected: %s\nGot:      %s",
			morning.Format(common.TimestampFormat),
			at.Format(common.TimestampFormat))
	}

	for _, o := range offset.All() {
		var a, b = FireAt(due, o), FireAt(due.UTC(), o)

		if !a.Equal(b) {
			t.Errorf("Fire time for %s depends on the zone of the due date: %s != %s",
				o,
				a.Format(common.TimestampFormat),
				b.Format(common.TimestampFormat))
		}
	}
} // func TestFireAtForeignZone(t *testing.T)

func TestDerive(t *testing.T) {
	type testCase struct {
		name   string
		a      objects.Assignment
		now    time.Time
		expect []offset.Offset
	}

	var (
		due   = time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
		cases = []testCase{
			{
				name:   "all ahead",
				a:      mkAssignment("a1", due, objects.AllToggles()),
				now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				expect: offset.All(),
			},
			{
				name:   "disabled toggles",
				a:      mkAssignment("a2", due, objects.Toggles{OneDayBefore: true}),
				now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				expect: []offset.Offset{offset.OneDayBefore},
			},
			{
				name:   "some passed",
				a:      mkAssignment("a3", due, objects.AllToggles()),
				now:    time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
				expect: []offset.Offset{offset.EightHoursBefore},
			},
			{
				name: "eight hours already past",
				a: mkAssignment("a4",
					time.Date(2024, 1, 9, 23, 0, 0, 0, time.UTC),
					objects.Toggles{EightHoursBefore: true}),
				now:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				expect: nil,
			},
			{
				name:   "exactly now is not the future",
				a:      mkAssignment("a5", due, objects.Toggles{SameDay: true}),
				now:    time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
				expect: nil,
			},
		}
	)

	for _, c := range cases {
		var (
			res  = Derive(&c.a, c.now)
			offs []offset.Offset
		)

		for _, r := range res {
			offs = append(offs, r.Offset)
			if !r.FireAt.After(c.now) {
				t.Errorf("%s: Reminder %s is not in the future", c.name, r.String())
			} else if r.AssignmentID != c.a.ID {
				t.Errorf("%s: Reminder refers to Assignment %q, expected %q",
					c.name,
					r.AssignmentID,
					c.a.ID)
			}
		}

		if !reflect.DeepEqual(offs, c.expect) {
			t.Errorf("%s: Expected offsets %v, got %v",
				c.name,
				c.expect,
				offs)
		}
	}
} // func TestDerive(t *testing.T)

func TestDeriveCompleted(t *testing.T) {
	var (
		now  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		dues = []time.Time{
			now.Add(-time.Hour * 48),
			now.Add(time.Hour),
			now.Add(time.Hour * 24 * 30),
		}
	)

	for _, due := range dues {
		var a = mkAssignment("done", due, objects.AllToggles())
		a.Completed = true

		if res := Derive(&a, now); len(res) != 0 {
			t.Errorf("Completed Assignment due %s produced %d Reminders",
				due.Format(common.TimestampFormat),
				len(res))
		}
	}
} // func TestDeriveCompleted(t *testing.T)

func TestDeriveIdempotent(t *testing.T) {
	var (
		now = time.Date(2024, 1, 5, 13, 37, 0, 0, time.UTC)
		a   = mkAssignment("idem", now.Add(time.Hour*60), objects.AllToggles())
		r1  = Derive(&a, now)
		r2  = Derive(&a, now)
	)

	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("Derive is not idempotent:\n%v\n%v", r1, r2)
	}
} // func TestDeriveIdempotent(t *testing.T)

func TestDeriveShrinks(t *testing.T) {
	var (
		start = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
		a     = mkAssignment("shrink", start.Add(time.Hour*72), objects.AllToggles())
		prev  = Derive(&a, start)
	)

	for now := start; now.Before(a.DueDate.Add(time.Hour)); now = now.Add(time.Minute * 30) {
		var (
			cur   = Derive(&a, now)
			stamp = make(map[time.Time]bool, len(prev))
		)

		for _, r := range prev {
			stamp[r.FireAt] = true
		}

		for _, r := range cur {
			if !stamp[r.FireAt] {
				t.Fatalf("Reminder at %s appeared at %s, it was not there before",
					r.FireAt.Format(common.TimestampFormat),
					now.Format(common.TimestampFormat))
			}
		}

		if len(cur) > len(prev) {
			t.Fatalf("Number of Reminders grew from %d to %d at %s",
				len(prev),
				len(cur),
				now.Format(common.TimestampFormat))
		}

		prev = cur
	}

	if len(prev) != 0 {
		t.Errorf("There are still %d Reminders after the deadline", len(prev))
	}
} // func TestDeriveShrinks(t *testing.T)

func TestBatch(t *testing.T) {
	var (
		now  = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		list = []objects.Assignment{
			mkAssignment("b1", now.Add(time.Hour*24*7), objects.AllToggles()),
			mkAssignment("b2", now.Add(time.Hour*24*7), objects.Toggles{SameDay: true}),
			mkAssignment("b3", now.Add(-time.Hour), objects.AllToggles()),
		}
	)

	list[1].Completed = true

	var res = Batch(list, now)

	if len(res) != 4 {
		t.Fatalf("Expected 4 Reminders, got %d", len(res))
	}

	for idx, r := range res {
		if r.ID != int64(idx+1) {
			t.Errorf("Reminder #%d has ID %d", idx, r.ID)
		} else if r.AssignmentID != "b1" {
			t.Errorf("Reminder #%d belongs to %q", idx, r.AssignmentID)
		}
	}

	if res[3].Title != titleUrgent {
		t.Errorf("Eight hour Reminder should be titled %q, not %q",
			titleUrgent,
			res[3].Title)
	}
} // func TestBatch(t *testing.T)
