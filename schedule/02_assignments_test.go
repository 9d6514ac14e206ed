// /home/krylon/go/src/github.com/blicero/jadwal/schedule/02_assignments_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 22:41:16 krylon>

package schedule

import (
	"testing"
	"time"

	"github.com/blicero/jadwal/objects"
)

func mkList() []objects.Assignment {
	var (
		base = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
		list = []objects.Assignment{
			objects.NewAssignment("late", base.Add(time.Hour*72)),
			objects.NewAssignment("done", base.Add(time.Hour)),
			objects.NewAssignment("soon", base.Add(time.Hour*2)),
			objects.NewAssignment("done early", base.Add(-time.Hour)),
		}
	)

	list[1].Completed = true
	list[3].Completed = true
	return list
} // func mkList() []objects.Assignment

func titles(list []objects.Assignment) []string {
	var res = make([]string, len(list))
	for idx, a := range list {
		res[idx] = a.Title
	}
	return res
} // func titles(list []objects.Assignment) []string

func TestAssignmentFilter(t *testing.T) {
	type testCase struct {
		f      Filter
		expect []string
	}

	var cases = []testCase{
		{FilterPending, []string{"soon", "late"}},
		{FilterCompleted, []string{"done early", "done"}},
		{FilterAll, []string{"soon", "late", "done early", "done"}},
	}

	for _, c := range cases {
		var got = titles(Assignments(mkList(), c.f))

		if len(got) != len(c.expect) {
			t.Errorf("Filter %s: expected %v, got %v", c.f, c.expect, got)
			continue
		}

		for idx := range got {
			if got[idx] != c.expect[idx] {
				t.Errorf("Filter %s: expected %v, got %v", c.f, c.expect, got)
				break
			}
		}
	}

	if p, c := Counts(mkList()); p != 2 || c != 2 {
		t.Errorf("Counts returned %d/%d, expected 2/2", p, c)
	}

	if _, err := ParseFilter("bogus"); err == nil {
		t.Error("ParseFilter should reject unknown filters")
	} else if f, _ := ParseFilter(""); f != FilterPending {
		t.Errorf("Default filter should be pending, not %s", f)
	}
} // func TestAssignmentFilter(t *testing.T)

func TestDeadlineStatus(t *testing.T) {
	type testCase struct {
		until  time.Duration
		done   bool
		text   string
		urgent bool
	}

	var (
		now   = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
		cases = []testCase{
			{time.Hour, true, "Selesai", false},
			{-time.Hour * 30, false, "Terlambat", true},
			{-time.Hour, false, "Hari ini", true},
			{time.Hour * 5, false, "Besok", true},
			{time.Hour * 60, false, "3 hari lagi", true},
			{time.Hour * 24 * 6, false, "6 hari lagi", false},
		}
	)

	for _, c := range cases {
		var a = objects.NewAssignment("x", now.Add(c.until))
		a.Completed = c.done

		var s = DeadlineStatus(&a, now)

		if s.Text != c.text || s.Urgent != c.urgent {
			t.Errorf("Status for %s (done: %t): got %q/%t, expected %q/%t",
				c.until,
				c.done,
				s.Text,
				s.Urgent,
				c.text,
				c.urgent)
		}
	}
} // func TestDeadlineStatus(t *testing.T)
