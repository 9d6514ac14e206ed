// /home/krylon/go/src/github.com/blicero/jadwal/schedule/01_views_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 22:30:48 krylon>

package schedule

import (
	"testing"
	"time"

	"github.com/blicero/jadwal/objects"
)

// 2024-01-10 is a Wednesday
var wednesday = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

var items = []objects.ScheduleItem{
	{ID: "1", Title: "Jaringan Komputer", StartTime: "13:00", EndTime: "14:40", Day: "Rabu"},
	{ID: "2", Title: "Basis Data", StartTime: "08:00", EndTime: "09:40", Day: "Rabu"},
	{ID: "3", Title: "Kalkulus", StartTime: "10:00", EndTime: "11:40", Day: "Rabu"},
	{ID: "4", Title: "Statistika", StartTime: "07:00", EndTime: "08:40", Day: "Kamis"},
}

func TestForDay(t *testing.T) {
	var (
		res    = ForDay(items, "Rabu")
		expect = []string{"08:00", "10:00", "13:00"}
	)

	if len(res) != len(expect) {
		t.Fatalf("Expected %d items, got %d", len(expect), len(res))
	}

	for idx, i := range res {
		if i.StartTime != expect[idx] {
			t.Errorf("Item #%d starts at %s, expected %s",
				idx,
				i.StartTime,
				expect[idx])
		}
	}

	if res = ForDay(items, "Minggu"); len(res) != 0 {
		t.Errorf("Expected no items on Sunday, got %d", len(res))
	}
} // func TestForDay(t *testing.T)

func TestForToday(t *testing.T) {
	if d := Today(wednesday); d != "Rabu" {
		t.Errorf("Today() returned %q, expected Rabu", d)
	} else if res := ForToday(items, wednesday); len(res) != 3 {
		t.Errorf("Expected 3 items for today, got %d", len(res))
	}
} // func TestForToday(t *testing.T)

func TestWeek(t *testing.T) {
	var week = Week(items)

	if len(week) != 7 {
		t.Fatalf("A week has 7 days, not %d", len(week))
	} else if week[0].Day != "Senin" || week[6].Day != "Minggu" {
		t.Errorf("Week should run from Senin to Minggu: %s .. %s",
			week[0].Day,
			week[6].Day)
	} else if len(week[2].Items) != 3 || len(week[3].Items) != 1 {
		t.Errorf("Unexpected number of items on Rabu/Kamis: %d/%d",
			len(week[2].Items),
			len(week[3].Items))
	}
} // func TestWeek(t *testing.T)

func TestInProgress(t *testing.T) {
	type testCase struct {
		clock  string
		expect bool
	}

	var (
		item  = objects.ScheduleItem{StartTime: "09:00", EndTime: "10:30", Day: "Rabu"}
		cases = []testCase{
			{"08:59", false},
			{"09:00", true},
			{"09:45", true},
			{"10:30", true},
			{"10:31", false},
		}
	)

	for _, c := range cases {
		var h, m, err = objects.ParseClock(c.clock)

		if err != nil {
			t.Fatalf("Cannot parse %q: %s", c.clock, err.Error())
		}

		var now = time.Date(2024, 1, 10, h, m, 30, 0, time.UTC)

		if res := InProgress(&item, now); res != c.expect {
			t.Errorf("InProgress at %s returned %t, expected %t",
				c.clock,
				res,
				c.expect)
		}
	}

	if cur := Current(items, wednesday); len(cur) != 1 || cur[0].ID != "2" {
		t.Errorf("Unexpected current classes: %v", cur)
	}
} // func TestInProgress(t *testing.T)

func TestClock(t *testing.T) {
	var c = ClockAt(time.Date(2024, 1, 10, 7, 5, 9, 0, time.UTC))

	if c.Time != "07:05:09" {
		t.Errorf("Unexpected time %q", c.Time)
	} else if c.Date != "Rabu, 10 Januari 2024" {
		t.Errorf("Unexpected date %q", c.Date)
	}
} // func TestClock(t *testing.T)
