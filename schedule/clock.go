// /home/krylon/go/src/github.com/blicero/jadwal/schedule/clock.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-08 21:44:10 krylon>

package schedule

import (
	"fmt"
	"time"

	"github.com/blicero/jadwal/objects"
)

// Months are the Indonesian names of the months.
var Months = []string{
	"Januari",
	"Februari",
	"Maret",
	"April",
	"Mei",
	"Juni",
	"Juli",
	"Agustus",
	"September",
	"Oktober",
	"November",
	"Desember",
}

// Clock is what the header of the app displays.
type Clock struct {
	Time string `json:"time"`
	Date string `json:"date"`
	Day  string `json:"day"`
}

// LongDate formats t like "Rabu, 10 Januari 2024".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		objects.DayName(t.Weekday()),
		t.Day(),
		Months[t.Month()-1],
		t.Year())
} // func LongDate(t time.Time) string

// ClockAt returns the Clock for the given point in time.
func ClockAt(t time.Time) Clock {
	return Clock{
		Time: t.Format("15:04:05"),
		Date: LongDate(t),
		Day:  Today(t),
	}
} // func ClockAt(t time.Time) Clock

// Stats is the summary shown above the main view.
type Stats struct {
	Classes int `json:"classes"`
	Pending int `json:"pending"`
}

// Summarize counts the schedule items and open assignments.
func Summarize(items []objects.ScheduleItem, assignments []objects.Assignment) Stats {
	var pending, _ = Counts(assignments)

	return Stats{
		Classes: len(items),
		Pending: pending,
	}
} // func Summarize(items []objects.ScheduleItem, assignments []objects.Assignment) Stats
