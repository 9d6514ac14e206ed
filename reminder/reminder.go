// /home/krylon/go/src/github.com/blicero/jadwal/reminder/reminder.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

// Package reminder computes the points in time at which the operating
// system should remind the user of upcoming deadlines and classes.
// Everything in here is a pure function of its arguments.
package reminder

import (
	"fmt"
	"time"

	"github.com/blicero/jadwal/objects"
	"github.com/blicero/jadwal/objects/offset"
)

// MorningHour is the hour of the day at which the SameDay Reminder
// goes off.
const MorningHour = 9

const (
	titleNormal = "Pengingat Tugas"
	titleUrgent = "Pengingat Tugas Mendesak"
)

// FireAt returns the point in time the Reminder for the given Offset
// should go off at, regardless of whether it is in the past. The SameDay
// Reminder fires at MorningHour on the local calendar date of due.
func FireAt(due time.Time, o offset.Offset) time.Time {
	// Day offsets count calendar days where the user lives, no matter
	// which zone the due date was stored in.
	due = due.In(time.Local)

	switch o {
	case offset.TwoDaysBefore:
		return due.AddDate(0, 0, -2)
	case offset.OneDayBefore:
		return due.AddDate(0, 0, -1)
	case offset.SameDay:
		return time.Date(due.Year(), due.Month(), due.Day(), MorningHour, 0, 0, 0, time.Local)
	case offset.EightHoursBefore:
		return due.Add(-8 * time.Hour)
	default:
		panic(fmt.Errorf("Invalid Offset %d", o))
	}
} // func FireAt(due time.Time, o offset.Offset) time.Time

func payload(a *objects.Assignment, o offset.Offset) (string, string) {
	switch o {
	case offset.TwoDaysBefore:
		return titleNormal, fmt.Sprintf("Tugas \"%s\" akan due dalam 2 hari", a.Title)
	case offset.OneDayBefore:
		return titleNormal, fmt.Sprintf("Tugas \"%s\" akan due besok", a.Title)
	case offset.SameDay:
		return titleNormal, fmt.Sprintf("Hari ini adalah deadline tugas \"%s\"", a.Title)
	default:
		return titleUrgent, fmt.Sprintf("Tugas \"%s\" akan due dalam 8 jam", a.Title)
	}
} // func payload(a *objects.Assignment, o offset.Offset) (string, string)

// Derive returns the Reminders that should be scheduled for the given
// Assignment. Reminders whose time has already come are dropped, so are
// all Reminders of a completed Assignment. The IDs of the result are
// left at zero, see Batch.
func Derive(a *objects.Assignment, now time.Time) []objects.Reminder {
	if a.Completed {
		return nil
	}

	var res = make([]objects.Reminder, 0, 4)

	for _, o := range offset.All() {
		if !a.Notifications.On(o) {
			continue
		}

		var at = FireAt(a.DueDate, o)

		if !at.After(now) {
			continue
		}

		var title, body = payload(a, o)

		res = append(res, objects.Reminder{
			AssignmentID: a.ID,
			Offset:       o,
			FireAt:       at,
			Title:        title,
			Body:         body,
		})
	}

	return res
} // func Derive(a *objects.Assignment, now time.Time) []objects.Reminder

// Batch derives the Reminders for all Assignments, in order, and numbers
// them sequentially, starting at 1.
func Batch(assignments []objects.Assignment, now time.Time) []objects.Reminder {
	var (
		res []objects.Reminder
		id  int64
	)

	for idx := range assignments {
		for _, r := range Derive(&assignments[idx], now) {
			id++
			r.ID = id
			res = append(res, r)
		}
	}

	return res
} // func Batch(assignments []objects.Assignment, now time.Time) []objects.Reminder
