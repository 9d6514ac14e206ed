// /home/krylon/go/src/github.com/blicero/jadwal/reminder/class.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 18:55:02 krylon>

package reminder

import (
	"fmt"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/objects"
)

// DefaultClassLead is how long before a class starts the user gets
// reminded of it.
const DefaultClassLead = time.Minute * 5

// ClassReminderAt returns the point in time on the given day at which
// the user should be reminded of the class.
func ClassReminderAt(item *objects.ScheduleItem, day time.Time, lead time.Duration) (time.Time, error) {
	var (
		err   error
		start time.Time
	)

	if start, err = item.Start(day); err != nil {
		return start, err
	}

	return start.Add(-lead), nil
} // func ClassReminderAt(item *objects.ScheduleItem, day time.Time, lead time.Duration) (time.Time, error)

// ClassDue returns true if the reminder for the given class is due in
// the minute now falls into. Items scheduled for other days of the
// week, or whose start time cannot be parsed, are never due.
func ClassDue(item *objects.ScheduleItem, now time.Time, lead time.Duration) bool {
	if item.Day != objects.DayName(now.Weekday()) {
		return false
	}

	var at, err = ClassReminderAt(item, now, lead)

	if err != nil {
		return false
	}

	return at.Format(common.ClockFormat) == now.Format(common.ClockFormat)
} // func ClassDue(item *objects.ScheduleItem, now time.Time, lead time.Duration) bool

// MarkerKey returns the key under which we remember that the reminder
// for the class has been sent on the day now falls into.
func MarkerKey(item *objects.ScheduleItem, now time.Time) string {
	return fmt.Sprintf("schedule-%s-%s",
		item.ID,
		now.Format(common.TimestampFormatDate))
} // func MarkerKey(item *objects.ScheduleItem, now time.Time) string

// ForClass builds the Reminder for the class starting soon.
func ForClass(item *objects.ScheduleItem, now time.Time, lead time.Duration) objects.Reminder {
	return objects.Reminder{
		ScheduleID: item.ID,
		FireAt:     now,
		Title:      fmt.Sprintf("Jadwal Kuliah - %s", item.Title),
		Body: fmt.Sprintf("Dalam %d menit di ruangan %s",
			int(lead/time.Minute),
			item.Room),
	}
} // func ForClass(item *objects.ScheduleItem, now time.Time, lead time.Duration) objects.Reminder
