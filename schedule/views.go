// /home/krylon/go/src/github.com/blicero/jadwal/schedule/views.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 22:03:17 krylon>

// Package schedule provides the views on the user's classes and
// assignments: what is on today, what the week looks like, which
// assignments are still open.
package schedule

import (
	"sort"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/objects"
)

// Today returns the name of the weekday now falls on.
func Today(now time.Time) string {
	return objects.DayName(now.Weekday())
} // func Today(now time.Time) string

// ForDay returns the items scheduled for the given day, sorted by their
// start time.
func ForDay(items []objects.ScheduleItem, day string) []objects.ScheduleItem {
	var res = make([]objects.ScheduleItem, 0, len(items))

	for _, i := range items {
		if i.Day == day {
			res = append(res, i)
		}
	}

	// "HH:MM" is zero-padded, so comparing the strings is good enough.
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].StartTime < res[j].StartTime
	})

	return res
} // func ForDay(items []objects.ScheduleItem, day string) []objects.ScheduleItem

// ForToday returns the items scheduled for the day now falls on.
func ForToday(items []objects.ScheduleItem, now time.Time) []objects.ScheduleItem {
	return ForDay(items, Today(now))
} // func ForToday(items []objects.ScheduleItem, now time.Time) []objects.ScheduleItem

// DaySchedule is the list of classes on one day of the week.
type DaySchedule struct {
	Day   string                 `json:"day"`
	Items []objects.ScheduleItem `json:"items"`
}

// Week returns the schedule for all seven days, starting on Monday.
func Week(items []objects.ScheduleItem) []DaySchedule {
	var week = make([]DaySchedule, len(objects.Days))

	for idx, d := range objects.Days {
		week[idx] = DaySchedule{
			Day:   d,
			Items: ForDay(items, d),
		}
	}

	return week
} // func Week(items []objects.ScheduleItem) []DaySchedule

// InProgress returns true if the class is going on at the time of day
// now falls on. Both ends of the range count as part of the class.
func InProgress(item *objects.ScheduleItem, now time.Time) bool {
	var clock = now.Format(common.ClockFormat)

	return item.StartTime <= clock && clock <= item.EndTime
} // func InProgress(item *objects.ScheduleItem, now time.Time) bool

// Current returns the items from today's schedule that are in progress.
func Current(items []objects.ScheduleItem, now time.Time) []objects.ScheduleItem {
	var res []objects.ScheduleItem

	for _, i := range ForToday(items, now) {
		if InProgress(&i, now) {
			res = append(res, i)
		}
	}

	return res
} // func Current(items []objects.ScheduleItem, now time.Time) []objects.ScheduleItem
