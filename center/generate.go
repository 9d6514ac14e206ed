// /home/krylon/go/src/github.com/blicero/jadwal/center/generate.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 21:09:44 krylon>

// Package center implements the in-app notification center: a list of
// entries about approaching and missed deadlines that is derived from
// the Assignments whenever they change.
package center

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blicero/jadwal/objects"
)

const (
	day  = time.Hour * 24
	hour = time.Hour
)

// Suffixes appended to the Assignment ID to form the NotificationItem ID.
const (
	SuffixTwoDays = "-2days"
	SuffixOneDay  = "-1day"
	SuffixSameDay = "-sameday"
	SuffixEight   = "-8hours"
	SuffixOverdue = "-overdue"
)

func ceilDiv(d, unit time.Duration) int {
	return int(math.Ceil(float64(d) / float64(unit)))
} // func ceilDiv(d, unit time.Duration) int

// Generate derives the notification center entries for the given
// Assignments at the given time. Completed Assignments are skipped.
// Every entry is stamped with now; the result is ordered by that stamp,
// newest first, which leaves entries in the order of the Assignments and,
// for each Assignment, in the order the rules are checked.
func Generate(assignments []objects.Assignment, now time.Time) []objects.NotificationItem {
	var list = make([]objects.NotificationItem, 0)

	for _, a := range assignments {
		if a.Completed {
			continue
		}

		var (
			diff      = a.DueDate.Sub(now)
			diffDays  = ceilDiv(diff, day)
			diffHours = ceilDiv(diff, hour)
			tog       = &a.Notifications
		)

		var mk = func(suffix string, kind objects.Kind, title, msg string, urgent bool) objects.NotificationItem {
			return objects.NotificationItem{
				ID:         a.ID + suffix,
				Type:       kind,
				Title:      title,
				Message:    msg,
				Assignment: a,
				CreatedAt:  now,
				Urgent:     urgent,
			}
		}

		if diffDays == 2 && tog.TwoDaysBefore {
			list = append(list, mk(
				SuffixTwoDays,
				objects.KindReminder,
				"Pengingat: 2 Hari Lagi",
				fmt.Sprintf("Tugas \"%s\" akan berakhir dalam 2 hari", a.Title),
				false))
		}

		if diffDays == 1 && tog.OneDayBefore {
			list = append(list, mk(
				SuffixOneDay,
				objects.KindReminder,
				"Pengingat: Besok Deadline",
				fmt.Sprintf("Tugas \"%s\" akan berakhir besok", a.Title),
				true))
		}

		if diffDays == 0 && diffHours > 8 && tog.SameDay {
			list = append(list, mk(
				SuffixSameDay,
				objects.KindDeadline,
				"Deadline Hari Ini!",
				fmt.Sprintf("Tugas \"%s\" berakhir hari ini", a.Title),
				true))
		}

		if diffHours > 0 && diffHours <= 8 && tog.EightHoursBefore {
			list = append(list, mk(
				SuffixEight,
				objects.KindDeadline,
				"Deadline dalam 8 Jam!",
				fmt.Sprintf("Tugas \"%s\" berakhir dalam %d jam", a.Title, diffHours),
				true))
		}

		if diffDays < 0 {
			list = append(list, mk(
				SuffixOverdue,
				objects.KindDeadline,
				"Tugas Terlambat",
				fmt.Sprintf("Tugas \"%s\" sudah melewati deadline", a.Title),
				true))
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	return list
} // func Generate(assignments []objects.Assignment, now time.Time) []objects.NotificationItem
