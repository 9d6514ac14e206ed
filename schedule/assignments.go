// /home/krylon/go/src/github.com/blicero/jadwal/schedule/assignments.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 22:19:50 krylon>

package schedule

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blicero/jadwal/objects"
)

// Filter selects which Assignments to list.
type Filter string

// FilterPending is what the list shows by default.
const (
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterAll       Filter = "all"
)

// ParseFilter returns the Filter of the given name, FilterPending for
// the empty string.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "":
		return FilterPending, nil
	case FilterPending, FilterCompleted, FilterAll:
		return Filter(s), nil
	default:
		return FilterPending, fmt.Errorf("Invalid filter %q", s)
	}
} // func ParseFilter(s string) (Filter, error)

// Assignments returns the Assignments matching the Filter, open ones
// first, each group ordered by due date.
func Assignments(list []objects.Assignment, f Filter) []objects.Assignment {
	var res = make([]objects.Assignment, 0, len(list))

	for _, a := range list {
		switch f {
		case FilterPending:
			if a.Completed {
				continue
			}
		case FilterCompleted:
			if !a.Completed {
				continue
			}
		}

		res = append(res, a)
	}

	SortAssignments(res)
	return res
} // func Assignments(list []objects.Assignment, f Filter) []objects.Assignment

// SortAssignments sorts the list in place: open Assignments before
// completed ones, then by due date.
func SortAssignments(list []objects.Assignment) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Completed != list[j].Completed {
			return !list[i].Completed
		}

		return list[i].DueDate.Before(list[j].DueDate)
	})
} // func SortAssignments(list []objects.Assignment)

// Counts returns the number of open and completed Assignments.
func Counts(list []objects.Assignment) (pending, completed int) {
	for _, a := range list {
		if a.Completed {
			completed++
		} else {
			pending++
		}
	}

	return
} // func Counts(list []objects.Assignment) (pending, completed int)

// DaysUntil returns the number of days left until the Assignment is
// due, rounded up. Assignments that are due within the next 24 hours
// have one day left.
func DaysUntil(a *objects.Assignment, now time.Time) int {
	return int(math.Ceil(float64(a.DueDate.Sub(now)) / float64(time.Hour*24)))
} // func DaysUntil(a *objects.Assignment, now time.Time) int

// Variant tells the frontend how to highlight a Status.
type Variant string

// These are the Variants we use.
const (
	VariantSuccess     Variant = "success"
	VariantDestructive Variant = "destructive"
	VariantAccent      Variant = "accent"
	VariantDefault     Variant = "default"
)

// Status describes how close an Assignment is to its deadline.
type Status struct {
	Text    string  `json:"text"`
	Variant Variant `json:"variant"`
	Urgent  bool    `json:"urgent"`
}

// DeadlineStatus returns the Status of the Assignment.
func DeadlineStatus(a *objects.Assignment, now time.Time) Status {
	if a.Completed {
		return Status{Text: "Selesai", Variant: VariantSuccess}
	}

	var left = DaysUntil(a, now)

	switch {
	case left < 0:
		return Status{Text: "Terlambat", Variant: VariantDestructive, Urgent: true}
	case left == 0:
		return Status{Text: "Hari ini", Variant: VariantAccent, Urgent: true}
	case left == 1:
		return Status{Text: "Besok", Variant: VariantAccent, Urgent: true}
	case left <= 3:
		return Status{Text: fmt.Sprintf("%d hari lagi", left), Variant: VariantAccent, Urgent: true}
	default:
		return Status{Text: fmt.Sprintf("%d hari lagi", left), Variant: VariantDefault}
	}
} // func DeadlineStatus(a *objects.Assignment, now time.Time) Status
