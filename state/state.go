// /home/krylon/go/src/github.com/blicero/jadwal/state/state.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

// Package state holds the application's data, the user's classes and
// assignments, and defines the ways in which it may change.
// Every change is expressed as an Action, Apply computes the State
// that results from it without touching its input.
package state

import (
	"errors"
	"strings"

	"github.com/blicero/jadwal/objects"
)

// Errors returned when an Action cannot be applied. The State is left
// unchanged in all of these cases.
var (
	ErrMissingTitle   = errors.New("Title is missing")
	ErrMissingDueDate = errors.New("Due date is missing")
	ErrInvalidDay     = errors.New("Invalid day of week")
	ErrInvalidTime    = errors.New("Invalid time of day")
	ErrInvertedRange  = errors.New("Class must start before it ends")
	ErrInvalidColor   = errors.New("Invalid color")
	ErrNotFound       = errors.New("No such item")
	ErrDuplicateID    = errors.New("ID is already taken")
	ErrMissingID      = errors.New("ID is missing")
	ErrEmptyNote      = errors.New("Note has neither text nor images")
	ErrUnknownAction  = errors.New("Unknown action")
	ErrBadPayload     = errors.New("Cannot parse payload")
)

// State is the complete data set of the application.
type State struct {
	Schedule    []objects.ScheduleItem `json:"schedule"`
	Assignments []objects.Assignment   `json:"assignments"`
}

// Clone returns a deep copy of the State.
func (s State) Clone() State {
	var c = State{
		Schedule:    make([]objects.ScheduleItem, len(s.Schedule)),
		Assignments: make([]objects.Assignment, len(s.Assignments)),
	}

	copy(c.Schedule, s.Schedule)
	copy(c.Assignments, s.Assignments)

	return c
} // func (s State) Clone() State

// Assignment returns the Assignment with the given ID.
func (s *State) Assignment(id string) (objects.Assignment, bool) {
	for _, a := range s.Assignments {
		if a.ID == id {
			return a, true
		}
	}

	return objects.Assignment{}, false
} // func (s *State) Assignment(id string) (objects.Assignment, bool)

// ScheduleItem returns the ScheduleItem with the given ID.
func (s *State) ScheduleItem(id string) (objects.ScheduleItem, bool) {
	for _, i := range s.Schedule {
		if i.ID == id {
			return i, true
		}
	}

	return objects.ScheduleItem{}, false
} // func (s *State) ScheduleItem(id string) (objects.ScheduleItem, bool)

// ValidateSchedule checks a ScheduleItem before it is stored.
func ValidateSchedule(item *objects.ScheduleItem) error {
	var (
		err    error
		sh, sm int
		eh, em int
	)

	if strings.TrimSpace(item.Title) == "" {
		return ErrMissingTitle
	} else if !objects.IsDay(item.Day) {
		return ErrInvalidDay
	} else if sh, sm, err = objects.ParseClock(item.StartTime); err != nil {
		return ErrInvalidTime
	} else if eh, em, err = objects.ParseClock(item.EndTime); err != nil {
		return ErrInvalidTime
	} else if sh*60+sm >= eh*60+em {
		return ErrInvertedRange
	} else if item.Color != "" && !objects.ValidColor(item.Color) {
		return ErrInvalidColor
	}

	return nil
} // func ValidateSchedule(item *objects.ScheduleItem) error

// ValidateAssignment checks an Assignment before it is stored.
func ValidateAssignment(a *objects.Assignment) error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrMissingTitle
	} else if a.DueDate.IsZero() {
		return ErrMissingDueDate
	}

	return nil
} // func ValidateAssignment(a *objects.Assignment) error
