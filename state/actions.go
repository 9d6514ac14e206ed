// /home/krylon/go/src/github.com/blicero/jadwal/state/actions.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

package state

import (
	"fmt"

	"github.com/blicero/jadwal/objects"
	"github.com/pquerna/ffjson/ffjson"
)

// Collection identifies one of the two lists in the State.
type Collection uint8

// ScheduleCollection holds the classes, AssignmentCollection the homework.
const (
	ScheduleCollection Collection = iota
	AssignmentCollection
)

// Action is a change to the State.
type Action interface {
	Touches() Collection
}

// AddSchedule adds a new class.
type AddSchedule struct {
	Item objects.ScheduleItem
}

// UpdateSchedule replaces the class with the same ID.
type UpdateSchedule struct {
	Item objects.ScheduleItem
}

// PatchSchedule merges a JSON object into the class with the given ID.
// Fields the object does not mention keep their current value.
type PatchSchedule struct {
	ID      string
	Payload []byte
}

// DeleteSchedule removes a class.
type DeleteSchedule struct {
	ID string
}

// AddAssignment adds a new Assignment.
type AddAssignment struct {
	Assignment objects.Assignment
}

// UpdateAssignment replaces the Assignment with the same ID.
type UpdateAssignment struct {
	Assignment objects.Assignment
}

// PatchAssignment merges a JSON object into the Assignment with the
// given ID. Fields the object does not mention keep their current value.
type PatchAssignment struct {
	ID      string
	Payload []byte
}

// ToggleAssignment flips the Completed flag of an Assignment.
type ToggleAssignment struct {
	ID string
}

// DeleteAssignment removes an Assignment.
type DeleteAssignment struct {
	ID string
}

// Touches implements Action
func (AddSchedule) Touches() Collection { return ScheduleCollection }

// Touches implements Action
func (UpdateSchedule) Touches() Collection { return ScheduleCollection }

// Touches implements Action
func (PatchSchedule) Touches() Collection { return ScheduleCollection }

// Touches implements Action
func (DeleteSchedule) Touches() Collection { return ScheduleCollection }

// Touches implements Action
func (AddAssignment) Touches() Collection { return AssignmentCollection }

// Touches implements Action
func (UpdateAssignment) Touches() Collection { return AssignmentCollection }

// Touches implements Action
func (PatchAssignment) Touches() Collection { return AssignmentCollection }

// Touches implements Action
func (ToggleAssignment) Touches() Collection { return AssignmentCollection }

// Touches implements Action
func (DeleteAssignment) Touches() Collection { return AssignmentCollection }

// Apply returns the State that results from applying the Action to s.
// s itself is not modified. If the Action cannot be applied, s is
// returned along with an error.
func Apply(s State, a Action) (State, error) {
	var next = s.Clone()

	switch act := a.(type) {
	case AddSchedule:
		var item = act.Item

		if item.ID == "" {
			return s, ErrMissingID
		} else if err := ValidateSchedule(&item); err != nil {
			return s, err
		} else if _, ok := s.ScheduleItem(item.ID); ok {
			return s, ErrDuplicateID
		}

		if item.Color == "" {
			item.Color = objects.DefaultColor
		}

		next.Schedule = append(next.Schedule, item)

	case UpdateSchedule:
		var item = act.Item

		if err := ValidateSchedule(&item); err != nil {
			return s, err
		}

		var idx = scheduleIndex(next.Schedule, item.ID)
		if idx < 0 {
			return s, ErrNotFound
		}

		if item.Color == "" {
			item.Color = objects.DefaultColor
		}

		next.Schedule[idx] = item

	case PatchSchedule:
		var idx = scheduleIndex(next.Schedule, act.ID)
		if idx < 0 {
			return s, ErrNotFound
		}

		var item = next.Schedule[idx]

		if err := ffjson.Unmarshal(act.Payload, &item); err != nil {
			return s, fmt.Errorf("%w: %s", ErrBadPayload, err.Error())
		}

		item.ID = act.ID
		if item.Color == "" {
			item.Color = objects.DefaultColor
		}

		if err := ValidateSchedule(&item); err != nil {
			return s, err
		}

		next.Schedule[idx] = item

	case DeleteSchedule:
		var idx = scheduleIndex(next.Schedule, act.ID)
		if idx < 0 {
			return s, ErrNotFound
		}

		next.Schedule = append(next.Schedule[:idx], next.Schedule[idx+1:]...)

	case AddAssignment:
		var as = act.Assignment

		if as.ID == "" {
			return s, ErrMissingID
		} else if err := ValidateAssignment(&as); err != nil {
			return s, err
		} else if _, ok := s.Assignment(as.ID); ok {
			return s, ErrDuplicateID
		}

		next.Assignments = append(next.Assignments, as)

	case UpdateAssignment:
		var as = act.Assignment

		if err := ValidateAssignment(&as); err != nil {
			return s, err
		}

		var idx = assignmentIndex(next.Assignments, as.ID)
		if idx < 0 {
			return s, ErrNotFound
		}

		next.Assignments[idx] = as

	case PatchAssignment:
		var idx = assignmentIndex(next.Assignments, act.ID)
		if idx < 0 {
			return s, ErrNotFound
		}

		var as = next.Assignments[idx]

		if err := ffjson.Unmarshal(act.Payload, &as); err != nil {
			return s, fmt.Errorf("%w: %s", ErrBadPayload, err.Error())
		}

		as.ID = act.ID
		if err := ValidateAssignment(&as); err != nil {
			return s, err
		}

		next.Assignments[idx] = as

	case ToggleAssignment:
		var idx = assignmentIndex(next.Assignments, act.ID)
		if idx < 0 {
			return s, ErrNotFound
		}

		next.Assignments[idx].Completed = !next.Assignments[idx].Completed

	case DeleteAssignment:
		var idx = assignmentIndex(next.Assignments, act.ID)
		if idx < 0 {
			return s, ErrNotFound
		}

		next.Assignments = append(next.Assignments[:idx], next.Assignments[idx+1:]...)

	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}

	return next, nil
} // func Apply(s State, a Action) (State, error)

func scheduleIndex(list []objects.ScheduleItem, id string) int {
	for idx := range list {
		if list[idx].ID == id {
			return idx
		}
	}

	return -1
} // func scheduleIndex(list []objects.ScheduleItem, id string) int

func assignmentIndex(list []objects.Assignment, id string) int {
	for idx := range list {
		if list[idx].ID == id {
			return idx
		}
	}

	return -1
} // func assignmentIndex(list []objects.Assignment, id string) int
