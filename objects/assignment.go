// /home/krylon/go/src/github.com/blicero/jadwal/objects/assignment.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 16:20:31 krylon>

package objects

import (
	"fmt"
	"time"

	"github.com/blicero/jadwal/objects/offset"
	"github.com/blicero/jadwal/objects/priority"
)

//go:generate ffjson assignment.go

// DefaultDueTime is the time of day an Assignment is due if the user
// only picked a date.
const DefaultDueTime = "23:59"

// Toggles holds the reminder switches of an Assignment.
type Toggles struct {
	TwoDaysBefore    bool `json:"twoDaysBefore"`
	OneDayBefore     bool `json:"oneDayBefore"`
	SameDay          bool `json:"sameDay"`
	EightHoursBefore bool `json:"eightHoursBefore"`
}

// AllToggles returns a Toggles value with every switch turned on.
func AllToggles() Toggles {
	return Toggles{
		TwoDaysBefore:    true,
		OneDayBefore:     true,
		SameDay:          true,
		EightHoursBefore: true,
	}
} // func AllToggles() Toggles

// On returns the state of the switch for the given Offset.
func (t *Toggles) On(o offset.Offset) bool {
	switch o {
	case offset.TwoDaysBefore:
		return t.TwoDaysBefore
	case offset.OneDayBefore:
		return t.OneDayBefore
	case offset.SameDay:
		return t.SameDay
	case offset.EightHoursBefore:
		return t.EightHoursBefore
	default:
		return false
	}
} // func (t *Toggles) On(o offset.Offset) bool

// Set sets the switch for the given Offset.
func (t *Toggles) Set(o offset.Offset, val bool) {
	switch o {
	case offset.TwoDaysBefore:
		t.TwoDaysBefore = val
	case offset.OneDayBefore:
		t.OneDayBefore = val
	case offset.SameDay:
		t.SameDay = val
	case offset.EightHoursBefore:
		t.EightHoursBefore = val
	}
} // func (t *Toggles) Set(o offset.Offset, val bool)

// Any returns true if at least one switch is on.
func (t *Toggles) Any() bool {
	return t.TwoDaysBefore || t.OneDayBefore || t.SameDay || t.EightHoursBefore
} // func (t *Toggles) Any() bool

// Assignment is a piece of homework with a deadline.
type Assignment struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	DueDate       time.Time         `json:"dueDate"`
	Subject       string            `json:"subject,omitempty"`
	Priority      priority.Priority `json:"priority"`
	Completed     bool              `json:"completed"`
	Notifications Toggles           `json:"notifications"`
}

// NewAssignment returns an Assignment with the defaults the entry form
// starts out with.
func NewAssignment(title string, due time.Time) Assignment {
	return Assignment{
		Title:         title,
		DueDate:       due,
		Priority:      priority.Medium,
		Notifications: AllToggles(),
	}
} // func NewAssignment(title string, due time.Time) Assignment

// CombineDue joins a date ("2006-01-02") and an optional time of day
// ("15:04") into a timestamp in the given location.
func CombineDue(date, tod string, loc *time.Location) (time.Time, error) {
	if tod == "" {
		tod = DefaultDueTime
	}

	var (
		err error
		t   time.Time
	)

	if t, err = time.ParseInLocation("2006-01-02 15:04", date+" "+tod, loc); err != nil {
		return t, fmt.Errorf("Cannot parse due date %q %q: %w", date, tod, err)
	}

	return t, nil
} // func CombineDue(date, tod string, loc *time.Location) (time.Time, error)

// Until returns the time left until the Assignment is due.
func (a *Assignment) Until(now time.Time) time.Duration {
	return a.DueDate.Sub(now)
} // func (a *Assignment) Until(now time.Time) time.Duration

func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment{ ID: %q, Title: %q, Due: %s, Completed: %t }",
		a.ID,
		a.Title,
		a.DueDate.Format(time.RFC3339),
		a.Completed)
} // func (a *Assignment) String() string
