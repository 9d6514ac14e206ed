// /home/krylon/go/src/github.com/blicero/jadwal/objects/reminder.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 17:50:09 krylon>

package objects

import (
	"fmt"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/objects/offset"
)

//go:generate ffjson reminder.go

// Reminder is a notification to be delivered by the operating system
// at a given point in time. Its ID is only meaningful to the sink it
// was handed to.
type Reminder struct {
	ID           int64         `json:"id"`
	AssignmentID string        `json:"assignmentId,omitempty"`
	ScheduleID   string        `json:"scheduleId,omitempty"`
	Offset       offset.Offset `json:"offset"`
	FireAt       time.Time     `json:"fireAt"`
	Title        string        `json:"title"`
	Body         string        `json:"body"`
}

// Due returns the Reminder's due time.
func (r *Reminder) Due() time.Time {
	return r.FireAt
} // func (r *Reminder) Due() time.Time

// IsDue returns true if the Reminder's due time has passed.
func (r *Reminder) IsDue(now time.Time) bool {
	return !r.FireAt.After(now)
} // func (r *Reminder) IsDue(now time.Time) bool

// Payload returns the Reminder's Title and Body.
func (r *Reminder) Payload() (string, string) {
	return r.Title, r.Body
} // func (r *Reminder) Payload() (string, string)

func (r *Reminder) String() string {
	return fmt.Sprintf("Reminder{ ID: %d, FireAt: %s, Title: %q }",
		r.ID,
		r.FireAt.Format(common.TimestampFormat),
		r.Title)
} // func (r *Reminder) String() string
