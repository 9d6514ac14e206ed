// /home/krylon/go/src/github.com/blicero/jadwal/objects/offset/offset.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-06 19:05:13 krylon>

//go:generate stringer -type=Offset

// Package offset contains symbolic constants to specify how
// long before an Assignment's deadline a Reminder should go off.
package offset

// Offset identifies one of the reminder toggles of an Assignment.
type Offset uint8

// TwoDaysBefore and OneDayBefore keep the due time of day.
// SameDay goes off in the morning of the day the Assignment is due.
// EightHoursBefore goes off eight hours before the deadline.
const (
	TwoDaysBefore Offset = iota
	OneDayBefore
	SameDay
	EightHoursBefore
)

// All returns the Offsets in the order Reminders are derived.
func All() []Offset {
	return []Offset{
		TwoDaysBefore,
		OneDayBefore,
		SameDay,
		EightHoursBefore,
	}
} // func All() []Offset
