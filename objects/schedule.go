// /home/krylon/go/src/github.com/blicero/jadwal/objects/schedule.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-10 21:14:06 krylon>

package objects

import (
	"fmt"
	"regexp"
	"time"
)

//go:generate ffjson schedule.go

// Days lists the names of the weekdays, starting on Monday.
var Days = []string{
	"Senin",
	"Selasa",
	"Rabu",
	"Kamis",
	"Jumat",
	"Sabtu",
	"Minggu",
}

// Palette is the list of colors the user can pick for a ScheduleItem.
var Palette = []string{
	"#3b82f6",
	"#10b981",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#06b6d4",
	"#84cc16",
	"#f97316",
}

// DefaultColor is used for ScheduleItems that have no color set.
var DefaultColor = Palette[0]

var colorPat = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DayName returns the name of the given weekday.
func DayName(d time.Weekday) string {
	// time.Weekday starts with Sunday, we start with Monday.
	return Days[(d+6)%7]
} // func DayName(d time.Weekday) string

// DayIndex returns the position of the named day in Days, or -1 if
// the name is not a valid day.
func DayIndex(name string) int {
	for idx, d := range Days {
		if d == name {
			return idx
		}
	}

	return -1
} // func DayIndex(name string) int

// IsDay returns true if name is the name of a weekday.
func IsDay(name string) bool {
	return DayIndex(name) >= 0
} // func IsDay(name string) bool

// ValidColor returns true if c looks like #RRGGBB.
func ValidColor(c string) bool {
	return colorPat.MatchString(c)
} // func ValidColor(c string) bool

// ScheduleItem is a class that takes place every week on the same
// day at the same time.
type ScheduleItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Room      string `json:"room"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Day       string `json:"day"`
	Notes     string `json:"notes,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Colour returns the item's color, or the default color if none is set.
func (s *ScheduleItem) Colour() string {
	if s.Color == "" {
		return DefaultColor
	}

	return s.Color
} // func (s *ScheduleItem) Colour() string

// Start returns the point in time the class starts on the same
// day as ref, in ref's location.
func (s *ScheduleItem) Start(ref time.Time) (time.Time, error) {
	return clockOn(s.StartTime, ref)
} // func (s *ScheduleItem) Start(ref time.Time) (time.Time, error)

// End returns the point in time the class ends on the same
// day as ref, in ref's location.
func (s *ScheduleItem) End(ref time.Time) (time.Time, error) {
	return clockOn(s.EndTime, ref)
} // func (s *ScheduleItem) End(ref time.Time) (time.Time, error)

func (s *ScheduleItem) String() string {
	return fmt.Sprintf("ScheduleItem{ ID: %q, Title: %q, Day: %s, Time: %s-%s, Room: %q }",
		s.ID,
		s.Title,
		s.Day,
		s.StartTime,
		s.EndTime,
		s.Room)
} // func (s *ScheduleItem) String() string

// ParseClock parses a time of day in the form "HH:MM".
func ParseClock(str string) (hour, min int, err error) {
	var t time.Time

	if len(str) != 5 {
		return 0, 0, fmt.Errorf("Invalid time of day %q", str)
	} else if t, err = time.Parse("15:04", str); err != nil {
		return 0, 0, fmt.Errorf("Invalid time of day %q: %w", str, err)
	}

	return t.Hour(), t.Minute(), nil
} // func ParseClock(str string) (hour, min int, err error)

func clockOn(str string, ref time.Time) (time.Time, error) {
	var (
		err       error
		hour, min int
	)

	if hour, min, err = ParseClock(str); err != nil {
		return time.Time{}, err
	}

	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, min, 0, 0, ref.Location()), nil
} // func clockOn(str string, ref time.Time) (time.Time, error)
