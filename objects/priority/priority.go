// /home/krylon/go/src/github.com/blicero/jadwal/objects/priority/priority.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-06 19:02:48 krylon>

//go:generate stringer -type=Priority -linecomment

// Package priority contains symbolic constants for the
// urgency the user assigned to an Assignment.
package priority

import "fmt"

// Priority describes how important an Assignment is.
type Priority uint8

// Medium is what new Assignments get unless the user says otherwise.
const (
	Low    Priority = iota // low
	Medium                 // medium
	High                   // high
)

// Parse returns the Priority for the given name.
func Parse(s string) (Priority, error) {
	switch s {
	case "low":
		return Low, nil
	case "medium", "":
		return Medium, nil
	case "high":
		return High, nil
	default:
		return Medium, fmt.Errorf("Invalid priority %q", s)
	}
} // func Parse(s string) (Priority, error)

// MarshalText implements encoding.TextMarshaler
func (p Priority) MarshalText() ([]byte, error) {
	if p > High {
		return nil, fmt.Errorf("Invalid priority %d", p)
	}

	return []byte(p.String()), nil
} // func (p Priority) MarshalText() ([]byte, error)

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Priority) UnmarshalText(txt []byte) error {
	var err error

	*p, err = Parse(string(txt))
	return err
} // func (p *Priority) UnmarshalText(txt []byte) error
