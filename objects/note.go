// /home/krylon/go/src/github.com/blicero/jadwal/objects/note.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-05 22:31:40 krylon>

package objects

import "time"

//go:generate ffjson note.go

// SubjectNote is a note the user attached to a ScheduleItem. Images are
// stored inline as data URLs.
type SubjectNote struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsEmpty returns true if the note has neither text nor images.
func (n *SubjectNote) IsEmpty() bool {
	for _, c := range n.Text {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}

	return len(n.Images) == 0
} // func (n *SubjectNote) IsEmpty() bool
