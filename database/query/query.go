// /home/krylon/go/src/github.com/blicero/jadwal/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-09 21:14:07 krylon>

// Package query provides symbolic constants for identifying SQL queries.
package query

//go:generate stringer -type=ID

// ID identifies a prepared statement.
type ID uint8

// Schedule items and assignments are stored as whole lists, so there
// are no update queries.
const (
	ScheduleAdd ID = iota
	ScheduleClear
	ScheduleGetAll
	AssignmentAdd
	AssignmentClear
	AssignmentGetAll
	NoteAdd
	NoteClear
	NoteGetBySubject
	MarkerGet
	MarkerSet
	MarkerPrune
	ReadStateAdd
	ReadStateClear
	ReadStateGetAll
)
