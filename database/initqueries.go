// /home/krylon/go/src/github.com/blicero/jadwal/database/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-09 21:40:18 krylon>

package database

var initQueries = []string{
	`
CREATE TABLE schedule_item (
    id          TEXT PRIMARY KEY,
    position    INTEGER NOT NULL,
    title       TEXT NOT NULL,
    room        TEXT NOT NULL DEFAULT '',
    day         TEXT NOT NULL,
    start_time  TEXT NOT NULL,
    end_time    TEXT NOT NULL,
    notes       TEXT NOT NULL DEFAULT '',
    color       TEXT NOT NULL DEFAULT '',
    CHECK (start_time < end_time)
)
`,
	"CREATE INDEX sched_day_idx ON schedule_item (day)",
	`
CREATE TABLE assignment (
    id          TEXT PRIMARY KEY,
    position    INTEGER NOT NULL,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    due         INTEGER NOT NULL,
    subject     TEXT NOT NULL DEFAULT '',
    priority    INTEGER NOT NULL DEFAULT 1,
    completed   INTEGER NOT NULL DEFAULT 0,
    notify      INTEGER NOT NULL DEFAULT 15
)
`,
	"CREATE INDEX assignment_due_idx ON assignment (due)",
	`
CREATE TABLE subject_note (
    id          TEXT PRIMARY KEY,
    subject_id  TEXT NOT NULL,
    position    INTEGER NOT NULL,
    txt         TEXT NOT NULL DEFAULT '',
    images      TEXT NOT NULL DEFAULT '[]',
    created     INTEGER NOT NULL
)
`,
	"CREATE INDEX note_subject_idx ON subject_note (subject_id)",
	`
CREATE TABLE class_marker (
    key         TEXT PRIMARY KEY,
    stamp       INTEGER NOT NULL
)
`,
	"CREATE INDEX marker_stamp_idx ON class_marker (stamp)",
	`
CREATE TABLE read_state (
    id          TEXT PRIMARY KEY
)
`,
}
