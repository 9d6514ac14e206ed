// /home/krylon/go/src/github.com/blicero/jadwal/database/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 18:03:55 krylon>

package database

import "github.com/blicero/jadwal/database/query"

var dbQueries = map[query.ID]string{
	query.ScheduleAdd: `
INSERT INTO schedule_item (id, position, title, room, day, start_time, end_time, notes, color)
VALUES                    ( ?,        ?,     ?,    ?,   ?,          ?,        ?,     ?,     ?)
`,
	query.ScheduleClear: "DELETE FROM schedule_item",
	query.ScheduleGetAll: `
SELECT
    id,
    title,
    room,
    day,
    start_time,
    end_time,
    notes,
    color
FROM schedule_item
ORDER BY position
`,
	query.AssignmentAdd: `
INSERT INTO assignment (id, position, title, description, due, subject, priority, completed, notify)
VALUES                 ( ?,        ?,     ?,           ?,   ?,       ?,        ?,         ?,      ?)
`,
	query.AssignmentClear: "DELETE FROM assignment",
	query.AssignmentGetAll: `
SELECT
    id,
    title,
    description,
    due,
    subject,
    priority,
    completed,
    notify
FROM assignment
ORDER BY position
`,
	query.NoteAdd: `
INSERT INTO subject_note (id, subject_id, position, txt, images, created)
VALUES                   ( ?,          ?,        ?,   ?,      ?,       ?)
`,
	query.NoteClear: "DELETE FROM subject_note WHERE subject_id = ?",
	query.NoteGetBySubject: `
SELECT
    id,
    txt,
    images,
    created
FROM subject_note
WHERE subject_id = ?
ORDER BY position
`,
	query.MarkerGet: "SELECT COUNT(key) FROM class_marker WHERE key = ?",
	query.MarkerSet: `
INSERT INTO class_marker (key, stamp) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET stamp = excluded.stamp
`,
	query.MarkerPrune:     "DELETE FROM class_marker WHERE stamp < ?",
	query.ReadStateAdd:    "INSERT OR IGNORE INTO read_state (id) VALUES (?)",
	query.ReadStateClear:  "DELETE FROM read_state",
	query.ReadStateGetAll: "SELECT id FROM read_state ORDER BY id",
}
