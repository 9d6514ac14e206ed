// /home/krylon/go/src/github.com/blicero/jadwal/objects/notification.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-11 17:48:22 krylon>

// Package objects provides the data types used by the application.
package objects

import "time"

//go:generate ffjson notification.go

// Notification is the common interface for items the user should be
// notified about.
type Notification interface {
	Due() time.Time
	IsDue(now time.Time) bool
	Payload() (string, string)
}

// Kind distinguishes the entries of the notification center.
type Kind string

// Deadline entries are about an imminent or missed deadline, Reminder
// entries are early warnings.
const (
	KindDeadline Kind = "deadline"
	KindReminder Kind = "reminder"
)

// NotificationItem is an entry in the in-app notification center.
// NotificationItems are derived from the Assignments and never stored.
type NotificationItem struct {
	ID         string     `json:"id"`
	Type       Kind       `json:"type"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Assignment Assignment `json:"assignment"`
	CreatedAt  time.Time  `json:"createdAt"`
	Read       bool       `json:"read"`
	Urgent     bool       `json:"urgent"`
}
