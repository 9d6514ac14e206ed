// /home/krylon/go/src/github.com/blicero/jadwal/objects/capability.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-07 20:02:55 krylon>

package objects

// Capability reports whether the platform will deliver notifications
// for us.
type Capability string

// Unavailable means there is no notification service at all, Denied means
// there is one, but it refuses to talk to us.
const (
	Granted     Capability = "granted"
	Denied      Capability = "denied"
	Unavailable Capability = "unavailable"
)
