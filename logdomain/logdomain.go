// /home/krylon/go/src/github.com/blicero/jadwal/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-08 20:11:37 krylon>

// Package logdomain provides constants for log sources.
package logdomain

//go:generate stringer -type=ID

// ID represents an area of concern.
type ID uint8

// These constants represent the pieces of the application that need to log stuff.
const (
	Common ID = iota
	Config
	Database
	KVStore
	State
	Backend
	Sink
	Web
	Client
	Report
)

// AllDomains returns a slice of all the known log sources.
func AllDomains() []ID {
	return []ID{
		Common,
		Config,
		Database,
		KVStore,
		State,
		Backend,
		Sink,
		Web,
		Client,
		Report,
	}
} // func AllDomains() []ID
