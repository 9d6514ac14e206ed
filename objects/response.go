// /home/krylon/go/src/github.com/blicero/jadwal/objects/response.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 19:40:18 krylon>

package objects

//go:generate ffjson response.go

// Response is what the backend sends to a client after processing a request.
// For requests that create something, ObjectID carries the new object's ID.
type Response struct {
	ID       int64  `json:"id"`
	Status   bool   `json:"status"`
	Message  string `json:"message"`
	ObjectID string `json:"objectId,omitempty"`
}
