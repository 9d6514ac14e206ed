// /home/krylon/go/src/github.com/blicero/jadwal/backend/helpers.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

package backend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/blicero/jadwal/objects"
	"github.com/pquerna/ffjson/ffjson"
)

// ErrNoPayload is returned when a request lacks the payload form value.
var ErrNoPayload = errors.New("Request has no payload")

// rawPayload returns the JSON object posted as the form value "payload".
func rawPayload(r *http.Request) ([]byte, error) {
	var (
		err     error
		payload string
	)

	if err = r.ParseForm(); err != nil {
		return nil, fmt.Errorf("Cannot parse form data: %w", err)
	} else if payload = r.PostFormValue("payload"); payload == "" {
		return nil, ErrNoPayload
	}

	return []byte(payload), nil
} // func rawPayload(r *http.Request) ([]byte, error)

// decodePayload parses the JSON object posted as the form value
// "payload" into v.
func decodePayload(r *http.Request, v any) error {
	var (
		err error
		buf []byte
	)

	if buf, err = rawPayload(r); err != nil {
		return err
	} else if err = ffjson.Unmarshal(buf, v); err != nil {
		return fmt.Errorf("Cannot parse payload: %w", err)
	}

	return nil
} // func decodePayload(r *http.Request, v any) error

func (d *Daemon) logRequest(r *http.Request) {
	d.log.Printf("[TRACE] Handle %s %s from %s\n",
		r.Method,
		r.URL,
		r.RemoteAddr)
} // func (d *Daemon) logRequest(r *http.Request)

func (d *Daemon) sendJSON(w http.ResponseWriter, v any) {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(v); err != nil {
		d.log.Printf("[ERROR] Cannot serialize %T: %s\n",
			v,
			err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) sendJSON(w http.ResponseWriter, v any)

func (d *Daemon) sendResponseJSON(w http.ResponseWriter, res *objects.Response) {
	if !res.Status && res.Message != "" {
		d.log.Printf("[INFO] Request #%d failed: %s\n",
			res.ID,
			res.Message)
	}

	d.sendJSON(w, res)
} // func (d *Daemon) sendResponseJSON(w http.ResponseWriter, res *objects.Response)

func (d *Daemon) getID() int64 {
	d.idLock.Lock()
	d.idCnt++
	var id = d.idCnt
	d.idLock.Unlock()
	return id
} // func (d *Daemon) getID() int64
