// /home/krylon/go/src/github.com/blicero/jadwal/clients/clientlib/01_lib_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 22:31:09 krylon>

package clientlib

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/objects"
	"github.com/gorilla/mux"
	"github.com/pquerna/ffjson/ffjson"
)

func TestMain(m *testing.M) {
	var (
		err    error
		result int
		dir    string
	)

	if dir, err = os.MkdirTemp("", "jadwal-client-"); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create temporary directory: %s\n", err.Error())
		os.Exit(1)
	} else if err = common.SetBaseDir(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot set base directory to %s: %s\n", dir, err.Error())
		os.Exit(1)
	}

	result = m.Run()
	os.RemoveAll(dir) // nolint: errcheck
	os.Exit(result)
} // func TestMain(m *testing.M)

func reply(w http.ResponseWriter, v any) {
	var buf, _ = ffjson.Marshal(v)
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf) // nolint: errcheck
} // func reply(w http.ResponseWriter, v any)

// fakeDaemon answers the handful of requests the tests make.
func fakeDaemon(t *testing.T) *httptest.Server {
	var r = mux.NewRouter()

	r.HandleFunc("/assignment/add", func(w http.ResponseWriter, req *http.Request) {
		var a objects.Assignment

		if err := ffjson.Unmarshal([]byte(req.PostFormValue("payload")), &a); err != nil {
			t.Errorf("Cannot decode payload: %s", err.Error())
		}

		if a.Title == "" {
			reply(w, &objects.Response{Message: "Title is missing"})
			return
		}

		reply(w, &objects.Response{Status: true, ObjectID: "a1"})
	}).Methods("POST")

	r.HandleFunc("/assignment/all", func(w http.ResponseWriter, req *http.Request) {
		if f := req.URL.Query().Get("filter"); f != "pending" {
			t.Errorf("Unexpected filter %q", f)
		}
		reply(w, []objects.Assignment{{ID: "a1", Title: "Esai"}})
	}).Methods("GET")

	r.HandleFunc("/notification/capability", func(w http.ResponseWriter, req *http.Request) {
		reply(w, map[string]objects.Capability{"capability": objects.Denied})
	}).Methods("GET")

	return httptest.NewServer(r)
} // func fakeDaemon(t *testing.T) *httptest.Server

func TestClient(t *testing.T) {
	var (
		err  error
		c    *Client
		id   string
		list []objects.Assignment
		perm objects.Capability
		srv  = fakeDaemon(t)
	)

	defer srv.Close()

	if c, err = NewClient(srv.URL); err != nil {
		t.Fatalf("Cannot create Client: %s", err.Error())
	}

	if id, err = c.SubmitAssignment(&objects.Assignment{Title: "Esai"}); err != nil {
		t.Errorf("Cannot submit Assignment: %s", err.Error())
	} else if id != "a1" {
		t.Errorf("Unexpected ID %q", id)
	}

	if _, err = c.SubmitAssignment(&objects.Assignment{}); !errors.Is(err, ErrRequestFailed) {
		t.Errorf("Expected ErrRequestFailed, got %v", err)
	}

	if list, err = c.Assignments("pending"); err != nil {
		t.Errorf("Cannot load Assignments: %s", err.Error())
	} else if len(list) != 1 || list[0].Title != "Esai" {
		t.Errorf("Unexpected Assignments: %v", list)
	}

	if perm, err = c.Capability(); err != nil {
		t.Errorf("Cannot query capability: %s", err.Error())
	} else if perm != objects.Denied {
		t.Errorf("Unexpected capability %q", perm)
	}

	if err = c.ToggleAssignment("nope"); err == nil {
		t.Error("Request to unknown route should fail")
	}
} // func TestClient(t *testing.T)
