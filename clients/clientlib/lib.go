// /home/krylon/go/src/github.com/blicero/jadwal/clients/clientlib/lib.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 22:04:19 krylon>

// Package clientlib provides the basic framework for
// building clients that talk to the Jadwal daemon.
package clientlib

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/blicero/jadwal/backend"
	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/logdomain"
	"github.com/blicero/jadwal/objects"
	"github.com/blicero/jadwal/schedule"
	"github.com/pquerna/ffjson/ffjson"
)

// ErrRequestFailed is returned when the daemon rejects a request.
var ErrRequestFailed = errors.New("Request failed")

// Client is the basic implementation of a Jadwal client,
// it implements the fundamental communication with the Server.
type Client struct {
	Server *url.URL
	Client http.Client
	log    *log.Logger
}

// NewClient creates a new Client.
func NewClient(srv string) (*Client, error) {
	var (
		err error
		c   = &Client{
			Client: http.Client{
				Timeout: time.Second * 10,
			},
		}
	)

	if c.log, err = common.GetLogger(logdomain.Client); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot create Logger: %s\n",
			err.Error())
		return nil, err
	} else if c.Server, err = url.Parse(srv); err != nil {
		c.log.Printf("[ERROR] Cannot parse URL %q: %s\n",
			srv,
			err.Error())
		return nil, err
	}

	if c.Server.Scheme == "" {
		c.Server.Scheme = "http"
	}

	return c, nil
} // func NewClient(srv string) (*Client, error)

// GetLogger returns the Client's Logger.
func (c *Client) GetLogger() *log.Logger {
	return c.log
} // func (c *Client) GetLogger() *log.Logger

func (c *Client) endpoint(path string) string {
	var u = *c.Server

	u.Path, u.RawQuery, _ = strings.Cut(path, "?")
	return u.String()
} // func (c *Client) endpoint(path string) string

// fetch sends the request and returns the body of the reply.
func (c *Client) fetch(method, path string, payload any) ([]byte, string, error) {
	var (
		err    error
		sndBuf []byte
		rcvBuf bytes.Buffer
		hres   *http.Response
		addr   = c.endpoint(path)
		values = make(url.Values)
	)

	if payload != nil {
		if sndBuf, err = ffjson.Marshal(payload); err != nil {
			c.log.Printf("[ERROR] Cannot serialize %T: %s\n",
				payload,
				err.Error())
			return nil, "", err
		}

		values.Set("payload", string(sndBuf))
		ffjson.Pool(sndBuf)
	}

	if method == http.MethodGet {
		hres, err = c.Client.Get(addr)
	} else {
		hres, err = c.Client.PostForm(addr, values)
	}

	if err != nil {
		c.log.Printf("[ERROR] Failed to %s %s: %s\n",
			method,
			addr,
			err.Error())
		return nil, "", err
	}

	defer hres.Body.Close() // nolint: errcheck

	if hres.StatusCode != http.StatusOK {
		err = fmt.Errorf("Unexpected status from %s: %s",
			addr,
			hres.Status)
		c.log.Printf("[ERROR] %s\n", err.Error())
		return nil, "", err
	} else if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		c.log.Printf("[ERROR] Failed to read Response body from %s: %s\n",
			addr,
			err.Error())
		return nil, "", err
	}

	return rcvBuf.Bytes(), hres.Header.Get("Content-Type"), nil
} // func (c *Client) fetch(method, path string, payload any) ([]byte, string, error)

func (c *Client) get(path string, out any) error {
	var (
		err error
		buf []byte
	)

	if buf, _, err = c.fetch(http.MethodGet, path, nil); err != nil {
		return err
	} else if err = ffjson.Unmarshal(buf, out); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize reply to %s: %s\n",
			path,
			err.Error())
		return err
	}

	return nil
} // func (c *Client) get(path string, out any) error

// post submits the payload and returns the ID of the object the daemon
// reports back.
func (c *Client) post(path string, payload any) (string, error) {
	var (
		err  error
		buf  []byte
		ores objects.Response
	)

	if buf, _, err = c.fetch(http.MethodPost, path, payload); err != nil {
		return "", err
	} else if err = ffjson.Unmarshal(buf, &ores); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize Response to %s: %s\n",
			path,
			err.Error())
		return "", err
	} else if !ores.Status {
		err = fmt.Errorf("%w: %s: %s",
			ErrRequestFailed,
			path,
			ores.Message)
		c.log.Printf("[ERROR] %s\n", err.Error())
		return "", err
	}

	c.log.Printf("[DEBUG] Request to %s was successful: %s\n",
		path,
		ores.Message)

	return ores.ObjectID, nil
} // func (c *Client) post(path string, payload any) (string, error)

// Schedule returns all classes.
func (c *Client) Schedule() ([]objects.ScheduleItem, error) {
	var items []objects.ScheduleItem
	return items, c.get("/schedule/all", &items)
} // func (c *Client) Schedule() ([]objects.ScheduleItem, error)

// Today returns the classes on the current day of the week.
func (c *Client) Today() ([]objects.ScheduleItem, error) {
	var items []objects.ScheduleItem
	return items, c.get("/schedule/today", &items)
} // func (c *Client) Today() ([]objects.ScheduleItem, error)

// Week returns the schedule for the whole week.
func (c *Client) Week() ([]schedule.DaySchedule, error) {
	var week []schedule.DaySchedule
	return week, c.get("/schedule/week", &week)
} // func (c *Client) Week() ([]schedule.DaySchedule, error)

// SubmitSchedule adds a class and returns its ID.
func (c *Client) SubmitSchedule(item *objects.ScheduleItem) (string, error) {
	return c.post("/schedule/add", item)
} // func (c *Client) SubmitSchedule(item *objects.ScheduleItem) (string, error)

// DeleteSchedule removes a class.
func (c *Client) DeleteSchedule(id string) error {
	var _, err = c.post("/schedule/"+id+"/delete", nil)
	return err
} // func (c *Client) DeleteSchedule(id string) error

// Assignments returns the Assignments matching the filter, which is
// one of "all", "pending" or "completed".
func (c *Client) Assignments(filter string) ([]objects.Assignment, error) {
	var list []objects.Assignment
	return list, c.get("/assignment/all?filter="+url.QueryEscape(filter), &list)
} // func (c *Client) Assignments(filter string) ([]objects.Assignment, error)

// SubmitAssignment adds an Assignment and returns its ID.
func (c *Client) SubmitAssignment(a *objects.Assignment) (string, error) {
	return c.post("/assignment/add", a)
} // func (c *Client) SubmitAssignment(a *objects.Assignment) (string, error)

// ToggleAssignment flips the completion state of an Assignment.
func (c *Client) ToggleAssignment(id string) error {
	var _, err = c.post("/assignment/"+id+"/toggle", nil)
	return err
} // func (c *Client) ToggleAssignment(id string) error

// DeleteAssignment removes an Assignment.
func (c *Client) DeleteAssignment(id string) error {
	var _, err = c.post("/assignment/"+id+"/delete", nil)
	return err
} // func (c *Client) DeleteAssignment(id string) error

// GetNotifications returns the content of the notification center.
func (c *Client) GetNotifications() (*backend.NotificationList, error) {
	var list backend.NotificationList

	if err := c.get("/notification/all", &list); err != nil {
		return nil, err
	}

	return &list, nil
} // func (c *Client) GetNotifications() (*backend.NotificationList, error)

// MarkRead marks a notification as read.
func (c *Client) MarkRead(id string) error {
	var _, err = c.post("/notification/"+id+"/read", nil)
	return err
} // func (c *Client) MarkRead(id string) error

// MarkAllRead marks all notifications as read.
func (c *Client) MarkAllRead() error {
	var _, err = c.post("/notification/read_all", nil)
	return err
} // func (c *Client) MarkAllRead() error

// Capability returns whether the daemon may post desktop notifications.
func (c *Client) Capability() (objects.Capability, error) {
	var (
		err error
		res map[string]objects.Capability
	)

	if err = c.get("/notification/capability", &res); err != nil {
		return objects.Unavailable, err
	}

	return res["capability"], nil
} // func (c *Client) Capability() (objects.Capability, error)

// Notes returns the notes attached to a class.
func (c *Client) Notes(subject string) ([]objects.SubjectNote, error) {
	var notes []objects.SubjectNote
	return notes, c.get("/note/"+subject, &notes)
} // func (c *Client) Notes(subject string) ([]objects.SubjectNote, error)

// AddNote attaches a note to a class and returns its ID.
func (c *Client) AddNote(subject, text string) (string, error) {
	var n = objects.SubjectNote{Text: text}
	return c.post("/note/"+subject+"/add", &n)
} // func (c *Client) AddNote(subject, text string) (string, error)

// Stats returns the numbers shown on the dashboard.
func (c *Client) Stats() (*backend.Dashboard, error) {
	var dash backend.Dashboard

	if err := c.get("/stats", &dash); err != nil {
		return nil, err
	}

	return &dash, nil
} // func (c *Client) Stats() (*backend.Dashboard, error)

// SalesReport renders a sales report and writes it to w. If pdf is
// false, the report is rendered as HTML.
func (c *Client) SalesReport(w io.Writer, req *backend.SalesRequest, pdf bool) error {
	var (
		err   error
		buf   []byte
		ctype string
		path  = "/report/sales"
	)

	if pdf {
		path += "?format=pdf"
	}

	if buf, ctype, err = c.fetch(http.MethodPost, path, req); err != nil {
		return err
	} else if ctype == "application/json" {
		// The daemon answers with a Response if rendering failed.
		var ores objects.Response
		if err = ffjson.Unmarshal(buf, &ores); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrRequestFailed, ores.Message)
	}

	_, err = w.Write(buf)
	return err
} // func (c *Client) SalesReport(w io.Writer, req *backend.SalesRequest, pdf bool) error
