// /home/krylon/go/src/github.com/blicero/jadwal/backend/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

package backend

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/objects"
	"github.com/blicero/jadwal/report"
	"github.com/blicero/jadwal/schedule"
	"github.com/blicero/jadwal/state"
	"github.com/gorilla/mux"
)

// NotificationList is what /notification/all returns.
type NotificationList struct {
	Items   []objects.NotificationItem `json:"items"`
	Unread  int                        `json:"unread"`
	Urgent  []objects.NotificationItem `json:"urgent"`
	Regular []objects.NotificationItem `json:"regular"`
}

// Dashboard is what /stats returns.
type Dashboard struct {
	schedule.Stats
	Unread int `json:"unread"`
}

// SalesRequest is the payload of /report/sales.
type SalesRequest struct {
	PeriodLabel string           `json:"periodLabel"`
	Start       time.Time        `json:"startDate"`
	End         time.Time        `json:"endDate"`
	Receipts    []report.Receipt `json:"receipts"`
}

func (d *Daemon) initWebHandlers() error {
	var r = d.router

	r.Use(d.metrics.middleware)
	r.Handle("/metrics", d.metrics.handler).Methods("GET")

	r.HandleFunc("/schedule/all", d.handleScheduleAll).Methods("GET")
	r.HandleFunc("/schedule/today", d.handleScheduleToday).Methods("GET")
	r.HandleFunc("/schedule/week", d.handleScheduleWeek).Methods("GET")
	r.HandleFunc("/schedule/day/{day}", d.handleScheduleDay).Methods("GET")
	r.HandleFunc("/schedule/add", d.handleScheduleAdd).Methods("POST")
	r.HandleFunc("/schedule/{id}/update", d.handleScheduleUpdate).Methods("POST")
	r.HandleFunc("/schedule/{id}/delete", d.handleScheduleDelete).Methods("POST")

	r.HandleFunc("/assignment/all", d.handleAssignmentAll).Methods("GET")
	r.HandleFunc("/assignment/add", d.handleAssignmentAdd).Methods("POST")
	r.HandleFunc("/assignment/{id}/update", d.handleAssignmentUpdate).Methods("POST")
	r.HandleFunc("/assignment/{id}/toggle", d.handleAssignmentToggle).Methods("POST")
	r.HandleFunc("/assignment/{id}/delete", d.handleAssignmentDelete).Methods("POST")

	r.HandleFunc("/notification/all", d.handleNotificationAll).Methods("GET")
	r.HandleFunc("/notification/read_all", d.handleNotificationReadAll).Methods("POST")
	r.HandleFunc("/notification/clear", d.handleNotificationClear).Methods("POST")
	r.HandleFunc("/notification/capability", d.handleNotificationCapability).Methods("GET")
	r.HandleFunc("/notification/{id}/read", d.handleNotificationRead).Methods("POST")
	r.HandleFunc("/notification/{id}/delete", d.handleNotificationDelete).Methods("POST")

	r.HandleFunc("/note/{subject}", d.handleNoteGet).Methods("GET")
	r.HandleFunc("/note/{subject}/add", d.handleNoteAdd).Methods("POST")
	r.HandleFunc("/note/{subject}/{id}/delete", d.handleNoteDelete).Methods("POST")

	r.HandleFunc("/stats", d.handleStats).Methods("GET")
	r.HandleFunc("/clock", d.handleClock).Methods("GET")
	r.HandleFunc("/report/sales", d.handleReportSales).Methods("POST")

	return nil
} // func (d *Daemon) initWebHandlers() error

func (d *Daemon) serveHTTP() {
	var err error

	defer d.log.Println("[INFO] Web server is shutting down")

	d.log.Printf("[INFO] Web frontend is going online at %s\n", d.web.Addr)

	if err = d.web.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			d.log.Printf("[ERROR] ListenAndServe returned an error: %s\n",
				err.Error())
		} else {
			d.log.Println("[INFO] HTTP Server has shut down.")
		}
	}
} // func (d *Daemon) serveHTTP()

// dispatch applies an Action and fills in the Response accordingly.
func (d *Daemon) dispatch(a state.Action, res *objects.Response) {
	if _, err := d.store.Dispatch(a); err != nil {
		res.Message = err.Error()
		return
	}

	res.Status = true
} // func (d *Daemon) dispatch(a state.Action, res *objects.Response)

////////////////////////////////////////////////////////////////////////////////
///// Schedule /////////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

func (d *Daemon) handleScheduleAll(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)
	d.sendJSON(w, d.store.Snapshot().Schedule)
} // func (d *Daemon) handleScheduleAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleScheduleToday(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)
	d.sendJSON(w, schedule.ForToday(d.store.Snapshot().Schedule, d.now()))
} // func (d *Daemon) handleScheduleToday(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleScheduleWeek(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)
	d.sendJSON(w, schedule.Week(d.store.Snapshot().Schedule))
} // func (d *Daemon) handleScheduleWeek(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleScheduleDay(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var day = mux.Vars(r)["day"]

	if !objects.IsDay(day) {
		var res = objects.Response{
			ID:      d.getID(),
			Message: fmt.Sprintf("%s: %q", state.ErrInvalidDay.Error(), day),
		}
		d.sendResponseJSON(w, &res)
		return
	}

	d.sendJSON(w, schedule.ForDay(d.store.Snapshot().Schedule, day))
} // func (d *Daemon) handleScheduleDay(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleScheduleAdd(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		err  error
		item objects.ScheduleItem
		res  = objects.Response{ID: d.getID()}
	)

	if err = decodePayload(r, &item); err != nil {
		res.Message = err.Error()
		goto SEND_RESPONSE
	}

	item.ID = common.GetUUID()
	d.dispatch(state.AddSchedule{Item: item}, &res)
	if res.Status {
		res.ObjectID = item.ID
	}

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleScheduleAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleScheduleUpdate(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		err error
		buf []byte
		id  = mux.Vars(r)["id"]
		res = objects.Response{ID: d.getID(), ObjectID: id}
	)

	// The Store merges the payload into the current item, so fields
	// the client leaves out stay as they are.
	if buf, err = rawPayload(r); err != nil {
		res.Message = err.Error()
	} else {
		d.dispatch(state.PatchSchedule{ID: id, Payload: buf}, &res)
	}

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleScheduleUpdate(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleScheduleDelete(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		id  = mux.Vars(r)["id"]
		res = objects.Response{ID: d.getID(), ObjectID: id}
	)

	d.dispatch(state.DeleteSchedule{ID: id}, &res)
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleScheduleDelete(w http.ResponseWriter, r *http.Request)

////////////////////////////////////////////////////////////////////////////////
///// Assignment ///////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

func (d *Daemon) handleAssignmentAll(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		err    error
		filter schedule.Filter
	)

	if filter, err = schedule.ParseFilter(r.URL.Query().Get("filter")); err != nil {
		var res = objects.Response{ID: d.getID(), Message: err.Error()}
		d.sendResponseJSON(w, &res)
		return
	}

	d.sendJSON(w, schedule.Assignments(d.store.Snapshot().Assignments, filter))
} // func (d *Daemon) handleAssignmentAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleAssignmentAdd(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		err error
		a   = objects.NewAssignment("", time.Time{})
		res = objects.Response{ID: d.getID()}
	)

	// Fields missing from the payload keep the defaults of a new
	// Assignment.
	if err = decodePayload(r, &a); err != nil {
		res.Message = err.Error()
		goto SEND_RESPONSE
	}

	a.ID = common.GetUUID()
	a.Completed = false
	d.dispatch(state.AddAssignment{Assignment: a}, &res)
	if res.Status {
		res.ObjectID = a.ID
	}

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleAssignmentAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleAssignmentUpdate(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		err error
		buf []byte
		id  = mux.Vars(r)["id"]
		res = objects.Response{ID: d.getID(), ObjectID: id}
	)

	if buf, err = rawPayload(r); err != nil {
		res.Message = err.Error()
	} else {
		d.dispatch(state.PatchAssignment{ID: id, Payload: buf}, &res)
	}

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleAssignmentUpdate(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleAssignmentToggle(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		id  = mux.Vars(r)["id"]
		res = objects.Response{ID: d.getID(), ObjectID: id}
	)

	d.dispatch(state.ToggleAssignment{ID: id}, &res)
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleAssignmentToggle(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleAssignmentDelete(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		id  = mux.Vars(r)["id"]
		res = objects.Response{ID: d.getID(), ObjectID: id}
	)

	d.dispatch(state.DeleteAssignment{ID: id}, &res)
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleAssignmentDelete(w http.ResponseWriter, r *http.Request)

////////////////////////////////////////////////////////////////////////////////
///// Notification /////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

func (d *Daemon) handleNotificationAll(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var list = NotificationList{
		Items:   d.center.Items(),
		Unread:  d.center.UnreadCount(),
		Urgent:  d.center.Urgent(),
		Regular: d.center.Regular(),
	}

	d.sendJSON(w, &list)
} // func (d *Daemon) handleNotificationAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationRead(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		err error
		id  = mux.Vars(r)["id"]
		res = objects.Response{ID: d.getID(), ObjectID: id}
	)

	if err = d.center.MarkRead(id); err != nil {
		res.Message = err.Error()
	} else {
		res.Status = true
	}

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleNotificationRead(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationReadAll(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var res = objects.Response{ID: d.getID()}

	if err := d.center.MarkAllRead(); err != nil {
		res.Message = err.Error()
	} else {
		res.Status = true
	}

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleNotificationReadAll(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationDelete(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		id  = mux.Vars(r)["id"]
		res = objects.Response{ID: d.getID(), ObjectID: id}
	)

	if err := d.center.Delete(id); err != nil {
		res.Message = err.Error()
	} else {
		res.Status = true
	}

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleNotificationDelete(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationClear(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var res = objects.Response{ID: d.getID(), Status: true}

	d.center.Clear()
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleNotificationClear(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNotificationCapability(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var perm = d.poster.Permission()

	d.sendJSON(w, map[string]objects.Capability{"capability": perm})
} // func (d *Daemon) handleNotificationCapability(w http.ResponseWriter, r *http.Request)

////////////////////////////////////////////////////////////////////////////////
///// Notes ////////////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

func (d *Daemon) handleNoteGet(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		err     error
		notes   []objects.SubjectNote
		subject = mux.Vars(r)["subject"]
	)

	if notes, err = d.Notes(subject); err != nil {
		d.log.Printf("[ERROR] Cannot load notes for %s: %s\n",
			subject,
			err.Error())
		var res = objects.Response{ID: d.getID(), Message: err.Error()}
		d.sendResponseJSON(w, &res)
		return
	}

	d.sendJSON(w, notes)
} // func (d *Daemon) handleNoteGet(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNoteAdd(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		err     error
		note    objects.SubjectNote
		subject = mux.Vars(r)["subject"]
		res     = objects.Response{ID: d.getID()}
	)

	if err = decodePayload(r, &note); err != nil {
		res.Message = err.Error()
		goto SEND_RESPONSE
	} else if note, err = d.AddNote(subject, note); err != nil {
		res.Message = err.Error()
		goto SEND_RESPONSE
	}

	res.Status = true
	res.ObjectID = note.ID

SEND_RESPONSE:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleNoteAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleNoteDelete(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		vars = mux.Vars(r)
		res  = objects.Response{ID: d.getID(), ObjectID: vars["id"]}
	)

	if err := d.DeleteNote(vars["subject"], vars["id"]); err != nil {
		res.Message = err.Error()
	} else {
		res.Status = true
	}

	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleNoteDelete(w http.ResponseWriter, r *http.Request)

////////////////////////////////////////////////////////////////////////////////
///// Miscellaneous ////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

func (d *Daemon) handleStats(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		snap = d.store.Snapshot()
		dash = Dashboard{
			Stats:  schedule.Summarize(snap.Schedule, snap.Assignments),
			Unread: d.center.UnreadCount(),
		}
	)

	d.sendJSON(w, &dash)
} // func (d *Daemon) handleStats(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleClock(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var clk = schedule.ClockAt(d.now())
	d.sendJSON(w, &clk)
} // func (d *Daemon) handleClock(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleReportSales(w http.ResponseWriter, r *http.Request) {
	d.logRequest(r)

	var (
		err   error
		req   SalesRequest
		rep   *report.Report
		buf   bytes.Buffer
		ctype = "text/html; charset=utf-8"
		res   = objects.Response{ID: d.getID()}
	)

	if err = decodePayload(r, &req); err != nil {
		res.Message = err.Error()
		goto SEND_ERROR
	}

	rep = report.New(
		d.cfg.StoreName,
		d.cfg.StoreAddress,
		req.PeriodLabel,
		req.Start,
		req.End,
		req.Receipts)
	rep.PrintedAt = d.now()

	if r.URL.Query().Get("format") == "pdf" {
		ctype = "application/pdf"
		err = report.RenderPDF(&buf, rep)
	} else {
		err = report.RenderHTML(&buf, rep)
	}

	if err != nil {
		d.log.Printf("[ERROR] Cannot render sales report: %s\n",
			err.Error())
		res.Message = err.Error()
		goto SEND_ERROR
	}

	w.Header().Set("Content-Type", ctype)
	w.WriteHeader(200)
	w.Write(buf.Bytes()) // nolint: errcheck
	return

SEND_ERROR:
	d.sendResponseJSON(w, &res)
} // func (d *Daemon) handleReportSales(w http.ResponseWriter, r *http.Request)
