// /home/krylon/go/src/github.com/blicero/jadwal/backend/sink.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 17:48:31 krylon>

package backend

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/logdomain"
	"github.com/blicero/jadwal/objects"
	"github.com/blicero/krylib"
	"github.com/godbus/dbus/v5"
)

const (
	notifyObj    = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
	capsMethod   = "org.freedesktop.Notifications.GetCapabilities"
)

// ErrNoPermission is returned when posting a notification while the
// user's desktop does not accept them.
var ErrNoPermission = errors.New("Notifications are not permitted")

// Poster delivers a notification to the user right away.
type Poster interface {
	Permission() objects.Capability
	Post(n objects.Notification) error
}

// busPoster posts notifications to the desktop via DBus.
type busPoster struct {
	log *log.Logger
	bus *dbus.Conn
}

func newBusPoster() (*busPoster, error) {
	var (
		err error
		p   = new(busPoster)
	)

	if p.log, err = common.GetLogger(logdomain.Sink); err != nil {
		return nil, err
	} else if p.bus, err = dbus.SessionBus(); err != nil {
		// Without a session bus we keep running, but cannot post anything.
		p.log.Printf("[ERROR] Failed to connect to DBus Session bus: %s\n",
			err.Error())
		p.bus = nil
	}

	return p, nil
} // func newBusPoster() (*busPoster, error)

// Permission asks the notification daemon for its capabilities. If it
// does not answer, we take that as a refusal.
func (p *busPoster) Permission() objects.Capability {
	if p.bus == nil {
		return objects.Unavailable
	}

	var (
		caps []string
		obj  = p.bus.Object(notifyObj, notifyPath)
	)

	if err := obj.Call(capsMethod, 0).Store(&caps); err != nil {
		p.log.Printf("[INFO] Notification daemon did not tell its capabilities: %s\n",
			err.Error())
		return objects.Denied
	}

	if common.Debug {
		p.log.Printf("[TRACE] Notification daemon capabilities: %v\n", caps)
	}

	return objects.Granted
} // func (p *busPoster) Permission() objects.Capability

func (p *busPoster) Post(n objects.Notification) error {
	if p.bus == nil {
		return ErrNoPermission
	}

	var (
		obj        = p.bus.Object(notifyObj, notifyPath)
		head, body = n.Payload()
	)

	var res = obj.Call(
		notifyMethod,
		0,
		common.AppName,
		uint32(0),
		"",
		head,
		body,
		[]string{},
		map[string]dbus.Variant{},
		int32(-1),
	)

	if res.Err != nil {
		p.log.Printf("[ERROR] Cannot send Notification %q: %s\n",
			head,
			res.Err.Error())
		if common.Debug {
			krylib.Trace() // nolint: errcheck
		}
		return res.Err
	}

	return nil
} // func (p *busPoster) Post(n objects.Notification) error

// Queue holds the batch of Reminders scheduled for the future and
// hands each one to a Poster when it is due.
// Scheduling a new batch does not implicitly cancel the old one, the
// caller is expected to CancelAll first.
type Queue struct {
	log     *log.Logger
	lock    sync.Mutex
	poster  Poster
	pending []objects.Reminder
}

// NewQueue creates a Queue that delivers through p.
func NewQueue(p Poster) (*Queue, error) {
	var (
		err error
		q   = &Queue{poster: p}
	)

	if q.log, err = common.GetLogger(logdomain.Sink); err != nil {
		return nil, err
	}

	return q, nil
} // func NewQueue(p Poster) (*Queue, error)

// Permission reports whether the Poster can deliver notifications.
func (q *Queue) Permission() objects.Capability {
	return q.poster.Permission()
} // func (q *Queue) Permission() objects.Capability

// CancelAll drops all pending Reminders.
func (q *Queue) CancelAll() error {
	q.lock.Lock()
	q.pending = nil
	q.lock.Unlock()
	return nil
} // func (q *Queue) CancelAll() error

// Schedule adds a batch of Reminders. IDs must be unique within the
// Queue.
func (q *Queue) Schedule(batch []objects.Reminder) error {
	q.lock.Lock()
	defer q.lock.Unlock()

	var seen = make(map[int64]bool, len(q.pending)+len(batch))
	for _, r := range q.pending {
		seen[r.ID] = true
	}

	for _, r := range batch {
		if seen[r.ID] {
			return fmt.Errorf("Duplicate Reminder ID %d", r.ID)
		}
		seen[r.ID] = true
	}

	q.pending = append(q.pending, batch...)
	sort.SliceStable(q.pending, func(i, j int) bool {
		return q.pending[i].FireAt.Before(q.pending[j].FireAt)
	})

	return nil
} // func (q *Queue) Schedule(batch []objects.Reminder) error

// Pending returns a copy of the Reminders that have not fired, yet.
func (q *Queue) Pending() []objects.Reminder {
	q.lock.Lock()
	defer q.lock.Unlock()

	var res = make([]objects.Reminder, len(q.pending))
	copy(res, q.pending)
	return res
} // func (q *Queue) Pending() []objects.Reminder

// Fire posts all Reminders that are due at the given time and removes
// them from the Queue. It returns how many were posted and how many failed. Reminders that fail to post are dropped as well,
// a desktop notification is not worth retrying once the moment is past.
func (q *Queue) Fire(now time.Time) (sent, failed int) {
	var due []objects.Reminder

	q.lock.Lock()
	for len(q.pending) > 0 && q.pending[0].IsDue(now) {
		due = append(due, q.pending[0])
		q.pending = q.pending[1:]
	}
	q.lock.Unlock()

	for idx := range due {
		if err := q.poster.Post(&due[idx]); err != nil {
			q.log.Printf("[ERROR] Cannot post %s: %s\n",
				due[idx].String(),
				err.Error())
			failed++
			continue
		}
		sent++
	}

	return sent, failed
} // func (q *Queue) Fire(now time.Time) (sent, failed int)
