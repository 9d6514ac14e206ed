// /home/krylon/go/src/github.com/blicero/jadwal/backend/backend.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 01:14:52 krylon>

// Package backend implements the daemon that keeps the user's classes
// and assignments, reminds them of deadlines and upcoming classes via
// desktop notifications, and serves the data to clients over HTTP.
package backend

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/blicero/jadwal/center"
	"github.com/blicero/jadwal/common"
	"github.com/blicero/jadwal/config"
	"github.com/blicero/jadwal/database"
	"github.com/blicero/jadwal/kvstore"
	"github.com/blicero/jadwal/logdomain"
	"github.com/blicero/jadwal/objects"
	"github.com/blicero/jadwal/reminder"
	"github.com/blicero/jadwal/state"
	"github.com/gorilla/mux"
)

const (
	outboxDepth     = 5
	poolSize        = 4
	maintenanceTick = time.Hour
	markerMaxAge    = time.Hour * 48
)

// Daemon is the centerpiece of the backend, coordinating between the
// state, the storage, the notification sink and the clients.
type Daemon struct {
	log       *log.Logger
	cfg       *config.Config
	db        state.Storage
	store     *state.Store
	center    *center.Center
	poster    Poster
	queue     *Queue
	metrics   *metrics
	lock      sync.RWMutex
	active    bool
	quit      chan struct{}
	outbox    chan objects.Notification
	web       http.Server
	router    *mux.Router
	idLock    sync.Mutex
	idCnt     int64
	schedLock sync.Mutex
	noteLock  sync.Mutex
	loops     sync.WaitGroup
	clock     func() time.Time
}

// Summon summons a Daemon and returns it. No sacrifice or idolatry is required.
func Summon(cfg *config.Config) (*Daemon, error) {
	var (
		err    error
		db     state.Storage
		poster *busPoster
	)

	if db, err = openStorage(cfg); err != nil {
		return nil, err
	} else if poster, err = newBusPoster(); err != nil {
		db.Close() // nolint: errcheck
		return nil, err
	}

	var d *Daemon
	if d, err = summon(cfg, db, poster, time.Now); err != nil {
		db.Close() // nolint: errcheck
		return nil, err
	}

	return d, nil
} // func Summon(cfg *config.Config) (*Daemon, error)

func openStorage(cfg *config.Config) (state.Storage, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		return database.NewPool(common.DbPath, poolSize)
	case config.StorageBolt:
		return kvstore.Open(common.KVPath)
	default:
		return nil, fmt.Errorf("%w: storage %q", config.ErrInvalid, cfg.Storage)
	}
} // func openStorage(cfg *config.Config) (state.Storage, error)

func summon(cfg *config.Config, db state.Storage, p Poster, clock func() time.Time) (*Daemon, error) {
	var (
		err  error
		rs   center.ReadStore
		snap state.State
		d    = &Daemon{
			cfg:    cfg,
			db:     db,
			poster: p,
			active: true,
			quit:   make(chan struct{}),
			outbox: make(chan objects.Notification, outboxDepth),
			router: mux.NewRouter(),
			clock:  clock,
		}
	)

	if d.log, err = common.GetLogger(logdomain.Backend); err != nil {
		fmt.Printf("ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	} else if d.store, err = state.NewStore(db); err != nil {
		d.log.Printf("[ERROR] Cannot load application state: %s\n",
			err.Error())
		return nil, err
	} else if d.queue, err = NewQueue(p); err != nil {
		return nil, err
	}

	if cfg.PersistRead {
		rs = db
	}

	if d.center, err = center.New(rs); err != nil {
		d.log.Printf("[ERROR] Cannot create notification center: %s\n",
			err.Error())
		return nil, err
	}

	d.metrics = newMetrics(d)

	switch perm := p.Permission(); perm {
	case objects.Granted:
		d.log.Println("[INFO] Notification permissions granted")
	default:
		d.log.Printf("[INFO] Notifications are %s, reminders will be scheduled anyway\n",
			perm)
	}

	snap = d.store.Snapshot()
	d.reschedule(snap.Assignments)
	d.refreshCenter(snap.Assignments)
	d.store.Subscribe(d.stateChanged)

	d.web.Addr = cfg.Address
	d.web.ErrorLog = d.log
	d.web.Handler = d.router

	if err = d.initWebHandlers(); err != nil {
		d.log.Printf("[ERROR] Failed to initialize web server: %s\n",
			err.Error())
		return nil, err
	}

	d.loops.Add(3)
	go d.notifyLoop()
	go d.classLoop()
	go d.maintenanceLoop()
	go d.serveHTTP()

	return d, nil
} // func summon(cfg *config.Config, db state.Storage, p Poster, clock func() time.Time) (*Daemon, error)

// IsAlive returns true if the Daemon's active flag is set.
func (d *Daemon) IsAlive() bool {
	d.lock.RLock()
	var alive = d.active
	d.lock.RUnlock()

	return alive
} // func (d *Daemon) IsAlive() bool

// Banish clears the Daemon's active flag, telling components to shut
// down, and closes the storage once they have.
func (d *Daemon) Banish() error {
	var (
		err         error
		ctx, cancel = context.WithTimeout(context.Background(), time.Second*3)
	)
	defer cancel()

	if err = d.web.Shutdown(ctx); err != nil {
		d.log.Printf("[ERROR] Failed to shutdown web server: %s\n",
			err.Error())
	}

	if ctx.Err() != nil {
		err = ctx.Err()
		d.log.Printf("[ERROR] Failed to gracefully shut down web server: %s\n",
			ctx.Err().Error())
		d.web.Close() // nolint: errcheck
	}

	d.lock.Lock()
	if d.active {
		d.active = false
		close(d.quit)
	}
	d.lock.Unlock()

	d.loops.Wait()

	if cerr := d.db.Close(); cerr != nil {
		d.log.Printf("[ERROR] Cannot close storage: %s\n",
			cerr.Error())
		if err == nil {
			err = cerr
		}
	}

	return err
} // func (d *Daemon) Banish() error

// Store returns the Daemon's state store.
func (d *Daemon) Store() *state.Store {
	return d.store
} // func (d *Daemon) Store() *state.Store

func (d *Daemon) now() time.Time {
	return d.clock()
} // func (d *Daemon) now() time.Time

func (d *Daemon) stateChanged(s state.State, a state.Action) {
	if act, ok := a.(state.DeleteSchedule); ok {
		d.noteLock.Lock()
		if err := d.db.NotesSave(act.ID, nil); err != nil {
			d.log.Printf("[ERROR] Cannot remove notes of deleted class %s: %s\n",
				act.ID,
				err.Error())
		}
		d.noteLock.Unlock()
	}

	if a.Touches() == state.AssignmentCollection {
		d.reschedule(s.Assignments)
		d.refreshCenter(s.Assignments)
	}
} // func (d *Daemon) stateChanged(s state.State, a state.Action)

// reschedule replaces the Reminders pending with the sink by the batch
// derived from the given Assignments.
func (d *Daemon) reschedule(list []objects.Assignment) {
	d.schedLock.Lock()
	defer d.schedLock.Unlock()

	var batch = reminder.Batch(list, d.now())

	if err := d.queue.CancelAll(); err != nil {
		d.log.Printf("[ERROR] Cannot cancel pending reminders: %s\n",
			err.Error())
	} else if err = d.queue.Schedule(batch); err != nil {
		d.log.Printf("[ERROR] Cannot schedule %d reminders: %s\n",
			len(batch),
			err.Error())
	} else {
		d.log.Printf("[DEBUG] Scheduled %d reminders\n", len(batch))
	}
} // func (d *Daemon) reschedule(list []objects.Assignment)

func (d *Daemon) refreshCenter(list []objects.Assignment) {
	if err := d.center.Refresh(list, d.now()); err != nil {
		d.log.Printf("[ERROR] Cannot refresh notification center: %s\n",
			err.Error())
	}
} // func (d *Daemon) refreshCenter(list []objects.Assignment)

func (d *Daemon) notifyLoop() {
	defer d.loops.Done()
	defer d.log.Println("[TRACE] Quitting notifyLoop")

	var tick = time.NewTicker(d.cfg.PollInterval)
	defer tick.Stop()

	for d.IsAlive() {
		select {
		case <-d.quit:
			return
		case <-tick.C:
			var cnt, failed = d.queue.Fire(d.now())
			d.metrics.delivered(kindAssignment, cnt, failed)
			if cnt > 0 {
				d.log.Printf("[DEBUG] Posted %d reminders\n", cnt)
			}
		case m := <-d.outbox:
			var title, body = m.Payload()
			d.log.Printf("[DEBUG] Received Notification: %s\n%s\n",
				title,
				body)

			if err := d.poster.Post(m); err != nil {
				d.log.Printf("[ERROR] Failed to post Notification %q: %s\n",
					title,
					err.Error())
				d.metrics.delivered(kindClass, 0, 1)
			} else {
				d.metrics.delivered(kindClass, 1, 0)
			}
		}
	}
} // func (d *Daemon) notifyLoop()

func (d *Daemon) classLoop() {
	defer d.loops.Done()
	defer d.log.Println("[TRACE] classLoop is shutting down")

	var ticker = time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	d.scanClasses(d.now())

	for d.IsAlive() {
		select {
		case <-d.quit:
			return
		case <-ticker.C:
			d.scanClasses(d.now())
		}
	}
} // func (d *Daemon) classLoop()

// scanClasses sends a reminder for every class that starts within the
// configured lead time, at most once per class and day.
func (d *Daemon) scanClasses(now time.Time) int {
	var (
		sent  int
		items = d.store.Snapshot().Schedule
	)

	for idx := range items {
		var (
			err    error
			exists bool
			item   = &items[idx]
			key    string
		)

		if !reminder.ClassDue(item, now, d.cfg.ClassLead) {
			continue
		}

		key = reminder.MarkerKey(item, now)

		if exists, err = d.db.MarkerExists(key); err != nil {
			d.log.Printf("[ERROR] Cannot check marker %s: %s\n",
				key,
				err.Error())
			continue
		} else if exists {
			continue
		}

		var rem = reminder.ForClass(item, now, d.cfg.ClassLead)

		// Only a reminder that made it into the outbox counts as sent,
		// a dropped one is retried on the next scan.
		select {
		case d.outbox <- &rem:
			sent++
		default:
			d.log.Printf("[ERROR] Outbox is full, dropping %s\n", rem.String())
			continue
		}

		if err = d.db.MarkerSet(key); err != nil {
			d.log.Printf("[ERROR] Cannot set marker %s: %s\n",
				key,
				err.Error())
		}
	}

	return sent
} // func (d *Daemon) scanClasses(now time.Time) int

func (d *Daemon) maintenanceLoop() {
	defer d.loops.Done()
	defer d.log.Println("[TRACE] maintenanceLoop is shutting down")

	var ticker = time.NewTicker(maintenanceTick)
	defer ticker.Stop()

	for d.IsAlive() {
		select {
		case <-d.quit:
			return
		case <-ticker.C:
		}

		// Only regenerate the list once an entry moves to another bucket,
		// a Center without a ReadStore would lose its read flags otherwise.
		var list = d.store.Snapshot().Assignments
		if d.center.Stale(list, d.now()) {
			d.refreshCenter(list)
		}

		if cnt, err := d.db.MarkerPrune(markerMaxAge); err != nil {
			d.log.Printf("[ERROR] Cannot prune class markers: %s\n",
				err.Error())
		} else if cnt > 0 {
			d.log.Printf("[DEBUG] Pruned %d class markers\n", cnt)
		}
	}
} // func (d *Daemon) maintenanceLoop()
