// /home/krylon/go/src/github.com/blicero/jadwal/backend/metrics.go
// -*- mode: go; coding: utf-8; -*-
// Created on 15. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 23:41:02 krylon>

package backend

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Kinds of desktop notifications, used as metric labels.
const (
	kindAssignment = "assignment"
	kindClass      = "class"
)

// metrics holds the Daemon's Prometheus collectors. Each Daemon has its
// own registry, so several can coexist in one process.
type metrics struct {
	registry *prometheus.Registry
	handler  http.Handler
	requests *prometheus.CounterVec
	posted   *prometheus.CounterVec
	failed   *prometheus.CounterVec
}

func newMetrics(d *Daemon) *metrics {
	var m = &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jadwal",
			Name:      "http_requests_total",
			Help:      "Number of API requests handled",
		}, []string{"method", "route", "status"}),
		posted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jadwal",
			Name:      "notifications_posted_total",
			Help:      "Number of desktop notifications posted",
		}, []string{"kind"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jadwal",
			Name:      "notifications_failed_total",
			Help:      "Number of desktop notifications that could not be posted",
		}, []string{"kind"}),
	}

	var pending = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "jadwal",
		Name:      "reminders_pending",
		Help:      "Number of assignment reminders waiting to fire",
	}, func() float64 {
		return float64(len(d.queue.Pending()))
	})

	var unread = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "jadwal",
		Name:      "notifications_unread",
		Help:      "Number of unread entries in the notification center",
	}, func() float64 {
		return float64(d.center.UnreadCount())
	})

	m.registry.MustRegister(m.requests, m.posted, m.failed, pending, unread)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})

	return m
} // func newMetrics(d *Daemon) *metrics

func (m *metrics) delivered(kind string, sent, failed int) {
	if sent > 0 {
		m.posted.WithLabelValues(kind).Add(float64(sent))
	}
	if failed > 0 {
		m.failed.WithLabelValues(kind).Add(float64(failed))
	}
} // func (m *metrics) delivered(kind string, sent, failed int)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
} // func (s *statusRecorder) WriteHeader(code int)

// middleware counts requests by route template, so IDs in the path do
// not blow up the number of series.
func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			rec   = &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			route = r.URL.Path
		)

		if cur := mux.CurrentRoute(r); cur != nil {
			if tmpl, err := cur.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		next.ServeHTTP(rec, r)

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
	})
} // func (m *metrics) middleware(next http.Handler) http.Handler
