// Package obs exposes Prometheus metrics for the HTTP server and the domain
// operations worth counting.
package obs

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatched = "unmatched"

// Metrics owns a registry and every collector registered in it.
type Metrics struct {
	reg *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	enrollments *prometheus.CounterVec
	donations   *prometheus.CounterVec
	uploads     *prometheus.CounterVec
	buildInfo   *prometheus.GaugeVec
}

// New creates Metrics with a fresh registry that also carries the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		enrollments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescue_event_enrollments_total",
			Help: "Event enrollment attempts by outcome.",
		}, []string{"result"}),
		donations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescue_donations_created_total",
			Help: "Donations created by type.",
		}, []string{"type"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescue_uploaded_files_total",
			Help: "Files accepted by the blob store, by target entity.",
		}, []string{"entity"}),
		buildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "build_info",
			Help: "Animal rescue API build information.",
		}, []string{"version", "commit"}),
	}
	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight, m.httpRequestsTotal, m.httpRequestDuration,
		m.enrollments, m.donations, m.uploads, m.buildInfo,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// SetBuildInfo sets build_info{version, commit} to 1.
func (m *Metrics) SetBuildInfo(version, commit string) {
	m.buildInfo.WithLabelValues(version, commit).Set(1)
}

// Enrollment counts an enrollment attempt with result ok, full, duplicate
// or error.
func (m *Metrics) Enrollment(result string) {
	m.enrollments.WithLabelValues(result).Inc()
}

// DonationCreated counts a created donation of donationType.
func (m *Metrics) DonationCreated(donationType string) {
	m.donations.WithLabelValues(donationType).Inc()
}

// FilesUploaded adds n accepted files for entity.
func (m *Metrics) FilesUploaded(entity string, n int) {
	m.uploads.WithLabelValues(entity).Add(float64(n))
}

type routeKey struct{}

// Instrument records in-flight requests, totals and latency per route
// pattern. Route patterns are captured by Route, installed right above the
// mux; requests that match no pattern are labelled "unmatched".
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := new(string)
		r = r.WithContext(context.WithValue(r.Context(), routeKey{}, route))

		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		label := *route
		if label == "" {
			label = unmatched
		}
		m.httpRequestDuration.WithLabelValues(r.Method, label).Observe(time.Since(start).Seconds())
		m.httpRequestsTotal.WithLabelValues(r.Method, label, strconv.Itoa(sw.code)).Inc()
	})
}

// Route copies the pattern chosen by the mux into the slot created by
// Instrument.
func Route(mux http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, r)
		if slot, ok := r.Context().Value(routeKey{}).(*string); ok {
			*slot = r.Pattern
		}
	})
}

type statusWriter struct {
	http.ResponseWriter
	code        int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.code = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
