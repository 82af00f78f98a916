// Package metrics keeps counters about the queries run against the
// router and writes them in the Prometheus textfile format.
package metrics

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/qdm12/routeros-dump/internal/dhcp"
	"github.com/qdm12/routeros-dump/internal/routeros"
)

// Metrics implements prometheus.Collector from the values recorded.
type Metrics struct {
	timeNow func() time.Time

	mutex   sync.Mutex
	replies map[string]int
	traps   map[string]int
	errors  map[string]int
	leases  map[string]int
	lastRun time.Time

	repliesTotal     *prometheus.Desc
	trapsTotal       *prometheus.Desc
	errorsTotal      *prometheus.Desc
	dhcpLeases       *prometheus.Desc
	lastRunTimestamp *prometheus.Desc
}

func New(timeNow func() time.Time) *Metrics {
	return &Metrics{
		timeNow: timeNow,
		replies: make(map[string]int),
		traps:   make(map[string]int),
		errors:  make(map[string]int),
		leases:  make(map[string]int),

		repliesTotal: prometheus.NewDesc(
			"routeros_dump_replies_total",
			"Total data replies received from the router.",
			[]string{"path"}, nil,
		),
		trapsTotal: prometheus.NewDesc(
			"routeros_dump_traps_total",
			"Total queries refused by the router with a trap.",
			[]string{"path"}, nil,
		),
		errorsTotal: prometheus.NewDesc(
			"routeros_dump_query_errors_total",
			"Total queries which failed without a trap.",
			[]string{"path"}, nil,
		),
		dhcpLeases: prometheus.NewDesc(
			"routeros_dump_dhcp_leases",
			"DHCP server leases by status, as of the last lease query.",
			[]string{"status"}, nil,
		),
		lastRunTimestamp: prometheus.NewDesc(
			"routeros_dump_last_run_timestamp_seconds",
			"Unix time of the last query.",
			nil, nil,
		),
	}
}

func (m *Metrics) RecordQuery(path string, replies int, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.lastRun = m.timeNow()
	m.replies[path] += replies

	var trapErr *routeros.TrapError
	switch {
	case err == nil:
	case errors.As(err, &trapErr):
		m.traps[path]++
	default:
		m.errors[path]++
	}
}

// RecordLeases replaces the lease counts with the ones of the leases given.
func (m *Metrics) RecordLeases(leases []dhcp.Lease) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.leases = make(map[string]int)
	for _, lease := range leases {
		status := lease.Status
		if status == "" {
			status = "unknown"
		}
		m.leases[status]++
	}
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- m.repliesTotal
	ch <- m.trapsTotal
	ch <- m.errorsTotal
	ch <- m.dhcpLeases
	ch <- m.lastRunTimestamp
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for path, count := range m.replies {
		ch <- prometheus.MustNewConstMetric(m.repliesTotal, prometheus.CounterValue,
			float64(count), path)
	}
	for path, count := range m.traps {
		ch <- prometheus.MustNewConstMetric(m.trapsTotal, prometheus.CounterValue,
			float64(count), path)
	}
	for path, count := range m.errors {
		ch <- prometheus.MustNewConstMetric(m.errorsTotal, prometheus.CounterValue,
			float64(count), path)
	}
	for status, count := range m.leases {
		ch <- prometheus.MustNewConstMetric(m.dhcpLeases, prometheus.GaugeValue,
			float64(count), status)
	}
	if !m.lastRun.IsZero() {
		ch <- prometheus.MustNewConstMetric(m.lastRunTimestamp, prometheus.GaugeValue,
			float64(m.lastRun.Unix()))
	}
}

// WriteTextfile writes the metrics to the file at path, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) (err error) {
	registry := prometheus.NewRegistry()
	err = registry.Register(m)
	if err != nil {
		return fmt.Errorf("registering collector: %w", err)
	}

	err = prometheus.WriteToTextfile(path, registry)
	if err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
