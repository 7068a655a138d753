// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package metrics has the counters and gauges of configuration dumps for a
// node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	Registry = prometheus.NewRegistry()

	RegisterReadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rrcp_register_reads_total",
			Help: "Number of switch register reads",
		},
	)

	RegisterReadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rrcp_register_read_errors_total",
			Help: "Number of failed switch register reads",
		},
	)

	ConfigDroppedDirectives = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rrcp_config_dropped_directives",
			Help: "Directives of the last dump that exceeded its limit",
		},
	)

	ConfigBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rrcp_config_bytes",
			Help: "Size of the last rendered configuration",
		},
	)

	DumpDurationSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rrcp_dump_duration_seconds",
			Help: "Time to read and render the last dump",
		},
	)
)

func init() {
	Registry.MustRegister(RegisterReadsTotal)
	Registry.MustRegister(RegisterReadErrorsTotal)
	Registry.MustRegister(ConfigDroppedDirectives)
	Registry.MustRegister(ConfigBytes)
	Registry.MustRegister(DumpDurationSeconds)
}

// Dump records the outcome of a rendered configuration.
func Dump(bytes, dropped int, d time.Duration) {
	ConfigBytes.Set(float64(bytes))
	ConfigDroppedDirectives.Set(float64(dropped))
	DumpDurationSeconds.Set(d.Seconds())
}

// WriteTextfile atomically replaces the named file with the text
// exposition of Registry.
func WriteTextfile(fn string) error {
	return prometheus.WriteToTextfile(fn, Registry)
}
