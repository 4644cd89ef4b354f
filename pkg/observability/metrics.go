package observability

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics groups the counters updated while files are scanned.
type Metrics struct {
	registry *prometheus.Registry

	Files    prometheus.Counter
	Lines    prometheus.Counter
	Units    *prometheus.CounterVec
	Problems prometheus.Counter
}

// NewMetrics creates the counters on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Files: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tbx_files_processed_total",
			Help: "Number of input files scanned to completion",
		}),
		Lines: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tbx_lines_scanned_total",
			Help: "Number of lines read from input files",
		}),
		Units: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tbx_units_observed_total",
				Help: "Number of units counted, by tokenization mode",
			},
			[]string{"mode"},
		),
		Problems: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tbx_decode_problems_total",
			Help: "Number of lines that failed to decode",
		}),
	}
	m.registry.MustRegister(m.Files, m.Lines, m.Units, m.Problems)
	return m
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText writes every metric family in the text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
