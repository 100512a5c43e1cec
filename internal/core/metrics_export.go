package core

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/EmundoT/solbench/internal/types"
)

// MetricsRecorder mirrors a metrics run into Prometheus collectors so the
// result can be dropped into a node-exporter textfile directory.
type MetricsRecorder struct {
	registry   *prometheus.Registry
	Targets    prometheus.Counter
	Flagged    prometheus.Counter
	NoIssue    prometheus.Counter
	Failed     prometheus.Counter
	Detections prometheus.Counter
	Duration   prometheus.Histogram
	RunInfo    *prometheus.GaugeVec
}

// NewMetricsRecorder creates a recorder on its own registry. runID and
// analyzer are exported as labels of solbench_run_info.
func NewMetricsRecorder(runID, analyzer string) *MetricsRecorder {
	m := &MetricsRecorder{
		registry: prometheus.NewRegistry(),
		Targets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solbench_targets_total",
			Help: "Total number of contract files analyzed",
		}),
		Flagged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solbench_flagged_total",
			Help: "Contract files the analyzer reported issues in",
		}),
		NoIssue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solbench_no_issue_total",
			Help: "Contract files the analyzer reported clean",
		}),
		Failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solbench_failed_total",
			Help: "Contract files whose output matched neither phrase",
		}),
		Detections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "solbench_detections_total",
			Help: "Sum of issue counts reported by the analyzer",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "solbench_analysis_duration_seconds",
			Help:    "Wall-clock time of one analyzer invocation",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		RunInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "solbench_run_info",
			Help: "Identifies the run that produced these metrics",
		}, []string{"run_id", "analyzer"}),
	}

	m.registry.MustRegister(m.Targets, m.Flagged, m.NoIssue, m.Failed, m.Detections, m.Duration, m.RunInfo)
	m.RunInfo.WithLabelValues(runID, analyzer).Set(1)
	return m
}

// Observe records one result.
func (m *MetricsRecorder) Observe(r types.AnalysisResult) {
	m.Targets.Inc()
	m.Duration.Observe(r.Duration.Seconds())

	cl := r.Classification
	if cl.NoIssue {
		m.NoIssue.Inc()
	}
	if cl.Flagged {
		m.Flagged.Inc()
		m.Detections.Add(float64(cl.Detections))
	}
	if !cl.NoIssue && !cl.Flagged {
		m.Failed.Inc()
	}
}

// Gatherer exposes the registry.
func (m *MetricsRecorder) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the metrics in text exposition format to path.
func (m *MetricsRecorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
