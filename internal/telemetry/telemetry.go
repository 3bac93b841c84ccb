// Package telemetry provides OpenTelemetry instrumentation for the
// content-qa service. It exports Prometheus metrics and provides
// tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "content-qa"

// Metrics holds all content-qa Prometheus metrics
type Metrics struct {
	// Filtering metrics
	TranscriptsFiltered *prometheus.CounterVec
	FlagsDetected       prometheus.Counter
	FilterDuration      prometheus.Histogram

	// Assessment metrics
	ArticlesAssessed   *prometheus.CounterVec
	OverallScore       prometheus.Histogram
	AssessmentDuration prometheus.Histogram

	// Request metrics
	RequestsFailed *prometheus.CounterVec
	BatchSize      prometheus.Histogram

	// Worker pool metrics
	QueueDepth    prometheus.Gauge
	ActiveWorkers prometheus.Gauge
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	metrics := initMetrics()
	tracer := otel.Tracer(serviceName)

	return &Provider{
		Tracer:  tracer,
		Metrics: metrics,
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initFilterMetrics(m)
	initAssessmentMetrics(m)
	initRequestMetrics(m)
	initWorkerMetrics(m)
	return m
}

func initFilterMetrics(m *Metrics) {
	m.TranscriptsFiltered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contentqa_transcripts_filtered_total",
		Help: "Total transcripts filtered by compliance verdict (compliant, warning, flagged, blocked)",
	}, []string{"compliance"})

	m.FlagsDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contentqa_flags_detected_total",
		Help: "Total policy flags emitted across all filtering passes",
	})

	m.FilterDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "contentqa_filter_duration_seconds",
		Help:    "Time to filter a single transcript",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	})
}

func initAssessmentMetrics(m *Metrics) {
	m.ArticlesAssessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contentqa_articles_assessed_total",
		Help: "Total articles assessed by quality rating (excellent, good, fair, poor)",
	}, []string{"rating"})

	m.OverallScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "contentqa_overall_score",
		Help:    "Distribution of overall quality scores",
		Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 85, 90, 95, 100},
	})

	m.AssessmentDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "contentqa_assessment_duration_seconds",
		Help:    "Time to assess a single article",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	})
}

func initRequestMetrics(m *Metrics) {
	m.RequestsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contentqa_requests_failed_total",
		Help: "Total requests that failed validation or processing",
	}, []string{"operation", "error_code"})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "contentqa_batch_size",
		Help:    "Number of transcripts per batch filter request",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})
}

func initWorkerMetrics(m *Metrics) {
	m.QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "contentqa_queue_depth",
		Help: "Current pending items in the batch work queue",
	})

	m.ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "contentqa_active_workers",
		Help: "Currently active worker goroutines",
	})
}

// RecordFilter records metrics for a single transcript filtering pass
func (p *Provider) RecordFilter(ctx context.Context, compliance string, flagCount int, duration time.Duration) {
	p.Metrics.TranscriptsFiltered.WithLabelValues(compliance).Inc()
	p.Metrics.FlagsDetected.Add(float64(flagCount))
	p.Metrics.FilterDuration.Observe(duration.Seconds())
}

// RecordAssessment records metrics for a single article assessment
func (p *Provider) RecordAssessment(ctx context.Context, rating string, overallScore float64, duration time.Duration) {
	p.Metrics.ArticlesAssessed.WithLabelValues(rating).Inc()
	p.Metrics.OverallScore.Observe(overallScore)
	p.Metrics.AssessmentDuration.Observe(duration.Seconds())
}

// RecordFailure records a failed request with its error code
func (p *Provider) RecordFailure(ctx context.Context, operation, errorCode string) {
	p.Metrics.RequestsFailed.WithLabelValues(operation, errorCode).Inc()
}

// RecordBatchSize records the size of a batch filter request
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// SetQueueDepth sets the current queue depth
func (p *Provider) SetQueueDepth(depth int) {
	p.Metrics.QueueDepth.Set(float64(depth))
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
