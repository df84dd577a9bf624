// Package observe provides application-wide observability primitives for
// Majordome: OpenTelemetry metrics and tracing with a Prometheus exporter
// bridge.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all Majordome metrics.
const meterName = "github.com/MrWong99/majordome"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use; the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// ResolveDuration tracks end-to-end resolution latency (correction,
	// matching, arbitration).
	ResolveDuration metric.Float64Histogram

	// Decisions counts arbitration outcomes. Use with attribute:
	//   attribute.String("kind", "command"|"skill"|"none")
	Decisions metric.Int64Counter

	// Corrections counts applied text corrections. Use with attribute:
	//   attribute.String("method", "dictionary"|"learned"|"phonetic")
	Corrections metric.Int64Counter

	// ScenarioResults counts harness classifications. Use with attribute:
	//   attribute.String("result", "pass"|"partial"|"fail")
	ScenarioResults metric.Int64Counter
}

// latencyBuckets defines histogram bucket boundaries (in seconds) sized for
// an in-process matcher that must stay far below voice round-trip latency.
var latencyBuckets = []float64{
	0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.ResolveDuration, err = m.Float64Histogram("majordome.resolve.duration",
		metric.WithDescription("Latency of voice command resolution."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Decisions, err = m.Int64Counter("majordome.decisions",
		metric.WithDescription("Total arbitration decisions by kind."),
	); err != nil {
		return nil, err
	}
	if met.Corrections, err = m.Int64Counter("majordome.corrections",
		metric.WithDescription("Total text corrections applied by method."),
	); err != nil {
		return nil, err
	}
	if met.ScenarioResults, err = m.Int64Counter("majordome.scenario.results",
		metric.WithDescription("Total scenario validations by result."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordDecision records one arbitration outcome.
func (m *Metrics) RecordDecision(ctx context.Context, kind string, seconds float64) {
	attrs := metric.WithAttributes(attribute.String("kind", kind))
	m.Decisions.Add(ctx, 1, attrs)
	m.ResolveDuration.Record(ctx, seconds, attrs)
}

// RecordCorrection records one applied text correction.
func (m *Metrics) RecordCorrection(ctx context.Context, method string) {
	m.Corrections.Add(ctx, 1, metric.WithAttributes(attribute.String("method", method)))
}

// RecordScenarioResult records one harness classification.
func (m *Metrics) RecordScenarioResult(ctx context.Context, result string) {
	m.ScenarioResults.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
