package observe

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestMetrics returns a Metrics instance backed by a ManualReader for
// programmatic metric inspection.
func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m, reader
}

// collect gathers all metric data from the reader.
func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return rm
}

// findMetric searches for a metric by name across all scope metrics.
func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestNewMetrics_CreatesWithoutError(t *testing.T) {
	m, _ := newTestMetrics(t)
	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
}

func TestRecordDecision(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordDecision(ctx, "command", 0.0004)
	m.RecordDecision(ctx, "command", 0.0007)
	m.RecordDecision(ctx, "none", 0.0002)

	rm := collect(t, reader)

	counter := findMetric(rm, "majordome.decisions")
	if counter == nil {
		t.Fatal("majordome.decisions not found")
	}
	sum, ok := counter.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("majordome.decisions data type = %T, want Sum[int64]", counter.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	if total != 3 {
		t.Errorf("decisions total = %d, want 3", total)
	}

	hist := findMetric(rm, "majordome.resolve.duration")
	if hist == nil {
		t.Fatal("majordome.resolve.duration not found")
	}
	hd, ok := hist.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("majordome.resolve.duration data type = %T, want Histogram[float64]", hist.Data)
	}
	var count uint64
	for _, dp := range hd.DataPoints {
		count += dp.Count
	}
	if count != 3 {
		t.Errorf("resolve.duration observations = %d, want 3", count)
	}
}

func TestRecordCorrectionAndScenarioResult(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordCorrection(ctx, "dictionary")
	m.RecordCorrection(ctx, "phonetic")
	m.RecordScenarioResult(ctx, "pass")

	rm := collect(t, reader)

	for _, name := range []string{"majordome.corrections", "majordome.scenario.results"} {
		if findMetric(rm, name) == nil {
			t.Errorf("%s not found after recording", name)
		}
	}
}

func TestDefaultMetricsReturnsSameInstance(t *testing.T) {
	if DefaultMetrics() != DefaultMetrics() {
		t.Error("DefaultMetrics() returned different instances")
	}
}
