package observability_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/freqpack/freqpack/internal/observability"
)

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "unknown"} {
		logger, err := observability.NewLogger(level)
		if err != nil {
			t.Fatalf("Failed to create logger for level %s: %v", level, err)
		}
		if logger.WithRunID("run-1").WithStage("compress") == nil {
			t.Errorf("Expected derived logger for level %s", level)
		}
	}
}

func TestInitProviders_NoEndpoint(t *testing.T) {
	ctx := context.Background()

	mp, shutdownMetrics, err := observability.InitMetricsProvider(ctx, "", "freqpack-test", "0.0.1")
	if err != nil {
		t.Fatalf("Failed to init metrics provider: %v", err)
	}
	if err := shutdownMetrics(); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
	if mp == nil {
		t.Error("Expected metrics provider")
	}

	tp, shutdownTracing, err := observability.InitTracing(ctx, "", "freqpack-test", "0.0.1")
	if err != nil {
		t.Fatalf("Failed to init tracing: %v", err)
	}
	if err := shutdownTracing(); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
	if tp == nil {
		t.Error("Expected tracer provider")
	}
}

func TestInitTracing_ResourceCarriesVersion(t *testing.T) {
	ctx := context.Background()

	tp, shutdown, err := observability.InitTracing(ctx, "", "freqpack-test", "1.2.3")
	if err != nil {
		t.Fatalf("Failed to init tracing: %v", err)
	}
	defer shutdown()

	recorder := tracetest.NewSpanRecorder()
	tp.RegisterSpanProcessor(recorder)

	_, span := tp.Tracer("test").Start(ctx, "run")
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("Expected 1 ended span, got %d", len(spans))
	}

	attrs := spans[0].Resource().Set()
	if name, ok := attrs.Value(semconv.ServiceNameKey); !ok || name.AsString() != "freqpack-test" {
		t.Errorf("Expected service.name freqpack-test, got %v", name)
	}
	if version, ok := attrs.Value(semconv.ServiceVersionKey); !ok || version.AsString() != "1.2.3" {
		t.Errorf("Expected service.version 1.2.3, got %v", version)
	}
}

func TestNewMetrics_Records(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := observability.NewMetrics(provider, "freqpack-test")
	if err != nil {
		t.Fatalf("Failed to create metrics: %v", err)
	}

	metrics.RunsTotal.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", true)))
	metrics.InputBytes.Add(ctx, 4)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Failed to collect metrics: %v", err)
	}

	found := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			found[m.Name] = true
		}
	}
	for _, name := range []string{"freqpack_runs_total", "freqpack_input_bytes"} {
		if !found[name] {
			t.Errorf("Expected metric %s to be collected", name)
		}
	}
}
