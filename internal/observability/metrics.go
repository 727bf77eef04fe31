package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Metrics holds all application metrics
type Metrics struct {
	RunsTotal        metric.Int64Counter
	InputBytes       metric.Int64Counter
	CompressedBytes  metric.Int64Counter
	CompressionRatio metric.Float64Histogram
	StageDuration    metric.Float64Histogram
	ErrorsTotal      metric.Int64Counter
}

// NewMetrics creates and initializes all metrics
func NewMetrics(meterProvider metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := meterProvider.Meter(serviceName)

	runsTotal, err := meter.Int64Counter(
		"freqpack_runs_total",
		metric.WithDescription("Completed pipeline runs by verdict"),
	)
	if err != nil {
		return nil, err
	}

	inputBytes, err := meter.Int64Counter(
		"freqpack_input_bytes",
		metric.WithDescription("Bytes read from input artifacts"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	compressedBytes, err := meter.Int64Counter(
		"freqpack_compressed_bytes",
		metric.WithDescription("Bytes written to compressed artifacts"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	compressionRatio, err := meter.Float64Histogram(
		"freqpack_compression_ratio",
		metric.WithDescription("Compression ratio (compressed/original)"),
	)
	if err != nil {
		return nil, err
	}

	stageDuration, err := meter.Float64Histogram(
		"freqpack_stage_duration",
		metric.WithDescription("Time spent per pipeline stage in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	errorsTotal, err := meter.Int64Counter(
		"freqpack_errors_total",
		metric.WithDescription("Failed runs by stage"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RunsTotal:        runsTotal,
		InputBytes:       inputBytes,
		CompressedBytes:  compressedBytes,
		CompressionRatio: compressionRatio,
		StageDuration:    stageDuration,
		ErrorsTotal:      errorsTotal,
	}, nil
}

// InitMetricsProvider initializes the OpenTelemetry metrics provider
func InitMetricsProvider(ctx context.Context, endpoint, serviceName, serviceVersion string) (metric.MeterProvider, func() error, error) {
	res, err := serviceResource(ctx, serviceName, serviceVersion)
	if err != nil {
		return nil, nil, err
	}

	if endpoint == "" {
		// No exporter configured; measurements are recorded and dropped
		return sdkmetric.NewMeterProvider(sdkmetric.WithResource(res)), func() error { return nil }, nil
	}

	exporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpoint(endpoint),
		otlpmetrichttp.WithInsecure(),
	)
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)

	otel.SetMeterProvider(mp)

	return mp, func() error {
		return mp.Shutdown(ctx)
	}, nil
}
