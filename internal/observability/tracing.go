package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// InitTracing builds a tracer provider whose spans carry the service name and
// version. Without an endpoint spans are recorded locally and never exported;
// with one they are batched to the OTLP HTTP collector and the provider
// becomes the global one.
func InitTracing(ctx context.Context, endpoint, serviceName, serviceVersion string) (*trace.TracerProvider, func() error, error) {
	res, err := serviceResource(ctx, serviceName, serviceVersion)
	if err != nil {
		return nil, nil, err
	}

	if endpoint == "" {
		tp := trace.NewTracerProvider(trace.WithResource(res))
		return tp, func() error { return tp.Shutdown(ctx) }, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, func() error {
		return tp.Shutdown(ctx)
	}, nil
}

func serviceResource(ctx context.Context, serviceName, serviceVersion string) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
}
