package portal

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/paragon0107/notive/metal/env"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const ServiceVersion = "1.0.0"

const tracerShutdownTimeout = 5 * time.Second

// TracerProvider holds the SDK provider. Provider is nil while tracing is
// disabled and spans go to the global no-op tracer.
type TracerProvider struct {
	Provider *sdktrace.TracerProvider
	Env      *env.Environment
}

func NewTracerProvider(environment *env.Environment) (*TracerProvider, error) {
	if environment == nil || !environment.Tracing.Enabled {
		slog.Debug("opentelemetry tracing is disabled")

		return &TracerProvider{Env: environment}, nil
	}

	ctx := context.Background()

	opts, err := exporterOptions(environment.Tracing.Endpoint)
	if err != nil {
		return nil, err
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(serviceAttributes(environment)...))
	if err != nil {
		return nil, fmt.Errorf("create trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(samplerFor(environment.Tracing.SampleRatio)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	slog.Info("opentelemetry tracing initialised",
		"endpoint", environment.Tracing.Endpoint,
		"sample_ratio", environment.Tracing.SampleRatio,
	)

	return &TracerProvider{Provider: tp, Env: environment}, nil
}

// Shutdown flushes pending spans.
func (tp *TracerProvider) Shutdown() error {
	if tp == nil || tp.Provider == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), tracerShutdownTimeout)
	defer cancel()

	if err := tp.Provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracer provider: %w", err)
	}

	return nil
}

func serviceAttributes(environment *env.Environment) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", environment.App.Name),
		attribute.String("service.version", ServiceVersion),
		attribute.String("deployment.environment", environment.App.Type),
		attribute.String("notion.root_page", environment.Notion.PageID),
	}
}

// samplerFor follows the parent decision and samples root spans by ratio.
func samplerFor(ratio float64) sdktrace.Sampler {
	if ratio >= 1 {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}

	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// exporterOptions maps an OTLP URL onto exporter options. Plain http turns
// TLS off and a non-root path replaces the default /v1/traces.
func exporterOptions(endpoint string) ([]otlptracehttp.Option, error) {
	parsed, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid otlp endpoint %q", endpoint)
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(parsed.Host)}

	if parsed.Scheme == "http" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	if path := strings.TrimSuffix(parsed.Path, "/"); path != "" {
		opts = append(opts, otlptracehttp.WithURLPath(path))
	}

	return opts, nil
}
