// Package telemetry exports the client's game traces over OTLP.
package telemetry

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const flushTimeout = 5 * time.Second

// Options selects where traces go. Tracing is off when Endpoint is empty.
type Options struct {
	Service  string // Reported as service.name
	Endpoint string // OTLP/HTTP collector URL, e.g. http://localhost:4318
}

// Enabled reports whether traces are exported
func (o Options) Enabled() bool {
	return strings.TrimSpace(o.Endpoint) != ""
}

// Start installs a tracer provider exporting to o.Endpoint and returns the
// function that flushes it. With tracing off the global no-op provider is
// left in place.
func Start(ctx context.Context, o Options) (flush func(context.Context) error, err error) {
	if !o.Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(o.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(o.Service)),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("describe resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}

// Run starts tracing, calls run and flushes whatever spans it produced
func Run(ctx context.Context, o Options, run func(context.Context) error) error {
	if strings.TrimSpace(o.Service) == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	flush, err := Start(ctx, o)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := flush(flushCtx); err != nil {
			log.Printf("flush traces to %s: %v", o.Endpoint, err)
		}
	}()
	return run(ctx)
}
