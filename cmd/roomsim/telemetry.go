package main

import (
	"context"
	"time"

	"github.com/formicidae-tracker/roomsim/internal/roomsim"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type shutdownFunc func(context.Context) error

// setUpTelemetry exports the per-tick spans to an OTLP collector. The
// returned function flushes pending spans.
func setUpTelemetry(ctx context.Context, collector string) (shutdownFunc, error) {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(collector),
		otlptracegrpc.WithInsecure())
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "roomsim"),
			attribute.String("service.version", roomsim.ROOMSIM_VERSION),
		)),
	)
	otel.SetTracerProvider(provider)

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := provider.ForceFlush(ctx); err != nil {
			return err
		}
		return provider.Shutdown(ctx)
	}, nil
}
