// Package otel wires OpenTelemetry tracing to the compiler's lifecycle events.
package otel

import (
	"context"
	"sync"

	eventbus "github.com/hanpama/querydoc/internal/eventbus"
	events "github.com/hanpama/querydoc/internal/events"
	reqid "github.com/hanpama/querydoc/internal/reqid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := &subscriber{tracer: otel.Tracer("querydoc")}
	sub.register()

	return tp.Shutdown, nil
}

type subscriber struct {
	tracer       trace.Tracer
	compileSpans sync.Map // rid -> trace.Span
	remapSpans   sync.Map // rid -> trace.Span
}

func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.CompileStart) {
		rid, _ := reqid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "querydoc.compile")
		span.SetAttributes(
			attribute.String("querydoc.operation", e.Operation),
			attribute.String("querydoc.root_field", e.RootField),
			attribute.String("querydoc.model", e.Model),
		)
		s.compileSpans.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.CompileFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.compileSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(attribute.Int("querydoc.error_count", e.ErrorCount))
		span.End()
	})

	eventbus.Subscribe(func(ctx context.Context, e events.RemapStart) {
		rid, _ := reqid.FromContext(ctx)
		parent := ctx
		if v, ok := s.compileSpans.Load(rid); ok {
			parent = trace.ContextWithSpan(ctx, v.(trace.Span))
		}
		_, span := s.tracer.Start(parent, "querydoc.remap")
		span.SetAttributes(
			attribute.String("querydoc.operation", e.Operation),
			attribute.String("querydoc.root_field", e.RootField),
		)
		s.remapSpans.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.RemapFinish) {
		rid, _ := reqid.FromContext(ctx)
		v, ok := s.remapSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		v.(trace.Span).End()
	})
}
