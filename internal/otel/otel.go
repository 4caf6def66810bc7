package otel

import (
	"context"
	"sync"

	"github.com/stevefan1999/graphql-tools/internal/eventbus"
	"github.com/stevefan1999/graphql-tools/internal/events"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
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

	sub := &subscriber{tracer: otel.Tracer("graphql-tools")}
	sub.register()

	return tp.Shutdown, nil
}

type subscriber struct {
	tracer    trace.Tracer
	walkSpans sync.Map // walk id -> trace.Span
}

func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.VisitStart) {
		_, span := s.tracer.Start(ctx, "schema.visit")
		span.SetAttributes(
			attribute.Int("graphql.schema.types", e.Types),
			attribute.Int("graphql.directives.registered", e.Directives),
		)
		s.walkSpans.Store(e.WalkID, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.DirectiveVisit) {
		v, ok := s.walkSpans.Load(e.WalkID)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.AddEvent("directive.apply", trace.WithAttributes(
			attribute.String("graphql.directive", e.Directive),
			attribute.String("graphql.location", e.Location),
			attribute.String("graphql.node", e.Node),
		))
	})

	eventbus.Subscribe(func(ctx context.Context, e events.VisitFinish) {
		v, ok := s.walkSpans.LoadAndDelete(e.WalkID)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(attribute.Int("graphql.directives.applied", e.Applications))
		if e.Err != nil {
			span.RecordError(e.Err)
		}
		span.End()
	})
}
