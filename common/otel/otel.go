package otel

import (
	"context"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
)

const ServiceName = "hotel-booking"

var Tracer = otel.Tracer(ServiceName)

// InitTracerProvider installs a global OTLP/gRPC tracer provider when
// otel.endpoint is set. The returned func flushes and stops it.
func InitTracerProvider(ctx context.Context, cfg *viper.Viper) (func(context.Context) error, error) {
	endpoint := cfg.GetString("otel.endpoint")
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithDialOption(grpc.WithUserAgent(ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", ServiceName))),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// ForceFlush exports the spans buffered by the global tracer provider. It is
// a no-op when no SDK provider is installed.
func ForceFlush(ctx context.Context) error {
	tp, ok := otel.GetTracerProvider().(interface {
		ForceFlush(ctx context.Context) error
	})
	if !ok {
		return nil
	}

	return tp.ForceFlush(ctx)
}
