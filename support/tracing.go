package support

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-webapp-go/we"
)

// TracerProvider installs the global tracer provider selected by cfg. The returned
// cleanup flushes pending spans.
func TracerProvider(ctx context.Context, cfg Config) (func(), error) {
	var exporter sdktrace.SpanExporter
	var err error

	switch cfg.TraceExporter {
	case "none", "":
		return func() {}, nil
	case "console":
		exporter, err = we.ConsoleExporter()
	case "otlp":
		exporter, err = we.OTLPExporter(ctx, cfg.OTLPEndpoint, cfg.OTLPSecure)
	case "jaeger":
		exporter, err = we.JaegerExporter(cfg.JaegerEndpoint)
	default:
		err = errors.Errorf("unknown trace exporter %q", cfg.TraceExporter)
	}

	if err != nil {
		return nil, we.Startup("tracing", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", we.TracerName))),
	)
	otel.SetTracerProvider(provider)

	return func() {
		_ = provider.Shutdown(context.Background())
	}, nil
}
