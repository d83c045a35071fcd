// Package telemetry: OpenTelemetry для обоих процессов: сервер (otelgin)
// и исходящий клиент сервиса строк заказов (otelhttp).
package telemetry

import (
	"context"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const defaultEndpoint = "localhost:4318"

// Options — параметры трассировки (заполняются из config.Tracing).
type Options struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	SampleRatio float64
}

// Shutdown останавливает провайдер и сбрасывает буфер спанов.
type Shutdown func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup поднимает OTLP/HTTP экспорт. При Enabled=false ничего не делает,
// глобальный провайдер остаётся no-op.
func Setup(ctx context.Context, opts Options) (Shutdown, error) {
	if !opts.Enabled {
		return noopShutdown, nil
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(SampleRatio(opts.SampleRatio)))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(opts.ServiceName),
			attribute.String("telemetry.sdk", "opentelemetry"),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{},
		),
	)

	return tp.Shutdown, nil
}

// SampleRatio — доля семплирования, зажатая в [0..1].
func SampleRatio(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}

// Transport оборачивает base в otelhttp: исходящие запросы получают спан
// и заголовок traceparent. nil: http.DefaultTransport.
func Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return otelhttp.NewTransport(base)
}
