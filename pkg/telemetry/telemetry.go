package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/hypechain/hypechain/pkg/config"
	"github.com/hypechain/hypechain/pkg/logging"
)

const serviceVersion = "0.1.0"

// shutdownTimeout bounds how long each provider may spend flushing on
// exit.
const shutdownTimeout = 3 * time.Second

var tracer trace.Tracer

// shutdownFunc flushes and stops one provider
type shutdownFunc func(context.Context) error

// Init wires up tracing (Jaeger) and metrics (Prometheus) for the
// process. The returned function shuts both down; it is safe to call
// even when telemetry is disabled.
func Init(cfg *config.TelemetryConfig) (func(), error) {
	logger := logging.WithComponent("telemetry")

	if !cfg.Enabled {
		logger.Info("Telemetry disabled")
		return func() {}, nil
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create telemetry resource: %w", err)
	}

	var shutdowns []shutdownFunc

	if cfg.JaegerURL != "" {
		stop, err := initTracing(cfg, res)
		if err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, stop)
		logger.Info("Tracing enabled", zap.String("jaeger_url", cfg.JaegerURL))
	}

	if cfg.PrometheusEnabled {
		stop, err := initMetrics(res)
		if err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, stop)
		logger.Info("Metrics enabled", zap.Int("prometheus_port", cfg.PrometheusPort))
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	tracer = otel.Tracer(cfg.ServiceName)

	return func() {
		for _, stop := range shutdowns {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			if err := stop(ctx); err != nil {
				logger.Error("Telemetry shutdown failed", zap.Error(err))
			}
			cancel()
		}
	}, nil
}

// initTracing installs the global tracer provider backed by a Jaeger
// collector
func initTracing(cfg *config.TelemetryConfig, res *resource.Resource) (shutdownFunc, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerURL)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Jaeger exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// initMetrics installs the global meter provider backed by the
// Prometheus registry
func initMetrics(res *resource.Resource) (shutdownFunc, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// Tracer returns the process tracer, or a no-op tracer before Init
func Tracer() trace.Tracer {
	if tracer == nil {
		return trace.NewNoopTracerProvider().Tracer("hypechain")
	}
	return tracer
}

// StartSpan starts a span on the process tracer
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, opts...)
}
