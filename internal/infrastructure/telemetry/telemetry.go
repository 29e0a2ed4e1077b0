// Package telemetry wires OpenTelemetry tracing, metrics and logs plus
// Pyroscope continuous profiling for the tenantbill service.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/tenantbill/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
)

// ServiceVersion is reported as service.version on every signal.
var ServiceVersion = "1.0.0"

// Telemetry bundles the providers built from a single TelemetryConfig.
// Every field is non-nil; disabled providers are no-ops.
type Telemetry struct {
	Tracer   *TracerProvider
	Meter    *MeterProvider
	Logs     *LoggerProvider
	Profiler *Profiler

	logger *zap.Logger
}

// Setup builds all providers. The profiler is started before span profiles
// are attached to the tracer provider.
func Setup(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (*Telemetry, error) {
	t := &Telemetry{logger: logger}

	var err error
	if t.Tracer, err = NewTracerProvider(ctx, cfg, logger); err != nil {
		return nil, err
	}
	if t.Meter, err = NewMeterProvider(ctx, cfg, logger); err != nil {
		_ = t.Tracer.Shutdown(ctx)
		return nil, err
	}
	if t.Logs, err = NewLoggerProvider(ctx, cfg, logger); err != nil {
		_ = t.Meter.Shutdown(ctx)
		_ = t.Tracer.Shutdown(ctx)
		return nil, err
	}
	if t.Profiler, err = NewProfiler(cfg, logger); err != nil {
		_ = t.Logs.Shutdown(ctx)
		_ = t.Meter.Shutdown(ctx)
		_ = t.Tracer.Shutdown(ctx)
		return nil, err
	}

	if cfg.ProfilingSpanProfiles && t.Profiler.IsEnabled() {
		if err := t.Tracer.EnableSpanProfiles(); err != nil {
			logger.Warn("Failed to enable span profiles", zap.Error(err))
		}
	}

	return t, nil
}

// Shutdown flushes and stops every provider, in reverse order of creation.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if err := t.Profiler.Stop(); err != nil {
		errs = append(errs, err)
	}
	if err := t.Logs.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := t.Meter.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := t.Tracer.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}
