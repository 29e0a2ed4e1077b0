package telemetry

import (
	"context"
	"fmt"

	"github.com/tenantbill/backend/internal/infrastructure/config"
	"github.com/tenantbill/backend/internal/infrastructure/logger"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerProvider owns the SDK log provider that receives zap records.
type LoggerProvider struct {
	provider    *sdklog.LoggerProvider
	logger      *zap.Logger
	serviceName string
	level       zapcore.Level
}

// NewLoggerProvider creates the OTLP log pipeline. Logs are only exported
// when both telemetry and logs are enabled.
func NewLoggerProvider(ctx context.Context, cfg config.TelemetryConfig, log *zap.Logger) (*LoggerProvider, error) {
	lp := &LoggerProvider{
		logger:      log,
		serviceName: cfg.ServiceName,
		level:       logger.ParseLevel(cfg.LogsLevel),
	}

	if !cfg.Enabled || !cfg.LogsEnabled {
		log.Info("OTLP log export disabled")
		return lp, nil
	}

	exporterOpts := []otlploggrpc.Option{
		otlploggrpc.WithEndpoint(cfg.CollectorEndpoint),
	}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	lp.provider = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(lp.provider)

	log.Info("Logger provider initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.String("level", lp.level.String()),
	)

	return lp, nil
}

// Shutdown flushes pending records. Safe on a disabled provider.
func (lp *LoggerProvider) Shutdown(ctx context.Context) error {
	if lp.provider == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := lp.provider.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown logger provider: %w", err)
	}
	return nil
}

// IsEnabled reports whether records are exported.
func (lp *LoggerProvider) IsEnabled() bool {
	return lp.provider != nil
}

// ZapCore returns a core that forwards zap entries at or above the configured
// level to OpenTelemetry. It is a no-op core when export is disabled, so the
// result can always be passed to logger.New as an extra core.
func (lp *LoggerProvider) ZapCore() zapcore.Core {
	if lp.provider == nil {
		return zapcore.NewNopCore()
	}
	core := otelzap.NewCore(lp.serviceName, otelzap.WithLoggerProvider(lp.provider))
	return &levelFilterCore{Core: core, minLevel: lp.level}
}

// levelFilterCore adds a minimum level to a core that has none.
type levelFilterCore struct {
	zapcore.Core
	minLevel zapcore.Level
}

func (c *levelFilterCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= c.minLevel && c.Core.Enabled(lvl)
}

func (c *levelFilterCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(entry.Level) {
		return ce
	}
	return c.Core.Check(entry, ce)
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{Core: c.Core.With(fields), minLevel: c.minLevel}
}
