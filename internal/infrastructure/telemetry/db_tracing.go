package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/tenantbill/backend/internal/infrastructure/config"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

type queryStartKey struct{}

// DBTracingPlugin registers otelgorm on a gorm.DB and decorates the resulting
// spans with row counts, table names and a slow-query marker.
type DBTracingPlugin struct {
	logFullSQL bool
	slowQuery  time.Duration
	dbSystem   string
	logger     *zap.Logger
}

// NewDBTracingPlugin builds the plugin from telemetry configuration.
func NewDBTracingPlugin(cfg config.TelemetryConfig, dbSystem string, logger *zap.Logger) *DBTracingPlugin {
	slow := cfg.DBSlowQueryThresh
	if slow <= 0 {
		slow = defaultSlowQueryThreshold
	}
	return &DBTracingPlugin{
		logFullSQL: cfg.DBLogFullSQL,
		slowQuery:  slow,
		dbSystem:   dbSystem,
		logger:     logger,
	}
}

// Register installs otelgorm and the span decoration callbacks.
func (p *DBTracingPlugin) Register(db *gorm.DB) error {
	opts := []otelgorm.Option{otelgorm.WithDBName(p.dbSystem)}
	if !p.logFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	if err := registerAround(db, "tenantbill_tracing", markQueryStart, p.after); err != nil {
		return err
	}

	p.logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", p.logFullSQL),
		zap.Duration("slow_query_threshold", p.slowQuery),
	)
	return nil
}

func (p *DBTracingPlugin) after(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}

	if elapsed, ok := queryElapsed(ctx); ok && elapsed > p.slowQuery {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
		span.AddEvent("slow_query", trace.WithAttributes(
			attribute.Int64("threshold_ms", p.slowQuery.Milliseconds()),
		))
	}
}

func markQueryStart(db *gorm.DB) {
	if db.Statement.Context == nil {
		return
	}
	db.Statement.Context = context.WithValue(db.Statement.Context, queryStartKey{}, time.Now())
}

func queryElapsed(ctx context.Context) (time.Duration, bool) {
	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return 0, false
	}
	return time.Since(start), true
}

// registerAround hooks before and after callbacks on every gorm processor.
// Names are prefixed so several plugins can coexist.
func registerAround(db *gorm.DB, prefix string, before, after func(*gorm.DB)) error {
	cb := db.Callback()
	register := []func() error{
		func() error { return cb.Create().Before("gorm:create").Register(prefix+":before_create", before) },
		func() error { return cb.Query().Before("gorm:query").Register(prefix+":before_query", before) },
		func() error { return cb.Update().Before("gorm:update").Register(prefix+":before_update", before) },
		func() error { return cb.Delete().Before("gorm:delete").Register(prefix+":before_delete", before) },
		func() error { return cb.Row().Before("gorm:row").Register(prefix+":before_row", before) },
		func() error { return cb.Raw().Before("gorm:raw").Register(prefix+":before_raw", before) },
		func() error { return cb.Create().After("gorm:create").Register(prefix+":after_create", after) },
		func() error { return cb.Query().After("gorm:query").Register(prefix+":after_query", after) },
		func() error { return cb.Update().After("gorm:update").Register(prefix+":after_update", after) },
		func() error { return cb.Delete().After("gorm:delete").Register(prefix+":after_delete", after) },
		func() error { return cb.Row().After("gorm:row").Register(prefix+":after_row", after) },
		func() error { return cb.Raw().After("gorm:raw").Register(prefix+":after_raw", after) },
	}
	for _, fn := range register {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
