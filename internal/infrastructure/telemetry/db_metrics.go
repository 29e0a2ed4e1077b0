package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBMetrics records query latency and connection pool state.
type DBMetrics struct {
	queryDuration *Histogram
	queryErrors   *Counter
	registration  metric.Registration
	logger        *zap.Logger
}

// RegisterDBMetrics attaches query callbacks to db and observes the pool of
// sqlDB on every collection cycle.
func RegisterDBMetrics(db *gorm.DB, sqlDB *sql.DB, meter metric.Meter, logger *zap.Logger) (*DBMetrics, error) {
	duration, err := NewHistogram(meter, HistogramOpts{
		Name:        "db_query_duration_seconds",
		Description: "Database query duration",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	})
	if err != nil {
		return nil, err
	}
	queryErrors, err := NewCounter(meter, "db_query_errors_total", "Failed database queries", "{query}")
	if err != nil {
		return nil, err
	}

	m := &DBMetrics{queryDuration: duration, queryErrors: queryErrors, logger: logger}

	if sqlDB != nil {
		if err := m.observePool(meter, sqlDB); err != nil {
			return nil, err
		}
	}

	if err := registerAround(db, "tenantbill_metrics", markQueryStart, m.after); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *DBMetrics) observePool(meter metric.Meter, sqlDB *sql.DB) error {
	open, err := meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Connections in the pool by state"))
	if err != nil {
		return err
	}
	maxOpen, err := meter.Int64ObservableGauge("db_pool_max_open",
		metric.WithDescription("Configured maximum open connections"))
	if err != nil {
		return err
	}
	waits, err := meter.Int64ObservableCounter("db_pool_wait_total",
		metric.WithDescription("Connections waited for"))
	if err != nil {
		return err
	}

	m.registration, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := sqlDB.Stats()
		o.ObserveInt64(open, int64(stats.InUse), metric.WithAttributes(AttrDBState.String("in_use")))
		o.ObserveInt64(open, int64(stats.Idle), metric.WithAttributes(AttrDBState.String("idle")))
		o.ObserveInt64(maxOpen, int64(stats.MaxOpenConnections))
		o.ObserveInt64(waits, stats.WaitCount)
		return nil
	}, open, maxOpen, waits)
	return err
}

// Stop unregisters the pool callback.
func (m *DBMetrics) Stop() {
	if m.registration == nil {
		return
	}
	if err := m.registration.Unregister(); err != nil {
		m.logger.Warn("Failed to unregister pool metrics", zap.Error(err))
	}
}

func (m *DBMetrics) after(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}
	attrs := []attribute.KeyValue{
		AttrDBOperation.String(operationOf(db.Statement.SQL.String())),
		AttrDBTable.String(db.Statement.Table),
	}
	if elapsed, ok := queryElapsed(ctx); ok {
		m.queryDuration.RecordDuration(ctx, elapsed, attrs...)
	}
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		m.queryErrors.Inc(ctx, attrs...)
	}
}

// operationOf returns the leading SQL verb in lower case.
func operationOf(sql string) string {
	sql = strings.TrimSpace(sql)
	if i := strings.IndexAny(sql, " \n\t"); i > 0 {
		sql = sql[:i]
	}
	switch op := strings.ToLower(sql); op {
	case "select", "insert", "update", "delete":
		return op
	case "":
		return "unknown"
	default:
		return "other"
	}
}
