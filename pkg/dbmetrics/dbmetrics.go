package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/LessonBookingService/pkg/metrics"
)

// DBExecutor минимальный набор методов, которые нужны репозиториям
// Реализуется *sql.DB, *sql.Tx и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DefaultStatsInterval период опроса статистики connection pool
const DefaultStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB, измеряющая длительность запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает db и запускает фоновый сбор статистики пула до закрытия stop
func Wrap(db *sql.DB, m *metrics.Metrics, interval time.Duration, stop <-chan struct{}) *DB {
	w := &DB{db: db, metrics: m}
	go w.collectStats(interval, stop)
	return w
}

// WrapWithDefault Wrap с DefaultStatsInterval
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stop <-chan struct{}) *DB {
	return Wrap(db, m, DefaultStatsInterval, stop)
}

func (w *DB) collectStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			stats := w.db.Stats()
			w.metrics.SetDBConnections(stats.OpenConnections, stats.InUse)
		}
	}
}

func (w *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := w.db.ExecContext(ctx, query, args...)
	w.metrics.ObserveDBQuery("exec", err, time.Since(start))
	return res, err
}

func (w *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := w.db.QueryContext(ctx, query, args...)
	w.metrics.ObserveDBQuery("query", err, time.Since(start))
	return rows, err
}

func (w *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := w.db.QueryRowContext(ctx, query, args...)
	w.metrics.ObserveDBQuery("query_row", row.Err(), time.Since(start))
	return row
}
