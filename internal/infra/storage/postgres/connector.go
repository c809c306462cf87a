package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/leads"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/services"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/settings"
	"github.com/m04kA/LessonBookingService/pkg/dbmetrics"
	"github.com/m04kA/LessonBookingService/pkg/metrics"
)

// Options параметры пула соединений
type Options struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Connector открывает PostgreSQL и собирает хранилища шлюза
type Connector struct {
	opts    Options
	metrics *metrics.Metrics
}

func NewConnector(opts Options, m *metrics.Metrics) *Connector {
	return &Connector{opts: opts, metrics: m}
}

// Connect открывает пул, проверяет связь и накатывает миграции
func (c *Connector) Connect(ctx context.Context) (*gateway.Connection, error) {
	db, err := sql.Open("postgres", c.opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	db.SetMaxOpenConns(c.opts.MaxOpenConns)
	db.SetMaxIdleConns(c.opts.MaxIdleConns)
	db.SetConnMaxLifetime(c.opts.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrOpen, err)
	}

	if err := migrateUp(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	stop := make(chan struct{})
	executor := dbmetrics.WrapWithDefault(db, c.metrics, stop)

	return &gateway.Connection{
		UID:      uuid.NewString(),
		Leads:    leads.NewRepository(executor),
		Schedule: schedule.NewRepository(executor),
		Settings: settings.NewRepository(executor),
		Services: services.NewRepository(executor),
		Closer: func() error {
			close(stop)
			return db.Close()
		},
	}, nil
}
