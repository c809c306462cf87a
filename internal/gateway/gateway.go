package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	bootstrapKey            = "bootstrap"
	defaultBootstrapTimeout = 10 * time.Second

	// MsgDatabaseUnavailable причина отказа, когда bootstrap не удался
	MsgDatabaseUnavailable = "database unavailable"
)

// Gateway фасад над хранилищем с ленивым однократным подключением
// Подключение, однажды установленное, не сбрасывается
type Gateway struct {
	connector Connector
	opts      Options
	metrics   Metrics
	logger    Logger

	group singleflight.Group

	mu   sync.RWMutex
	conn *Connection
}

// New создает фасад; подключение выполняется при первом обращении
func New(connector Connector, opts Options, metrics Metrics, logger Logger) *Gateway {
	if opts.BootstrapTimeout <= 0 {
		opts.BootstrapTimeout = defaultBootstrapTimeout
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Gateway{
		connector: connector,
		opts:      opts,
		metrics:   metrics,
		logger:    logger,
	}
}

// Connected true после успешного bootstrap
func (g *Gateway) Connected() bool {
	return g.connection() != nil
}

// UID анонимный идентификатор сессии хранилища, пустой до подключения
func (g *Gateway) UID() string {
	if conn := g.connection(); conn != nil {
		return conn.UID
	}
	return ""
}

func (g *Gateway) connection() *Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.conn
}

// EnsureConnected подключается, если ещё не подключены
// Параллельные вызовы ждут одну и ту же попытку; после неудачи следующий вызов пробует заново.
// Попытка не прерывается отменой ctx конкретного вызывающего, у неё свой таймаут.
func (g *Gateway) EnsureConnected(ctx context.Context) error {
	if g.Connected() {
		return nil
	}

	ch := g.group.DoChan(bootstrapKey, func() (interface{}, error) {
		return g.bootstrap(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Gateway) bootstrap(ctx context.Context) (conn *Connection, err error) {
	if existing := g.connection(); existing != nil {
		return existing, nil
	}

	defer func() {
		if r := recover(); r != nil {
			conn = nil
			err = fmt.Errorf("%w: bootstrap panic: %v", ErrConnectionFailed, r)
		}
		g.metrics.IncBootstrap(err == nil)
		if err != nil {
			g.logger.Error("Gateway: bootstrap failed: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, g.opts.BootstrapTimeout)
	defer cancel()

	g.logger.Info("Gateway: connecting to storage")
	conn, err = g.connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	if conn == nil {
		return nil, fmt.Errorf("%w: connector returned no connection", ErrConnectionFailed)
	}

	g.mu.Lock()
	g.conn = conn
	g.mu.Unlock()

	g.logger.Info("Gateway: connected, uid=%s", conn.UID)
	return conn, nil
}

// acquire подключается при необходимости и возвращает соединение
func (g *Gateway) acquire(ctx context.Context) (*Connection, error) {
	if err := g.EnsureConnected(ctx); err != nil {
		return nil, err
	}
	return g.connection(), nil
}

// Close освобождает ресурсы соединения, если оно было установлено
func (g *Gateway) Close() error {
	conn := g.connection()
	if conn == nil || conn.Closer == nil {
		return nil
	}
	return conn.Closer()
}

type noopMetrics struct{}

func (noopMetrics) IncBootstrap(bool) {}
