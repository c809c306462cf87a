package gateway_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/memory"
	"github.com/m04kA/LessonBookingService/pkg/logger"
)

// scriptedConnector считает попытки и может блокироваться или падать
type scriptedConnector struct {
	attempts atomic.Int32
	release  chan struct{}
	started  chan struct{}
	failures int32
	panics   bool
	inner    gateway.Connector
}

func newScriptedConnector() *scriptedConnector {
	return &scriptedConnector{inner: memory.NewConnector(memory.NewStore())}
}

func (c *scriptedConnector) Connect(ctx context.Context) (*gateway.Connection, error) {
	n := c.attempts.Add(1)
	if c.started != nil && n == 1 {
		close(c.started)
	}
	if c.release != nil {
		select {
		case <-c.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if c.panics {
		panic("sdk exploded")
	}
	if n <= c.failures {
		return nil, errors.New("auth/network-request-failed")
	}
	return c.inner.Connect(ctx)
}

type bootstrapCounter struct {
	mu      sync.Mutex
	success int
	failure int
}

func (b *bootstrapCounter) IncBootstrap(ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ok {
		b.success++
	} else {
		b.failure++
	}
}

func newGateway(c gateway.Connector, m gateway.Metrics) *gateway.Gateway {
	return gateway.New(c, gateway.Options{BootstrapTimeout: time.Second, Platform: "web_v2"}, m, logger.NewNop())
}

func TestEnsureConnected_ConcurrentCallersShareOneAttempt(t *testing.T) {
	conn := newScriptedConnector()
	conn.release = make(chan struct{})
	conn.started = make(chan struct{})
	g := newGateway(conn, nil)

	const callers = 20
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = g.EnsureConnected(context.Background())
		}(i)
	}

	<-conn.started
	time.Sleep(20 * time.Millisecond)
	close(conn.release)
	wg.Wait()

	assert.Equal(t, int32(1), conn.attempts.Load())
	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.True(t, g.Connected())
	assert.NotEmpty(t, g.UID())
}

func TestEnsureConnected_FailureAllowsRetry(t *testing.T) {
	conn := newScriptedConnector()
	conn.failures = 1
	counter := &bootstrapCounter{}
	g := newGateway(conn, counter)

	err := g.EnsureConnected(context.Background())
	require.ErrorIs(t, err, gateway.ErrConnectionFailed)
	assert.False(t, g.Connected())

	require.NoError(t, g.EnsureConnected(context.Background()))
	assert.True(t, g.Connected())

	// уже подключены: повторных попыток нет
	require.NoError(t, g.EnsureConnected(context.Background()))
	assert.Equal(t, int32(2), conn.attempts.Load())
	assert.Equal(t, 1, counter.failure)
	assert.Equal(t, 1, counter.success)
}

func TestEnsureConnected_ConcurrentFailureObservedByAll(t *testing.T) {
	conn := newScriptedConnector()
	conn.failures = 1
	conn.release = make(chan struct{})
	conn.started = make(chan struct{})
	g := newGateway(conn, nil)

	const callers = 5
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = g.EnsureConnected(context.Background())
		}(i)
	}
	<-conn.started
	time.Sleep(20 * time.Millisecond)
	close(conn.release)
	wg.Wait()

	// опоздавший вызов мог начать вторую попытку, но не больше
	attempts := conn.attempts.Load()
	assert.LessOrEqual(t, attempts, int32(2))
	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			assert.ErrorIs(t, err, gateway.ErrConnectionFailed)
		}
	}
	assert.GreaterOrEqual(t, failed, 1)
}

func TestEnsureConnected_PanicBecomesError(t *testing.T) {
	conn := newScriptedConnector()
	conn.panics = true
	g := newGateway(conn, nil)

	assert.NotPanics(t, func() {
		err := g.EnsureConnected(context.Background())
		assert.ErrorIs(t, err, gateway.ErrConnectionFailed)
	})
	assert.False(t, g.Connected())
}

func TestEnsureConnected_CallerCancellationDoesNotAbortBootstrap(t *testing.T) {
	conn := newScriptedConnector()
	conn.release = make(chan struct{})
	conn.started = make(chan struct{})
	g := newGateway(conn, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.EnsureConnected(ctx) }()

	<-conn.started
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(conn.release)
	require.Eventually(t, g.Connected, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), conn.attempts.Load())
}

func TestCreateLead_NormalizesRecord(t *testing.T) {
	store := memory.NewStore()
	g := newGateway(memory.NewConnector(store), nil)
	ctx := context.Background()

	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	res := g.CreateLead(ctx, gateway.LeadDraft{
		Name:         "  Anna ",
		Phone:        "+49 151 000",
		Package:      "vip",
		Date:         &date,
		Day:          "2026-10-20",
		Time:         "11:00",
		ReadableDate: "20. Oktober 2026 um 11:00",
		Meta:         gateway.Metadata{UserAgent: "Mozilla/5.0", UTMSource: "instagram"},
	})
	require.True(t, res.IsOk())
	require.NotEmpty(t, res.ID())

	leads, err := g.ListLeads(ctx, nil)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	lead := leads[0]
	assert.Equal(t, "Anna", lead.Name)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Equal(t, "web_v2", lead.Platform)
	assert.Equal(t, "direct", lead.Referrer)
	assert.Equal(t, "instagram", lead.UTMSource)
	assert.Equal(t, g.UID(), lead.UID)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestCreateLead_Defaults(t *testing.T) {
	g := newGateway(memory.NewConnector(memory.NewStore()), nil)
	ctx := context.Background()

	res := g.CreateLead(ctx, gateway.LeadDraft{})
	require.True(t, res.IsOk())

	leads, err := g.ListLeads(ctx, nil)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, domain.AnonymousName, leads[0].Name)
	assert.Equal(t, domain.UnknownPhone, leads[0].Phone)
	assert.Equal(t, domain.DefaultPackageKey, leads[0].Package)
}

func TestCreateLead_BootstrapFailure(t *testing.T) {
	conn := newScriptedConnector()
	conn.failures = 100
	g := newGateway(conn, nil)

	res := g.CreateLead(context.Background(), gateway.LeadDraft{Name: "Jo"})
	assert.False(t, res.IsOk())
	assert.Equal(t, gateway.MsgDatabaseUnavailable, res.Reason())
}

type failingLeads struct {
	gateway.LeadStore
	err error
}

func (f failingLeads) Create(context.Context, *domain.Lead) (string, error) {
	return "", f.err
}

type failingConnector struct {
	inner gateway.Connector
	err   error
}

func (f failingConnector) Connect(ctx context.Context) (*gateway.Connection, error) {
	conn, err := f.inner.Connect(ctx)
	if err != nil {
		return nil, err
	}
	conn.Leads = failingLeads{LeadStore: conn.Leads, err: f.err}
	return conn, nil
}

func TestCreateLead_StoreErrorPassedThrough(t *testing.T) {
	storeErr := gateway.NewStoreError(
		"Value for field: phone is invalid",
		errors.New("firestore: leads.Create: Value for field: phone is invalid"),
	)
	g := newGateway(failingConnector{inner: memory.NewConnector(memory.NewStore()), err: storeErr}, nil)

	res := g.CreateLead(context.Background(), gateway.LeadDraft{Name: "Jo"})
	assert.False(t, res.IsOk())
	assert.Equal(t, "Value for field: phone is invalid", res.Reason())
}

func TestCreateLead_PlainErrorKeptWhole(t *testing.T) {
	plain := errors.New("leads.repository: failed to execute query: permission denied")
	g := newGateway(failingConnector{inner: memory.NewConnector(memory.NewStore()), err: plain}, nil)

	res := g.CreateLead(context.Background(), gateway.LeadDraft{Name: "Jo"})
	assert.False(t, res.IsOk())
	assert.Equal(t, plain.Error(), res.Reason())
}

func TestStoreReason(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", gateway.NewStoreError("a: b: c", errors.New("driver: a: b: c")))
	assert.Equal(t, "a: b: c", gateway.StoreReason(wrapped))
	assert.Equal(t, "outer: driver: a: b: c", wrapped.Error())

	noReason := gateway.NewStoreError("", errors.New("x: y"))
	assert.Equal(t, "x: y", gateway.StoreReason(noReason))
}

func TestBusySlotsAndStatus(t *testing.T) {
	g := newGateway(memory.NewConnector(memory.NewStore()), nil)
	ctx := context.Background()

	res := g.CreateLead(ctx, gateway.LeadDraft{Name: "Jo", Day: "2026-10-20", Time: "09:00"})
	require.True(t, res.IsOk())

	slots, err := g.BusySlots(ctx, "2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slots)

	require.NoError(t, g.UpdateLeadStatus(ctx, res.ID(), domain.LeadStatusTrash))
	slots, err = g.BusySlots(ctx, "2026-10-20")
	require.NoError(t, err)
	assert.Empty(t, slots)

	err = g.UpdateLeadStatus(ctx, "missing", domain.LeadStatusValid)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestSchedule_EmptySlotsDeletesDay(t *testing.T) {
	g := newGateway(memory.NewConnector(memory.NewStore()), nil)
	ctx := context.Background()

	require.NoError(t, g.SetScheduleForDate(ctx, "2026-10-20", []string{"09:00"}))
	day, err := g.ScheduleForDate(ctx, "2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, day.Slots)

	require.NoError(t, g.SetScheduleForDate(ctx, "2026-10-20", nil))
	_, err = g.ScheduleForDate(ctx, "2026-10-20")
	assert.ErrorIs(t, err, gateway.ErrNotFound)

	// удаление несуществующего дня не ошибка
	require.NoError(t, g.SetScheduleForDate(ctx, "2026-10-21", []string{}))
}

func TestPackages_AbsentDocument(t *testing.T) {
	g := newGateway(memory.NewConnector(memory.NewStore()), nil)

	packages, err := g.Packages(context.Background())
	require.NoError(t, err)
	assert.Nil(t, packages)
}

func TestLeadResult(t *testing.T) {
	ok := gateway.Ok("id-1")
	assert.True(t, ok.IsOk())
	assert.Equal(t, "id-1", ok.ID())

	failed := gateway.Failed("")
	assert.False(t, failed.IsOk())
	assert.Empty(t, failed.Reason())
}
