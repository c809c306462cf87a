package select_date

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LessonBookingService/internal/booking"
	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/memory"
	"github.com/m04kA/LessonBookingService/internal/service/sessions"
	"github.com/m04kA/LessonBookingService/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type staticCatalog struct{}

func (staticCatalog) Catalog(context.Context) domain.Catalog {
	return domain.NewCatalog([]domain.Package{{Key: "single", Label: "Single"}})
}

type failingBusy struct{}

func (failingBusy) BusySlots(context.Context, string) ([]string, error) {
	return nil, errors.New("timeout")
}

func newRegistry(t *testing.T, gw *gateway.Gateway) *sessions.Service {
	t.Helper()
	clock := fixedClock{now: time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)}
	return sessions.NewService(gw, staticCatalog{}, sessions.Settings{
		TimeSlots:    domain.DefaultTimeSlots,
		BlockedDays:  []string{"2026-10-24"},
		Location:     time.UTC,
		FirstWeekday: time.Monday,
		TTL:          time.Hour,
	}, clock, nil, logger.NewNop())
}

func newSession(t *testing.T, registry *sessions.Service, lang domain.Language) *booking.Session {
	t.Helper()
	s, err := registry.Create(context.Background(), lang)
	require.NoError(t, err)
	return s
}

func newGateway(t *testing.T) *gateway.Gateway {
	t.Helper()
	gw := gateway.New(memory.NewConnector(memory.NewStore()), gateway.Options{BootstrapTimeout: time.Second}, nil, logger.NewNop())
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}

func TestExecute_MarksBusySlots(t *testing.T) {
	gw := newGateway(t)
	ctx := context.Background()
	day := time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)
	res := gw.CreateLead(ctx, gateway.LeadDraft{Name: "Anna", Phone: "12345", Package: "single", Date: &day, Day: "2026-10-21", Time: "13:00"})
	require.True(t, res.IsOk())

	registry := newRegistry(t, gw)
	s := newSession(t, registry, domain.LanguageDE)
	uc := NewUseCase(registry, gw, logger.NewNop())

	resp, err := uc.Execute(ctx, &Request{SessionID: s.ID(), Date: "2026-10-21"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.True(t, resp.BusyLoaded)

	busy := map[string]bool{}
	for _, slot := range resp.Snapshot.Slots {
		busy[slot.Time] = slot.Busy
	}
	assert.True(t, busy["13:00"])
	assert.False(t, busy["09:00"])
	assert.False(t, s.SelectTime("13:00"))
	assert.True(t, s.SelectTime("09:00"))
}

func TestExecute_RejectedDays(t *testing.T) {
	gw := newGateway(t)
	registry := newRegistry(t, gw)
	s := newSession(t, registry, domain.LanguageDE)
	uc := NewUseCase(registry, gw, logger.NewNop())

	for _, date := range []string{"2026-10-18", "2026-10-24"} {
		resp, err := uc.Execute(context.Background(), &Request{SessionID: s.ID(), Date: date})
		require.NoError(t, err)
		assert.False(t, resp.Accepted, date)
		assert.Nil(t, resp.Snapshot.SelectedDate)
	}
}

func TestExecute_BusyLoadFailureKeepsSelection(t *testing.T) {
	gw := newGateway(t)
	registry := newRegistry(t, gw)
	s := newSession(t, registry, domain.LanguageDE)
	uc := NewUseCase(registry, failingBusy{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{SessionID: s.ID(), Date: "2026-10-22"})
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.False(t, resp.BusyLoaded)
	require.NotNil(t, resp.Snapshot.SelectedDate)
}

func TestExecute_Errors(t *testing.T) {
	gw := newGateway(t)
	registry := newRegistry(t, gw)
	uc := NewUseCase(registry, gw, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", Date: "2026-10-22"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s := newSession(t, registry, domain.LanguageDE)
	_, err = uc.Execute(context.Background(), &Request{SessionID: s.ID(), Date: "22.10.2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
