package submit_booking

import (
	"context"
	"strings"
	"sync"
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
	return domain.NewCatalog([]domain.Package{
		{Key: "single", Label: "Einzelstunde", Price: "50€"},
		{Key: "vip", Label: "VIP", Price: "900€"},
	})
}

type recordingMetrics struct {
	mu          sync.Mutex
	submissions []string
	fields      []string
}

func (m *recordingMetrics) IncSubmission(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions = append(m.submissions, outcome)
}

func (m *recordingMetrics) IncValidationError(field string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields = append(m.fields, field)
}

type fixture struct {
	uc       *UseCase
	sessions *sessions.Service
	store    *memory.Store
	metrics  *recordingMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	gw := gateway.New(memory.NewConnector(store), gateway.Options{BootstrapTimeout: time.Second}, nil, logger.NewNop())
	t.Cleanup(func() { _ = gw.Close() })

	clock := fixedClock{now: time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)}
	registry := sessions.NewService(gw, staticCatalog{}, sessions.Settings{
		TimeSlots:    domain.DefaultTimeSlots,
		Location:     time.UTC,
		FirstWeekday: time.Monday,
		TTL:          time.Hour,
	}, clock, nil, logger.NewNop())

	m := &recordingMetrics{}
	return &fixture{
		uc:       NewUseCase(registry, m, logger.NewNop()),
		sessions: registry,
		store:    store,
		metrics:  m,
	}
}

func (f *fixture) newSession(t *testing.T, lang domain.Language) *booking.Session {
	t.Helper()
	s, err := f.sessions.Create(context.Background(), lang)
	require.NoError(t, err)
	return s
}

func (f *fixture) readySession(t *testing.T) *booking.Session {
	t.Helper()
	s := f.newSession(t, domain.LanguageRU)
	require.True(t, s.SelectPackage("vip"))
	require.True(t, s.SelectDate(time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)))
	require.True(t, s.SelectTime("11:00"))
	return s
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)
	s := f.readySession(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		SessionID: s.ID(),
		Name:      "Мария",
		Phone:     "+49 151 2345678",
		Meta:      gateway.Metadata{UTMSource: "instagram"},
	})
	require.NoError(t, err)
	assert.Equal(t, booking.OutcomeSuccess, resp.Outcome)
	assert.NotEmpty(t, resp.LeadID)
	assert.Equal(t, booking.StateSuccess, resp.Snapshot.State)
	assert.Equal(t, []string{"success"}, f.metrics.submissions)

	_, err = f.uc.Execute(context.Background(), &Request{SessionID: s.ID(), Name: "Мария", Phone: "+49 151 2345678"})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, []string{"success", "already_submitted"}, f.metrics.submissions)
}

func TestExecute_RejectedCountsFields(t *testing.T) {
	f := newFixture(t)
	s := f.newSession(t, domain.LanguageRU)

	resp, err := f.uc.Execute(context.Background(), &Request{SessionID: s.ID(), Name: "A", Phone: "12"})
	require.NoError(t, err)
	assert.Equal(t, booking.OutcomeRejected, resp.Outcome)

	require.Len(t, resp.Errors, 5)
	assert.Equal(t, "package", resp.Errors[0].Field)
	assert.NotEmpty(t, resp.Errors[0].Message)
	assert.Equal(t, []string{"package", "name", "phone", "date", "time"}, f.metrics.fields)
	assert.Equal(t, []string{"rejected"}, f.metrics.submissions)
	assert.Equal(t, booking.StateIdle, resp.Snapshot.State)
}

func TestExecute_InputErrors(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{SessionID: "nope", Name: "Anna", Phone: "12345"})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s := f.newSession(t, domain.LanguageDE)
	_, err = f.uc.Execute(context.Background(), &Request{SessionID: s.ID(), Name: strings.Repeat("я", domain.MaxNameLength+1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, f.metrics.submissions)
}
