package booking

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeGateway фиксирует черновики и может удерживать вызов до release
type fakeGateway struct {
	mu      sync.Mutex
	drafts  []gateway.LeadDraft
	calls   atomic.Int32
	result  gateway.LeadResult
	entered chan struct{}
	release chan struct{}
}

func (g *fakeGateway) CreateLead(ctx context.Context, draft gateway.LeadDraft) gateway.LeadResult {
	g.calls.Add(1)
	g.mu.Lock()
	g.drafts = append(g.drafts, draft)
	g.mu.Unlock()

	if g.entered != nil {
		close(g.entered)
	}
	if g.release != nil {
		<-g.release
	}
	return g.result
}

func (g *fakeGateway) lastDraft() gateway.LeadDraft {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.drafts[len(g.drafts)-1]
}

var berlin = mustLocation("Europe/Berlin")

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, 2*60*60)
	}
	return loc
}

// now: понедельник 19.10.2026, 14:30 по Берлину
func testClock() *fixedClock {
	return &fixedClock{now: time.Date(2026, time.October, 19, 14, 30, 0, 0, berlin)}
}

func testCatalog() domain.Catalog {
	return domain.NewCatalog([]domain.Package{
		{Key: "single", Label: "Пробный урок", Price: "45€", BadgeText: "Пробный (45€)"},
		{Key: "pack10", Label: "Пакет 10 уроков", Price: "400€", BadgeText: "Курс (400€)"},
		{Key: "vip", Label: "VIP Терапия", Price: "600€", BadgeText: "VIP (600€)"},
	})
}

func newTestSession(gw LeadGateway) *Session {
	return NewSession(Options{
		ID:           "s-1",
		Catalog:      testCatalog(),
		TimeSlots:    domain.DefaultTimeSlots,
		BlockedDays:  []string{"2026-10-24"},
		Location:     berlin,
		FirstWeekday: time.Monday,
		Language:     domain.LanguageRU,
	}, gw, testClock(), nopLogger{})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, berlin)
}
