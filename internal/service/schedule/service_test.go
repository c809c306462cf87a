package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/memory"
	"github.com/m04kA/LessonBookingService/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newService(t *testing.T) *Service {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	gw := gateway.New(memory.NewConnector(memory.NewStore()), gateway.Options{BootstrapTimeout: time.Second}, nil, logger.NewNop())
	t.Cleanup(func() { _ = gw.Close() })

	clock := fixedClock{now: time.Date(2026, time.October, 19, 14, 30, 0, 0, loc)}
	return NewService(gw, domain.DefaultTimeSlots, loc, clock, logger.NewNop())
}

func TestSetDay_NormalizesSlots(t *testing.T) {
	svc := newService(t)

	resp, err := svc.SetDay(context.Background(), "2026-10-21", &SetDayRequest{
		Slots: []string{"17:00", " 09:00", "17:00", "11:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00", "17:00"}, resp.Slots)

	day, err := svc.Day(context.Background(), "2026-10-21")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "11:00", "17:00"}, day.Slots)
}

func TestSetDay_TodayAllowed(t *testing.T) {
	svc := newService(t)
	_, err := svc.SetDay(context.Background(), "2026-10-19", &SetDayRequest{Slots: []string{"19:00"}})
	assert.NoError(t, err)
}

func TestSetDay_Rejects(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.SetDay(ctx, "2026-10-18", &SetDayRequest{Slots: []string{"09:00"}})
	assert.ErrorIs(t, err, ErrPastDate)

	_, err = svc.SetDay(ctx, "21.10.2026", &SetDayRequest{Slots: []string{"09:00"}})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.SetDay(ctx, "2026-10-21", &SetDayRequest{Slots: []string{"10:00"}})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestSetDay_EmptyRemovesDay(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.SetDay(ctx, "2026-10-22", &SetDayRequest{Slots: []string{"09:00"}})
	require.NoError(t, err)
	_, err = svc.SetDay(ctx, "2026-10-22", &SetDayRequest{})
	require.NoError(t, err)

	day, err := svc.Day(ctx, "2026-10-22")
	require.NoError(t, err)
	assert.Empty(t, day.Slots)
}

func TestMonth_FiltersAndSorts(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, d := range []string{"2026-11-03", "2026-10-30", "2026-10-20"} {
		_, err := svc.SetDay(ctx, d, &SetDayRequest{Slots: []string{"13:00"}})
		require.NoError(t, err)
	}

	resp, err := svc.Month(ctx, 2026, 10)
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2026-10-20", resp.Days[0].Date)
	assert.Equal(t, "2026-10-30", resp.Days[1].Date)
	assert.Equal(t, domain.DefaultTimeSlots, resp.TimeSlots)

	_, err = svc.Month(ctx, 2026, 13)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
