package schedule

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LessonBookingService/internal/gateway"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestList(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT day, slots, updated_at FROM schedules ORDER BY day ASC").
		WillReturnRows(sqlmock.NewRows([]string{"day", "slots", "updated_at"}).
			AddRow("2026-10-20", "{09:00,11:00}", now).
			AddRow("2026-10-22", "{19:00}", now))

	days, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, []string{"09:00", "11:00"}, days[0].Slots)
	assert.Equal(t, "2026-10-22", days[1].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT day, slots, updated_at FROM schedules WHERE day = \\$1").
		WithArgs("2026-10-20").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "2026-10-20")
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}

func TestSet_Upserts(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`INSERT INTO schedules \(day,slots,updated_at\) VALUES \(\$1,\$2,NOW\(\)\) ON CONFLICT \(day\) DO UPDATE`).
		WithArgs("2026-10-20", "{\"09:00\",\"13:00\"}").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(context.Background(), "2026-10-20", []string{"09:00", "13:00"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM schedules WHERE day = \\$1").
		WithArgs("2026-10-20").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "2026-10-20")
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}
