package leads

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO leads").
		WithArgs(sqlmock.AnyArg(), "Anna", "12345", "", "single", &date, "2026-10-21", "09:00",
			"21. Oktober 2026 um 09:00", "de", domain.LeadStatusNew, "", "web_v2", "", "uid-1", "direct", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	lead := &domain.Lead{
		Name: "Anna", Phone: "12345", Package: "single", Date: &date, Day: "2026-10-21", Time: "09:00",
		ReadableDate: "21. Oktober 2026 um 09:00", Language: "de", Status: domain.LeadStatusNew,
		Platform: "web_v2", UID: "uid-1", Referrer: "direct",
	}
	id, err := repo.Create(context.Background(), lead)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, lead.ID)
	assert.Equal(t, now, lead.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExecError(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("INSERT INTO leads").WillReturnError(errors.New("permission denied for table leads"))

	_, err := repo.Create(context.Background(), &domain.Lead{Name: "Anna"})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, "permission denied for table leads", gateway.StoreReason(err))
}

func TestCreate_DriverMessageIsReason(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery("INSERT INTO leads").
		WillReturnError(&pq.Error{Code: "23514", Message: "value for domain phone: violates check constraint"})

	_, err := repo.Create(context.Background(), &domain.Lead{Name: "Anna"})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Equal(t, "value for domain phone: violates check constraint", gateway.StoreReason(err))
}

func TestList_WithStatus(t *testing.T) {
	repo, mock := newMock(t)
	created := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	status := domain.LeadStatusValid

	rows := sqlmock.NewRows(leadColumns).
		AddRow("l-1", "Anna", "12345", "", "vip", nil, "", "", "", "ru", "valid", "", "web_v2", "", "", "direct", "", "", "", created, created)
	mock.ExpectQuery(`SELECT .* FROM leads WHERE status = \$1 ORDER BY created_at DESC, id DESC`).
		WithArgs(domain.LeadStatusValid).
		WillReturnRows(rows)

	leads, err := repo.List(context.Background(), domain.LeadFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "l-1", leads[0].ID)
	assert.Nil(t, leads[0].Date)
	assert.Equal(t, domain.LeadStatusValid, leads[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE leads SET status = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2").
		WithArgs(domain.LeadStatusTrash, "l-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateStatus(context.Background(), "l-1", domain.LeadStatusTrash))

	mock.ExpectExec("UPDATE leads").
		WithArgs(domain.LeadStatusTrash, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateStatus(context.Background(), "missing", domain.LeadStatusTrash)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBusySlots(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT DISTINCT slot_time FROM leads WHERE slot_day = \$1 AND status IN \(\$2,\$3\) AND slot_time <> \$4 ORDER BY slot_time ASC`).
		WithArgs("2026-10-21", "new", "valid", "").
		WillReturnRows(sqlmock.NewRows([]string{"slot_time"}).AddRow("09:00").AddRow("15:00"))

	slots, err := repo.BusySlots(context.Background(), "2026-10-21", domain.BusyStatuses)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "15:00"}, slots)
	assert.NoError(t, mock.ExpectationsWereMet())
}
