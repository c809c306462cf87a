package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestCreateAndList(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO services \\(id,name,price,description\\)").
		WithArgs(sqlmock.AnyArg(), "Intensivkurs", "80€", "").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	service := &domain.Service{Name: "Intensivkurs", Price: "80€"}
	id, err := repo.Create(context.Background(), service)
	require.NoError(t, err)
	assert.Equal(t, id, service.ID)

	mock.ExpectQuery("SELECT id, name, price, description, created_at, updated_at FROM services ORDER BY created_at DESC, id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "description", "created_at", "updated_at"}).
			AddRow(id, "Intensivkurs", "80€", "", now, now))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Intensivkurs", list[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE services SET name = \\$1, price = \\$2, description = \\$3, updated_at = NOW\\(\\) WHERE id = \\$4").
		WithArgs("X", "", "", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Update(context.Background(), &domain.Service{ID: "missing", Name: "X"})
	assert.ErrorIs(t, err, gateway.ErrNotFound)

	mock.ExpectExec("DELETE FROM services WHERE id = \\$1").
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), "s-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
