package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/pkg/psqlbuilder"
)

// Repository расписание админки, одна строка на день
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List все настроенные дни по возрастанию даты
func (r *Repository) List(ctx context.Context) ([]domain.DaySchedule, error) {
	query, args, err := psqlbuilder.Select("day", "slots", "updated_at").
		From("schedules").
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.DaySchedule, 0)
	for rows.Next() {
		var d domain.DaySchedule
		var updatedAt sql.NullTime
		if err := rows.Scan(&d.Date, pq.Array(&d.Slots), &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan day: %v", ErrScanRow, err)
		}
		d.UpdatedAt = updatedAt.Time
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// Get расписание дня
func (r *Repository) Get(ctx context.Context, day string) (*domain.DaySchedule, error) {
	query, args, err := psqlbuilder.Select("day", "slots", "updated_at").
		From("schedules").
		Where(squirrel.Eq{"day": day}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.DaySchedule
	var updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&d.Date, pq.Array(&d.Slots), &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan day: %v", ErrScanRow, err)
	}

	d.UpdatedAt = updatedAt.Time
	return &d, nil
}

// Set заменяет слоты дня
func (r *Repository) Set(ctx context.Context, day string, slots []string) error {
	query, args, err := psqlbuilder.Insert("schedules").
		Columns("day", "slots", "updated_at").
		Values(day, pq.Array(slots), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (day) DO UPDATE SET slots = EXCLUDED.slots, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete убирает день из расписания
func (r *Repository) Delete(ctx context.Context, day string) error {
	query, args, err := psqlbuilder.Delete("schedules").
		Where(squirrel.Eq{"day": day}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDayNotFound
	}
	return nil
}
