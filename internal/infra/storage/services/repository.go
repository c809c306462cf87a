package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/pkg/psqlbuilder"
)

// Repository каталог дополнительных услуг
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List услуги, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	query, args, err := psqlbuilder.Select("id", "name", "price", "description", "created_at", "updated_at").
		From("services").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan service: %v", ErrScanRow, err)
		}
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Create добавляет услугу и возвращает её id
func (r *Repository) Create(ctx context.Context, service *domain.Service) (string, error) {
	id := uuid.NewString()

	query, args, err := psqlbuilder.Insert("services").
		Columns("id", "name", "price", "description").
		Values(id, service.Name, service.Price, service.Description).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return "", fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	service.ID = id
	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time
	return id, nil
}

// Update меняет название, цену и описание
func (r *Repository) Update(ctx context.Context, service *domain.Service) error {
	query, args, err := psqlbuilder.Update("services").
		Set("name", service.Name).
		Set("price", service.Price).
		Set("description", service.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": service.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Update", query, args)
}

// Delete удаляет услугу
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
