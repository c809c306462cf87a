package leads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/pkg/psqlbuilder"
)

var leadColumns = []string{
	"id",
	"name",
	"phone",
	"goal",
	"package",
	"slot_date",
	"slot_day",
	"slot_time",
	"readable_date",
	"language",
	"status",
	"admin_notes",
	"platform",
	"user_agent",
	"uid",
	"referrer",
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с лидами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лидов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет лид; created_at и updated_at ставит БД
func (r *Repository) Create(ctx context.Context, lead *domain.Lead) (string, error) {
	id := uuid.NewString()

	query, args, err := psqlbuilder.Insert("leads").
		Columns(leadColumns[:len(leadColumns)-2]...).
		Values(
			id,
			lead.Name,
			lead.Phone,
			lead.Goal,
			lead.Package,
			lead.Date,
			lead.Day,
			lead.Time,
			lead.ReadableDate,
			lead.Language,
			lead.Status,
			lead.AdminNotes,
			lead.Platform,
			lead.UserAgent,
			lead.UID,
			lead.Referrer,
			lead.UTMSource,
			lead.UTMMedium,
			lead.UTMCampaign,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return "", gateway.NewStoreError(driverMessage(err), fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err))
	}

	lead.ID = id
	lead.CreatedAt = createdAt.Time
	lead.UpdatedAt = updatedAt.Time
	return id, nil
}

// List лиды, новые первыми; опционально фильтрует по статусу
func (r *Repository) List(ctx context.Context, filter domain.LeadFilter) ([]*domain.Lead, error) {
	selectBuilder := psqlbuilder.Select(leadColumns...).
		From("leads").
		OrderBy("created_at DESC", "id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanLeads(rows)
}

// UpdateStatus обновляет статус лида
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error {
	query, args, err := psqlbuilder.Update("leads").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLeadNotFound
	}

	return nil
}

// BusySlots время лидов на день в указанных статусах, по возрастанию
func (r *Repository) BusySlots(ctx context.Context, day string, statuses []domain.LeadStatus) ([]string, error) {
	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("DISTINCT slot_time").
		From("leads").
		Where(squirrel.Eq{"slot_day": day}).
		Where(squirrel.Eq{"status": statusStrings}).
		Where(squirrel.NotEq{"slot_time": ""}).
		OrderBy("slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BusySlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BusySlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]string, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("%w: BusySlots - scan time: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BusySlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func (r *Repository) scanLeads(rows *sql.Rows) ([]*domain.Lead, error) {
	leads := make([]*domain.Lead, 0)

	for rows.Next() {
		var lead domain.Lead
		var date sql.NullTime
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Phone,
			&lead.Goal,
			&lead.Package,
			&date,
			&lead.Day,
			&lead.Time,
			&lead.ReadableDate,
			&lead.Language,
			&lead.Status,
			&lead.AdminNotes,
			&lead.Platform,
			&lead.UserAgent,
			&lead.UID,
			&lead.Referrer,
			&lead.UTMSource,
			&lead.UTMMedium,
			&lead.UTMCampaign,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanLeads - scan lead: %v", ErrScanRow, err)
		}

		if date.Valid {
			d := date.Time
			lead.Date = &d
		}
		lead.CreatedAt = createdAt.Time
		lead.UpdatedAt = updatedAt.Time
		leads = append(leads, &lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanLeads - rows error: %v", ErrScanRow, err)
	}

	return leads, nil
}

// driverMessage текст ошибки PostgreSQL без префикса драйвера
func driverMessage(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Message
	}
	return err.Error()
}
