package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/pkg/psqlbuilder"
)

// KeyPackages ключ документа с правками пакетов
const KeyPackages = "packages"

// packageDoc формат правки пакета в jsonb
type packageDoc struct {
	Label     *string `json:"label,omitempty"`
	Price     *string `json:"price,omitempty"`
	BadgeText *string `json:"badgeText,omitempty"`
}

// Repository key-value настройки с jsonb значением
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPackages правки пакетов; ErrSettingNotFound, если админ их ещё не сохранял
func (r *Repository) GetPackages(ctx context.Context) (map[string]domain.PackageOverride, error) {
	raw, err := r.get(ctx, KeyPackages)
	if err != nil {
		return nil, err
	}

	var docs map[string]packageDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("%w: GetPackages: %v", ErrEncoding, err)
	}

	out := make(map[string]domain.PackageOverride, len(docs))
	for key, d := range docs {
		out[key] = domain.PackageOverride{Label: d.Label, Price: d.Price, BadgeText: d.BadgeText}
	}
	return out, nil
}

// SavePackages перезаписывает документ целиком
func (r *Repository) SavePackages(ctx context.Context, packages map[string]domain.PackageOverride) error {
	docs := make(map[string]packageDoc, len(packages))
	for key, p := range packages {
		docs[key] = packageDoc{Label: p.Label, Price: p.Price, BadgeText: p.BadgeText}
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("%w: SavePackages: %v", ErrEncoding, err)
	}
	return r.put(ctx, KeyPackages, raw)
}

func (r *Repository) get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := psqlbuilder.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: get - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrScanRow, key, err)
	}
	return raw, nil
}

func (r *Repository) put(ctx context.Context, key string, value []byte) error {
	query, args, err := psqlbuilder.Insert("settings").
		Columns("key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: put - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: put %s: %v", ErrExecQuery, key, err)
	}
	return nil
}
