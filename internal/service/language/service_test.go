package language

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/preference"
	"github.com/m04kA/LessonBookingService/pkg/logger"
)

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) { return "", errors.New("redis down") }
func (brokenStore) Set(context.Context, string, string) error  { return errors.New("redis down") }

func TestResolve_Order(t *testing.T) {
	store := preference.NewMemoryStore()
	svc := NewService(store, domain.LanguageDE, logger.NewNop())
	ctx := context.Background()

	assert.Equal(t, domain.LanguageDE, svc.Resolve(ctx, "v1", ""))
	assert.Equal(t, domain.LanguageKO, svc.Resolve(ctx, "v1", "ko-KR,ko;q=0.9,en;q=0.8"))
	assert.Equal(t, domain.LanguageDE, svc.Resolve(ctx, "v1", "en-US,ru;q=0.5"))

	_, err := svc.Set(ctx, "v1", "RU")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguageRU, svc.Resolve(ctx, "v1", "ko-KR"))
}

func TestResolve_StoreErrorFallsThrough(t *testing.T) {
	svc := NewService(brokenStore{}, domain.LanguageDE, logger.NewNop())
	assert.Equal(t, domain.LanguageRU, svc.Resolve(context.Background(), "v1", "ru"))
}

func TestSet_Errors(t *testing.T) {
	svc := NewService(preference.NewMemoryStore(), domain.LanguageDE, logger.NewNop())
	_, err := svc.Set(context.Background(), "v1", "en")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	svc = NewService(brokenStore{}, domain.LanguageDE, logger.NewNop())
	_, err = svc.Set(context.Background(), "v1", "de")
	assert.ErrorIs(t, err, ErrInternal)
}
