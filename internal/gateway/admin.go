package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Schedule все дни, для которых админ задал слоты
func (g *Gateway) Schedule(ctx context.Context) ([]domain.DaySchedule, error) {
	conn, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}
	days, err := conn.Schedule.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Schedule: %v", ErrStore, err)
	}
	return days, nil
}

// ScheduleForDate слоты дня; ErrNotFound, если день не настроен
func (g *Gateway) ScheduleForDate(ctx context.Context, day string) (*domain.DaySchedule, error) {
	conn, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}
	schedule, err := conn.Schedule.Get(ctx, day)
	if err != nil {
		return nil, wrapStore("ScheduleForDate", err)
	}
	return schedule, nil
}

// SetScheduleForDate пустой список удаляет день
func (g *Gateway) SetScheduleForDate(ctx context.Context, day string, slots []string) error {
	conn, err := g.acquire(ctx)
	if err != nil {
		return err
	}

	if len(slots) == 0 {
		if err := conn.Schedule.Delete(ctx, day); err != nil && !isNotFound(err) {
			return fmt.Errorf("%w: SetScheduleForDate - delete: %v", ErrStore, err)
		}
		return nil
	}

	if err := conn.Schedule.Set(ctx, day, slots); err != nil {
		return fmt.Errorf("%w: SetScheduleForDate - set: %v", ErrStore, err)
	}
	return nil
}

// Packages правки пакетов из админки; nil, если документ ещё не создан
func (g *Gateway) Packages(ctx context.Context) (map[string]domain.PackageOverride, error) {
	conn, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}
	packages, err := conn.Settings.GetPackages(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: Packages: %v", ErrStore, err)
	}
	return packages, nil
}

// SavePackages перезаписывает документ с пакетами
func (g *Gateway) SavePackages(ctx context.Context, packages map[string]domain.PackageOverride) error {
	conn, err := g.acquire(ctx)
	if err != nil {
		return err
	}
	if err := conn.Settings.SavePackages(ctx, packages); err != nil {
		return fmt.Errorf("%w: SavePackages: %v", ErrStore, err)
	}
	return nil
}

// Services каталог услуг
func (g *Gateway) Services(ctx context.Context) ([]*domain.Service, error) {
	conn, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}
	services, err := conn.Services.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: Services: %v", ErrStore, err)
	}
	return services, nil
}

func (g *Gateway) AddService(ctx context.Context, service *domain.Service) (string, error) {
	conn, err := g.acquire(ctx)
	if err != nil {
		return "", err
	}
	id, err := conn.Services.Create(ctx, service)
	if err != nil {
		return "", fmt.Errorf("%w: AddService: %v", ErrStore, err)
	}
	return id, nil
}

func (g *Gateway) UpdateService(ctx context.Context, service *domain.Service) error {
	conn, err := g.acquire(ctx)
	if err != nil {
		return err
	}
	if err := conn.Services.Update(ctx, service); err != nil {
		return wrapStore("UpdateService", err)
	}
	return nil
}

func (g *Gateway) DeleteService(ctx context.Context, id string) error {
	conn, err := g.acquire(ctx)
	if err != nil {
		return err
	}
	if err := conn.Services.Delete(ctx, id); err != nil {
		return wrapStore("DeleteService", err)
	}
	return nil
}
