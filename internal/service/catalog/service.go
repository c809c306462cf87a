package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/internal/service/catalog/models"
)

// Service каталог пакетов и дополнительных услуг
type Service struct {
	defaults domain.Catalog
	gateway  SettingsGateway
	logger   Logger
}

// NewService создает сервис каталога поверх пакетов из конфига
func NewService(defaults domain.Catalog, gateway SettingsGateway, logger Logger) *Service {
	return &Service{
		defaults: defaults,
		gateway:  gateway,
		logger:   logger,
	}
}

// Catalog каталог для новой сессии; при ошибке хранилища остаются пакеты из конфига
func (s *Service) Catalog(ctx context.Context) domain.Catalog {
	overrides, err := s.gateway.Packages(ctx)
	if err != nil {
		s.logger.Warn("Catalog: failed to load package overrides, using defaults: %v", err)
		return s.defaults
	}
	return s.defaults.WithOverrides(overrides)
}

// Packages каталог с правками для админки
func (s *Service) Packages(ctx context.Context) (*models.PackageListResponse, error) {
	overrides, err := s.gateway.Packages(ctx)
	if err != nil {
		s.logger.Error("Packages: gateway error: %v", err)
		return nil, fmt.Errorf("%w: Packages - gateway error: %v", ErrInternal, err)
	}
	return models.FromDomainCatalog(s.defaults.WithOverrides(overrides)), nil
}

// SavePackages сохраняет правки только для известных пакетов
func (s *Service) SavePackages(ctx context.Context, req *models.UpdatePackagesRequest) (*models.PackageListResponse, error) {
	overrides := req.ToDomainOverrides()
	for key, o := range overrides {
		if !s.defaults.Has(key) {
			s.logger.Warn("SavePackages: unknown package key=%s", key)
			return nil, fmt.Errorf("%w: %s", ErrUnknownPackage, key)
		}
		if o.Label != nil && strings.TrimSpace(*o.Label) == "" {
			return nil, fmt.Errorf("%w: empty label for package %s", ErrInvalidInput, key)
		}
	}

	if err := s.gateway.SavePackages(ctx, overrides); err != nil {
		s.logger.Error("SavePackages: gateway error: %v", err)
		return nil, fmt.Errorf("%w: SavePackages - gateway error: %v", ErrInternal, err)
	}

	s.logger.Info("SavePackages: saved overrides for %d packages", len(overrides))
	return models.FromDomainCatalog(s.defaults.WithOverrides(overrides)), nil
}

// ListServices каталог услуг
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.gateway.Services(ctx)
	if err != nil {
		s.logger.Error("ListServices: gateway error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - gateway error: %v", ErrInternal, err)
	}
	return models.FromDomainServices(services), nil
}

// CreateService добавляет услугу
func (s *Service) CreateService(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	service, err := toDomainService(req)
	if err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	id, err := s.gateway.AddService(ctx, service)
	if err != nil {
		s.logger.Error("CreateService: gateway error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - gateway error: %v", ErrInternal, err)
	}
	service.ID = id

	s.logger.Info("CreateService: created service id=%s name=%s", id, service.Name)
	resp := models.FromDomainService(service)
	return &resp, nil
}

// UpdateService меняет поля услуги
func (s *Service) UpdateService(ctx context.Context, id string, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	service, err := toDomainService(req)
	if err != nil {
		s.logger.Warn("UpdateService: validation failed for id=%s: %v", id, err)
		return nil, err
	}
	service.ID = id

	if err := s.gateway.UpdateService(ctx, service); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			s.logger.Warn("UpdateService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: gateway error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - gateway error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: updated service id=%s", id)
	resp := models.FromDomainService(service)
	return &resp, nil
}

// DeleteService удаляет услугу
func (s *Service) DeleteService(ctx context.Context, id string) error {
	if err := s.gateway.DeleteService(ctx, id); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			s.logger.Warn("DeleteService: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: gateway error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteService - gateway error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: deleted service id=%s", id)
	return nil
}

func toDomainService(req *models.ServiceRequest) (*domain.Service, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxServiceNameLength {
		return nil, fmt.Errorf("%w: service name is too long", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description is too long", ErrInvalidInput)
	}
	return &domain.Service{
		Name:        name,
		Price:       strings.TrimSpace(req.Price),
		Description: strings.TrimSpace(req.Description),
	}, nil
}
