package models

import (
	"time"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// Request модели

// PackageOverrideRequest правка одного пакета; отсутствующие поля не меняются
type PackageOverrideRequest struct {
	Label     *string `json:"label,omitempty"`
	Price     *string `json:"price,omitempty"`
	BadgeText *string `json:"badgeText,omitempty"`
}

// UpdatePackagesRequest правки пакетов по ключу
type UpdatePackagesRequest struct {
	Packages map[string]PackageOverrideRequest `json:"packages"`
}

// ServiceRequest создание или изменение услуги
type ServiceRequest struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// ToDomainOverrides конвертирует request в правки пакетов
func (r *UpdatePackagesRequest) ToDomainOverrides() map[string]domain.PackageOverride {
	out := make(map[string]domain.PackageOverride, len(r.Packages))
	for key, o := range r.Packages {
		out[key] = domain.PackageOverride{Label: o.Label, Price: o.Price, BadgeText: o.BadgeText}
	}
	return out
}

// Response модели

// PackageResponse пакет с применёнными правками
type PackageResponse struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Price     string `json:"price"`
	BadgeText string `json:"badgeText,omitempty"`
}

// PackageListResponse каталог пакетов в порядке отображения
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainCatalog конвертирует каталог
func FromDomainCatalog(c domain.Catalog) *PackageListResponse {
	out := make([]PackageResponse, 0, c.Len())
	for _, p := range c.All() {
		out = append(out, PackageResponse{Key: p.Key, Label: p.Label, Price: p.Price, BadgeText: p.BadgeText})
	}
	return &PackageListResponse{Packages: out}
}

// FromDomainService конвертирует domain.Service в ServiceResponse
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainServices конвертирует список услуг
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromDomainService(s))
	}
	return &ServiceListResponse{Services: out}
}
