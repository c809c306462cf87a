package leads

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/internal/service/leads/models"
)

// Service сервис для работы с лидами в админке
type Service struct {
	gateway LeadGateway
	logger  Logger
}

// NewService создает новый экземпляр сервиса лидов
func NewService(gateway LeadGateway, logger Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// List получает лиды, новые первыми
// Опционально фильтрует по статусу
func (s *Service) List(ctx context.Context, req *models.ListLeadsRequest) (*models.LeadListResponse, error) {
	var status *domain.LeadStatus
	if req.Status != nil && *req.Status != "" {
		st, err := models.ToDomainLeadStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status filter=%s", *req.Status)
			return nil, ErrInvalidStatus
		}
		status = &st
	}

	leads, err := s.gateway.ListLeads(ctx, status)
	if err != nil {
		s.logger.Error("List: gateway error: %v", err)
		return nil, fmt.Errorf("%w: List - gateway error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d leads (status=%v)", len(leads), status)
	return models.FromDomainLeads(leads), nil
}

// UpdateStatus меняет статус лида
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	if id == "" {
		return fmt.Errorf("%w: empty lead id", ErrInvalidInput)
	}

	status, err := models.ToDomainLeadStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for lead id=%s", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.gateway.UpdateLeadStatus(ctx, id, status); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			s.logger.Warn("UpdateStatus: lead id=%s not found", id)
			return ErrLeadNotFound
		}
		s.logger.Error("UpdateStatus: gateway error for lead id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - gateway error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: lead id=%s moved to status=%s", id, status)
	return nil
}
