package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid lead status")
)

// Request модели

// ListLeadsRequest фильтр списка лидов
type ListLeadsRequest struct {
	Status *string `json:"status,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса лида
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// StatusResponse статус с подписью и цветом для админки
type StatusResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// LeadResponse ответ с данными лида
type LeadResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone"`
	Goal         string         `json:"goal,omitempty"`
	Package      string         `json:"package"`
	Date         *string        `json:"date,omitempty"` // "2026-10-19"
	Time         string         `json:"time,omitempty"` // "09:00"
	ReadableDate string         `json:"readableDate,omitempty"`
	Language     string         `json:"language,omitempty"`
	Status       StatusResponse `json:"status"`
	AdminNotes   string         `json:"adminNotes,omitempty"`
	Platform     string         `json:"platform"`
	UserAgent    string         `json:"userAgent,omitempty"`
	UID          string         `json:"uid,omitempty"`
	Referrer     string         `json:"referrer"`
	UTMSource    string         `json:"utmSource,omitempty"`
	UTMMedium    string         `json:"utmMedium,omitempty"`
	UTMCampaign  string         `json:"utmCampaign,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// LeadListResponse список лидов
type LeadListResponse struct {
	Leads []LeadResponse `json:"leads"`
	Total int            `json:"total"`
}

// Конвертеры

// ToDomainLeadStatus проверяет и конвертирует статус
func ToDomainLeadStatus(s string) (domain.LeadStatus, error) {
	status := domain.LeadStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainStatus статус с подписью для отображения
func FromDomainStatus(s domain.LeadStatus) StatusResponse {
	info := s.Info()
	return StatusResponse{Value: string(s), Label: info.Label, Color: info.Color}
}

// FromDomainLead конвертирует domain.Lead в LeadResponse
func FromDomainLead(l *domain.Lead) LeadResponse {
	resp := LeadResponse{
		ID:           l.ID,
		Name:         l.Name,
		Phone:        l.Phone,
		Goal:         l.Goal,
		Package:      l.Package,
		Time:         l.Time,
		ReadableDate: l.ReadableDate,
		Language:     l.Language,
		Status:       FromDomainStatus(l.Status),
		AdminNotes:   l.AdminNotes,
		Platform:     l.Platform,
		UserAgent:    l.UserAgent,
		UID:          l.UID,
		Referrer:     l.Referrer,
		UTMSource:    l.UTMSource,
		UTMMedium:    l.UTMMedium,
		UTMCampaign:  l.UTMCampaign,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	if l.Day != "" {
		day := l.Day
		resp.Date = &day
	}
	return resp
}

// FromDomainLeads конвертирует список лидов
func FromDomainLeads(leads []*domain.Lead) *LeadListResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromDomainLead(l))
	}
	return &LeadListResponse{Leads: out, Total: len(out)}
}
