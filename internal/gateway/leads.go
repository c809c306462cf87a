package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// CreateLead сохраняет заявку; ошибки не пробрасываются, а превращаются в Failed
func (g *Gateway) CreateLead(ctx context.Context, draft LeadDraft) LeadResult {
	conn, err := g.acquire(ctx)
	if err != nil {
		g.logger.Warn("CreateLead: storage unavailable: %v", err)
		return Failed(MsgDatabaseUnavailable)
	}

	lead := g.normalizeLead(draft, conn.UID)

	id, err := conn.Leads.Create(ctx, lead)
	if err != nil {
		g.logger.Error("CreateLead: failed to save lead: %v", err)
		return Failed(StoreReason(err))
	}

	g.logger.Info("CreateLead: lead created id=%s, package=%s, day=%s, time=%s", id, lead.Package, lead.Day, lead.Time)
	return Ok(id)
}

// normalizeLead подставляет значения по умолчанию и метаданные
func (g *Gateway) normalizeLead(d LeadDraft, uid string) *domain.Lead {
	platform := g.opts.Platform
	if platform == "" {
		platform = domain.DefaultPlatform
	}

	return &domain.Lead{
		Name:         orDefault(strings.TrimSpace(d.Name), domain.AnonymousName),
		Phone:        orDefault(strings.TrimSpace(d.Phone), domain.UnknownPhone),
		Goal:         strings.TrimSpace(d.Goal),
		Package:      orDefault(d.Package, domain.DefaultPackageKey),
		Date:         d.Date,
		Day:          d.Day,
		Time:         d.Time,
		ReadableDate: d.ReadableDate,
		Language:     d.Language,
		Status:       domain.LeadStatusNew,
		Platform:     platform,
		UserAgent:    d.Meta.UserAgent,
		UID:          uid,
		Referrer:     orDefault(strings.TrimSpace(d.Meta.Referrer), domain.DefaultReferrer),
		UTMSource:    truncate(d.Meta.UTMSource, domain.MaxUTMLength),
		UTMMedium:    truncate(d.Meta.UTMMedium, domain.MaxUTMLength),
		UTMCampaign:  truncate(d.Meta.UTMCampaign, domain.MaxUTMLength),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// ListLeads лиды, новые первыми; nil status - без фильтра
func (g *Gateway) ListLeads(ctx context.Context, status *domain.LeadStatus) ([]*domain.Lead, error) {
	conn, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := conn.Leads.List(ctx, domain.LeadFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("%w: ListLeads: %v", ErrStore, err)
	}
	return leads, nil
}

// UpdateLeadStatus меняет статус лида
func (g *Gateway) UpdateLeadStatus(ctx context.Context, id string, status domain.LeadStatus) error {
	conn, err := g.acquire(ctx)
	if err != nil {
		return err
	}
	if err := conn.Leads.UpdateStatus(ctx, id, status); err != nil {
		return wrapStore("UpdateLeadStatus", err)
	}
	return nil
}

// BusySlots время занятых слотов на день (лиды в статусах new, valid)
func (g *Gateway) BusySlots(ctx context.Context, day string) ([]string, error) {
	conn, err := g.acquire(ctx)
	if err != nil {
		return nil, err
	}
	slots, err := conn.Leads.BusySlots(ctx, day, domain.BusyStatuses)
	if err != nil {
		return nil, fmt.Errorf("%w: BusySlots: %v", ErrStore, err)
	}
	return slots, nil
}

// wrapStore сохраняет ErrNotFound для вызывающего, остальное - ErrStore
func wrapStore(op string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrStore, op, err)
}
