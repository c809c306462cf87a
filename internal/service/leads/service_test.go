package leads

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/internal/service/leads/models"
	"github.com/m04kA/LessonBookingService/pkg/logger"
	"github.com/m04kA/LessonBookingService/pkg/ptr"
)

type stubGateway struct {
	leads      []*domain.Lead
	lastFilter *domain.LeadStatus
	updated    map[string]domain.LeadStatus
	err        error
}

func (g *stubGateway) ListLeads(_ context.Context, status *domain.LeadStatus) ([]*domain.Lead, error) {
	g.lastFilter = status
	if g.err != nil {
		return nil, g.err
	}
	return g.leads, nil
}

func (g *stubGateway) UpdateLeadStatus(_ context.Context, id string, status domain.LeadStatus) error {
	if g.err != nil {
		return g.err
	}
	if g.updated == nil {
		g.updated = make(map[string]domain.LeadStatus)
	}
	g.updated[id] = status
	return nil
}

func TestList_FilterAndMapping(t *testing.T) {
	gw := &stubGateway{leads: []*domain.Lead{
		{ID: "a", Name: "Anna", Status: domain.LeadStatusValid, Day: "2026-10-20", Time: "09:00"},
		{ID: "b", Name: "Boris", Status: domain.LeadStatusValid},
	}}
	svc := NewService(gw, logger.NewNop())

	resp, err := svc.List(context.Background(), &models.ListLeadsRequest{Status: ptr.Ptr(" Valid ")})
	require.NoError(t, err)
	require.NotNil(t, gw.lastFilter)
	assert.Equal(t, domain.LeadStatusValid, *gw.lastFilter)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "Валидный", resp.Leads[0].Status.Label)
	assert.Equal(t, "2026-10-20", ptr.Value(resp.Leads[0].Date))
	assert.Nil(t, resp.Leads[1].Date)
}

func TestList_NoFilter(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw, logger.NewNop())

	resp, err := svc.List(context.Background(), &models.ListLeadsRequest{Status: ptr.Ptr("")})
	require.NoError(t, err)
	assert.Nil(t, gw.lastFilter)
	assert.Empty(t, resp.Leads)
}

func TestList_Errors(t *testing.T) {
	svc := NewService(&stubGateway{}, logger.NewNop())
	_, err := svc.List(context.Background(), &models.ListLeadsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	svc = NewService(&stubGateway{err: gateway.ErrStore}, logger.NewNop())
	_, err = svc.List(context.Background(), &models.ListLeadsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdateStatus(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(gw, logger.NewNop())

	require.NoError(t, svc.UpdateStatus(context.Background(), "a", &models.UpdateStatusRequest{Status: "completed"}))
	assert.Equal(t, domain.LeadStatusCompleted, gw.updated["a"])

	err := svc.UpdateStatus(context.Background(), "a", &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), "", &models.UpdateStatusRequest{Status: "new"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	gw := &stubGateway{err: fmt.Errorf("UpdateLeadStatus: %w", gateway.ErrNotFound)}
	svc := NewService(gw, logger.NewNop())

	err := svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "trash"})
	assert.ErrorIs(t, err, ErrLeadNotFound)

	gw.err = errors.New("boom")
	err = svc.UpdateStatus(context.Background(), "x", &models.UpdateStatusRequest{Status: "trash"})
	assert.ErrorIs(t, err, ErrInternal)
}
