package submit_booking

import (
	"net/http"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/internal/i18n"
	submitBooking "github.com/m04kA/LessonBookingService/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Goal        string `json:"goal"`
	Referrer    string `json:"referrer,omitempty"`
	UTMSource   string `json:"utmSource,omitempty"`
	UTMMedium   string `json:"utmMedium,omitempty"`
	UTMCampaign string `json:"utmCampaign,omitempty"`
}

// FieldErrorResponse нарушение правила формы
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Outcome string                    `json:"outcome"`
	LeadID  string                    `json:"leadId,omitempty"`
	Message string                    `json:"message,omitempty"`
	Errors  []FieldErrorResponse      `json:"errors,omitempty"`
	Session *handlers.SessionResponse `json:"session"`
}

// ToUseCaseRequest referrer страницы берётся из тела, иначе из заголовка
func (req *SubmitBookingRequest) ToUseCaseRequest(sessionID string, r *http.Request) *submitBooking.Request {
	referrer := req.Referrer
	if referrer == "" {
		referrer = r.Referer()
	}
	return &submitBooking.Request{
		SessionID: sessionID,
		Name:      req.Name,
		Phone:     req.Phone,
		Goal:      req.Goal,
		Meta: gateway.Metadata{
			Referrer:    referrer,
			UserAgent:   r.UserAgent(),
			UTMSource:   req.UTMSource,
			UTMMedium:   req.UTMMedium,
			UTMCampaign: req.UTMCampaign,
		},
	}
}

func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	out := &SubmitBookingResponse{
		Outcome: string(resp.Outcome),
		LeadID:  resp.LeadID,
		Message: resp.Message,
		Session: handlers.FromSnapshot(resp.Snapshot),
	}
	if resp.LeadID != "" && out.Message == "" {
		out.Message = i18n.T(resp.Snapshot.Language, i18n.KeySubmitSuccess)
	}
	for _, e := range resp.Errors {
		out.Errors = append(out.Errors, FieldErrorResponse{Field: e.Field, Message: e.Message})
	}
	return out
}
