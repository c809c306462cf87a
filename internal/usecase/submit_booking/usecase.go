package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LessonBookingService/internal/booking"
	"github.com/m04kA/LessonBookingService/internal/service/sessions"
)

// UseCase use case для отправки заявки из сессии виджета
type UseCase struct {
	sessions SessionRegistry
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRegistry, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет use case отправки заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s", req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию
	session, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("SubmitBooking: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	// 3. Отправляем; сессия сама держит защиту от двойной отправки
	result, err := session.Submit(ctx, booking.FormFields{
		Name:  req.Name,
		Phone: req.Phone,
		Goal:  req.Goal,
	}, req.Meta)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSubmissionInProgress):
			uc.metrics.IncSubmission(outcomeInProgress)
			return nil, ErrSubmissionInProgress
		case errors.Is(err, booking.ErrAlreadySubmitted):
			uc.metrics.IncSubmission(outcomeAlreadySubmitted)
			return nil, ErrAlreadySubmitted
		default:
			uc.logger.Error("SubmitBooking: session=%s submit error: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: submit: %v", ErrInternal, err)
		}
	}

	// 4. Метрики и ответ
	uc.metrics.IncSubmission(string(result.Outcome))
	resp := &Response{
		Outcome:  result.Outcome,
		LeadID:   result.LeadID,
		Message:  result.Message,
		Snapshot: session.Snapshot(),
	}
	for i, v := range result.Violations {
		uc.metrics.IncValidationError(string(v.Field))
		resp.Errors = append(resp.Errors, FieldError{Field: string(v.Field), Message: result.Errors[i]})
	}

	uc.logger.Info("SubmitBooking: session=%s outcome=%s lead=%s", req.SessionID, result.Outcome, result.LeadID)
	return resp, nil
}
