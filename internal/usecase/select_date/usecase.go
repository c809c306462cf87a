package select_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/service/sessions"
)

// UseCase выбор дня с подгрузкой занятых слотов
type UseCase struct {
	sessions SessionRegistry
	gateway  BusySlotsGateway
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRegistry, gateway BusySlotsGateway, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		gateway:  gateway,
		logger:   logger,
	}
}

// Execute выполняет use case выбора дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	session, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			uc.logger.Warn("SelectDate: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	date, err := domain.ParseDay(req.Date, session.Location())
	if err != nil {
		uc.logger.Warn("SelectDate: session=%s invalid date=%q", req.SessionID, req.Date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if !session.SelectDate(date) {
		uc.logger.Info("SelectDate: session=%s date=%s rejected", req.SessionID, req.Date)
		return &Response{Accepted: false, Snapshot: session.Snapshot()}, nil
	}

	// Ответ приходит после выбора: если посетитель успел выбрать другой день,
	// сессия проигнорирует устаревший список
	day := session.SelectedDay()
	busy, err := uc.gateway.BusySlots(ctx, day)
	if err != nil {
		uc.logger.Warn("SelectDate: session=%s failed to load busy slots for %s: %v", req.SessionID, day, err)
		return &Response{Accepted: true, BusyLoaded: false, Snapshot: session.Snapshot()}, nil
	}
	session.ApplyBusySlots(day, busy)

	uc.logger.Info("SelectDate: session=%s date=%s busy=%v", req.SessionID, day, busy)
	return &Response{Accepted: true, BusyLoaded: true, Snapshot: session.Snapshot()}, nil
}
