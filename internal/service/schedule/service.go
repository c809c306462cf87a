package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
)

// Service редактор расписания для админки
type Service struct {
	gateway   ScheduleGateway
	timeSlots []string
	location  *time.Location
	clock     TimeProvider
	logger    Logger
}

// NewService создает сервис расписания
func NewService(gateway ScheduleGateway, timeSlots []string, location *time.Location, clock TimeProvider, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		gateway:   gateway,
		timeSlots: timeSlots,
		location:  location,
		clock:     clock,
		logger:    logger,
	}
}

// Month настроенные дни указанного месяца по возрастанию даты
func (s *Service) Month(ctx context.Context, year int, month int) (*MonthResponse, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}

	days, err := s.gateway.Schedule(ctx)
	if err != nil {
		s.logger.Error("Month: gateway error: %v", err)
		return nil, fmt.Errorf("%w: Month - gateway error: %v", ErrInternal, err)
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	resp := &MonthResponse{Year: year, Month: month, Days: []DayResponse{}, TimeSlots: s.timeSlots}
	for _, d := range days {
		if strings.HasPrefix(d.Date, prefix) {
			resp.Days = append(resp.Days, DayResponse{Date: d.Date, Slots: d.Slots})
		}
	}
	sort.Slice(resp.Days, func(i, j int) bool { return resp.Days[i].Date < resp.Days[j].Date })
	return resp, nil
}

// Day слоты дня; ненастроенный день возвращается с пустым списком
func (s *Service) Day(ctx context.Context, day string) (*DayResponse, error) {
	if _, err := domain.ParseDay(day, s.location); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, day)
	}

	schedule, err := s.gateway.ScheduleForDate(ctx, day)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return &DayResponse{Date: day, Slots: []string{}}, nil
		}
		s.logger.Error("Day: gateway error for day=%s: %v", day, err)
		return nil, fmt.Errorf("%w: Day - gateway error: %v", ErrInternal, err)
	}
	return &DayResponse{Date: schedule.Date, Slots: schedule.Slots}, nil
}

// SetDay сохраняет слоты дня в порядке набора слотов, без повторов
func (s *Service) SetDay(ctx context.Context, day string, req *SetDayRequest) (*DayResponse, error) {
	date, err := domain.ParseDay(day, s.location)
	if err != nil {
		s.logger.Warn("SetDay: invalid date=%s", day)
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, day)
	}
	if date.Before(domain.StartOfDay(s.clock.Now(), s.location)) {
		s.logger.Warn("SetDay: date=%s is in the past", day)
		return nil, ErrPastDate
	}

	slots, err := s.normalizeSlots(req.Slots)
	if err != nil {
		s.logger.Warn("SetDay: %v", err)
		return nil, err
	}

	if err := s.gateway.SetScheduleForDate(ctx, day, slots); err != nil {
		s.logger.Error("SetDay: gateway error for day=%s: %v", day, err)
		return nil, fmt.Errorf("%w: SetDay - gateway error: %v", ErrInternal, err)
	}

	s.logger.Info("SetDay: day=%s now has %d slots", day, len(slots))
	return &DayResponse{Date: day, Slots: slots}, nil
}

func (s *Service) normalizeSlots(in []string) ([]string, error) {
	selected := make(map[string]struct{}, len(in))
	for _, token := range in {
		token = strings.TrimSpace(token)
		if !s.known(token) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, token)
		}
		selected[token] = struct{}{}
	}

	out := make([]string, 0, len(selected))
	for _, token := range s.timeSlots {
		if _, ok := selected[token]; ok {
			out = append(out, token)
		}
	}
	return out, nil
}

func (s *Service) known(token string) bool {
	for _, slot := range s.timeSlots {
		if slot == token {
			return true
		}
	}
	return false
}
