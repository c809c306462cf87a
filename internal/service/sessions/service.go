package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/LessonBookingService/internal/booking"
	"github.com/m04kA/LessonBookingService/internal/domain"
)

// Settings общие для всех сессий настройки календаря
type Settings struct {
	TimeSlots    []string
	BlockedDays  []string
	Location     *time.Location
	FirstWeekday time.Weekday // нулевое значение - воскресенье
	TTL          time.Duration
	// MaxSessions предел живых сессий; 0 - без предела
	MaxSessions int
}

// Service реестр сессий бронирования в памяти процесса
type Service struct {
	gateway  booking.LeadGateway
	catalog  CatalogProvider
	settings Settings
	clock    TimeProvider
	metrics  Metrics
	logger   Logger

	mu       sync.RWMutex
	sessions map[string]*booking.Session
}

// NewService создает реестр; metrics может быть nil
func NewService(
	gateway booking.LeadGateway,
	catalog CatalogProvider,
	settings Settings,
	clock TimeProvider,
	metrics Metrics,
	logger Logger,
) *Service {
	if clock == nil {
		clock = &booking.RealTimeProvider{}
	}
	return &Service{
		gateway:  gateway,
		catalog:  catalog,
		settings: settings,
		clock:    clock,
		metrics:  metrics,
		logger:   logger,
		sessions: make(map[string]*booking.Session),
	}
}

// Create новая сессия с каталогом, актуальным на момент создания
// При заполненном реестре сначала вытесняются истёкшие сессии, затем ErrTooManySessions
func (s *Service) Create(ctx context.Context, lang domain.Language) (*booking.Session, error) {
	session := booking.NewSession(booking.Options{
		ID:           uuid.NewString(),
		Catalog:      s.catalog.Catalog(ctx),
		TimeSlots:    s.settings.TimeSlots,
		BlockedDays:  s.settings.BlockedDays,
		Location:     s.settings.Location,
		FirstWeekday: s.settings.FirstWeekday,
		Language:     lang,
	}, s.gateway, s.clock, s.logger)

	s.mu.Lock()
	var expired []*booking.Session
	if s.full() {
		expired = s.evictExpiredLocked()
	}
	if s.full() {
		count := len(s.sessions)
		s.mu.Unlock()
		s.closeAll(expired, count)
		session.Close()
		s.logger.Warn("Sessions: registry is full (active=%d, max=%d)", count, s.settings.MaxSessions)
		return nil, ErrTooManySessions
	}
	s.sessions[session.ID()] = session
	count := len(s.sessions)
	s.mu.Unlock()

	s.closeAll(expired, count)
	s.reportCount(count)
	s.logger.Info("Sessions: created session=%s lang=%s (active=%d)", session.ID(), lang, count)
	return session, nil
}

// full вызывается под s.mu
func (s *Service) full() bool {
	return s.settings.MaxSessions > 0 && len(s.sessions) >= s.settings.MaxSessions
}

// evictExpiredLocked убирает истёкшие сессии из реестра, закрывать их должен вызывающий
func (s *Service) evictExpiredLocked() []*booking.Session {
	var expired []*booking.Session
	for id, session := range s.sessions {
		if s.expired(session) {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	return expired
}

func (s *Service) closeAll(sessions []*booking.Session, count int) {
	for _, session := range sessions {
		session.Close()
	}
	if len(sessions) > 0 {
		s.reportCount(count)
		s.logger.Info("Sessions: swept %d expired sessions (active=%d)", len(sessions), count)
	}
}

// Get сессия по id; истёкшая считается отсутствующей
func (s *Service) Get(id string) (*booking.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || s.expired(session) {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Remove закрывает и удаляет сессию
func (s *Service) Remove(id string) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	if ok {
		session.Close()
		s.reportCount(count)
	}
}

// Count число сессий в реестре
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Service) expired(session *booking.Session) bool {
	if s.settings.TTL <= 0 {
		return false
	}
	return s.clock.Now().Sub(session.TouchedAt()) > s.settings.TTL
}

// Sweep удаляет истёкшие сессии и возвращает их число
func (s *Service) Sweep() int {
	s.mu.Lock()
	expired := s.evictExpiredLocked()
	count := len(s.sessions)
	s.mu.Unlock()

	s.closeAll(expired, count)
	return len(expired)
}

// Run периодически чистит реестр до отмены ctx
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Service) reportCount(n int) {
	if s.metrics != nil {
		s.metrics.SetActiveSessions(n)
	}
}
