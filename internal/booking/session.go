package booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/internal/i18n"
)

// SubmitState состояние отправки заявки
type SubmitState string

const (
	StateIdle       SubmitState = "idle"
	StateSubmitting SubmitState = "submitting"
	StateSuccess    SubmitState = "success"
)

// Outcome результат одного вызова Submit
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeRejected Outcome = "rejected"
	OutcomeFailed   Outcome = "failed"
)

// SubmitResult что увидит посетитель после Submit
type SubmitResult struct {
	Outcome    Outcome
	LeadID     string
	Violations []Violation
	Errors     []string // локализованные тексты нарушений
	Message    string   // причина отказа хранилища
}

// Options параметры сессии
type Options struct {
	ID           string
	Catalog      domain.Catalog
	TimeSlots    []string
	BlockedDays  []string
	Location     *time.Location
	FirstWeekday time.Weekday // нулевое значение - воскресенье
	Language     domain.Language
}

// Session состояние виджета бронирования одного посетителя
type Session struct {
	id       string
	gateway  LeadGateway
	notifier *Notifier
	clock    TimeProvider
	logger   Logger

	mu        sync.Mutex
	calendar  *Calendar
	packages  *PackageSelector
	lang      domain.Language
	form      FormFields
	state     SubmitState
	leadID    string
	lastError string
	touchedAt time.Time
}

// NewSession создает сессию в состоянии Idle
func NewSession(opts Options, gw LeadGateway, clock TimeProvider, logger Logger) *Session {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	lang := opts.Language
	if !lang.IsSupported() {
		lang = domain.LanguageDE
	}

	return &Session{
		id:       opts.ID,
		gateway:  gw,
		notifier: NewNotifier(),
		clock:    clock,
		logger:   logger,
		calendar: NewCalendar(CalendarOptions{
			TimeSlots:    opts.TimeSlots,
			BlockedDays:  opts.BlockedDays,
			Location:     opts.Location,
			FirstWeekday: opts.FirstWeekday,
		}, clock),
		packages:  NewPackageSelector(opts.Catalog),
		lang:      lang,
		state:     StateIdle,
		touchedAt: clock.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Subscribe подписка на уведомления сессии
func (s *Session) Subscribe(buffer int) (<-chan Event, func()) {
	return s.notifier.Subscribe(buffer)
}

// Close закрывает подписки
func (s *Session) Close() {
	s.notifier.Close()
}

// TouchedAt время последнего обращения
func (s *Session) TouchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

func (s *Session) touchLocked() {
	s.touchedAt = s.clock.Now()
}

func (s *Session) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// SetLanguage меняет язык сообщений; неизвестный язык игнорируется
func (s *Session) SetLanguage(lang domain.Language) bool {
	if !lang.IsSupported() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
	s.touchLocked()
	return true
}

// NavigateMonth листает календарь
func (s *Session) NavigateMonth(delta int) MonthView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	s.calendar.NavigateMonth(delta)
	year, month := s.calendar.ViewMonth()
	s.notifier.Publish(Event{Type: EventMonthChanged, Year: year, Month: month})
	return s.calendar.Month()
}

// SelectDate выбирает день и сбрасывает время
func (s *Session) SelectDate(date time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	if !s.calendar.SelectDate(date) {
		return false
	}
	selected, _ := s.calendar.SelectedDate()
	s.notifier.Publish(Event{Type: EventDateSelected, Date: selected})
	return true
}

// ApplyBusySlots отмечает занятые слоты дня, если он всё ещё выбран
func (s *Session) ApplyBusySlots(day string, slots []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.calendar.SetBusySlots(day, slots) {
		return false
	}
	s.notifier.Publish(Event{Type: EventBusySlots, BusySlots: append([]string(nil), slots...)})
	return true
}

// SelectTime выбирает слот выбранного дня
func (s *Session) SelectTime(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	if !s.calendar.SelectTime(token) {
		return false
	}
	s.notifier.Publish(Event{Type: EventTimeSelected, Time: token})
	return true
}

// SelectPackage выбирает пакет; неизвестный ключ игнорируется
func (s *Session) SelectPackage(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	pkg, ok := s.packages.SelectPackage(key)
	if !ok {
		return false
	}
	s.notifier.Publish(Event{Type: EventPackageSelected, Package: &pkg})
	return true
}

// CurrentSelection выбранный пакет
func (s *Session) CurrentSelection() (domain.Package, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.packages.CurrentSelection()
}

// State состояние отправки
func (s *Session) State() SubmitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit собирает, проверяет и отправляет заявку
// Пока идёт отправка, повторный вызов возвращает ErrSubmissionInProgress без обращения к хранилищу.
// После успеха сессия закрыта для новых заявок.
func (s *Session) Submit(ctx context.Context, form FormFields, meta gateway.Metadata) (SubmitResult, error) {
	s.mu.Lock()
	s.touchLocked()

	switch s.state {
	case StateSubmitting:
		s.mu.Unlock()
		return SubmitResult{}, ErrSubmissionInProgress
	case StateSuccess:
		s.mu.Unlock()
		return SubmitResult{}, ErrAlreadySubmitted
	}

	s.form = form.trimmed()
	submission := s.composeLocked()
	lang := s.lang

	validation := ValidateBooking(submission, Rules{
		Catalog:   s.packages.Catalog(),
		TimeSlots: s.calendar.TimeSlots(),
	})
	if !validation.IsValid {
		s.mu.Unlock()
		s.logger.Warn("Submit: session=%s rejected with %d violations", s.id, len(validation.Errors))
		return SubmitResult{
			Outcome:    OutcomeRejected,
			Violations: validation.Errors,
			Errors:     validation.Messages(lang),
		}, nil
	}

	s.setStateLocked(StateSubmitting, "", "")
	s.mu.Unlock()

	s.logger.Info("Submit: session=%s sending lead package=%s day=%s time=%s",
		s.id, submission.Package, submission.Day, submission.Time)
	res := s.gateway.CreateLead(ctx, submission.draft(meta))

	s.mu.Lock()
	defer s.mu.Unlock()

	if res.IsOk() {
		s.leadID = res.ID()
		s.lastError = ""
		s.setStateLocked(StateSuccess, res.ID(), "")
		s.logger.Info("Submit: session=%s lead created id=%s", s.id, res.ID())
		return SubmitResult{Outcome: OutcomeSuccess, LeadID: res.ID()}, nil
	}

	msg := failureMessage(lang, res.Reason())
	s.lastError = msg
	s.setStateLocked(StateIdle, "", msg)
	s.logger.Warn("Submit: session=%s gateway rejected lead: %s", s.id, msg)
	return SubmitResult{Outcome: OutcomeFailed, Message: msg}, nil
}

// failureMessage причина хранилища как есть, иначе общий текст на языке посетителя
func failureMessage(lang domain.Language, reason string) string {
	switch reason {
	case "":
		return i18n.T(lang, i18n.KeySubmitFailed)
	case gateway.MsgDatabaseUnavailable:
		return i18n.T(lang, i18n.KeyDatabaseUnavailable)
	default:
		return reason
	}
}

func (s *Session) setStateLocked(state SubmitState, leadID, message string) {
	s.state = state
	s.notifier.Publish(Event{Type: EventSubmissionState, State: state, LeadID: leadID, Message: message})
}

func (s *Session) composeLocked() Submission {
	sub := Submission{
		Name:     s.form.Name,
		Phone:    s.form.Phone,
		Goal:     s.form.Goal,
		Package:  s.packages.SelectedKey(),
		Language: string(s.lang),
	}
	if date, ok := s.calendar.SelectedDate(); ok {
		sub.Date = &date
		sub.Day = s.calendar.SelectedDay()
		sub.Time, _ = s.calendar.SelectedTime()
		sub.ReadableDate = i18n.ReadableDate(s.lang, date, sub.Time)
	}
	return sub
}

// Snapshot состояние сессии для отрисовки
type Snapshot struct {
	ID           string
	Language     domain.Language
	State        SubmitState
	LeadID       string
	LastError    string
	Month        MonthView
	MonthTitle   string
	SelectedDate *time.Time
	SelectedTime string
	ReadableDate string
	Slots        []SlotView
	Package      *domain.Package
	Catalog      []domain.Package
	Form         FormFields
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	month := s.calendar.Month()
	snap := Snapshot{
		ID:         s.id,
		Language:   s.lang,
		State:      s.state,
		LeadID:     s.leadID,
		LastError:  s.lastError,
		Month:      month,
		MonthTitle: i18n.MonthTitle(s.lang, month.Year, month.Month),
		Slots:      s.calendar.Slots(),
		Catalog:    s.packages.Catalog().All(),
		Form:       s.form,
	}
	if date, ok := s.calendar.SelectedDate(); ok {
		snap.SelectedDate = &date
		snap.SelectedTime, _ = s.calendar.SelectedTime()
		snap.ReadableDate = i18n.ReadableDate(s.lang, date, snap.SelectedTime)
	}
	if pkg, ok := s.packages.CurrentSelection(); ok {
		snap.Package = &pkg
	}
	return snap
}

// SelectedDay выбранный день как YYYY-MM-DD
func (s *Session) SelectedDay() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendar.SelectedDay()
}

// Location часовой пояс календаря сессии
func (s *Session) Location() *time.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calendar.Location()
}
