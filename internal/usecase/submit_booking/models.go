package submit_booking

import (
	"github.com/m04kA/LessonBookingService/internal/booking"
	"github.com/m04kA/LessonBookingService/internal/gateway"
)

// Outcome строки для метрик, не входящие в booking.Outcome
const (
	outcomeInProgress       = "in_progress"
	outcomeAlreadySubmitted = "already_submitted"
)

// Request модель запроса на отправку заявки
type Request struct {
	SessionID string
	Name      string
	Phone     string
	Goal      string
	Meta      gateway.Metadata // referrer, user agent, utm-метки
}

// FieldError нарушение правила формы с локализованным текстом
type FieldError struct {
	Field   string
	Message string
}

// Response модель ответа
type Response struct {
	Outcome  booking.Outcome
	LeadID   string       // при успехе
	Errors   []FieldError // при отказе валидации, в порядке проверки
	Message  string       // при отказе хранилища
	Snapshot booking.Snapshot
}
