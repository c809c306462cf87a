package booking

import (
	"strings"
	"time"

	"github.com/m04kA/LessonBookingService/internal/gateway"
)

// FormFields свободные поля формы
type FormFields struct {
	Name  string
	Phone string
	Goal  string
}

func (f FormFields) trimmed() FormFields {
	return FormFields{
		Name:  strings.TrimSpace(f.Name),
		Phone: strings.TrimSpace(f.Phone),
		Goal:  strings.TrimSpace(f.Goal),
	}
}

// Submission снимок заявки на момент отправки
// Передаётся по значению и после сборки не меняется
type Submission struct {
	Name         string
	Phone        string
	Goal         string
	Package      string
	Date         *time.Time // начало выбранного дня
	Day          string     // YYYY-MM-DD
	Time         string
	ReadableDate string
	Language     string
}

func (s Submission) draft(meta gateway.Metadata) gateway.LeadDraft {
	var date *time.Time
	if s.Date != nil {
		d := *s.Date
		date = &d
	}
	return gateway.LeadDraft{
		Name:         s.Name,
		Phone:        s.Phone,
		Goal:         s.Goal,
		Package:      s.Package,
		Date:         date,
		Day:          s.Day,
		Time:         s.Time,
		ReadableDate: s.ReadableDate,
		Language:     s.Language,
		Meta:         meta,
	}
}
