package select_date

import "github.com/m04kA/LessonBookingService/internal/booking"

// Request модель запроса на выбор дня
type Request struct {
	SessionID string
	Date      string // "2026-10-21"
}

// Response модель ответа
type Response struct {
	Accepted bool // false для прошедшего или заблокированного дня
	// BusyLoaded false, если занятые слоты получить не удалось
	BusyLoaded bool
	Snapshot   booking.Snapshot
}
