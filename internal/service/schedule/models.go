package schedule

// DayResponse слоты одного дня
type DayResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// MonthResponse настроенные дни месяца
type MonthResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []DayResponse `json:"days"`
	// Все допустимые слоты для редактора
	TimeSlots []string `json:"timeSlots"`
}

// SetDayRequest новый набор слотов; пустой список снимает день из расписания
type SetDayRequest struct {
	Slots []string `json:"slots"`
}
