package select_date

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("select_date: session not found")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("select_date: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_date: internal error")
)
