package submit_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrSubmissionInProgress возвращается при повторной отправке до завершения первой
	ErrSubmissionInProgress = errors.New("submit_booking: submission already in progress")

	// ErrAlreadySubmitted возвращается, когда заявка из этой сессии уже сохранена
	ErrAlreadySubmitted = errors.New("submit_booking: booking already submitted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
