package booking

import "errors"

var (
	// ErrSubmissionInProgress повторная отправка, пока первая ещё не завершилась
	ErrSubmissionInProgress = errors.New("booking: submission already in progress")

	// ErrAlreadySubmitted сессия уже завершилась успешной заявкой
	ErrAlreadySubmitted = errors.New("booking: booking already submitted")
)
