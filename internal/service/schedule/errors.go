package schedule

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrPastDate возвращается при попытке изменить прошедший день
	ErrPastDate = errors.New("date is in the past")

	// ErrInvalidSlot возвращается для времени вне набора слотов
	ErrInvalidSlot = errors.New("invalid time slot")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
