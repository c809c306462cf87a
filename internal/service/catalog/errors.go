package catalog

import "errors"

var (
	// ErrUnknownPackage возвращается для ключа пакета вне каталога
	ErrUnknownPackage = errors.New("unknown package")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
