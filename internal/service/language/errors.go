package language

import "errors"

var (
	// ErrUnsupportedLanguage язык не входит в список поддерживаемых
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
