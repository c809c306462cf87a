package preference

import "errors"

var (
	// ErrPreferenceNotFound посетитель ещё не выбирал язык
	ErrPreferenceNotFound = errors.New("preference: not found")

	// ErrStore ошибка чтения или записи
	ErrStore = errors.New("preference: store error")
)
