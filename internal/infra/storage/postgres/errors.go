package postgres

import "errors"

var (
	// ErrOpen возвращается, когда пул не удалось открыть или БД не отвечает
	ErrOpen = errors.New("postgres: failed to open database")

	// ErrMigrate возвращается при ошибке применения миграций
	ErrMigrate = errors.New("postgres: migration failed")
)
