package firebase

import "errors"

var (
	// ErrInit возвращается, когда Firebase App или его клиенты не инициализировались
	ErrInit = errors.New("firebase: initialization failed")

	// ErrFirestore возвращается при ошибке чтения или записи документа
	ErrFirestore = errors.New("firebase: firestore error")

	// ErrDecode возвращается, когда документ не совпадает с ожидаемой структурой
	ErrDecode = errors.New("firebase: invalid document")
)
