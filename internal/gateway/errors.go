package gateway

import "errors"

var (
	// ErrConnectionFailed bootstrap хранилища не удался
	ErrConnectionFailed = errors.New("gateway: connection failed")

	// ErrNotFound документ не найден; хранилища оборачивают его своими ошибками
	ErrNotFound = errors.New("gateway: not found")

	// ErrStore ошибка чтения или записи в хранилище
	ErrStore = errors.New("gateway: store error")
)

// StoreError ошибка хранилища вместе с его собственным сообщением
// Reason уходит посетителю без изменений, Err остаётся для логов и errors.Is
type StoreError struct {
	Reason string
	Err    error
}

// NewStoreError оборачивает err; пустой reason означает "сообщения нет"
func NewStoreError(reason string, err error) error {
	return &StoreError{Reason: reason, Err: err}
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// StoreReason сообщение хранилища: Reason из StoreError, иначе полный текст ошибки
func StoreReason(err error) string {
	var se *StoreError
	if errors.As(err, &se) && se.Reason != "" {
		return se.Reason
	}
	return err.Error()
}
