package settings

import (
	"errors"
	"fmt"

	"github.com/m04kA/LessonBookingService/internal/gateway"
)

var (
	// ErrSettingNotFound возвращается, когда документ настроек ещё не создан
	ErrSettingNotFound = fmt.Errorf("settings.repository: setting %w", gateway.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")

	// ErrEncoding возвращается, когда jsonb не совпадает с ожидаемой структурой
	ErrEncoding = errors.New("settings.repository: invalid document encoding")
)
