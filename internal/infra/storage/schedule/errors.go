package schedule

import (
	"errors"
	"fmt"

	"github.com/m04kA/LessonBookingService/internal/gateway"
)

var (
	// ErrDayNotFound возвращается, когда для дня нет расписания
	ErrDayNotFound = fmt.Errorf("schedule.repository: day %w", gateway.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
