package leads

import (
	"errors"
	"fmt"

	"github.com/m04kA/LessonBookingService/internal/gateway"
)

var (
	// ErrLeadNotFound возвращается, когда лид не найден
	ErrLeadNotFound = fmt.Errorf("leads.repository: lead %w", gateway.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("leads.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("leads.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("leads.repository: failed to scan row")
)
