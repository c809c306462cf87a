package submit_booking

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// validateRequest отсекает то, что форма виджета прислать не может
// Правила формы (минимальные длины, формат телефона) проверяет сессия.
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if utf8.RuneCountInString(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is longer than %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if utf8.RuneCountInString(req.Goal) > domain.MaxGoalLength {
		return fmt.Errorf("%w: goal is longer than %d characters", ErrInvalidInput, domain.MaxGoalLength)
	}

	return nil
}
