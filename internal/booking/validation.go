package booking

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/i18n"
)

// Field поле формы, к которому относится нарушение
type Field string

const (
	FieldPackage Field = "package"
	FieldName    Field = "name"
	FieldPhone   Field = "phone"
	FieldDate    Field = "date"
	FieldTime    Field = "time"
)

// Violation нарушенное правило; не больше одного на поле
type Violation struct {
	Field Field
	Key   i18n.Key
}

// ValidationResult IsValid == (len(Errors) == 0)
type ValidationResult struct {
	IsValid bool
	Errors  []Violation
}

// Messages тексты нарушений в порядке проверки
func (r ValidationResult) Messages(lang domain.Language) []string {
	out := make([]string, 0, len(r.Errors))
	for _, v := range r.Errors {
		out = append(out, i18n.T(lang, v.Key))
	}
	return out
}

// Rules каталог и набор слотов, против которых проверяется заявка
type Rules struct {
	Catalog   domain.Catalog
	TimeSlots []string
}

var phonePattern = regexp.MustCompile(`^[\d+\-() ]+$`)

// ValidateBooking проверяет заявку в порядке: пакет, имя, телефон, дата, время
func ValidateBooking(s Submission, rules Rules) ValidationResult {
	errs := make([]Violation, 0, 5)

	if s.Package == "" || !rules.Catalog.Has(s.Package) {
		errs = append(errs, Violation{Field: FieldPackage, Key: i18n.KeyPackageRequired})
	}

	if countNonSpace(s.Name) < domain.MinNameLength {
		errs = append(errs, Violation{Field: FieldName, Key: i18n.KeyNameRequired})
	}

	phone := strings.TrimSpace(s.Phone)
	switch {
	case utf8.RuneCountInString(phone) < domain.MinPhoneLength:
		errs = append(errs, Violation{Field: FieldPhone, Key: i18n.KeyPhoneRequired})
	case !phonePattern.MatchString(phone):
		errs = append(errs, Violation{Field: FieldPhone, Key: i18n.KeyPhoneFormat})
	}

	if s.Date == nil {
		errs = append(errs, Violation{Field: FieldDate, Key: i18n.KeyDateRequired})
	}

	if s.Time == "" || !containsSlot(rules.TimeSlots, s.Time) {
		errs = append(errs, Violation{Field: FieldTime, Key: i18n.KeyTimeRequired})
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

func containsSlot(slots []string, token string) bool {
	for _, s := range slots {
		if s == token {
			return true
		}
	}
	return false
}
