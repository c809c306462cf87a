package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/i18n"
)

func testRules() Rules {
	return Rules{Catalog: testCatalog(), TimeSlots: domain.DefaultTimeSlots}
}

func TestValidateBooking_Valid(t *testing.T) {
	now := time.Now()
	result := ValidateBooking(Submission{
		Name:    "Jo",
		Phone:   "12345",
		Package: "single",
		Date:    &now,
		Time:    "09:00",
	}, testRules())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateBooking_EmptyRecordReportsEveryFieldInOrder(t *testing.T) {
	result := ValidateBooking(Submission{}, testRules())

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 5)

	fields := make([]Field, 0, len(result.Errors))
	for _, v := range result.Errors {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []Field{FieldPackage, FieldName, FieldPhone, FieldDate, FieldTime}, fields)

	assert.Equal(t, []string{
		"Выберите пакет обучения",
		"Укажите имя (минимум 2 символа)",
		"Укажите номер телефона",
		"Выберите дату в календаре",
		"Выберите время занятия",
	}, result.Messages(domain.LanguageRU))
}

func TestValidateBooking_Rules(t *testing.T) {
	now := time.Now()
	valid := Submission{Name: "Anna", Phone: "+49 (151) 123-45", Package: "vip", Date: &now, Time: "17:00"}

	tests := []struct {
		name   string
		mutate func(s *Submission)
		want   Violation
	}{
		{"unknown package", func(s *Submission) { s.Package = "gold" }, Violation{FieldPackage, i18n.KeyPackageRequired}},
		{"one letter name", func(s *Submission) { s.Name = " A " }, Violation{FieldName, i18n.KeyNameRequired}},
		{"spaces do not count", func(s *Submission) { s.Name = "A \t " }, Violation{FieldName, i18n.KeyNameRequired}},
		{"short phone", func(s *Submission) { s.Phone = " 1234 " }, Violation{FieldPhone, i18n.KeyPhoneRequired}},
		{"letters in phone", func(s *Submission) { s.Phone = "call me maybe" }, Violation{FieldPhone, i18n.KeyPhoneFormat}},
		{"no date", func(s *Submission) { s.Date = nil }, Violation{FieldDate, i18n.KeyDateRequired}},
		{"time outside slots", func(s *Submission) { s.Time = "10:00" }, Violation{FieldTime, i18n.KeyTimeRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			result := ValidateBooking(s, testRules())
			assert.False(t, result.IsValid)
			assert.Equal(t, []Violation{tt.want}, result.Errors)
		})
	}

	t.Run("two letter name with inner space passes", func(t *testing.T) {
		s := valid
		s.Name = "J o"
		assert.True(t, ValidateBooking(s, testRules()).IsValid)
	})
}
