package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// Key идентификатор переводимой строки
type Key string

const (
	KeyPackageRequired Key = "validation.package"
	KeyNameRequired    Key = "validation.name"
	KeyPhoneRequired   Key = "validation.phone"
	KeyPhoneFormat     Key = "validation.phone_format"
	KeyDateRequired    Key = "validation.date"
	KeyTimeRequired    Key = "validation.time"

	KeySubmitFailed        Key = "submit.failed"
	KeyDatabaseUnavailable Key = "submit.database_unavailable"
	KeySubmitSuccess       Key = "submit.success"
)

var catalog = map[domain.Language]map[Key]string{
	domain.LanguageRU: {
		KeyPackageRequired:     "Выберите пакет обучения",
		KeyNameRequired:        "Укажите имя (минимум 2 символа)",
		KeyPhoneRequired:       "Укажите номер телефона",
		KeyPhoneFormat:         "Номер телефона может содержать только цифры, +, -, скобки и пробелы",
		KeyDateRequired:        "Выберите дату в календаре",
		KeyTimeRequired:        "Выберите время занятия",
		KeySubmitFailed:        "Неизвестная ошибка. Попробуйте позже.",
		KeyDatabaseUnavailable: "Не удалось подключиться к базе данных.",
		KeySubmitSuccess:       "Спасибо! Мы свяжемся с вами в ближайшее время.",
	},
	domain.LanguageDE: {
		KeyPackageRequired:     "Bitte wählen Sie ein Paket",
		KeyNameRequired:        "Bitte geben Sie Ihren Namen ein (mindestens 2 Zeichen)",
		KeyPhoneRequired:       "Bitte geben Sie Ihre Telefonnummer ein",
		KeyPhoneFormat:         "Die Telefonnummer darf nur Ziffern, +, -, Klammern und Leerzeichen enthalten",
		KeyDateRequired:        "Bitte wählen Sie ein Datum im Kalender",
		KeyTimeRequired:        "Bitte wählen Sie eine Uhrzeit",
		KeySubmitFailed:        "Unbekannter Fehler. Bitte versuchen Sie es später erneut.",
		KeyDatabaseUnavailable: "Verbindung zur Datenbank fehlgeschlagen.",
		KeySubmitSuccess:       "Vielen Dank! Wir melden uns in Kürze.",
	},
	domain.LanguageKO: {
		KeyPackageRequired:     "수업 패키지를 선택하세요",
		KeyNameRequired:        "이름을 입력하세요 (최소 2자)",
		KeyPhoneRequired:       "전화번호를 입력하세요",
		KeyPhoneFormat:         "전화번호에는 숫자, +, -, 괄호, 공백만 사용할 수 있습니다",
		KeyDateRequired:        "달력에서 날짜를 선택하세요",
		KeyTimeRequired:        "수업 시간을 선택하세요",
		KeySubmitFailed:        "알 수 없는 오류입니다. 나중에 다시 시도하세요.",
		KeyDatabaseUnavailable: "데이터베이스에 연결할 수 없습니다.",
		KeySubmitSuccess:       "감사합니다! 곧 연락드리겠습니다.",
	},
}

// T перевод ключа; неизвестный язык падает на немецкий, неизвестный ключ возвращается как есть
func T(lang domain.Language, key Key) string {
	if table, ok := catalog[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := catalog[domain.LanguageDE][key]; ok {
		return s
	}
	return string(key)
}

// browserLanguages языки, которые подхватываются из браузера; остальные уходят в язык по умолчанию
var browserLanguages = map[string]domain.Language{
	"ko": domain.LanguageKO,
	"ru": domain.LanguageRU,
}

// Resolve порядок: сохранённое значение -> основной язык браузера (только ko, ru) -> fallback
func Resolve(stored string, acceptLanguage string, fallback domain.Language) domain.Language {
	if lang := domain.Language(stored); lang.IsSupported() {
		return lang
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			base, _ := tags[0].Base()
			if lang, ok := browserLanguages[base.String()]; ok {
				return lang
			}
		}
	}

	if fallback.IsSupported() {
		return fallback
	}
	return domain.LanguageDE
}

var monthNames = map[domain.Language][12]string{
	domain.LanguageDE: {"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	domain.LanguageRU: {"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря"},
}

var monthTitles = map[domain.Language][12]string{
	domain.LanguageDE: monthNames[domain.LanguageDE],
	domain.LanguageRU: {"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
		"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь"},
}

// ReadableDate "19. Oktober 2026 um 09:00" / "19 октября 2026 в 09:00" / "2026년 10월 19일 09:00"
// Пустой timeToken даёт только дату
func ReadableDate(lang domain.Language, date time.Time, timeToken string) string {
	var b strings.Builder

	switch lang {
	case domain.LanguageRU:
		fmt.Fprintf(&b, "%d %s %d", date.Day(), monthNames[lang][date.Month()-1], date.Year())
		if timeToken != "" {
			b.WriteString(" в " + timeToken)
		}
	case domain.LanguageKO:
		fmt.Fprintf(&b, "%d년 %d월 %d일", date.Year(), int(date.Month()), date.Day())
		if timeToken != "" {
			b.WriteString(" " + timeToken)
		}
	default:
		fmt.Fprintf(&b, "%d. %s %d", date.Day(), monthNames[domain.LanguageDE][date.Month()-1], date.Year())
		if timeToken != "" {
			b.WriteString(" um " + timeToken)
		}
	}

	return b.String()
}

// MonthTitle заголовок календаря: "Oktober 2026", "Октябрь 2026", "2026년 10월"
func MonthTitle(lang domain.Language, year int, month time.Month) string {
	switch lang {
	case domain.LanguageKO:
		return fmt.Sprintf("%d년 %d월", year, int(month))
	case domain.LanguageRU:
		return fmt.Sprintf("%s %d", monthTitles[lang][month-1], year)
	default:
		return fmt.Sprintf("%s %d", monthTitles[domain.LanguageDE][month-1], year)
	}
}
