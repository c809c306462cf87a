package firebase

import (
	"time"

	"cloud.google.com/go/firestore"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// Имена коллекций совпадают с теми, что читает админ-панель
const (
	collectionLeads    = "leads"
	collectionSchedule = "admin_schedule"
	collectionSettings = "admin_settings"
	collectionServices = "admin_services"

	docPackages    = "packages"
	fieldUpdatedAt = "updatedAt"
)

// leadDoc документ лида в коллекции leads
type leadDoc struct {
	Name         string     `firestore:"name"`
	Phone        string     `firestore:"phone"`
	Goal         string     `firestore:"goal"`
	Package      string     `firestore:"package"`
	Date         *time.Time `firestore:"date"`
	Day          string     `firestore:"day"`
	Time         string     `firestore:"time"`
	ReadableDate string     `firestore:"readableDate"`
	Language     string     `firestore:"language"`
	Status       string     `firestore:"status"`
	AdminNotes   string     `firestore:"adminNotes"`
	Platform     string     `firestore:"platform"`
	UserAgent    string     `firestore:"userAgent"`
	UID          string     `firestore:"uid"`
	Referrer     string     `firestore:"referrer"`
	UTMSource    string     `firestore:"utmSource"`
	UTMMedium    string     `firestore:"utmMedium"`
	UTMCampaign  string     `firestore:"utmCampaign"`
	CreatedAt    time.Time  `firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time  `firestore:"updatedAt,serverTimestamp"`
}

// toLeadDoc нулевые CreatedAt/UpdatedAt заменяются временем сервера Firestore
func toLeadDoc(l *domain.Lead) leadDoc {
	return leadDoc{
		Name:         l.Name,
		Phone:        l.Phone,
		Goal:         l.Goal,
		Package:      l.Package,
		Date:         l.Date,
		Day:          l.Day,
		Time:         l.Time,
		ReadableDate: l.ReadableDate,
		Language:     l.Language,
		Status:       string(l.Status),
		AdminNotes:   l.AdminNotes,
		Platform:     l.Platform,
		UserAgent:    l.UserAgent,
		UID:          l.UID,
		Referrer:     l.Referrer,
		UTMSource:    l.UTMSource,
		UTMMedium:    l.UTMMedium,
		UTMCampaign:  l.UTMCampaign,
	}
}

func fromLeadDoc(id string, d leadDoc) *domain.Lead {
	return &domain.Lead{
		ID:           id,
		Name:         d.Name,
		Phone:        d.Phone,
		Goal:         d.Goal,
		Package:      d.Package,
		Date:         d.Date,
		Day:          d.Day,
		Time:         d.Time,
		ReadableDate: d.ReadableDate,
		Language:     d.Language,
		Status:       domain.LeadStatus(d.Status),
		AdminNotes:   d.AdminNotes,
		Platform:     d.Platform,
		UserAgent:    d.UserAgent,
		UID:          d.UID,
		Referrer:     d.Referrer,
		UTMSource:    d.UTMSource,
		UTMMedium:    d.UTMMedium,
		UTMCampaign:  d.UTMCampaign,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// scheduleDoc документ дня в admin_schedule, id документа = YYYY-MM-DD
type scheduleDoc struct {
	Slots     []string  `firestore:"slots"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

// serviceDoc документ услуги в admin_services
type serviceDoc struct {
	Name        string    `firestore:"name"`
	Price       string    `firestore:"price"`
	Description string    `firestore:"description"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `firestore:"updatedAt,serverTimestamp"`
}

func fromServiceDoc(id string, d serviceDoc) *domain.Service {
	return &domain.Service{
		ID:          id,
		Name:        d.Name,
		Price:       d.Price,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// packagesToData пакеты лежат полями верхнего уровня рядом с updatedAt
func packagesToData(packages map[string]domain.PackageOverride) map[string]interface{} {
	data := make(map[string]interface{}, len(packages)+1)
	for key, p := range packages {
		fields := make(map[string]interface{}, 3)
		if p.Label != nil {
			fields["label"] = *p.Label
		}
		if p.Price != nil {
			fields["price"] = *p.Price
		}
		if p.BadgeText != nil {
			fields["badgeText"] = *p.BadgeText
		}
		data[key] = fields
	}
	data[fieldUpdatedAt] = firestore.ServerTimestamp
	return data
}

// packagesFromData поля, не похожие на пакет, пропускаются
func packagesFromData(data map[string]interface{}) map[string]domain.PackageOverride {
	out := make(map[string]domain.PackageOverride, len(data))
	for key, raw := range data {
		if key == fieldUpdatedAt {
			continue
		}
		fields, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		out[key] = domain.PackageOverride{
			Label:     stringField(fields, "label"),
			Price:     stringField(fields, "price"),
			BadgeText: stringField(fields, "badgeText"),
		}
	}
	return out
}

func stringField(fields map[string]interface{}, name string) *string {
	v, ok := fields[name].(string)
	if !ok {
		return nil
	}
	return &v
}
