package gateway

import "time"

// Metadata сведения о запросе, которыми помечается лид
type Metadata struct {
	Referrer    string
	UserAgent   string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
}

// LeadDraft данные заявки до нормализации
type LeadDraft struct {
	Name         string
	Phone        string
	Goal         string
	Package      string
	Date         *time.Time
	Day          string
	Time         string
	ReadableDate string
	Language     string
	Meta         Metadata
}

// LeadResult результат создания лида: либо id, либо причина отказа
type LeadResult struct {
	id     string
	reason string
	ok     bool
}

// Ok успешный результат
func Ok(id string) LeadResult {
	return LeadResult{id: id, ok: true}
}

// Failed отказ; пустая причина означает, что хранилище не вернуло сообщения
func Failed(reason string) LeadResult {
	return LeadResult{reason: reason}
}

func (r LeadResult) IsOk() bool {
	return r.ok
}

func (r LeadResult) ID() string {
	return r.id
}

func (r LeadResult) Reason() string {
	return r.reason
}

// Options параметры фасада
type Options struct {
	BootstrapTimeout time.Duration
	Platform         string
}
