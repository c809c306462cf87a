package get_language

// LanguageResponse HTTP response model
type LanguageResponse struct {
	Language  string   `json:"language"`
	Supported []string `json:"supported"`
}
