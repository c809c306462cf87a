package set_language

// SetLanguageRequest HTTP request model
type SetLanguageRequest struct {
	Language string `json:"language"`
	// SessionID язык открытой сессии меняется вместе с предпочтением
	SessionID string `json:"sessionId,omitempty"`
}

// SetLanguageResponse HTTP response model
type SetLanguageResponse struct {
	Language string `json:"language"`
}
