package create_session

// CreateSessionRequest HTTP request model, тело необязательно
type CreateSessionRequest struct {
	Language *string `json:"language,omitempty"`
}
