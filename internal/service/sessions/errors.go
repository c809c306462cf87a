package sessions

import "errors"

var (
	// ErrSessionNotFound сессия не существует или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")
	// ErrTooManySessions достигнут предел живых сессий
	ErrTooManySessions = errors.New("sessions: too many active sessions")
)
