package session_events

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
	"github.com/m04kA/LessonBookingService/internal/service/sessions"
)

const (
	msgSessionNotFound = "сессия не найдена или истекла"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 512
	eventBuffer    = 32
)

type Handler struct {
	sessions SessionRegistry
	upgrader websocket.Upgrader
	logger   Logger
}

// NewHandler allowedOrigins пустой - только same-origin
func NewHandler(sessions SessionRegistry, allowedOrigins []string, logger Logger) *Handler {
	h := &Handler{
		sessions: sessions,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if len(allowedOrigins) > 0 {
		allowed := make(map[string]struct{}, len(allowedOrigins))
		for _, o := range allowedOrigins {
			allowed[o] = struct{}{}
		}
		h.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowed[origin]
			return ok
		}
	}
	return h
}

// Handle GET /api/v1/sessions/{sessionId}/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/{id}/events - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id}/events - Failed to get session: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	// Подписка до апгрейда: события после рукопожатия не теряются
	events, unsubscribe := session.Subscribe(eventBuffer)
	defer unsubscribe()

	// Upgrade сам пишет ответ при ошибке
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/events - Upgrade failed: session=%s, error=%v", sessionID, err)
		return
	}
	defer conn.Close()

	h.logger.Info("GET /sessions/{id}/events - Subscribed: session=%s", sessionID)

	done := make(chan struct{})
	go readLoop(conn, done)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case e, ok := <-events:
			if !ok {
				// сессия закрыта реестром
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
					time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(FromEvent(e)); err != nil {
				h.logger.Warn("GET /sessions/{id}/events - Write failed: session=%s, error=%v", sessionID, err)
				return
			}

		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}

		case <-done:
			h.logger.Info("GET /sessions/{id}/events - Client disconnected: session=%s", sessionID)
			return
		}
	}
}

// readLoop входящие сообщения не нужны, читаем только ради pong и закрытия
func readLoop(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
