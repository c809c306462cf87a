package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createService "github.com/m04kA/LessonBookingService/internal/api/handlers/create_service"
	createSession "github.com/m04kA/LessonBookingService/internal/api/handlers/create_session"
	deleteService "github.com/m04kA/LessonBookingService/internal/api/handlers/delete_service"
	getHealth "github.com/m04kA/LessonBookingService/internal/api/handlers/get_health"
	getLanguage "github.com/m04kA/LessonBookingService/internal/api/handlers/get_language"
	getPackages "github.com/m04kA/LessonBookingService/internal/api/handlers/get_packages"
	getSchedule "github.com/m04kA/LessonBookingService/internal/api/handlers/get_schedule"
	getScheduleDay "github.com/m04kA/LessonBookingService/internal/api/handlers/get_schedule_day"
	getSession "github.com/m04kA/LessonBookingService/internal/api/handlers/get_session"
	listLeads "github.com/m04kA/LessonBookingService/internal/api/handlers/list_leads"
	listServices "github.com/m04kA/LessonBookingService/internal/api/handlers/list_services"
	navigateMonth "github.com/m04kA/LessonBookingService/internal/api/handlers/navigate_month"
	selectDate "github.com/m04kA/LessonBookingService/internal/api/handlers/select_date"
	selectPackage "github.com/m04kA/LessonBookingService/internal/api/handlers/select_package"
	selectTime "github.com/m04kA/LessonBookingService/internal/api/handlers/select_time"
	sessionEvents "github.com/m04kA/LessonBookingService/internal/api/handlers/session_events"
	setLanguage "github.com/m04kA/LessonBookingService/internal/api/handlers/set_language"
	setSchedule "github.com/m04kA/LessonBookingService/internal/api/handlers/set_schedule"
	submitBooking "github.com/m04kA/LessonBookingService/internal/api/handlers/submit_booking"
	updateLeadStatus "github.com/m04kA/LessonBookingService/internal/api/handlers/update_lead_status"
	updatePackages "github.com/m04kA/LessonBookingService/internal/api/handlers/update_packages"
	updateService "github.com/m04kA/LessonBookingService/internal/api/handlers/update_service"
	"github.com/m04kA/LessonBookingService/internal/api/middleware"
	"github.com/m04kA/LessonBookingService/pkg/metrics"
)

// Handlers все обработчики API
type Handlers struct {
	Health *getHealth.Handler

	CreateSession *createSession.Handler
	GetSession    *getSession.Handler
	NavigateMonth *navigateMonth.Handler
	SelectDate    *selectDate.Handler
	SelectTime    *selectTime.Handler
	SelectPackage *selectPackage.Handler
	SubmitBooking *submitBooking.Handler
	SessionEvents *sessionEvents.Handler
	GetPackages   *getPackages.Handler
	GetLanguage   *getLanguage.Handler
	SetLanguage   *setLanguage.Handler

	ListLeads        *listLeads.Handler
	UpdateLeadStatus *updateLeadStatus.Handler
	GetSchedule      *getSchedule.Handler
	GetScheduleDay   *getScheduleDay.Handler
	SetSchedule      *setSchedule.Handler
	UpdatePackages   *updatePackages.Handler
	ListServices     *listServices.Handler
	CreateService    *createService.Handler
	UpdateService    *updateService.Handler
	DeleteService    *deleteService.Handler
}

// Config зависимости роутера
type Config struct {
	Handlers       Handlers
	Metrics        *metrics.Metrics // nil - метрики выключены
	MetricsPath    string
	// MetricsHandler отдаёт реестр метрик; nil - promhttp.Handler()
	MetricsHandler http.Handler
	AdminSecret    string
	SubmitLimiter  *middleware.RateLimiter
	SessionLimiter *middleware.RateLimiter
	Logger         middleware.Logger
}

// New собирает роутер со всеми маршрутами
func New(cfg *Config) *mux.Router {
	h := cfg.Handlers
	r := mux.NewRouter()

	if cfg.Metrics != nil {
		metricsHandler := cfg.MetricsHandler
		if metricsHandler == nil {
			metricsHandler = promhttp.Handler()
		}
		r.Use(middleware.MetricsMiddleware(cfg.Metrics))
		r.Handle(cfg.MetricsPath, metricsHandler).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", h.Health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (виджет бронирования)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.Visitor)

	// Создание сессии и отправка заявки ограничены по IP
	var createSession http.Handler = http.HandlerFunc(h.CreateSession.Handle)
	if cfg.SessionLimiter != nil {
		createSession = cfg.SessionLimiter.Middleware(cfg.Logger)(createSession)
	}
	public.Handle("/sessions", createSession).Methods(http.MethodPost)
	public.HandleFunc("/sessions/{sessionId}", h.GetSession.Handle).Methods(http.MethodGet)
	public.HandleFunc("/sessions/{sessionId}/month", h.NavigateMonth.Handle).Methods(http.MethodPost)
	public.HandleFunc("/sessions/{sessionId}/date", h.SelectDate.Handle).Methods(http.MethodPost)
	public.HandleFunc("/sessions/{sessionId}/time", h.SelectTime.Handle).Methods(http.MethodPost)
	public.HandleFunc("/sessions/{sessionId}/package", h.SelectPackage.Handle).Methods(http.MethodPost)
	public.HandleFunc("/sessions/{sessionId}/events", h.SessionEvents.Handle).Methods(http.MethodGet)

	var submit http.Handler = http.HandlerFunc(h.SubmitBooking.Handle)
	if cfg.SubmitLimiter != nil {
		submit = cfg.SubmitLimiter.Middleware(cfg.Logger)(submit)
	}
	public.Handle("/sessions/{sessionId}/submit", submit).Methods(http.MethodPost)

	public.HandleFunc("/packages", h.GetPackages.Handle).Methods(http.MethodGet)
	public.HandleFunc("/language", h.GetLanguage.Handle).Methods(http.MethodGet)
	public.HandleFunc("/language", h.SetLanguage.Handle).Methods(http.MethodPut)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer JWT)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminJWT(cfg.AdminSecret, cfg.Logger))

	// --- Лиды ---
	admin.HandleFunc("/leads", h.ListLeads.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/leads/{leadId}/status", h.UpdateLeadStatus.Handle).Methods(http.MethodPatch)

	// --- Расписание ---
	admin.HandleFunc("/schedule", h.GetSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/{date}", h.GetScheduleDay.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedule/{date}", h.SetSchedule.Handle).Methods(http.MethodPut)

	// --- Цены пакетов ---
	admin.HandleFunc("/packages", h.GetPackages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/packages", h.UpdatePackages.Handle).Methods(http.MethodPut)

	// --- Услуги ---
	admin.HandleFunc("/services", h.ListServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", h.CreateService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", h.UpdateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", h.DeleteService.Handle).Methods(http.MethodDelete)

	return r
}
