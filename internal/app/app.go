package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createServiceHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/create_service"
	createSessionHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/create_session"
	deleteServiceHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/delete_service"
	getHealthHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/get_health"
	getLanguageHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/get_language"
	getPackagesHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/get_packages"
	getScheduleHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/get_schedule"
	getScheduleDayHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/get_schedule_day"
	getSessionHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/get_session"
	listLeadsHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/list_leads"
	listServicesHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/list_services"
	navigateMonthHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/navigate_month"
	selectDateHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/select_date"
	selectPackageHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/select_package"
	selectTimeHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/select_time"
	sessionEventsHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/session_events"
	setLanguageHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/set_language"
	setScheduleHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/set_schedule"
	submitBookingHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/submit_booking"
	updateLeadStatusHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/update_lead_status"
	updatePackagesHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/update_packages"
	updateServiceHandler "github.com/m04kA/LessonBookingService/internal/api/handlers/update_service"
	"github.com/m04kA/LessonBookingService/internal/api/middleware"
	"github.com/m04kA/LessonBookingService/internal/api/router"
	"github.com/m04kA/LessonBookingService/internal/booking"
	"github.com/m04kA/LessonBookingService/internal/config"
	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	catalogService "github.com/m04kA/LessonBookingService/internal/service/catalog"
	languageService "github.com/m04kA/LessonBookingService/internal/service/language"
	leadsService "github.com/m04kA/LessonBookingService/internal/service/leads"
	scheduleService "github.com/m04kA/LessonBookingService/internal/service/schedule"
	sessionsService "github.com/m04kA/LessonBookingService/internal/service/sessions"
	selectDateUC "github.com/m04kA/LessonBookingService/internal/usecase/select_date"
	submitBookingUC "github.com/m04kA/LessonBookingService/internal/usecase/submit_booking"
	"github.com/m04kA/LessonBookingService/pkg/logger"
	"github.com/m04kA/LessonBookingService/pkg/metrics"
)

const sweepInterval = time.Minute

// Deps внешние зависимости, которые выбирает main
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Metrics     *metrics.Metrics // nil - метрики выключены
	// Gatherer реестр, который отдаётся на /metrics; nil - prometheus.DefaultGatherer
	Gatherer    prometheus.Gatherer
	Connector   gateway.Connector
	Preferences languageService.PreferenceStore
	Clock       booking.TimeProvider // nil - системное время
}

// App собранный сервис
type App struct {
	Gateway        *gateway.Gateway
	Sessions       *sessionsService.Service
	SubmitLimiter  *middleware.RateLimiter
	SessionLimiter *middleware.RateLimiter
	Handler        http.Handler

	logger *logger.Logger
}

// New собирает сервисы, use cases, handlers и роутер
func New(deps Deps) (*App, error) {
	cfg := deps.Config
	log := deps.Logger
	clock := deps.Clock
	if clock == nil {
		clock = &booking.RealTimeProvider{}
	}

	loc, err := cfg.Booking.LoadLocation()
	if err != nil {
		return nil, fmt.Errorf("app: location: %w", err)
	}
	firstWeekday, err := cfg.Booking.Weekday()
	if err != nil {
		return nil, fmt.Errorf("app: first weekday: %w", err)
	}

	// Persistence Gateway: подключение лениво, один bootstrap на всех
	gw := gateway.New(deps.Connector, gateway.Options{
		BootstrapTimeout: cfg.Storage.BootstrapTimeoutDuration(),
		Platform:         cfg.Booking.Platform,
	}, deps.Metrics, log)

	// Сервисы
	catalogSvc := catalogService.NewService(defaultCatalog(cfg.Booking.Packages), gw, log)
	leadsSvc := leadsService.NewService(gw, log)
	scheduleSvc := scheduleService.NewService(gw, cfg.Booking.TimeSlots, loc, clock, log)
	languageSvc := languageService.NewService(deps.Preferences, domain.Language(cfg.Booking.DefaultLanguage), log)
	sessionsSvc := sessionsService.NewService(gw, catalogSvc, sessionsService.Settings{
		TimeSlots:    cfg.Booking.TimeSlots,
		BlockedDays:  cfg.Booking.BlockedDays,
		Location:     loc,
		FirstWeekday: firstWeekday,
		TTL:          time.Duration(cfg.Booking.SessionTTL) * time.Minute,
		MaxSessions:  cfg.Booking.MaxSessions,
	}, clock, deps.Metrics, log)

	// Use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(sessionsSvc, deps.Metrics, log)
	selectDateUseCase := selectDateUC.NewUseCase(sessionsSvc, gw, log)

	proxies, err := middleware.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("app: trusted proxies: %w", err)
	}
	submitLimiter := middleware.NewRateLimiter(cfg.RateLimit.SubmitPerMinute, cfg.RateLimit.Burst, proxies)
	sessionLimiter := middleware.NewRateLimiter(cfg.RateLimit.SessionPerMinute, cfg.RateLimit.SessionBurst, proxies)

	// Handlers
	h := router.Handlers{
		Health: getHealthHandler.NewHandler(gw, sessionsSvc),

		CreateSession: createSessionHandler.NewHandler(sessionsSvc, languageSvc, log),
		GetSession:    getSessionHandler.NewHandler(sessionsSvc, log),
		NavigateMonth: navigateMonthHandler.NewHandler(sessionsSvc, log),
		SelectDate:    selectDateHandler.NewHandler(selectDateUseCase, log),
		SelectTime:    selectTimeHandler.NewHandler(sessionsSvc, log),
		SelectPackage: selectPackageHandler.NewHandler(sessionsSvc, log),
		SubmitBooking: submitBookingHandler.NewHandler(submitBookingUseCase, log),
		SessionEvents: sessionEventsHandler.NewHandler(sessionsSvc, cfg.Server.AllowedOrigins, log),
		GetPackages:   getPackagesHandler.NewHandler(catalogSvc, log),
		GetLanguage:   getLanguageHandler.NewHandler(languageSvc, log),
		SetLanguage:   setLanguageHandler.NewHandler(languageSvc, sessionsSvc, log),

		ListLeads:        listLeadsHandler.NewHandler(leadsSvc, log),
		UpdateLeadStatus: updateLeadStatusHandler.NewHandler(leadsSvc, log),
		GetSchedule:      getScheduleHandler.NewHandler(scheduleSvc, log),
		GetScheduleDay:   getScheduleDayHandler.NewHandler(scheduleSvc, log),
		SetSchedule:      setScheduleHandler.NewHandler(scheduleSvc, log),
		UpdatePackages:   updatePackagesHandler.NewHandler(catalogSvc, log),
		ListServices:     listServicesHandler.NewHandler(catalogSvc, log),
		CreateService:    createServiceHandler.NewHandler(catalogSvc, log),
		UpdateService:    updateServiceHandler.NewHandler(catalogSvc, log),
		DeleteService:    deleteServiceHandler.NewHandler(catalogSvc, log),
	}

	var (
		routerMetrics  *metrics.Metrics
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		routerMetrics = deps.Metrics
		gatherer := deps.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		metricsHandler = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}

	r := router.New(&router.Config{
		Handlers:      h,
		Metrics:        routerMetrics,
		MetricsPath:    cfg.Metrics.Path,
		MetricsHandler: metricsHandler,
		AdminSecret:    cfg.Admin.JWTSecret,
		SubmitLimiter:  submitLimiter,
		SessionLimiter: sessionLimiter,
		Logger:         log,
	})

	return &App{
		Gateway:        gw,
		Sessions:       sessionsSvc,
		SubmitLimiter:  submitLimiter,
		SessionLimiter: sessionLimiter,
		Handler:        r,
		logger:         log,
	}, nil
}

// RunBackground чистит истёкшие сессии и неактивные лимитеры, пока ctx жив
func (a *App) RunBackground(ctx context.Context) {
	go a.Sessions.Run(ctx, sweepInterval)

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := a.SubmitLimiter.Sweep() + a.SessionLimiter.Sweep(); n > 0 {
					a.logger.Debug("RateLimiter: evicted %d idle limiters", n)
				}
			}
		}
	}()
}

func defaultCatalog(packages []config.PackageConfig) domain.Catalog {
	out := make([]domain.Package, 0, len(packages))
	for _, p := range packages {
		out = append(out, domain.Package{
			Key:       p.Key,
			Label:     p.Label,
			Price:     p.Price,
			BadgeText: p.BadgeText,
		})
	}
	return domain.NewCatalog(out)
}
