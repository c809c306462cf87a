package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/LessonBookingService/internal/app"
	"github.com/m04kA/LessonBookingService/internal/config"
	"github.com/m04kA/LessonBookingService/internal/gateway"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/memory"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/postgres"
	"github.com/m04kA/LessonBookingService/internal/infra/storage/preference"
	"github.com/m04kA/LessonBookingService/internal/integrations/firebase"
	languageService "github.com/m04kA/LessonBookingService/internal/service/language"
	"github.com/m04kA/LessonBookingService/pkg/logger"
	"github.com/m04kA/LessonBookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting LessonBookingService...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем хранилище; само подключение произойдёт при первом обращении
	connector := newConnector(cfg, metricsCollector)

	// Языковые предпочтения посетителей
	preferences := newPreferenceStore(cfg, log)

	application, err := app.New(app.Deps{
		Config:      cfg,
		Logger:      log,
		Metrics:     metricsCollector,
		Connector:   connector,
		Preferences: preferences,
	})
	if err != nil {
		log.Fatal("Failed to build application: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Ранний bootstrap: ошибка не фатальна, следующий запрос попробует снова
	if cfg.Storage.ConnectOnStart {
		if err := application.Gateway.EnsureConnected(ctx); err != nil {
			log.Warn("Storage is not available yet: %v", err)
		} else {
			log.Info("Storage connected (uid=%s)", application.Gateway.UID())
		}
	}

	application.RunBackground(ctx)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      application.Handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновую очистку сессий
	stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := application.Gateway.Close(); err != nil {
		log.Error("Failed to close storage: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func newConnector(cfg *config.Config, m *metrics.Metrics) gateway.Connector {
	switch cfg.Storage.Driver {
	case config.DriverFirestore:
		return firebase.NewConnector(firebase.Options{
			ProjectID:       cfg.Firebase.ProjectID,
			CredentialsFile: cfg.Firebase.CredentialsFile,
		})
	case config.DriverMemory:
		return memory.NewConnector(memory.NewStore())
	default:
		return postgres.NewConnector(postgres.Options{
			DSN:             cfg.Database.DSN(),
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		}, m)
	}
}

func newPreferenceStore(cfg *config.Config, log *logger.Logger) languageService.PreferenceStore {
	if !cfg.Redis.Enabled {
		log.Info("Language preferences are kept in memory")
		return preference.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	log.Info("Language preferences are kept in Redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	return preference.NewRedisStore(client, time.Duration(cfg.Redis.TTLDays)*24*time.Hour)
}
