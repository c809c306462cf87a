package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres  = "postgres"
	DriverFirestore = "firestore"
	// DriverMemory данные живут до рестарта; для локального запуска
	DriverMemory = "memory"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Firebase  FirebaseConfig  `toml:"firebase"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Booking   BookingConfig   `toml:"booking"`
	Admin     AdminConfig     `toml:"admin"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	// AllowedOrigins источники, с которых виджет открывает websocket; пусто - same-origin
	AllowedOrigins []string `toml:"allowed_origins"`
	// TrustedProxies IP или CIDR прокси, чьему X-Forwarded-For можно верить; пусто - никому
	TrustedProxies []string `toml:"trusted_proxies"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор backend'а Persistence Gateway
type StorageConfig struct {
	Driver           string `toml:"driver"`
	BootstrapTimeout int    `toml:"bootstrap_timeout"` // секунды
	// ConnectOnStart пытаться подключиться при старте (ошибка не фатальна)
	ConnectOnStart bool `toml:"connect_on_start"`
}

type FirebaseConfig struct {
	ProjectID       string `toml:"project_id"`
	CredentialsFile string `toml:"credentials_file"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig хранилище языковых предпочтений; при Enabled=false используется память
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTLDays  int    `toml:"ttl_days"`
}

type PackageConfig struct {
	Key       string `toml:"key"`
	Label     string `toml:"label"`
	Price     string `toml:"price"`
	BadgeText string `toml:"badge_text"`
}

type BookingConfig struct {
	TimeSlots       []string        `toml:"time_slots"`
	Packages        []PackageConfig `toml:"packages"`
	BlockedDays     []string        `toml:"blocked_days"`
	Location        string          `toml:"location"`
	FirstWeekday    string          `toml:"first_weekday"`
	DefaultLanguage string          `toml:"default_language"`
	Platform        string          `toml:"platform"`
	SessionTTL      int             `toml:"session_ttl"` // минуты
	MaxSessions     int             `toml:"max_sessions"`
}

type AdminConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type RateLimitConfig struct {
	SubmitPerMinute  float64 `toml:"submit_per_minute"`
	Burst            int     `toml:"burst"`
	SessionPerMinute float64 `toml:"session_per_minute"`
	SessionBurst     int     `toml:"session_burst"`
}

// Load читает TOML-файл, подмешивает переменные окружения (.env поддерживается) и проверяет результат
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию; поля, заданные в файле, их перекрывают
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "lesson_booking"},
		Storage: StorageConfig{Driver: DriverPostgres, BootstrapTimeout: 10},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{Addr: "localhost:6379", TTLDays: 365},
		Booking: BookingConfig{
			TimeSlots: []string{"09:00", "11:00", "13:00", "15:00", "17:00", "19:00"},
			Packages: []PackageConfig{
				{Key: "single", Label: "Пробный урок", Price: "45€", BadgeText: "Пробный (45€)"},
				{Key: "pack10", Label: "Пакет 10 уроков", Price: "400€", BadgeText: "Курс (400€)"},
				{Key: "vip", Label: "VIP Терапия", Price: "600€", BadgeText: "VIP (600€)"},
			},
			Location:        "Europe/Berlin",
			FirstWeekday:    "monday",
			DefaultLanguage: "de",
			Platform:        "web_v2",
			SessionTTL:      120,
			MaxSessions:     10000,
		},
		RateLimit: RateLimitConfig{SubmitPerMinute: 6, Burst: 3, SessionPerMinute: 30, SessionBurst: 10},
	}
}

// applyEnv секреты из окружения перекрывают файл
func (c *Config) applyEnv() {
	if v := os.Getenv("ADMIN_JWT_SECRET"); v != "" {
		c.Admin.JWTSecret = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("FIREBASE_CREDENTIALS_FILE"); v != "" {
		c.Firebase.CredentialsFile = v
	}
	if v := os.Getenv("FIREBASE_PROJECT_ID"); v != "" {
		c.Firebase.ProjectID = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Database.DBName == "" {
			return fmt.Errorf("%w: database.dbname is required for postgres driver", ErrInvalidConfig)
		}
	case DriverFirestore:
		if c.Firebase.ProjectID == "" {
			return fmt.Errorf("%w: firebase.project_id is required for firestore driver", ErrInvalidConfig)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if len(c.Booking.TimeSlots) == 0 {
		return fmt.Errorf("%w: booking.time_slots is empty", ErrInvalidConfig)
	}
	seenSlots := make(map[string]struct{}, len(c.Booking.TimeSlots))
	for _, slot := range c.Booking.TimeSlots {
		if _, err := time.Parse("15:04", slot); err != nil {
			return fmt.Errorf("%w: booking.time_slots: bad slot %q", ErrInvalidConfig, slot)
		}
		if _, dup := seenSlots[slot]; dup {
			return fmt.Errorf("%w: booking.time_slots: duplicate slot %q", ErrInvalidConfig, slot)
		}
		seenSlots[slot] = struct{}{}
	}

	if len(c.Booking.Packages) == 0 {
		return fmt.Errorf("%w: booking.packages is empty", ErrInvalidConfig)
	}
	seenPackages := make(map[string]struct{}, len(c.Booking.Packages))
	for _, p := range c.Booking.Packages {
		if p.Key == "" {
			return fmt.Errorf("%w: booking.packages: empty key", ErrInvalidConfig)
		}
		if _, dup := seenPackages[p.Key]; dup {
			return fmt.Errorf("%w: booking.packages: duplicate key %q", ErrInvalidConfig, p.Key)
		}
		seenPackages[p.Key] = struct{}{}
	}

	for _, day := range c.Booking.BlockedDays {
		if _, err := time.Parse("2006-01-02", day); err != nil {
			return fmt.Errorf("%w: booking.blocked_days: bad date %q", ErrInvalidConfig, day)
		}
	}

	if _, err := c.Booking.LoadLocation(); err != nil {
		return fmt.Errorf("%w: booking.location: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Booking.Weekday(); err != nil {
		return fmt.Errorf("%w: booking.first_weekday: %v", ErrInvalidConfig, err)
	}

	switch c.Booking.DefaultLanguage {
	case "de", "ru", "ko":
	default:
		return fmt.Errorf("%w: booking.default_language must be one of de, ru, ko", ErrInvalidConfig)
	}

	if c.Admin.JWTSecret == "" {
		return fmt.Errorf("%w: admin.jwt_secret is required (or ADMIN_JWT_SECRET)", ErrInvalidConfig)
	}
	if c.RateLimit.SubmitPerMinute <= 0 || c.RateLimit.Burst <= 0 ||
		c.RateLimit.SessionPerMinute <= 0 || c.RateLimit.SessionBurst <= 0 {
		return fmt.Errorf("%w: ratelimit values must be positive", ErrInvalidConfig)
	}
	if c.Booking.MaxSessions <= 0 {
		return fmt.Errorf("%w: booking.max_sessions must be positive", ErrInvalidConfig)
	}
	for _, p := range c.Server.TrustedProxies {
		if !validProxy(p) {
			return fmt.Errorf("%w: server.trusted_proxies: bad address %q", ErrInvalidConfig, p)
		}
	}
	return nil
}

func validProxy(v string) bool {
	v = strings.TrimSpace(v)
	if strings.Contains(v, "/") {
		_, _, err := net.ParseCIDR(v)
		return err == nil
	}
	return net.ParseIP(v) != nil
}

// LoadLocation часовой пояс, в котором считаются календарные дни
func (b BookingConfig) LoadLocation() (*time.Location, error) {
	if b.Location == "" {
		return time.Local, nil
	}
	return time.LoadLocation(b.Location)
}

// Weekday первый день недели в сетке календаря
func (b BookingConfig) Weekday() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(b.FirstWeekday)) {
	case "", "monday":
		return time.Monday, nil
	case "sunday":
		return time.Sunday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Monday, fmt.Errorf("unsupported first weekday %q", b.FirstWeekday)
	}
}

// BootstrapTimeoutDuration таймаут одной попытки подключения к хранилищу
func (s StorageConfig) BootstrapTimeoutDuration() time.Duration {
	if s.BootstrapTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.BootstrapTimeout) * time.Second
}
