package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-BannerBookingService/internal/domain"
)

const (
	SourceGraphQL  = "graphql"
	SourcePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Availability AvailabilityConfig `toml:"availability"`
	Database     DatabaseConfig     `toml:"database"`
	Pricing      PricingConfig      `toml:"pricing"`
	Calendar     CalendarConfig     `toml:"calendar"`
	Attributes   AttributesConfig   `toml:"attributes"`
	Session      SessionConfig      `toml:"session"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // секунды
	WriteTimeout    int `toml:"write_timeout"` // секунды
	IdleTimeout     int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто = только stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AvailabilityConfig источник занятых дат
type AvailabilityConfig struct {
	Source     string `toml:"source"` // graphql | postgres
	GraphQLURL string `toml:"graphql_url"`
	Timeout    int    `toml:"timeout"` // секунды, общий бюджет на загрузку
	Table      string `toml:"table"`   // таблица для source = postgres
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type PricingConfig struct {
	DailyRate float64 `toml:"daily_rate"`
	Currency  string  `toml:"currency"`
}

type CalendarConfig struct {
	Timezone string `toml:"timezone"`
}

// AttributesConfig варианты для выпадающих списков формы
type AttributesConfig struct {
	Products  []string `toml:"products"`
	Verticals []string `toml:"verticals"`
	Locations []string `toml:"locations"`
}

// SessionConfig время жизни сессий страницы в памяти
// TTL отсчитывается от последнего обращения к сессии
type SessionConfig struct {
	TTL             int `toml:"ttl"`              // минуты
	CleanupInterval int `toml:"cleanup_interval"` // секунды
}

// TTLDuration время жизни сессии
func (s SessionConfig) TTLDuration() time.Duration {
	return time.Duration(s.TTL) * time.Minute
}

// CleanupIntervalDuration период очистки устаревших сессий
func (s SessionConfig) CleanupIntervalDuration() time.Duration {
	return time.Duration(s.CleanupInterval) * time.Second
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Options варианты выпадающих списков в доменном представлении
func (a AttributesConfig) Options() domain.AttributeOptions {
	return domain.AttributeOptions{
		Products:  a.Products,
		Verticals: a.Verticals,
		Locations: a.Locations,
	}
}

// Location возвращает часовой пояс календаря
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// TimeoutDuration таймаут загрузки доступности
func (a AvailabilityConfig) TimeoutDuration() time.Duration {
	return time.Duration(a.Timeout) * time.Second
}

// Load читает конфигурацию из TOML файла
// Перед чтением подгружается .env (если есть); часть значений можно переопределить переменными окружения
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию, совпадающие с демонстрационными данными
func Default() *Config {
	options := domain.DefaultAttributeOptions()

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "banner_booking_service",
		},
		Availability: AvailabilityConfig{
			Source:  SourceGraphQL,
			Timeout: 5,
			Table:   "disabled_dates",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: 300,
		},
		Pricing: PricingConfig{
			DailyRate: domain.DefaultDailyRate,
			Currency:  domain.DefaultCurrency,
		},
		Calendar: CalendarConfig{
			Timezone: domain.DefaultTimezone,
		},
		Attributes: AttributesConfig{
			Products:  options.Products,
			Verticals: options.Verticals,
			Locations: options.Locations,
		},
		Session: SessionConfig{
			TTL:             120,
			CleanupInterval: 60,
		},
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Availability.Source {
	case SourceGraphQL:
		if c.Availability.GraphQLURL == "" {
			return fmt.Errorf("%w: availability.graphql_url is required for source=%s", ErrInvalidConfig, SourceGraphQL)
		}
	case SourcePostgres:
		if c.Availability.Table == "" {
			return fmt.Errorf("%w: availability.table is required for source=%s", ErrInvalidConfig, SourcePostgres)
		}
	default:
		return fmt.Errorf("%w: unknown availability.source=%q", ErrInvalidConfig, c.Availability.Source)
	}

	if c.Availability.Timeout <= 0 {
		return fmt.Errorf("%w: availability.timeout must be positive", ErrInvalidConfig)
	}

	if c.Pricing.DailyRate < 0 {
		return fmt.Errorf("%w: pricing.daily_rate must not be negative", ErrInvalidConfig)
	}

	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("%w: calendar.timezone: %v", ErrInvalidConfig, err)
	}

	if len(c.Attributes.Products) == 0 || len(c.Attributes.Verticals) == 0 || len(c.Attributes.Locations) == 0 {
		return fmt.Errorf("%w: attributes must list at least one option per field", ErrInvalidConfig)
	}

	if c.Session.TTL <= 0 || c.Session.CleanupInterval <= 0 {
		return fmt.Errorf("%w: session.ttl and session.cleanup_interval must be positive", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT=%q", ErrInvalidConfig, v)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("AVAILABILITY_SOURCE"); v != "" {
		c.Availability.Source = v
	}
	if v := os.Getenv("AVAILABILITY_GRAPHQL_URL"); v != "" {
		c.Availability.GraphQLURL = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	return nil
}

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid value")
