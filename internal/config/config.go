package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidConfig возвращается, если конфигурация не прошла проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	SalonAPI SalonAPIConfig `toml:"salon_api"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig хранилище сессий (PostgreSQL)
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
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig кэш каталога услуг. Пустой addr отключает кэш.
type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	CatalogTTL int    `toml:"catalog_ttl"`
}

// Enabled true, если кэш настроен
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type SalonAPIConfig struct {
	URL      string `toml:"url"`
	Timeout  int    `toml:"timeout"`
	Timezone string `toml:"timezone"`
}

// Location часовой пояс салона, в котором разбираются даты записей
func (s SalonAPIConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(s.Timezone)
}

type BookingConfig struct {
	BillSuccessDisplaySeconds  int `toml:"bill_success_display_seconds"`
	BillFailedRetentionSeconds int `toml:"bill_failed_retention_seconds"`
	SessionTTLHours            int `toml:"session_ttl_hours"`
}

// Load читает конфигурацию из TOML файла, подставляет значения по умолчанию и проверяет ее
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-salon-dashboard"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Redis.CatalogTTL == 0 {
		c.Redis.CatalogTTL = 300
	}
	if c.SalonAPI.Timeout == 0 {
		c.SalonAPI.Timeout = 10
	}
	if c.Booking.BillSuccessDisplaySeconds == 0 {
		c.Booking.BillSuccessDisplaySeconds = 3
	}
	if c.Booking.BillFailedRetentionSeconds == 0 {
		c.Booking.BillFailedRetentionSeconds = 600
	}
	if c.Booking.SessionTTLHours == 0 {
		c.Booking.SessionTTLHours = 24
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in range 1-65535", ErrInvalidConfig)
	}
	if c.SalonAPI.URL == "" {
		return fmt.Errorf("%w: salon_api.url is required", ErrInvalidConfig)
	}
	if _, err := c.SalonAPI.Location(); err != nil {
		return fmt.Errorf("%w: salon_api.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Booking.BillSuccessDisplaySeconds < 0 {
		return fmt.Errorf("%w: booking.bill_success_display_seconds must not be negative", ErrInvalidConfig)
	}
	if c.Booking.BillFailedRetentionSeconds < 0 {
		return fmt.Errorf("%w: booking.bill_failed_retention_seconds must not be negative", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path[0] != '/' {
		return fmt.Errorf("%w: metrics.path must start with '/'", ErrInvalidConfig)
	}
	return nil
}
