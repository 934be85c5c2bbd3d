package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Jobs      JobsConfig      `toml:"jobs"`
	Cache     CacheConfig     `toml:"cache"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" default:"8080"`
	ReadTimeout     int `toml:"read_timeout" default:"10"`
	WriteTimeout    int `toml:"write_timeout" default:"10"`
	IdleTimeout     int `toml:"idle_timeout" default:"60"`
	ShutdownTimeout int `toml:"shutdown_timeout" default:"15"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" default:"localhost"`
	Port            int    `toml:"port" default:"5432"`
	User            string `toml:"user" default:"postgres"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" default:"scheduling"`
	SSLMode         string `toml:"sslmode" default:"disable"`
	MaxOpenConns    int    `toml:"max_open_conns" default:"25"`
	MaxIdleConns    int    `toml:"max_idle_conns" default:"5"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" default:"300"` // секунды

	// Timezone часовой пояс сессии БД; если не задан, берется scheduler.timezone
	Timezone string `toml:"timezone"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
	if d.Timezone != "" {
		dsn += " timezone=" + d.Timezone
	}
	return dsn
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" default:"info"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" default:"/metrics"`
	ServiceName string `toml:"service_name" default:"smc_scheduling_service"`
}

// SchedulerConfig параметры сетки календаря и поиска слотов
type SchedulerConfig struct {
	// Timezone часовой пояс площадки (IANA). Все даты интерпретируются в нем, DST не учитывается отдельно
	Timezone string `toml:"timezone" default:"UTC"`

	// Видимая сетка дня: строки по часу от GridStartHour до GridEndHour
	GridStartHour int     `toml:"grid_start_hour" default:"8"`
	GridEndHour   int     `toml:"grid_end_hour" default:"22"`
	RowHeightPx   float64 `toml:"row_height_px" default:"60"`
	SnapMinutes   int     `toml:"snap_minutes" default:"30"`

	// MinDurationMinutes минимальная длительность бронирования при resize
	MinDurationMinutes int `toml:"min_duration_minutes" default:"30"`

	// SlotStepMinutes шаг сетки кандидатов для поиска свободных слотов
	SlotStepMinutes int `toml:"slot_step_minutes" default:"60"`

	// MaxRecurrenceCount ограничение на количество повторений в одном запросе
	MaxRecurrenceCount int `toml:"max_recurrence_count" default:"52"`
}

// Location загружает часовой пояс площадки
func (s SchedulerConfig) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}

// RateLimitConfig ограничение частоты запросов на IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second" default:"20"`
	Burst             int     `toml:"burst" default:"40"`
}

// JobsConfig фоновые задачи
type JobsConfig struct {
	// FinalizeSchedule cron-выражение для перевода завершившихся бронирований в finalized
	// Пустая строка выключает задачу
	FinalizeSchedule string `toml:"finalize_schedule" default:"@every 5m"`
}

// CacheConfig in-memory кэш справочников (ресурсы, услуги)
type CacheConfig struct {
	Size       int `toml:"size" default:"256"`
	TTLSeconds int `toml:"ttl_seconds" default:"60"`
}

// TTL время жизни записи кэша
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Default возвращает конфигурацию по умолчанию (теги default)
func Default() *Config {
	cfg := &Config{}
	defaults.MustSet(cfg)
	return cfg
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if cfg.Database.Timezone == "" {
		cfg.Database.Timezone = cfg.Scheduler.Timezone
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	s := c.Scheduler
	if s.GridStartHour < 0 || s.GridEndHour > 24 || s.GridStartHour >= s.GridEndHour {
		return fmt.Errorf("%w: scheduler grid hours must satisfy 0 <= start < end <= 24", ErrInvalidConfig)
	}
	if s.RowHeightPx <= 0 {
		return fmt.Errorf("%w: scheduler.row_height_px must be positive", ErrInvalidConfig)
	}
	if s.SnapMinutes <= 0 || 60%s.SnapMinutes != 0 {
		return fmt.Errorf("%w: scheduler.snap_minutes must divide an hour", ErrInvalidConfig)
	}
	if s.MinDurationMinutes <= 0 {
		return fmt.Errorf("%w: scheduler.min_duration_minutes must be positive", ErrInvalidConfig)
	}
	if s.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: scheduler.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if s.MaxRecurrenceCount <= 0 {
		return fmt.Errorf("%w: scheduler.max_recurrence_count must be positive", ErrInvalidConfig)
	}
	if _, err := s.Location(); err != nil {
		return fmt.Errorf("%w: scheduler.timezone: %v", ErrInvalidConfig, err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}

	if c.Cache.Size <= 0 || c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("%w: cache size and ttl_seconds must be positive", ErrInvalidConfig)
	}

	return nil
}
