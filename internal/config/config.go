package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	"github.com/m04kA/TennisCourt-BookingService/pkg/types"
)

// Config конфигурация сервиса.
// Несекретные параметры читаются из config.toml, секреты — из переменных
// окружения (Secrets), чтобы ключи не попадали в репозиторий.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`

	Secrets Secrets `toml:"-"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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

// DSN собирает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BookingConfig параметры бронирования корта
type BookingConfig struct {
	WindowStart  string `toml:"window_start"`  // "2026-04-01", включительно
	WindowEnd    string `toml:"window_end"`    // "2026-07-31", включительно
	WeekdayOpen  string `toml:"weekday_open"`  // "17:30"
	WeekdayClose string `toml:"weekday_close"` // "20:30"
	WeekendOpen  string `toml:"weekend_open"`  // "09:00"
	WeekendClose string `toml:"weekend_close"` // "17:00"
	HoldMinutes  int    `toml:"hold_minutes"`
	SlotMinutes  int    `toml:"slot_minutes"`
	PriceCents   int64  `toml:"price_cents"` // цена часа корта
	Currency     string `toml:"currency"`
}

// Window парсит окно бронирования
func (b BookingConfig) Window() (domain.BookingWindow, error) {
	start, err := time.Parse(domain.DateFormat, b.WindowStart)
	if err != nil {
		return domain.BookingWindow{}, fmt.Errorf("config: invalid booking.window_start: %w", err)
	}
	end, err := time.Parse(domain.DateFormat, b.WindowEnd)
	if err != nil {
		return domain.BookingWindow{}, fmt.Errorf("config: invalid booking.window_end: %w", err)
	}
	if end.Before(start) {
		return domain.BookingWindow{}, fmt.Errorf("config: booking.window_end is before booking.window_start")
	}
	return domain.BookingWindow{Start: start, End: end}, nil
}

// Schedule парсит расписание работы корта
func (b BookingConfig) Schedule() (domain.Schedule, error) {
	parse := func(field, v string) (types.TimeString, error) {
		ts, err := types.NewTimeStringFromString(v)
		if err != nil {
			return "", fmt.Errorf("config: invalid booking.%s: %w", field, err)
		}
		return ts, nil
	}

	weekdayOpen, err := parse("weekday_open", b.WeekdayOpen)
	if err != nil {
		return domain.Schedule{}, err
	}
	weekdayClose, err := parse("weekday_close", b.WeekdayClose)
	if err != nil {
		return domain.Schedule{}, err
	}
	weekendOpen, err := parse("weekend_open", b.WeekendOpen)
	if err != nil {
		return domain.Schedule{}, err
	}
	weekendClose, err := parse("weekend_close", b.WeekendClose)
	if err != nil {
		return domain.Schedule{}, err
	}

	return domain.Schedule{
		Weekday: domain.DayHours{Open: weekdayOpen, Close: weekdayClose},
		Weekend: domain.DayHours{Open: weekendOpen, Close: weekendClose},
	}, nil
}

// Secrets секреты, поступающие только из окружения
type Secrets struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	AdminPasswordHash   string // bcrypt-хэш пароля администратора
	SessionHashKey      string
	SessionBlockKey     string
	AMQPUrl             string
}

// Load читает config.toml и переменные окружения
func Load(path string) (*Config, error) {
	cfg := &Config{
		Booking: BookingConfig{
			HoldMinutes: domain.DefaultHoldMinutes,
			SlotMinutes: domain.DefaultSlotMinutes,
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.Secrets = Secrets{
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		AdminPasswordHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionHashKey:      os.Getenv("SESSION_HASH_KEY"),
		SessionBlockKey:     os.Getenv("SESSION_BLOCK_KEY"),
		AMQPUrl:             os.Getenv("AMQP_URL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.Booking.Window(); err != nil {
		return err
	}
	if _, err := c.Booking.Schedule(); err != nil {
		return err
	}
	if c.Booking.HoldMinutes <= 0 {
		return fmt.Errorf("config: booking.hold_minutes must be positive")
	}
	if c.Booking.SlotMinutes <= 0 {
		return fmt.Errorf("config: booking.slot_minutes must be positive")
	}
	if c.Secrets.AdminPasswordHash == "" {
		return fmt.Errorf("config: ADMIN_PASSWORD_HASH is required")
	}
	if c.Secrets.SessionHashKey == "" {
		return fmt.Errorf("config: SESSION_HASH_KEY is required")
	}
	return nil
}
