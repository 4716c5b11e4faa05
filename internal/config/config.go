package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// Переменные окружения с секретами, перекрывают значения из файла
const (
	EnvDBHost     = "PETCARE_DB_HOST"
	EnvDBPassword = "PETCARE_DB_PASSWORD"
	EnvClientsURL = "PETCARE_CLIENT_DIRECTORY_URL"
)

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Database        DatabaseConfig        `toml:"database"`
	Facility        FacilityConfig        `toml:"facility"`
	Sessions        SessionsConfig        `toml:"sessions"`
	ClientDirectory ClientDirectoryConfig `toml:"client_directory"`
	Modules         ModulesConfig         `toml:"modules"`
	Catalog         CatalogConfig         `toml:"catalog"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig параметры подключения к PostgreSQL
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

// FacilityConfig площадка по умолчанию
type FacilityConfig struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// SessionsConfig параметры реестра сессий мастера
type SessionsConfig struct {
	IdleTimeoutMinutes int `toml:"idle_timeout_minutes"`
}

// ClientDirectoryConfig справочник клиентов (CRM), пустой URL отключает интеграцию
type ClientDirectoryConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// ModulesConfig начальные настройки модулей
type ModulesConfig struct {
	Disabled []DisabledModule `toml:"disabled"`
}

// DisabledModule услуга, отключенная в конфигурации
type DisabledModule struct {
	FacilityID string `toml:"facility_id"`
	Service    string `toml:"service"`
	Reason     string `toml:"reason"`
}

// CatalogConfig переопределения цен каталога
type CatalogConfig struct {
	DaycareTypes     []RateConfig    `toml:"daycare_types"`
	BoardingRooms    []RateConfig    `toml:"boarding_rooms"`
	GroomingStyles   []RateConfig    `toml:"grooming_styles"`
	GroomingAddOns   []RateConfig    `toml:"grooming_add_ons"`
	TrainingPrograms []ProgramConfig `toml:"training_programs"`
}

// RateConfig позиция каталога
type RateConfig struct {
	ID    string  `toml:"id"`
	Name  string  `toml:"name"`
	Price float64 `toml:"price"`
}

// ProgramConfig программа дрессировки
type ProgramConfig struct {
	ID       string  `toml:"id"`
	Name     string  `toml:"name"`
	Price    float64 `toml:"price"`
	Sessions int     `toml:"sessions"`
}

// Load читает конфигурацию из TOML файла и переменных окружения
// Файл .env рядом с процессом подхватывается, если существует
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBHost); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvClientsURL); v != "" {
		c.ClientDirectory.URL = v
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)
	setDefault(&c.Logs.Level, "info")
	setDefault(&c.Metrics.Path, "/metrics")
	setDefault(&c.Metrics.ServiceName, "petcare_booking")
	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.SSLMode, "disable")
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	setDefault(&c.Sessions.IdleTimeoutMinutes, 30)
	setDefault(&c.ClientDirectory.Timeout, 5)
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("config: database.dbname is required")
	}
	if c.Facility.ID == "" {
		return errors.New("config: facility.id is required")
	}
	for _, m := range c.Modules.Disabled {
		if !domain.ServiceID(m.Service).IsValid() {
			return fmt.Errorf("config: modules.disabled: unknown service %q", m.Service)
		}
	}
	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	parts := []string{
		"host=" + d.Host,
		"port=" + strconv.Itoa(d.Port),
		"user=" + d.User,
		"dbname=" + d.DBName,
		"sslmode=" + d.SSLMode,
	}
	if d.Password != "" {
		parts = append(parts, "password="+d.Password)
	}
	return strings.Join(parts, " ")
}

// ModuleSettings начальные настройки модулей
// Пустой facility_id относится к площадке по умолчанию
func (c *Config) ModuleSettings() []domain.ModuleSetting {
	settings := make([]domain.ModuleSetting, 0, len(c.Modules.Disabled))
	for _, m := range c.Modules.Disabled {
		facilityID := m.FacilityID
		if facilityID == "" {
			facilityID = c.Facility.ID
		}
		settings = append(settings, domain.ModuleSetting{
			FacilityID: facilityID,
			Service:    domain.ServiceID(m.Service),
			Disabled:   true,
			Reason:     m.Reason,
		})
	}
	return settings
}

// Rates переопределения каталога цен
func (c CatalogConfig) Rates() domain.RateCatalog {
	rates := domain.RateCatalog{
		DaycareTypes:   toOptions(c.DaycareTypes),
		BoardingRooms:  toOptions(c.BoardingRooms),
		GroomingStyles: toOptions(c.GroomingStyles),
		GroomingAddOns: toOptions(c.GroomingAddOns),
	}
	for _, p := range c.TrainingPrograms {
		rates.TrainingPrograms = append(rates.TrainingPrograms, domain.TrainingProgram{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Sessions: p.Sessions,
		})
	}
	return rates
}

func toOptions(items []RateConfig) []domain.RateOption {
	options := make([]domain.RateOption, 0, len(items))
	for _, i := range items {
		options = append(options, domain.RateOption{ID: i.ID, Name: i.Name, Price: i.Price})
	}
	return options
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
