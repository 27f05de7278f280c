package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Export   ExportConfig   `yaml:"export"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // "sqlite" or "postgres"
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// CatalogConfig points at the externally maintained product master file.
type CatalogConfig struct {
	Path            string        `yaml:"path"`
	SheetName       string        `yaml:"sheet_name"`
	CacheTTLSeconds int           `yaml:"cache_ttl_seconds"`
	CacheTTL        time.Duration `yaml:"-"` // Ignored by YAML parser
}

// ExportConfig holds document export settings.
type ExportConfig struct {
	CompanyName string `yaml:"company_name"`
	PlansDir    string `yaml:"plans_dir"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "boxtrack.db"
	}

	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = "urun_katalog.xlsx"
	}
	if cfg.Catalog.SheetName == "" {
		cfg.Catalog.SheetName = "Ürün Kataloğu"
	}
	if cfg.Catalog.CacheTTLSeconds <= 0 {
		cfg.Catalog.CacheTTLSeconds = 60
	}
	cfg.Catalog.CacheTTL = time.Duration(cfg.Catalog.CacheTTLSeconds) * time.Second

	if cfg.Export.CompanyName == "" {
		cfg.Export.CompanyName = "KUTU DÜNYASI"
	}
	if cfg.Export.PlansDir == "" {
		cfg.Export.PlansDir = "uretim_planlari"
	}

	return &cfg, nil
}
