package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Reference sources for class, item and spell imports
const (
	SourceAPI     = "api"
	SourceCatalog = "catalog"
)

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig `envPrefix:"CHARSHEET_STORAGE_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	SQLite  SQLiteConfig  `envPrefix:"SQLITE_"`
	DND5E   DND5EConfig   `envPrefix:"DND5E_"`
	Catalog CatalogConfig `envPrefix:"CHARSHEET_CATALOG_"`
}

type StorageConfig struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type SQLiteConfig struct {
	Path string `env:"PATH" envDefault:"charsheet.db"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	BaseURL  string        `env:"API_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

// CatalogConfig points at a local directory of YAML reference data
type CatalogConfig struct {
	Dir    string `env:"DIR"`
	Source string `env:"SOURCE" envDefault:"api"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(cfg.Catalog.Source))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the combination of settings
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageMemory:
	case StorageRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
	case StorageSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	switch c.Catalog.Source {
	case SourceAPI:
		if c.DND5E.BaseURL == "" {
			return fmt.Errorf("DND5E_API_URL is required for the api source")
		}
	case SourceCatalog:
		if c.Catalog.Dir == "" {
			return fmt.Errorf("CHARSHEET_CATALOG_DIR is required for the catalog source")
		}
	default:
		return fmt.Errorf("unknown reference source %q", c.Catalog.Source)
	}

	if c.DND5E.Timeout <= 0 {
		return fmt.Errorf("DND5E_TIMEOUT must be positive")
	}

	return nil
}
