// Package config loads the yaml configuration with defaults and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"

	"github.com/umputun/gw2tracker/pkg/domain"
)

//go:generate go run ../../cmd/schema -o schema.json

// DefaultEndpoint is the remote game API base url
const DefaultEndpoint = "https://api.guildwars2.com/v2"

// Config holds the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	API     APIConfig     `yaml:"api" json:"api" jsonschema:"description=Remote game API configuration"`
	Storage StorageConfig `yaml:"storage" json:"storage" jsonschema:"description=Local storage configuration"`
	Tracker TrackerConfig `yaml:"tracker" json:"tracker" jsonschema:"description=Events and dungeons tracker configuration"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// APIConfig holds remote API client and item database builder settings
type APIConfig struct {
	Endpoint  string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.guildwars2.com/v2,description=Remote API base url"`
	PageSize  int           `yaml:"page_size" json:"page_size" jsonschema:"default=200,minimum=1,maximum=200,description=Items per page fetched by rebuild"`
	Workers   int           `yaml:"workers" json:"workers" jsonschema:"default=0,minimum=0,description=Concurrent page fetches, 0 for the number of CPUs"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=gw2tracker/1.0,description=User agent for API requests"`
}

// StorageConfig holds locations of local data
type StorageConfig struct {
	DataDir         string        `yaml:"data_dir" json:"data_dir" jsonschema:"default=data,description=Directory for item databases and user data files"`
	DSN             string        `yaml:"dsn" json:"dsn" jsonschema:"description=Run journal database connection string, inside data_dir by default"`
	MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=4,description=Maximum number of open connections"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=1h,description=Connection maximum lifetime"`
}

// TrackerConfig holds tracker settings
type TrackerConfig struct {
	Locale             string        `yaml:"locale" json:"locale" jsonschema:"default=en,enum=en,enum=de,enum=fr,enum=es,description=Item database locale"`
	ResetCheckInterval time.Duration `yaml:"reset_check_interval" json:"reset_check_interval" jsonschema:"default=1m,description=How often daily reset and event warmups are checked"`
	Catalog            string        `yaml:"catalog" json:"catalog" jsonschema:"description=Optional events and dungeons catalog file replacing the built-in one"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Default returns configuration with all defaults, used when no config file is given
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Parse makes configuration from YAML data, environment variables are expanded
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail, schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// api
	if cfg.API.Endpoint == "" {
		cfg.API.Endpoint = DefaultEndpoint
	}
	if cfg.API.PageSize == 0 {
		cfg.API.PageSize = 200
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30 * time.Second
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = "gw2tracker/1.0"
	}

	// storage
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
	if cfg.Storage.MaxOpenConns == 0 {
		cfg.Storage.MaxOpenConns = 4
	}
	if cfg.Storage.ConnMaxLifetime == 0 {
		cfg.Storage.ConnMaxLifetime = time.Hour
	}

	// tracker
	if cfg.Tracker.Locale == "" {
		cfg.Tracker.Locale = string(domain.DefaultLocale)
	}
	if cfg.Tracker.ResetCheckInterval == 0 {
		cfg.Tracker.ResetCheckInterval = time.Minute
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.API.PageSize < 1 || cfg.API.PageSize > 200 {
		return fmt.Errorf("api.page_size must be between 1 and 200")
	}
	if cfg.API.Workers < 0 {
		return fmt.Errorf("api.workers must be non-negative")
	}
	if cfg.API.Timeout < time.Second {
		return fmt.Errorf("api timeout must be at least 1 second")
	}
	if _, err := domain.ParseLocale(cfg.Tracker.Locale); err != nil {
		return fmt.Errorf("tracker.locale: %w", err)
	}
	if cfg.Tracker.ResetCheckInterval < time.Second {
		return fmt.Errorf("tracker.reset_check_interval must be at least 1 second")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// Locale returns configured item database locale
func (c *Config) Locale() domain.Locale {
	l, err := domain.ParseLocale(c.Tracker.Locale)
	if err != nil {
		return domain.DefaultLocale
	}
	return l
}

// DSN returns database connection string, derived from data dir unless set explicitly
func (c *Config) DSN() string {
	if c.Storage.DSN != "" {
		return c.Storage.DSN
	}
	return "file:" + filepath.ToSlash(filepath.Join(c.Storage.DataDir, "gw2tracker.db")) +
		"?cache=shared&mode=rwc&_txlock=immediate"
}

// ItemsDir returns directory of item database files
func (c *Config) ItemsDir() string {
	return filepath.Join(c.Storage.DataDir, "items")
}

// UserDataPath returns path of a user data file by name
func (c *Config) UserDataPath(name string) string {
	return filepath.Join(c.Storage.DataDir, "user", name+".json")
}
