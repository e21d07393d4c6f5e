package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the top-level application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Auth      AuthConfig      `koanf:"auth"`
	Facets    FacetsConfig    `koanf:"facets"`
	Export    ExportConfig    `koanf:"export"`
	Analytics AnalyticsConfig `koanf:"analytics"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	DSN            string `koanf:"dsn"`
	MaxOpenConns   int    `koanf:"max_open_conns"`
	MaxIdleConns   int    `koanf:"max_idle_conns"`
	ConnectTimeout string `koanf:"connect_timeout"` // parsed and validated on startup
	AutoMigrate    bool   `koanf:"auto_migrate"`
}

type AuthConfig struct {
	// UsersFile points at the YAML user store (username, password hash, role).
	UsersFile string `koanf:"users_file"`
	// JWTSecret signs session tokens. No default: deployments must set one.
	JWTSecret     string `koanf:"jwt_secret"`
	TokenLifetime string `koanf:"token_lifetime"`
}

type FacetsConfig struct {
	// CacheTTL bounds how long a cascade result is served for one facet tuple.
	CacheTTL string `koanf:"cache_ttl"`
}

type ExportConfig struct {
	CountTimeout   string `koanf:"count_timeout"`
	FetchTimeout   string `koanf:"fetch_timeout"`
	PageSize       int    `koanf:"page_size"`
	WarnThreshold  int64  `koanf:"warn_threshold"`
	BlockThreshold int64  `koanf:"block_threshold"`
}

type AnalyticsConfig struct {
	// TopStores caps the per-store breakdown rows returned to clients.
	TopStores int `koanf:"top_stores"`
}

// durations that must parse and be positive, by config key.
func (c *Config) durations() map[string]string {
	return map[string]string{
		"database.connect_timeout": c.Database.ConnectTimeout,
		"auth.token_lifetime":      c.Auth.TokenLifetime,
		"facets.cache_ttl":         c.Facets.CacheTTL,
		"export.count_timeout":     c.Export.CountTimeout,
		"export.fetch_timeout":     c.Export.FetchTimeout,
	}
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be > 0")
	}
	if c.Database.MaxIdleConns <= 0 {
		return fmt.Errorf("database.max_idle_conns must be > 0")
	}

	if strings.TrimSpace(c.Auth.UsersFile) == "" {
		return fmt.Errorf("auth.users_file is required")
	}
	if _, err := os.Stat(c.Auth.UsersFile); err != nil {
		return fmt.Errorf("auth.users_file %q is not accessible: %w", c.Auth.UsersFile, err)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	for key, raw := range c.durations() {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, raw, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be > 0", key)
		}
	}

	if c.Export.PageSize <= 0 {
		return fmt.Errorf("export.page_size must be > 0")
	}
	if c.Export.WarnThreshold <= 0 {
		return fmt.Errorf("export.warn_threshold must be > 0")
	}
	if c.Export.BlockThreshold <= c.Export.WarnThreshold {
		return fmt.Errorf("export.block_threshold must be > export.warn_threshold")
	}

	if c.Analytics.TopStores <= 0 {
		return fmt.Errorf("analytics.top_stores must be > 0")
	}

	return nil
}

// Duration returns an already-validated duration config value. Call only
// after Validate has passed; a malformed value here is a programming error.
func Duration(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		panic(fmt.Sprintf("config duration %q not validated: %v", raw, err))
	}
	return d
}

// Load parses config from file + env and validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":              8080,
		"server.host":              "0.0.0.0",
		"server.max_body_size_mb":  1,
		"server.mode":              "release",
		"database.dsn":             "postgres://localhost:5432/billing?sslmode=disable&connect_timeout=10",
		"database.max_open_conns":  10,
		"database.max_idle_conns":  10,
		"database.connect_timeout": "10s",
		"database.auto_migrate":    true,
		"auth.users_file":          "./users.yaml",
		"auth.jwt_secret":          "",
		"auth.token_lifetime":      "12h",
		"facets.cache_ttl":         "2h",
		"export.count_timeout":     "30s",
		"export.fetch_timeout":     "300s",
		"export.page_size":         50000,
		"export.warn_threshold":    500000,
		"export.block_threshold":   1000000,
		"analytics.top_stores":     10,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// VEYRA_SERVER__PORT=9090 overrides server.port
	if err := k.Load(env.Provider("VEYRA_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "VEYRA_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
