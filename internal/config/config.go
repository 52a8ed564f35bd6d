package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	defaultPort                  = 3000
	defaultAuthRateLimitPerMin   = 30
	defaultUserCacheSizeMB       = 8
	defaultUserCacheTTLSeconds   = 300
	defaultPRConflictRetries     = 3
	defaultPrometheusMetricsPort = "9091"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	AutoMigrate    bool   `toml:"auto_migrate"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// static files (web ui)
	PublicDir          string   `toml:"public_dir"`
	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
	// auth
	AuthRateLimitPerMin int `toml:"auth_rate_limit_per_min"`
	BcryptCost          int `toml:"bcrypt_cost"`
	UserCacheSizeMB     int `toml:"user_cache_size_mb"`
	UserCacheTTLSeconds int `toml:"user_cache_ttl_seconds"`
	// logbook
	PRConflictRetries int `toml:"pr_conflict_retries"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = defaultPrometheusMetricsPort
	}
	if c.AuthRateLimitPerMin <= 0 {
		c.AuthRateLimitPerMin = defaultAuthRateLimitPerMin
	}
	if c.UserCacheSizeMB <= 0 {
		c.UserCacheSizeMB = defaultUserCacheSizeMB
	}
	if c.UserCacheTTLSeconds <= 0 {
		c.UserCacheTTLSeconds = defaultUserCacheTTLSeconds
	}
	if c.PRConflictRetries <= 0 {
		c.PRConflictRetries = defaultPRConflictRetries
	}
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return t.Get(env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return t.Get(env)
}
