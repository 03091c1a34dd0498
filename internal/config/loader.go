package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "change-me-in-production"

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read from environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Optionally read from config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/woops")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	// Server
	cfg.Server.Host = v.GetString("server_host")
	cfg.Server.Port = v.GetInt("server_port")
	cfg.Server.Env = v.GetString("server_env")

	// CORS
	cfg.CORS.AllowOrigins = v.GetStringSlice("cors_allow_origins")

	// Logging
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")

	// Error responses
	cfg.Woops.IncludeErrorStack = v.GetBool("woops_include_error_stack")

	// Sentry
	cfg.Sentry.Enabled = v.GetBool("sentry_enabled")
	cfg.Sentry.DSN = v.GetString("sentry_dsn")
	cfg.Sentry.Environment = v.GetString("sentry_environment")
	cfg.Sentry.Release = v.GetString("sentry_release")
	cfg.Sentry.Debug = v.GetBool("sentry_debug")
	cfg.Sentry.SampleRate = v.GetFloat64("sentry_sample_rate")
	cfg.Sentry.TracesSampleRate = v.GetFloat64("sentry_traces_sample_rate")

	// Metrics
	cfg.Metrics.Enabled = v.GetBool("metrics_enabled")
	cfg.Metrics.Path = v.GetString("metrics_path")

	// JWT
	cfg.JWT.Secret = v.GetString("jwt_secret")
	cfg.JWT.Issuer = v.GetString("jwt_issuer")
	cfg.JWT.Realm = v.GetString("jwt_realm")

	// Rate limiting
	cfg.RateLimit.Enabled = v.GetBool("rate_limit_enabled")
	cfg.RateLimit.Max = v.GetInt("rate_limit_max")
	cfg.RateLimit.Window = v.GetDuration("rate_limit_window")

	// Redis
	cfg.Redis.Host = v.GetString("redis_host")
	cfg.Redis.Port = v.GetInt("redis_port")
	cfg.Redis.Password = v.GetString("redis_password")
	cfg.Redis.DB = v.GetInt("redis_db")

	// Validate required fields
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", 8080)
	v.SetDefault("server_env", "development")

	// CORS defaults
	v.SetDefault("cors_allow_origins", []string{"*"})

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// Error response defaults
	v.SetDefault("woops_include_error_stack", false)

	// Sentry defaults
	v.SetDefault("sentry_enabled", false)
	v.SetDefault("sentry_sample_rate", 1.0)
	v.SetDefault("sentry_traces_sample_rate", 0.1)

	// Metrics defaults
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("metrics_path", "/metrics")

	// JWT defaults
	v.SetDefault("jwt_secret", defaultJWTSecret)
	v.SetDefault("jwt_issuer", "woops")
	v.SetDefault("jwt_realm", "woops")

	// Rate limiting defaults
	v.SetDefault("rate_limit_enabled", false)
	v.SetDefault("rate_limit_max", 100)
	v.SetDefault("rate_limit_window", "1m")

	// Redis defaults
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", 6379)
	v.SetDefault("redis_db", 0)
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	if cfg.JWT.Secret == defaultJWTSecret && cfg.IsProduction() {
		return fmt.Errorf("JWT secret must be changed in production")
	}
	if cfg.RateLimit.Enabled && (cfg.RateLimit.Max <= 0 || cfg.RateLimit.Window <= 0) {
		return fmt.Errorf("rate limit needs a positive max and window")
	}
	if cfg.Sentry.Enabled && cfg.Sentry.DSN == "" {
		return fmt.Errorf("sentry is enabled but no DSN is set")
	}
	return nil
}
