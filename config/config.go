package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Slack ingestion specifics
	Slack       SlackConfig
	Storage     StorageConfig
	StatusCache StatusCacheConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SlackConfig struct {
	SigningSecret    string
	BotToken         string
	DefaultContextID string
}

// StorageConfig selects the message store backend.
// Driver "memory" needs no DSN; driver "postgres" requires one.
type StorageConfig struct {
	Driver string
	DSN    string
}

type StatusCacheConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

type WebhookConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Slack
	cfg.Slack.SigningSecret = expandEnvVar(viper.GetString("slack.signing_secret"))
	cfg.Slack.BotToken = expandEnvVar(viper.GetString("slack.bot_token"))
	cfg.Slack.DefaultContextID = viper.GetString("slack.default_context_id")
	if secret := viper.GetString("slack_signing_secret"); secret != "" {
		cfg.Slack.SigningSecret = secret
	}
	if token := viper.GetString("slack_bot_token"); token != "" {
		cfg.Slack.BotToken = token
	}

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Storage.DSN = expandEnvVar(viper.GetString("storage.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Storage.Driver = "postgres"
		cfg.Storage.DSN = dsn
	}
	if cfg.Storage.Driver == "postgres" && cfg.Storage.DSN == "" {
		return nil, fmt.Errorf("storage driver is postgres but storage.dsn is empty")
	}

	// Status cache
	cfg.StatusCache.TTL = viper.GetDuration("status_cache.ttl")
	cfg.StatusCache.SweepInterval = viper.GetDuration("status_cache.sweep_interval")

	// Webhooks
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("slack.default_context_id", "default")
	viper.SetDefault("storage.driver", "memory")
	viper.SetDefault("status_cache.ttl", "30s")
	viper.SetDefault("status_cache.sweep_interval", "60s")
	viper.SetDefault("webhook.rate_limit_per_min", 600)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
