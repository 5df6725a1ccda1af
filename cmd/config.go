package cmd

import (
	"fmt"
	"time"

	"tripflow/internal/adapters/out/postgres"
	"tripflow/internal/jobs"
	"tripflow/internal/pkg/logger"
)

// Config is the process configuration, read from the environment (and .env).
type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	SLAMonitorInterval time.Duration
	WorkflowFile       string
	LogFile            string
	LogLevel           string
}

// DefaultHTTPPort is used when HTTP_PORT is unset.
const DefaultHTTPPort = "8080"

// LoadConfig reads every key through getenv. Unset keys take their defaults;
// a malformed SLA_MONITOR_INTERVAL is an error.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:           getenv("HTTP_PORT"),
		DBHost:             getenv("DB_HOST"),
		DBPort:             getenv("DB_PORT"),
		DBUser:             getenv("DB_USER"),
		DBPassword:         getenv("DB_PASSWORD"),
		DBName:             getenv("DB_NAME"),
		DBSslMode:          getenv("DB_SSLMODE"),
		SLAMonitorInterval: jobs.DefaultSLAMonitorInterval,
		WorkflowFile:       getenv("WORKFLOW_FILE"),
		LogFile:            getenv("LOG_FILE"),
		LogLevel:           getenv("LOG_LEVEL"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = DefaultHTTPPort
	}

	if raw := getenv("SLA_MONITOR_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("SLA_MONITOR_INTERVAL: %w", err)
		}
		if interval <= 0 {
			return Config{}, fmt.Errorf("SLA_MONITOR_INTERVAL must be positive, got %s", raw)
		}
		config.SLAMonitorInterval = interval
	}

	if _, err := logger.ParseLevel(config.LogLevel); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return config, nil
}

// UsesDatabase reports whether the audit log goes to PostgreSQL.
func (c Config) UsesDatabase() bool {
	return c.DBHost != ""
}

func (c Config) DatabaseSettings() postgres.Settings {
	return postgres.Settings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func (c Config) LoggerOptions() logger.Options {
	return logger.Options{Level: c.LogLevel, File: c.LogFile}
}
