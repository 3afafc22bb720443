package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	StorageDriver        string
	RedisAddr            string
	RedisCollection      string
	RabbitMQURL          string
	RabbitMQExchange     string
	NotificationTimeout  time.Duration
	StatusReportSchedule string
	LogLevel             slog.Level
}

// LoadConfig reads the configuration through getenv. Everything but the
// credentials and the broker URL has a default; an empty RabbitMQURL turns
// the broker publisher off.
func LoadConfig(getenv func(string) string) (Config, error) {
	value := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:             value("HTTP_PORT", "8080"),
		DBHost:               value("DB_HOST", "localhost"),
		DBPort:               value("DB_PORT", "5432"),
		DBUser:               getenv("DB_USER"),
		DBPassword:           getenv("DB_PASSWORD"),
		DBName:               value("DB_NAME", "pressing"),
		DBSslMode:            value("DB_SSLMODE", "disable"),
		StorageDriver:        strings.ToLower(value("STORAGE_DRIVER", StorageDriverPostgres)),
		RedisAddr:            value("REDIS_ADDR", "localhost:6379"),
		RedisCollection:      value("REDIS_COLLECTION", "orders"),
		RabbitMQURL:          getenv("RABBITMQ_URL"),
		RabbitMQExchange:     value("RABBITMQ_EXCHANGE", "pressing_notifications"),
		StatusReportSchedule: value("STATUS_REPORT_SCHEDULE", "0 * * * * *"),
	}

	switch config.StorageDriver {
	case StorageDriverPostgres, StorageDriverRedis:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", config.StorageDriver)
	}

	timeout, err := time.ParseDuration(value("NOTIFICATION_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid NOTIFICATION_TIMEOUT: %w", err)
	}
	config.NotificationTimeout = timeout

	if err = config.LogLevel.UnmarshalText([]byte(value("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return config, nil
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
