package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DatabaseConfig holds relational store connection settings.
// Driver selects the backend: "postgres" (default) or "sqlite".
type DatabaseConfig struct {
	Driver             string `validate:"oneof=postgres sqlite"`
	Host               string `validate:"required_if=Driver postgres"`
	Port               string `validate:"required_if=Driver postgres"`
	User               string `validate:"required_if=Driver postgres"`
	Password           string
	Name               string `validate:"required_if=Driver postgres"`
	SSLMode            string
	MaxOpenConns       int `validate:"gte=0"`
	MaxIdleConns       int `validate:"gte=0"`
	ConnMaxLifetimeSec int `validate:"gte=0"`
	SQLitePath         string `validate:"required_if=Driver sqlite"`
}

// MinIOConfig holds object storage settings for MinIO.
// Export is disabled when Endpoint is empty.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string `validate:"required_with=Endpoint"`
	SecretKey string `validate:"required_with=Endpoint"`
	Bucket    string `validate:"required_with=Endpoint"`
	UseSSL    bool
}

// Enabled reports whether object storage is configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port               string `validate:"required"`
	Timezone           string `validate:"required"`
	LogLevel           string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	ExportURLExpirySec int    `validate:"gt=0"`
	Database           DatabaseConfig
	MinIO              MinIOConfig
}

// Load reads configuration from environment variables and validates it.
// A .env file is auto-loaded by main via github.com/joho/godotenv/autoload;
// real environment variables take precedence.
func Load() (*AppConfig, error) {
	k, err := newEnvKoanf()
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		Port:               getEnv(k, "PORT", "8080"),
		Timezone:           getEnv(k, "APP_TIMEZONE", "UTC"),
		LogLevel:           strings.ToLower(getEnv(k, "LOG_LEVEL", "info")),
		ExportURLExpirySec: getEnvInt(k, "EXPORT_URL_EXPIRY_SEC", 900),
		Database: DatabaseConfig{
			Driver:             strings.ToLower(getEnv(k, "DB_DRIVER", "postgres")),
			Host:               getEnv(k, "DB_HOST", ""),
			Port:               getEnv(k, "DB_PORT", "5432"),
			User:               getEnv(k, "DB_USER", ""),
			Password:           getEnv(k, "DB_PASSWORD", ""),
			Name:               getEnv(k, "DB_NAME", ""),
			SSLMode:            getEnv(k, "DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt(k, "DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt(k, "DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt(k, "DB_CONN_MAX_LIFETIME_SEC", 300),
			SQLitePath:         getEnv(k, "SQLITE_PATH", "employees.db"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv(k, "MINIO_ENDPOINT", ""),
			AccessKey: getEnv(k, "MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv(k, "MINIO_SECRET_KEY", ""),
			Bucket:    getEnv(k, "MINIO_BUCKET", ""),
			UseSSL:    getEnvBool(k, "MINIO_USE_SSL", false),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// newEnvKoanf loads the process environment into a flat koanf tree keyed by lowercase variable name.
func newEnvKoanf() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}
	return k, nil
}

func getEnv(k *koanf.Koanf, key, def string) string {
	if v := k.String(strings.ToLower(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(k *koanf.Koanf, key string, def bool) bool {
	if v := getEnv(k, key, ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(k *koanf.Koanf, key string, def int) int {
	if v := getEnv(k, key, ""); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
