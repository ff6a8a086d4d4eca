package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL connection settings for the optional request log table.
// An empty Host disables the database sink.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database host was configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// TracingConfig controls the OpenTelemetry bootstrap.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
}

// AppConfig is the centralized configuration shared by every program under cmd/.
// Defaults reproduce the fixed values the programs were written with, so an
// empty environment behaves exactly like the hard-coded originals.
type AppConfig struct {
	Port                   string
	Timezone               string
	RequestLogFile         string
	RequestWriteTimeoutSec int
	PublicDir              string
	FetchDelaySeconds      int
	CounterStart           int
	MetricsPort            string
	Tracing                TracingConfig
	Database               DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		Port:                   getEnv("PORT", "3000"),
		Timezone:               getEnv("APP_TIMEZONE", "UTC"),
		RequestLogFile:         getEnv("REQUEST_LOG_FILE", "requests.txt"),
		RequestWriteTimeoutSec: getEnvInt("REQUEST_LOG_WRITE_TIMEOUT_SEC", 5),
		PublicDir:              getEnv("PUBLIC_DIR", "public"),
		FetchDelaySeconds:      getEnvInt("FETCH_DELAY_SECONDS", 3),
		CounterStart:           getEnvInt("COUNTER_START", 1),
		MetricsPort:            getEnv("METRICS_PORT", ""),
		Tracing: TracingConfig{
			Enabled:     getEnvBool("TRACING_ENABLED", false),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "webbasics"),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
	}
}

// Location resolves Timezone, falling back to UTC when the name is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RequestWriteTimeout bounds a single request-log write.
func (c *AppConfig) RequestWriteTimeout() time.Duration {
	return time.Duration(c.RequestWriteTimeoutSec) * time.Second
}

// Addr is the listen address for the main server.
func (c *AppConfig) Addr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
