package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL PostgreSQLConfig
	Redis      RedisConfig
	Server     ServerConfig
	Session    SessionConfig
	Assistant  AssistantConfig
	Logging    LoggingConfig

	// Warnings collects values that were ignored while loading
	Warnings []string
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, takes precedence
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// RedisConfig holds Redis session store configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            int
	Host            string
	GinMode         string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// SessionConfig selects and tunes the session store
type SessionConfig struct {
	Store string
	TTL   time.Duration
}

// AssistantConfig holds conversation engine settings
type AssistantConfig struct {
	Language      string
	TemplatesPath string // empty uses the embedded templates
	Seed          int64  // 0 seeds from the clock
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.PostgreSQL = PostgreSQLConfig{
		DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
		Host:               getEnv("PG_HOST", "localhost"),
		Port:               cfg.getEnvAsInt("PG_PORT", 5432),
		User:               getEnv("PG_USER", "postgres"),
		Password:           getEnv("PG_PASSWORD", ""),
		Database:           getEnv("PG_DATABASE", "immo_assistant"),
		SSLMode:            getEnv("PG_SSLMODE", "disable"),
		MaxConnections:     cfg.getEnvAsInt("PG_MAX_CONNECTIONS", 25),
		MaxIdleConnections: cfg.getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
	}
	cfg.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       cfg.getEnvAsInt("REDIS_DB", 0),
	}
	cfg.Server = ServerConfig{
		Port:            cfg.getEnvAsInt("SERVER_PORT", 8080),
		Host:            getEnv("SERVER_HOST", "0.0.0.0"),
		GinMode:         getEnv("GIN_MODE", "release"),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ShutdownTimeout: cfg.getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	cfg.Session = SessionConfig{
		Store: strings.ToLower(getEnv("SESSION_STORE", StoreMemory)),
		TTL:   cfg.getEnvAsDuration("SESSION_TTL", 24*time.Hour),
	}
	cfg.Assistant = AssistantConfig{
		Language:      getEnv("DEFAULT_LANGUAGE", "fr"),
		TemplatesPath: getEnv("TEMPLATES_PATH", ""),
		Seed:          int64(cfg.getEnvAsInt("ASSISTANT_SEED", 0)),
	}
	cfg.Logging = LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot fall back to a default
func (c *Config) Validate() error {
	switch c.Session.Store {
	case StoreMemory, StorePostgres, StoreRedis:
	default:
		return fmt.Errorf("unknown SESSION_STORE %q (want memory, postgres or redis)", c.Session.Store)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.Server.Port)
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("invalid SESSION_TTL %s", c.Session.TTL)
	}
	return nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return strings.Join([]string{
		dsnOption("host", c.PostgreSQL.Host),
		dsnOption("port", strconv.Itoa(c.PostgreSQL.Port)),
		dsnOption("user", c.PostgreSQL.User),
		dsnOption("password", c.PostgreSQL.Password),
		dsnOption("dbname", c.PostgreSQL.Database),
		dsnOption("sslmode", c.PostgreSQL.SSLMode),
	}, " ")
}

// dsnOption quotes a key=value connection option so empty values and
// spaces survive lib/pq's parser
func dsnOption(key, value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return key + "='" + escaped + "'"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		c.warnf("Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func (c *Config) getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		c.warnf("Invalid duration value for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
