package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// APIPrefix is prepended to every recipe route ("" or "/api")
	APIPrefix string
	// EmptyListNotFound makes an empty GET /recipes answer 404 instead of []
	EmptyListNotFound bool
	CORSOrigins       []string
	// TrustedProxies may set the client IP through forwarding headers; empty trusts none
	TrustedProxies []string

	// Database configuration
	DBDriver     string
	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	SQLitePath   string
	EagerConnect bool

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	CreateRateLimit int

	// S3 image uploads
	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:        firstEnv("5001", "SERVER_PORT", "PORT"),
		ServerHost:        os.Getenv("SERVER_HOST"),
		APIPrefix:         strings.TrimRight(os.Getenv("API_PREFIX"), "/"),
		EmptyListNotFound: envBool("EMPTY_LIST_NOT_FOUND", false),
		CORSOrigins:       splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		TrustedProxies:    splitList(os.Getenv("TRUSTED_PROXIES")),

		DBDriver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getEnv("DB_NAME", "recipes"),
		DBSSLMode:    getEnv("DB_SSL_MODE", "disable"),
		SQLitePath:   getEnv("SQLITE_PATH", "recipes.db"),
		EagerConnect: envBool("DB_CONNECT_EAGER", true),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       0, // This is a constant, not a secret
		RedisURL:      os.Getenv("REDIS_URL"),

		S3Bucket:        os.Getenv("S3_BUCKET_NAME"),
		S3Region:        os.Getenv("AWS_REGION"),
		S3PublicBaseURL: strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/"),
	}

	// Outside CI the password may come from a Docker secret
	if cfg.DBPassword == "" && !IsCI() {
		cfg.DBPassword = readSecret("db_password")
	}
	if cfg.RedisPassword == "" && !IsCI() {
		cfg.RedisPassword = readSecret("redis_password")
	}

	limit, err := strconv.Atoi(getEnv("RATE_LIMIT_CREATE_PER_HOUR", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CREATE_PER_HOUR: %w", err)
	}
	cfg.CreateRateLimit = limit

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN returns the postgres connection string
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RedisEnabled reports whether a Redis endpoint was configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// UploadsEnabled reports whether image uploads to S3 are configured
func (c *Config) UploadsEnabled() bool {
	return c.S3Bucket != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func firstEnv(fallback string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
