package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the configuration for values the server cannot start with
func ValidateConfig(cfg *Config) error {
	var errors []string

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errors = append(errors, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}.Error())
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" && cfg.DBHost == "" {
			errors = append(errors, ValidationError{Field: "DB_HOST", Message: "required when DATABASE_URL is not set"}.Error())
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			errors = append(errors, ValidationError{Field: "SQLITE_PATH", Message: "required for the sqlite driver"}.Error())
		}
	default:
		errors = append(errors, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unknown driver %q", cfg.DBDriver)}.Error())
	}

	if cfg.APIPrefix != "" && cfg.APIPrefix != "/api" {
		errors = append(errors, ValidationError{Field: "API_PREFIX", Message: fmt.Sprintf("must be empty or /api, got %q", cfg.APIPrefix)}.Error())
	}

	for _, proxy := range cfg.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			errors = append(errors, ValidationError{Field: "TRUSTED_PROXIES", Message: fmt.Sprintf("invalid IP or CIDR %q", proxy)}.Error())
		}
	}

	if cfg.CreateRateLimit <= 0 {
		errors = append(errors, ValidationError{Field: "RATE_LIMIT_CREATE_PER_HOUR", Message: "must be positive"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
