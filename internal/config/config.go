package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds process-wide configuration.
// Loaded once at startup from environment variables and treated as immutable.
type Config struct {
	// Database
	DBDriver   string // "mysql" or "sqlite"
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	// HTTP
	Addr      string
	SecretKey string // session/CSRF secret
	Env       string // "development" or "production"

	// Bootstrap admin account
	AdminUser     string
	AdminPassword string

	// Email
	ResendKey  string
	EmailFrom  string
	EmailReply string

	RateLimitRPS int
}

// Load reads configuration from environment variables with fixed defaults.
// Only SECRET_KEY is required outside development.
func Load() (*Config, error) {
	cfg := &Config{
		DBDriver:      getEnvString("DB_DRIVER", "mysql"),
		DBHost:        getEnvString("DB_HOST", "localhost"),
		DBPort:        getEnvInt("DB_PORT", 3306),
		DBUser:        getEnvString("DB_USER", "root"),
		DBPassword:    getEnvString("DB_PASSWORD", ""),
		DBName:        getEnvString("DB_NAME", "GymMemberShip_WorkOutTracker"),
		Addr:          ":" + getEnvString("PORT", "8080"),
		SecretKey:     getEnvString("SECRET_KEY", ""),
		Env:           getEnvString("GYMTRACK_ENV", "development"),
		AdminUser:     getEnvString("ADMIN_USER", "admin"),
		AdminPassword: getEnvString("ADMIN_PASSWORD", "change-me-soon"),
		ResendKey:     getEnvString("GYMTRACK_RESEND_KEY", ""),
		EmailFrom:     getEnvString("GYMTRACK_EMAIL_FROM", "GymTrack <noreply@gymtrack.local>"),
		EmailReply:    getEnvString("GYMTRACK_REPLY_TO", "frontdesk@gymtrack.local"),
		RateLimitRPS:  getEnvInt("GYMTRACK_RATE_LIMIT", 10),
	}

	if cfg.DBDriver != "mysql" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("DB_DRIVER must be 'mysql' or 'sqlite', got %q", cfg.DBDriver)
	}
	if cfg.Env == "production" && cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required in production")
	}

	return cfg, nil
}

// DSN returns the driver-specific data source name.
// For sqlite the database name is used as the file path.
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.DBName + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
