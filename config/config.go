// Package config loads and validates application configuration from
// environment variables. Required variables, optional variables with
// defaults, and parse failures are all collected and reported together
// so a misconfigured process fails once with the full list.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultTokenTTL is the lifetime of an issued bearer token. The expiration
// is fixed at mint time; tokens are never extended or refreshed.
const DefaultTokenTTL = 1000 * time.Hour

// PoolConfig holds settings for the PostgreSQL connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds token-issuance configuration. The signing secret is
// process-wide: loaded once at startup and never rotated within a process
// lifetime.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// AppConfig is the top-level configuration structure.
type AppConfig struct {
	DB     *PoolConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size within sane bounds.
func clampPoolSize(size int) int {
	if size < 5 {
		return 5
	}
	if size > 100 {
		return 100
	}
	return size
}

// LoadConfig reads the environment and returns a populated AppConfig, or a
// single error aggregating every problem found.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	dbUser := getRequiredEnv("DB_USER", &errs)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errs)
	dbName := getRequiredEnv("DB_NAME", &errs)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errs)
	poolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errs))

	jwtSecret := getRequiredEnv("JWT_SECRET", &errs)
	tokenTTL := getOptionalEnvDuration("JWT_TOKEN_TTL", DefaultTokenTTL, &errs)

	serverPort := getOptionalEnv("PORT", "8080")

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DB: &PoolConfig{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			MaxSize:  poolSize,
		},
		Auth: &AuthConfig{
			JWTSecret: jwtSecret,
			TokenTTL:  tokenTTL,
		},
		Server: &ServerConfig{
			Port: serverPort,
		},
	}, nil
}
