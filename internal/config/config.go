// Package config handles configuration loading for the auth service.
package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// CookieConfig holds settings shared by every auth cookie the service sets.
type CookieConfig struct {
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// Config holds all configuration for the auth service.
type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	JWTSecret      string
	JWTExpiry      time.Duration
	BcryptCost     int
	AllowedOrigins []string
	Cookie         CookieConfig
	Port           string
	SwaggerHost    string
	Environment    string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var missing []string
	required := func(key string) string {
		value := os.Getenv(key)
		if value == "" {
			missing = append(missing, key)
		}
		return value
	}

	cfg := &Config{
		DBHost:        required("DB_HOST"),
		DBPort:        required("DB_PORT"),
		DBUser:        required("DB_USER"),
		DBPassword:    required("DB_PASSWORD"),
		DBName:        required("DB_NAME"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     required("JWT_SECRET"),
		JWTExpiry:     parseDuration(getEnv("JWT_EXPIRY", "1h"), time.Hour),
		Cookie: CookieConfig{
			Path:   "/",
			Domain: getEnv("COOKIE_DOMAIN", ""),
			// Cross-site cookies require Secure; disable only for local development.
			Secure:   getEnv("COOKIE_SECURE", "true") != "false",
			SameSite: http.SameSiteNoneMode,
		},
		Port:        getEnv("PORT", "5000"),
		SwaggerHost: getEnv("SWAGGER_HOST", ""),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	cfg.AllowedOrigins = splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173"))

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 bytes")
	}

	cost, err := parseBcryptCost(getEnv("BCRYPT_COST", "10"))
	if err != nil {
		return nil, err
	}
	cfg.BcryptCost = cost

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func parseBcryptCost(value string) (int, error) {
	cost, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid BCRYPT_COST %q: %w", value, err)
	}
	if cost < 4 || cost > 14 {
		return 0, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cost)
	}
	return cost, nil
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
