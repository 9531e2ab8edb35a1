// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database     DatabaseConfig
	Server       ServerConfig
	Logging      LoggingConfig
	CORS         CORSConfig
	JWT          JWTConfig
	Redis        RedisConfig
	Progress     ProgressConfig
	MediaBaseURL string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds access token settings
type JWTConfig struct {
	Secret string
}

// RedisConfig holds completion cache settings
//
// An empty Host disables the cache.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

// ProgressConfig holds completion store settings
type ProgressConfig struct {
	StoreTimeout time.Duration
}

// Load reads configuration from an optional .env file and environment variables
func Load() (*Config, error) {
	// .env is optional, the environment wins for keys set in both
	_ = godotenv.Load()

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireString("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Port, err = requireInt("DB_PORT"); err != nil {
		return nil, err
	}
	if cfg.Database.User, err = requireString("DB_USER"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireString("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.DBName, err = requireString("DB_NAME"); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.Port, err = intOrDefault("SERVER_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Server.RateLimitPerMinute, err = intOrDefault("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}

	// Logging configuration
	cfg.Logging.Level = stringOrDefault("LOG_LEVEL", "info")

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// JWT configuration
	if cfg.JWT.Secret, err = requireString("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Media configuration
	cfg.MediaBaseURL = strings.TrimRight(os.Getenv("MEDIA_BASE_URL"), "/")

	// Redis configuration
	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = intOrDefault("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = intOrDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.TTL, err = durationOrDefault("COMPLETION_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}

	// Progress configuration
	if cfg.Progress.StoreTimeout, err = durationOrDefault("STORE_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the Redis address, or an empty string if the cache is disabled
func (c *Config) RedisAddr() string {
	if c.Redis.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func requireString(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func requireInt(key string) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func stringOrDefault(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

func intOrDefault(key string, def int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationOrDefault(key string, def time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

// parseOrigins parses comma-separated origins, defaulting to all origins
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
