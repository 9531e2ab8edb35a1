package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the database configuration for integration tests from TEST_DB_* variables
//
// Returns ok == false when any of them is missing, so callers can skip.
func LoadTestConfig() (cfg *Config, ok bool, err error) {
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg = &Config{}
	cfg.Database.Host = os.Getenv("TEST_DB_HOST")
	cfg.Database.User = os.Getenv("TEST_DB_USER")
	cfg.Database.Password = os.Getenv("TEST_DB_PASSWORD")
	cfg.Database.DBName = os.Getenv("TEST_DB_NAME")
	portStr := os.Getenv("TEST_DB_PORT")

	if cfg.Database.Host == "" || cfg.Database.User == "" || cfg.Database.DBName == "" || portStr == "" {
		return cfg, false, nil
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, false, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
	}
	cfg.Database.Port = port

	return cfg, true, nil
}
