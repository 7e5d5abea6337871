package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-console-core/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	CORS  CORSConfig
	Table TableConfig
	Leave LeaveConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// TableConfig holds the defaults for history tables. DatePattern is a Go time layout.
type TableConfig struct {
	DatePattern        string
	ProcessedDateLabel string
	EmptyMessage       string
}

// LeaveConfig holds the lunch window as "HH:MM" clocks and the length of a leave day.
type LeaveConfig struct {
	LunchStart  string
	LunchEnd    string
	HoursPerDay float64
}

// Load reads .env when present and falls back to the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Table defaults
	config.Table = TableConfig{
		DatePattern:        getEnv("TABLE_DATE_PATTERN", "2006/01/02"),
		ProcessedDateLabel: getEnv("TABLE_PROCESSED_LABEL", "処理日"),
		EmptyMessage:       getEnv("TABLE_EMPTY_MESSAGE", "データがありません"),
	}

	// Leave calculation
	hoursPerDay, err := strconv.ParseFloat(getEnv("LEAVE_HOURS_PER_DAY", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_HOURS_PER_DAY: %w", err)
	}

	config.Leave = LeaveConfig{
		LunchStart:  getEnv("LEAVE_LUNCH_START", "12:00"),
		LunchEnd:    getEnv("LEAVE_LUNCH_END", "13:00"),
		HoursPerDay: hoursPerDay,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS is required")
	}
	if !validator.IsValidClock(c.Leave.LunchStart) {
		return fmt.Errorf("LEAVE_LUNCH_START must use HH:MM format")
	}
	if !validator.IsValidClock(c.Leave.LunchEnd) {
		return fmt.Errorf("LEAVE_LUNCH_END must use HH:MM format")
	}
	if c.Leave.HoursPerDay <= 0 {
		return fmt.Errorf("LEAVE_HOURS_PER_DAY must be positive")
	}
	return nil
}

// Address returns the listen address for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
