package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Gemini     GeminiConfig
	Simulation SimulationConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// GeminiConfig holds Gemini API configuration. APIKey may be empty at boot;
// it is resolved again at call time so the demo can start without it and
// surface a configuration error only when the service is actually used.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// SimulationConfig paces the simulated "thinking" of the board flow.
type SimulationConfig struct {
	BoardDelay time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			BaseURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: getEnvAsDuration("GEMINI_TIMEOUT", "120s"),
		},
		Simulation: SimulationConfig{
			BoardDelay: getEnvAsDuration("SIM_BOARD_DELAY", "2s"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. The Gemini API key is deliberately
// not required here: its absence must surface per call, not at boot.
func (c *Config) Validate() error {
	if c.Gemini.BaseURL == "" {
		return fmt.Errorf("GEMINI_API_URL must not be empty")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be positive")
	}
	if c.Simulation.BoardDelay < 0 {
		return fmt.Errorf("SIM_BOARD_DELAY must not be negative")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
