package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the simulation server.
type Config struct {
	// Environment
	Environment string

	// Server
	Port        string
	FrontendURL string

	// Simulation
	TickIntervalMs  int
	MaxFrameDeltaMs int
}

// Load reads configuration from the environment. A .env file is honored if
// present.
func Load() *Config {
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Simulation: 16ms matches a 60 Hz display cadence. MaxFrameDeltaMs
		// caps the delta fed into a tick after a stall; 0 disables the cap.
		TickIntervalMs:  getEnvInt("TICK_INTERVAL_MS", 16),
		MaxFrameDeltaMs: getEnvInt("MAX_FRAME_DELTA_MS", 100),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
