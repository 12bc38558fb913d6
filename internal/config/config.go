package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process configuration resolved from the environment.
type Config struct {
	// DataDir is the directory holding the flat-file stores.
	DataDir string
	// LogFile receives service logs so they do not interleave with the
	// interactive screen.
	LogFile string
}

// Load reads an optional .env file, then resolves configuration from the
// environment with defaults matching the original flat-file layout.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	return &Config{
		DataDir: getEnv("AIRLINE_DATA_DIR", "."),
		LogFile: getEnv("AIRLINE_LOG_FILE", "airline.log"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
