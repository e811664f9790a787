// Package config reads the runtime settings for the server and the CLI
// from the environment, with an optional .env file.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings every command starts from.
type Config struct {
	Port         string
	DataDir      string
	StoreBackend string
}

// Load reads the configuration, applying defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Port:         getEnv("PORT", "5002"),
		DataDir:      getEnv("INKWELL_DATA", "data"),
		StoreBackend: getEnv("INKWELL_STORE", "file"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
