package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the serving process configuration, loaded from environment
// variables (optionally seeded from a .env file).
type Config struct {
	Port        string
	GinMode     string
	ArtifactDir string
	TopK        int
	EnableDB    bool
	DatabaseURL string
}

// Load reads the environment. A .env file is honored when present but not
// required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "release"),
		ArtifactDir: getEnv("ARTIFACT_DIR", "./artifacts"),
		EnableDB:    strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	topK, err := strconv.Atoi(getEnv("TOP_K", "5"))
	if err != nil || topK < 1 {
		return nil, fmt.Errorf("TOP_K must be a positive integer, got %q", getEnv("TOP_K", "5"))
	}
	cfg.TopK = topK

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
