// Package config reads the settings shared by the catalog commands from the
// environment, after loading .env files.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel    string
	LogFormat   string
	CatalogName string
	// CurrentYear is the reference year for ages.
	CurrentYear int
}

// LoadEnvFiles loads .env and .env.local. Variables already set in the
// process environment win.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads the configuration from the environment. now supplies the
// default for CurrentYear.
func Load(now time.Time) Config {
	return Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),
		CatalogName: getEnv("CATALOG_NAME", "library"),
		CurrentYear: getEnvInt("CATALOG_CURRENT_YEAR", now.Year()),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
