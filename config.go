package main

import (
	"errors"
	"io/fs"
	"log"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// appConfig holds server settings read from the environment.
type appConfig struct {
	Host        string
	Port        string
	CatalogPath string
	DBURL       string
	CORSOrigins []string
}

// loadConfig reads configuration from environment variables with defaults. A
// .env file in the working directory is loaded first when present.
func loadConfig() appConfig {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] ignoring .env: %v", err)
	}

	return appConfig{
		Host:        getEnv("HOST", "localhost"),
		Port:        getEnv("PORT", "3000"),
		CatalogPath: getEnv("FOOD_CATALOG_PATH", "foodItems.json"),
		DBURL:       os.Getenv("DB_URL"),
		CORSOrigins: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}
}

// addr is the listen address, e.g. "localhost:3000".
func (c appConfig) addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
