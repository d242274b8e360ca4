package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultMapBaseURL is the Naver Map search endpoint; the address is
// appended to it.
const DefaultMapBaseURL = "https://map.naver.com/p/search/"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SourceDir string
	HTTPAddr  string
	GinMode   string
	LogLevel  string

	MapBaseURL   string
	MapURLEncode bool
	DepositStep  int64

	CORSOrigins []string
	CacheTTL    time.Duration
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() *Config {
	return &Config{
		SourceDir: getEnv("SOURCE_DIR", "source"),
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		GinMode:   getEnv("GIN_MODE", "release"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		MapBaseURL:   getEnv("MAP_BASE_URL", DefaultMapBaseURL),
		MapURLEncode: getEnvBool("MAP_URL_ENCODE", true),
		DepositStep:  getEnvInt64("DEPOSIT_STEP", 10_000_000),

		CORSOrigins: getEnvList("CORS_ORIGINS"),
		CacheTTL:    getEnvDuration("CACHE_TTL", 0),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.ParseInt(val, 10, 64)
		if err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err == nil && d >= 0 {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
