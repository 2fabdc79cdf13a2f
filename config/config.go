package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for one scrape run.
type Config struct {
	BaseURL     string
	Zipcode     int
	MaxPages    int
	MaxRetries  int
	WaitTimeout time.Duration

	// Delay before each page-load attempt.
	MinDelay time.Duration
	MaxDelay time.Duration

	// Delay after scrolling each card into view.
	MinScrollDelay time.Duration
	MaxScrollDelay time.Duration

	Headless bool
	Debug    bool
	CSVPath  string

	// When set, results are also batch-inserted into PostgreSQL.
	DatabaseURL string
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://www.realtor.com/realestateandhomes-search",
		Zipcode:        75034,
		MaxPages:       5,
		MaxRetries:     3,
		WaitTimeout:    10 * time.Second,
		MinDelay:       1500 * time.Millisecond,
		MaxDelay:       3500 * time.Millisecond,
		MinScrollDelay: 500 * time.Millisecond,
		MaxScrollDelay: 1500 * time.Millisecond,
		Headless:       true,
		Debug:          false,
		CSVPath:        "output.csv",
		DatabaseURL:    "",
	}
}

// Load returns the defaults overlaid with any values from a .env file and
// the process environment. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.Zipcode = getEnvInt("ZIPCODE", cfg.Zipcode)
	cfg.MaxPages = getEnvInt("MAX_PAGES", cfg.MaxPages)
	cfg.MaxRetries = getEnvInt("MAX_RETRIES", cfg.MaxRetries)
	cfg.Headless = getEnvBool("HEADLESS", cfg.Headless)
	cfg.Debug = getEnvBool("DEBUG", cfg.Debug)
	cfg.CSVPath = getEnv("CSV_PATH", cfg.CSVPath)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
