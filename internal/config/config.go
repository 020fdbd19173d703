package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all runtime settings, sourced from the environment.
type Config struct {
	Port                   string
	DatabaseDSN            string
	FeeRate                decimal.Decimal
	OpenTasksCacheTTL      time.Duration
	RequestTimeoutSeconds  int
	ShutdownTimeoutSeconds int
}

// Load reads configuration from the environment, with a .env file as an
// optional overlay for local development.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:                   getEnv("PORT", "8008"),
		DatabaseDSN:            getEnv("DATABASE_DSN", "task-bidding.db"),
		OpenTasksCacheTTL:      time.Duration(getEnvAsInt("OPEN_TASKS_CACHE_TTL_SECONDS", 5)) * time.Second,
		RequestTimeoutSeconds:  getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 10),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	feeRate, err := decimal.NewFromString(getEnv("PLATFORM_FEE_RATE", "0.10"))
	if err != nil || feeRate.IsNegative() || feeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		log.Fatal("PLATFORM_FEE_RATE must be a decimal in [0, 1)")
	}
	cfg.FeeRate = feeRate

	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		log.Fatal("REQUEST_TIMEOUT_SECONDS must be greater than 0")
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("%s must be an integer, got %q", key, v)
		}
		return i
	}
	return defaultVal
}
