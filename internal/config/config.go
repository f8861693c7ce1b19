package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults reproduce the reference dataset profile: seed 42 and the
// fixed entity counts of the canonical run.
const (
	DefaultSeed           = 42
	DefaultCustomerCount  = 100
	DefaultProductCount   = 50
	DefaultOrderCount     = 200
	DefaultOrderItemCount = 400
	DefaultReviewCount    = 300
	DefaultDataDir        = "data"
	DefaultSQLitePath     = "ecommerce.db"
)

type Config struct {
	Seed        uint64
	Customers   int
	Products    int
	Orders      int
	OrderItems  int
	Reviews     int
	DataDir     string
	SQLitePath  string
	DatabaseURL string
	LogLevel    string
}

func envStringDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envUintDefault(key string, def uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.ParseUint(v, 10, 64); err == nil {
		return n
	}
	return def
}

// Load reads the optional .env file, then the environment, falling
// back to the compiled-in defaults for anything unset.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		Seed:        envUintDefault("DATASET_SEED", DefaultSeed),
		Customers:   envIntDefault("CUSTOMER_COUNT", DefaultCustomerCount),
		Products:    envIntDefault("PRODUCT_COUNT", DefaultProductCount),
		Orders:      envIntDefault("ORDER_COUNT", DefaultOrderCount),
		OrderItems:  envIntDefault("ORDER_ITEM_COUNT", DefaultOrderItemCount),
		Reviews:     envIntDefault("REVIEW_COUNT", DefaultReviewCount),
		DataDir:     envStringDefault("DATA_DIR", DefaultDataDir),
		SQLitePath:  envStringDefault("SQLITE_PATH", DefaultSQLitePath),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    envStringDefault("LOG_LEVEL", "info"),
	}

	return config, nil
}
