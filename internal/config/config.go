package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	HTTPHost    string
	HTTPPort    string
	StoreDriver string
	DatabaseDSN string

	KafkaBrokers []string
	KafkaTopic   string

	LogLevel string

	MainAdminUsername string
	MainAdminPassword string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		HTTPHost:          getenv("HTTP_HOST", "0.0.0.0"),
		HTTPPort:          getenv("HTTP_PORT", "8080"),
		StoreDriver:       getenv("STORE_DRIVER", DriverMemory),
		DatabaseDSN:       getenv("DATABASE_DSN", "file::memory:?cache=shared"),
		KafkaTopic:        getenv("KAFKA_TOPIC", "storefront_events"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		MainAdminUsername: getenv("MAIN_ADMIN_USERNAME", "admin"),
		MainAdminPassword: getenv("MAIN_ADMIN_PASSWORD", "sleep123"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return c.HTTPHost + ":" + c.HTTPPort
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
