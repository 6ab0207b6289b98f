// Package config loads runtime configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DBPath is the SQLite database path, used when DatabaseURL is empty.
	DBPath string

	// DatabaseURL selects the PostgreSQL backend when set.
	DatabaseURL string

	// KafkaBrokers enables event publishing when non-empty.
	KafkaBrokers []string

	// KafkaTopic is the topic ledger events are written to.
	KafkaTopic string

	// PartnerAName and PartnerBName feed the CSV paid-by heuristic.
	PartnerAName string
	PartnerBName string
}

// Load reads the configuration. A missing .env file is not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", "./data/pairshare.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "pairshare.ledger"),
		PartnerAName: getEnv("PARTNER_A_NAME", "partner1"),
		PartnerBName: getEnv("PARTNER_B_NAME", "partner2"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
