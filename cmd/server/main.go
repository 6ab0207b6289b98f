package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/pairshare/pairshare/internal/api"
	"github.com/pairshare/pairshare/internal/config"
	"github.com/pairshare/pairshare/internal/events"
	"github.com/pairshare/pairshare/internal/events/kafka"
	"github.com/pairshare/pairshare/internal/service"
	"github.com/pairshare/pairshare/internal/storage"
	"github.com/pairshare/pairshare/internal/storage/postgres"
	"github.com/pairshare/pairshare/internal/storage/sqlite"
	"github.com/pairshare/pairshare/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
		slog.Info("event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	ledger := service.NewLedgerService(store, publisher)
	imports := service.NewImportService(store, cfg.PartnerAName, cfg.PartnerBName)
	receipts := service.NewReceiptService()

	server := api.NewServer(ledger, imports, receipts)

	addr := fmt.Sprintf(":%s", cfg.Port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// openStore selects PostgreSQL when DATABASE_URL is set, SQLite otherwise.
func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.DatabaseURL != "" {
		slog.Info("using postgres storage")
		return postgres.New(cfg.DatabaseURL)
	}
	slog.Info("using sqlite storage", "path", cfg.DBPath)
	return sqlite.New(cfg.DBPath)
}
