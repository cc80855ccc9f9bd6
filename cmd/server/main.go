package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/api"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/config"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/service"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/storage/sqlite"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/pkg/logging"
)

func main() {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	router := api.NewRouter(service.NewEventService(store))

	// HTTP/2 without TLS, for clients behind a terminating proxy.
	handler := h2c.NewHandler(router, &http2.Server{})

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
