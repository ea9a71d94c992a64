package main

import (
	"net/http"
	"os"

	"immo-scanner/api"
	"immo-scanner/config"
	"immo-scanner/fetcher"
	"immo-scanner/scraper/immobiliare"
	"immo-scanner/services"
	"immo-scanner/storage"
	"immo-scanner/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Agency listing scanner starting ===")
	logger.Info("Config — port: %s | storage: %s | browser fetch: %t | upsert workers: %d",
		cfg.Port, cfg.StorageDriver, cfg.UseBrowser, cfg.UpsertWorkers)

	var store storage.ListingStore
	switch cfg.StorageDriver {
	case "memory":
		store = storage.NewMemoryStore()
		logger.Warn("Using in-memory store — listings are lost on restart")
	default:
		pg, err := storage.NewPostgresStore(cfg.DSN(), logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			os.Exit(1)
		}
		store = pg
	}
	defer store.Close()

	var listingFetcher fetcher.Fetcher
	if cfg.UseBrowser {
		listingFetcher = fetcher.NewBrowserFetcher(
			cfg.ChromeBin, immobiliare.ListingCardSelector, fetcher.ListingTimeout, logger)
	} else {
		listingFetcher = fetcher.NewHTTPFetcher(fetcher.ListingTimeout, logger)
	}
	detailFetcher := fetcher.NewHTTPFetcher(fetcher.DetailTimeout, logger).
		WithReferer(immobiliare.VendorURL)

	scanner := services.NewScanner(listingFetcher, store, cfg.UpsertWorkers, logger)
	details := services.NewDetailService(detailFetcher, logger)
	handlers := api.NewHandlers(scanner, details, store, logger)

	addr := ":" + cfg.Port
	logger.Info("Listening on %s", addr)
	if err := http.ListenAndServe(addr, handlers.Router(cfg.CORSOrigin)); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}
