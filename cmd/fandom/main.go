package main

import (
	"context"
	"net/http"

	"fandom/internal/logging"
	"fandom/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logging.New(logging.Config{}).Fatal(err, "load config")
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.SetGlobalLogger(logger)

	db, err := openDatabase(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err, "open database")
	}
	defer db.Close()

	dataStore := store.NewWithTimeout(db, cfg.QueryTimeout)

	if err := seedReferenceData(context.Background(), db); err != nil {
		logger.Fatal(err, "seed reference data")
	}

	handler := newHTTPHandler(cfg, dataStore)

	logger.WithFields(map[string]interface{}{"addr": cfg.Addr}).Info().Msg("API listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal(err, "server error")
	}
}
