package main

import (
	"context"
	"log"
	"os"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/config"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/loader"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/logging"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)
	ctx := logging.IntoContext(context.Background(), logger)

	db, err := store.Open(ctx, cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Error("db_open_failed", "error", err)
		os.Exit(1)
	}

	if err := loader.Load(ctx, db, cfg.DataDir); err != nil {
		logger.Error("load_failed", "error", err)
		os.Exit(1)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("db_close_error", "error", err)
		}
	}

	logger.Info("load_complete", "dir", cfg.DataDir)
}
