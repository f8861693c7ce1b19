package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"

	"github.com/Prach2207/ecom-synthetic-data-project/internal/config"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/csvio"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/generator"
	"github.com/Prach2207/ecom-synthetic-data-project/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)
	ctx := logging.IntoContext(context.Background(), logger)

	// One seeded source for the whole run; reseeding mid-run would
	// break reproducibility.
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	dataset := generator.Generate(ctx, rng, generator.Counts{
		Customers:  cfg.Customers,
		Products:   cfg.Products,
		Orders:     cfg.Orders,
		OrderItems: cfg.OrderItems,
		Reviews:    cfg.Reviews,
	})

	if err := csvio.WriteAll(cfg.DataDir, dataset); err != nil {
		logger.Error("write_failed", "error", err)
		os.Exit(1)
	}

	logger.Info("dataset_written", "dir", cfg.DataDir, "seed", cfg.Seed)
}
