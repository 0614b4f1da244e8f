package main

import (
	"bytes"
	"context"
	"flag"
	"os"

	"dietracker/internal/config"
	"dietracker/internal/db"
	"dietracker/internal/food"
	"dietracker/internal/logger"
	"dietracker/internal/storage"

	"go.uber.org/zap"
)

// seed-catalog loads the food catalog into the food_items table and can
// publish the catalog and calorie model to object storage.
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "optional YAML config file")
	csvPath := flag.String("csv", "", "catalog CSV to load (default: embedded dataset)")
	publish := flag.Bool("publish", false, "upload the catalog CSV and model JSON to object storage")
	catalogKey := flag.String("catalog-key", "catalog/indian_food_dataset.csv", "object key for the catalog CSV")
	modelKey := flag.String("model-key", "models/calorie_model.json", "object key for the model JSON")
	skipDB := flag.Bool("skip-db", false, "do not write to Postgres")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	csvData := food.EmbeddedCSV()
	if *csvPath != "" {
		csvData, err = os.ReadFile(*csvPath)
		if err != nil {
			logger.Fatal("read catalog csv", zap.String("path", *csvPath), zap.Error(err))
		}
	}

	entries, err := food.ParseCSV(bytes.NewReader(csvData))
	if err != nil {
		logger.Fatal("parse catalog csv", zap.Error(err))
	}
	if _, err := food.NewCatalog(entries); err != nil {
		logger.Fatal("invalid catalog", zap.Error(err))
	}

	// ───────────────────────── POSTGRES ─────────────────────────
	if !*skipDB {
		gdb, err := db.OpenGorm(cfg.Postgres)
		if err != nil {
			logger.Fatal("gorm open failed", zap.Error(err))
		}
		defer db.CloseGorm(gdb)

		repo := food.NewPostgresRepository(gdb)
		if err := repo.Migrate(); err != nil {
			logger.Fatal("migrate food_items", zap.Error(err))
		}

		n, err := repo.Upsert(ctx, entries)
		if err != nil {
			logger.Fatal("seed food_items", zap.Error(err))
		}
		logger.Info("catalog seeded", zap.Int64("rows", n), zap.Int("foods", len(entries)))
	}

	// ───────────────────────── OBJECT STORAGE ─────────────────────────
	if *publish {
		r2Client, err := storage.NewR2Client(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("R2 init failed", zap.Error(err))
		}

		url, err := r2Client.Upload(ctx, *catalogKey, bytes.NewReader(csvData), "text/csv")
		if err != nil {
			logger.Fatal("upload catalog", zap.Error(err))
		}
		logger.Info("catalog published", zap.String("url", url))

		url, err = r2Client.Upload(ctx, *modelKey, bytes.NewReader(food.EmbeddedModelJSON()), "application/json")
		if err != nil {
			logger.Fatal("upload model", zap.Error(err))
		}
		logger.Info("model published", zap.String("url", url))
	}
}
