package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dietracker/internal/archive"
	"dietracker/internal/auth"
	"dietracker/internal/config"
	"dietracker/internal/db"
	"dietracker/internal/food"
	"dietracker/internal/logger"
	"dietracker/internal/router"
	"dietracker/internal/storage"
	"dietracker/internal/tracker"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "optional YAML config file")
	flag.Parse()

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── DB ─────────────────────────
	var pgDB *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pgDB, err = db.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			logger.Fatal("postgres connection failed", zap.Error(err))
		}
		defer pgDB.Close()
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var objects food.ObjectFetcher
	if cfg.NeedsStorage() {
		r2Client, err := storage.NewR2Client(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("R2 init failed", zap.Error(err))
		}
		objects = r2Client
	}

	// ───────────────────────── STATIC DATA ─────────────────────────
	var catalogStore food.CatalogStore
	if cfg.Catalog.Source == config.SourcePostgres {
		gdb, err := db.OpenGorm(cfg.Postgres)
		if err != nil {
			logger.Fatal("gorm open failed", zap.Error(err))
		}
		defer db.CloseGorm(gdb)
		catalogStore = food.NewPostgresRepository(gdb)
	}

	catalog, err := food.LoadCatalog(ctx, cfg.Catalog.Source, objects, catalogStore)
	if err != nil {
		logger.Fatal("food catalog unavailable", zap.Error(err))
	}
	model, err := food.LoadModel(ctx, cfg.Model.Source, objects)
	if err != nil {
		logger.Fatal("calorie model unavailable", zap.Error(err))
	}
	logger.Info("static data loaded",
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.Int("foods", len(catalog.Names())),
		zap.String("model_source", cfg.Model.Source),
		zap.String("model_version", model.Version),
	)

	// ───────────────────────── ARCHIVE ─────────────────────────
	var logs archive.Archive
	switch cfg.Archive.Driver {
	case config.ArchiveMongo:
		client, err := db.ConnectMongo(ctx, cfg.Archive.MongoURI)
		if err != nil {
			logger.Fatal("mongo connection failed", zap.Error(err))
		}
		defer client.Disconnect(context.Background())
		logs = archive.NewMongoArchive(client, cfg.Archive.Database, cfg.Archive.Collection)
	case config.ArchivePostgres:
		logs = archive.NewPostgresArchive(pgDB)
	default:
		logger.Warn("using in-memory archive, history is lost on restart")
		logs = archive.NewInMemoryArchive()
	}

	// ───────────────────────── AUTH ─────────────────────────
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		logger.Fatal("token issuer", zap.Error(err))
	}

	var userRepo auth.UserRepository
	if pgDB != nil {
		userRepo = auth.NewPostgresUserRepository(pgDB)
	} else {
		userRepo = auth.NewInMemoryUserRepository()
	}
	authHandler := auth.NewHandler(auth.NewService(userRepo), tokens)

	// ───────────────────────── TRACKER ─────────────────────────
	trackerService := tracker.NewService(
		food.NewEstimator(catalog, model),
		logs,
		tracker.NewStore(),
		time.Now,
	)

	// ───────────────────────── HTTP ─────────────────────────
	r := router.NewRouter(router.Deps{
		Auth:        authHandler,
		Tokens:      tokens,
		Tracker:     tracker.NewHandler(trackerService),
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("API listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
