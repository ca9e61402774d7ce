package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/riod94/pitaya-store-sub001/internal/cache"
	"github.com/riod94/pitaya-store-sub001/internal/config"
	apphttp "github.com/riod94/pitaya-store-sub001/internal/http"
	"github.com/riod94/pitaya-store-sub001/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if cfg.DB.DSN == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	db, err := gorm.Open(mysql.Open(cfg.DB.DSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	c, err := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.CacheTTL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer c.Close()

	st, err := storage.New(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	logger.Info("storage ready", slog.String("driver", cfg.Storage.Driver))

	r := apphttp.NewRouter(cfg, logger, db, c, st)

	logger.Info("listening", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
