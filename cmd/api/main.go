package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/voodley/voodley-backend/internal/config"
	"github.com/voodley/voodley-backend/internal/router"
	"github.com/voodley/voodley-backend/pkg/database"
	"github.com/voodley/voodley-backend/pkg/logger"
)

func main() {
	// .env is optional outside development
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.JWTSecret == "" {
		zlog.Fatal("JWT_SECRET is not set")
	}
	if cfg.DatabaseURL == "" {
		zlog.Fatal("DATABASE_URL is not set")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}
	zlog.Info("database ready")

	app := router.New(cfg, db, zlog)

	zlog.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
