package main

import (
	"context"
	"log"

	"classroom-player/internal/config"
	"classroom-player/internal/database"
	"classroom-player/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	l := logger.Get()

	ctx := context.Background()
	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	applied, err := database.RunMigrations(ctx, db)
	if err != nil {
		l.Fatal("Failed to run migrations", zap.Strings("applied", applied), zap.Error(err))
	}
	l.Info("Database is up to date", zap.Strings("applied", applied))
}
