package main

import (
	"context"
	"fmt"
	"os"

	"classroom-player/internal/catalog"
	"classroom-player/internal/config"
	"classroom-player/internal/database"
	"classroom-player/internal/domain"
	"classroom-player/internal/logger"
	"classroom-player/internal/repository"

	"go.uber.org/zap"
)

// Usage: seed_catalog [catalog.yaml]
// Without an argument the catalog compiled into the binary is seeded.
// Courses already in the database are replaced.
func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	var source domain.CourseSource = catalog.EmbeddedSource{}
	if len(os.Args) > 1 {
		source = catalog.FileSource{Path: os.Args[1]}
		log.Info("Loading seed catalog from file", zap.String("path", os.Args[1]))
	}

	// catalog.Load validates the document and rejects duplicate ids before
	// anything is written.
	cat, err := catalog.Load(ctx, source)
	if err != nil {
		log.Fatal("Failed to load seed catalog", zap.Error(err))
	}

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewCatalogDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	err = txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, course := range cat.Courses() {
			if err := repo.DeleteCourse(txCtx, course.ID); err != nil {
				return err
			}
			if err := repo.SaveCourse(txCtx, course); err != nil {
				return err
			}
			log.Info("Seeded course",
				zap.String("courseID", course.ID),
				zap.Int("items", course.ItemCount()),
			)
		}
		return nil
	})
	if err != nil {
		log.Fatal("Catalog seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Catalog seeding completed", zap.Int("courses", len(cat.Courses())))
}
