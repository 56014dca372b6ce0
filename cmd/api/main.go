// @title Classroom Player API
// @version 1.0
// @description Course catalog and classroom player: gated navigation, quizzes, document viewer, notes, bookmarks and progress.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_SESSION_TOKEN' to authorize.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "classroom-player/cmd/api/docs"
	"classroom-player/internal/adapter"
	"classroom-player/internal/cache"
	"classroom-player/internal/catalog"
	"classroom-player/internal/config"
	"classroom-player/internal/database"
	"classroom-player/internal/domain"
	"classroom-player/internal/handler"
	"classroom-player/internal/logger"
	"classroom-player/internal/middleware"
	"classroom-player/internal/repository"
	"classroom-player/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := newCourseSource(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to prepare catalog source", zap.Error(err))
	}
	defer closeSource()

	cat, err := catalog.Load(ctx, source)
	if err != nil {
		appLogger.Fatal("Failed to load course catalog", zap.String("source", cfg.Catalog.Source), zap.Error(err))
	}
	appLogger.Info("Course catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("courses", len(cat.Courses())),
	)

	noticeCache, closeCache := newNoticeCache(ctx, cfg)
	defer closeCache()

	// Initialize services
	notices := service.NewNoticeService(noticeCache, cfg.Notice.TTL)
	sessions := service.NewSessionService(cfg.Session, notices)
	tokens, err := service.NewTokenService(cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create TokenService", zap.Error(err))
	}
	classrooms := service.NewClassroomService(cat, sessions, notices, cfg.Classroom.CompletionDelay)
	learners := service.NewLearnerService(cat, sessions)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Catalog:   handler.NewCatalogHandler(cat),
		Session:   handler.NewSessionHandler(sessions, tokens, notices),
		Classroom: handler.NewClassroomHandler(classrooms),
		Learner:   handler.NewLearnerHandler(learners),
	}, tokens)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sessions.Run(gCtx)
	})
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gCtx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}

// newCourseSource picks the catalog backend. The returned func releases it.
func newCourseSource(ctx context.Context, cfg *config.Config) (domain.CourseSource, func(), error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceEmbedded, "":
		return catalog.EmbeddedSource{}, func() {}, nil
	case config.CatalogSourceFile:
		return catalog.FileSource{Path: cfg.Catalog.Path}, func() {}, nil
	case config.CatalogSourceDatabase:
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			return nil, nil, err
		}
		return repository.NewCatalogDatabaseAdapter(db), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported catalog source: %s", cfg.Catalog.Source)
	}
}

// newNoticeCache uses Redis when it is enabled and reachable, and the
// in-process cache otherwise.
func newNoticeCache(ctx context.Context, cfg *config.Config) (domain.Cache, func()) {
	appLogger := logger.Get()
	if !cfg.Redis.Enabled {
		appLogger.Info("Redis disabled, using in-memory notice cache")
		return adapter.NewMemoryCacheAdapter(), func() {}
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, falling back to in-memory notice cache", zap.Error(err))
		return adapter.NewMemoryCacheAdapter(), func() {}
	}
	appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
	return adapter.NewRedisCacheAdapter(redisClient), func() { _ = redisClient.Close() }
}
