// @title Psychotest API
// @version 1.0
// @description Self-assessment quizzes: answer each question, get a score and the matching result.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"psychotest/internal/adapter"
	"psychotest/internal/cache"
	"psychotest/internal/config"
	"psychotest/internal/database"
	"psychotest/internal/domain"
	"psychotest/internal/handler"
	"psychotest/internal/logger"
	"psychotest/internal/middleware"
	"psychotest/internal/quizdef"
	"psychotest/internal/repository"
	"psychotest/internal/service"
	"strconv"
	"syscall"
	"time"

	_ "psychotest/cmd/api/docs"

	"github.com/gofiber/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	quizRepository, closeRepo, err := newQuizRepository(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize quiz catalog", zap.Error(err))
	}
	defer closeRepo()

	sessionCache, closeCache, err := newSessionCache(rootCtx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer closeCache()

	// Initialize services
	catalogService := service.NewQuizCatalogService(quizRepository)
	if quizzes, err := catalogService.ListQuizzes(rootCtx); err != nil {
		appLogger.Fatal("Failed to load quizzes", zap.Error(err))
	} else {
		appLogger.Info("Quiz catalog loaded", zap.String("source", cfg.Catalog.Source), zap.Int("quizzes", len(quizzes.Quizzes)))
	}
	sessionService := service.NewSessionService(catalogService, service.NewSessionStore(sessionCache, cfg.Session.TTL))
	tokenService, err := service.NewSessionTokenService(cfg.Session.TokenSecret, cfg.Session.TTL)
	if err != nil {
		appLogger.Fatal("Failed to create SessionTokenService", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + middleware.SessionTokenHeader,
		ExposeHeaders: middleware.SessionTokenHeader + "," + middleware.TraceIDHeader,
		MaxAge:        300,
	}))
	app.Use(middleware.TraceIDMiddleware())
	app.Use(middleware.RequestLogger())

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.SetupRoutes(app, handler.Handlers{
		Quiz:    handler.NewQuizHandler(catalogService),
		Session: handler.NewSessionHandler(sessionService),
		Health:  handler.NewHealthHandler(sessionCache, cfg.Session.Store),
	}, tokenService, cfg.Session.CookieName)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}

// newQuizRepository returns the configured quiz source and a function that releases it.
func newQuizRepository(cfg *config.Config) (domain.QuizRepository, func(), error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceDatabase:
		db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
		if err != nil {
			return nil, nil, err
		}
		return repository.NewQuizDatabaseAdapter(db), func() { _ = db.Close() }, nil
	default:
		quizzes, err := loadDefinitions(cfg.Catalog.DefinitionsFile)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewStaticQuizRepository(quizzes), func() {}, nil
	}
}

func loadDefinitions(path string) ([]*domain.QuizDefinition, error) {
	if path == "" {
		return quizdef.Builtin()
	}
	logger.Get().Info("Loading quiz definitions", zap.String("path", path))
	return quizdef.LoadFile(path)
}

// newSessionCache returns the cache session state is kept in.
func newSessionCache(ctx context.Context, cfg *config.Config) (domain.Cache, func(), error) {
	if cfg.Session.Store == config.SessionStoreRedis {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		logger.Get().Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		return adapter.NewRedisCacheAdapter(redisClient), func() { _ = redisClient.Close() }, nil
	}

	memory := adapter.NewMemoryCacheAdapter()
	go memory.Run(ctx)
	logger.Get().Info("Using in-memory session store; sessions are lost on restart")
	return memory, func() {}, nil
}
