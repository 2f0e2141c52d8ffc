package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"psychotest/internal/config"
	"psychotest/internal/database"
	"psychotest/internal/domain"
	"psychotest/internal/logger"
	"psychotest/internal/quizdef"
	"psychotest/internal/repository"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/quizzes.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "quiz definitions file; empty seeds the built-in quizzes")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		// If logger is not initialized yet, use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() // Ensure logs are flushed
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.DB.Driver); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	quizzes, err := loadSeedQuizzes(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.String("path", *seedFilePath), zap.Error(err))
	}
	log.Info("Loaded seed data", zap.Int("quizzes_loaded", len(quizzes)))

	repo := repository.NewQuizDatabaseAdapter(db)
	failed := 0
	for _, quiz := range quizzes {
		// SaveQuiz replaces the stored quiz in one transaction.
		if err := repo.SaveQuiz(ctx, quiz); err != nil {
			failed++
			log.Error("Error seeding quiz, transaction rolled back", zap.String("quizID", quiz.ID), zap.Error(err))
			continue
		}
		log.Info("Seeded quiz",
			zap.String("quizID", quiz.ID),
			zap.Int("questions", len(quiz.Questions)),
			zap.Int("results", len(quiz.Results)))
	}
	if failed > 0 {
		log.Fatal("Initial data seeding finished with errors", zap.Int("failed", failed))
	}
	log.Info("Initial data seeding process completed.")
}

func loadSeedQuizzes(path string) ([]*domain.QuizDefinition, error) {
	if path == "" {
		return quizdef.Builtin()
	}
	return quizdef.LoadFile(path)
}
