package handler

import (
	"psychotest/internal/middleware"
	"psychotest/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups what SetupRoutes mounts.
type Handlers struct {
	Quiz    *QuizHandler
	Session *SessionHandler
	Health  *HealthHandler
}

// SetupRoutes mounts the health check at the root and the quiz API under /api.
func SetupRoutes(app *fiber.App, h Handlers, tokens service.SessionTokenService, cookieName string) {
	app.Get("/healthz", h.Health.Check)

	validation := middleware.NewValidationMiddleware()

	api := app.Group("/api")
	api.Get("/quizzes", h.Quiz.ListQuizzes)

	quiz := api.Group("/quizzes/:quizID", validation.ValidateQuizID())
	quiz.Get("/", h.Quiz.GetQuiz)

	session := quiz.Group("/session", middleware.SessionToken(tokens, cookieName))
	session.Post("/", h.Session.Initialize)
	session.Get("/", h.Session.GetSession)
	session.Post("/answers", h.Session.Answer)
	session.Post("/restart", h.Session.Restart)
}
