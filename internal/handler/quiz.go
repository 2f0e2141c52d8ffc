package handler

import (
	"psychotest/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler serves the quiz catalog.
type QuizHandler struct {
	catalog service.QuizCatalogService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(catalog service.QuizCatalogService) *QuizHandler {
	return &QuizHandler{
		catalog: catalog,
	}
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Returns every quiz that passed validation, with its score range and result bands
// @Tags quizzes
// @Produce json
// @Success 200 {object} dto.QuizListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.catalog.ListQuizzes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(quizzes)
}

// GetQuiz godoc
// @Summary Get a quiz
// @Description Returns one quiz summary. Question texts are only revealed through a session.
// @Tags quizzes
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.QuizSummaryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{quizID} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.catalog.GetQuizSummary(c.UserContext(), c.Params("quizID"))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}
