package handler

import (
	"psychotest/internal/domain"
	"psychotest/internal/dto"
	"psychotest/internal/logger"
	"psychotest/internal/middleware"
	"psychotest/internal/service"
	"psychotest/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler drives one caller's run through a quiz. The caller is
// identified by the session id the SessionToken middleware resolved.
type SessionHandler struct {
	sessions  service.SessionService
	validator *validation.Validator
}

func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		validator: validation.NewValidator(),
	}
}

func (h *SessionHandler) sessionID(c *fiber.Ctx) (string, error) {
	sessionID := middleware.SessionID(c)
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		logger.Get().Error("Session route reached without a session id", zap.String("path", c.Path()))
		return "", domain.NewInternalError("session is not available", errs)
	}
	return sessionID, nil
}

// Initialize godoc
// @Summary Start or resume a quiz session
// @Description Creates the session for this quiz if needed and returns its current state
// @Tags sessions
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{quizID}/session [post]
func (h *SessionHandler) Initialize(c *fiber.Ctx) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}
	resp, err := h.sessions.Initialize(c.UserContext(), sessionID, c.Params("quizID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetSession godoc
// @Summary Get the session state
// @Description Returns the current question, or the score and result once completed
// @Tags sessions
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{quizID}/session [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}
	resp, err := h.sessions.Snapshot(c.UserContext(), sessionID, c.Params("quizID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Answer godoc
// @Summary Answer the current question
// @Description Records the chosen option for the current question and advances the session
// @Tags sessions
// @Accept json
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Param request body dto.AnswerRequest true "Chosen option"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{quizID}/session/answers [post]
func (h *SessionHandler) Answer(c *fiber.Ctx) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}

	quizID := c.Params("quizID")
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON with a choice_index")
	}
	if errs := h.validator.ValidateAnswerRequest(quizID, &req); len(errs) > 0 {
		return errs
	}

	resp, err := h.sessions.Answer(c.UserContext(), sessionID, quizID, *req.ChoiceIndex)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Restart godoc
// @Summary Restart a quiz session
// @Description Clears every answer and returns to the first question
// @Tags sessions
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{quizID}/session/restart [post]
func (h *SessionHandler) Restart(c *fiber.Ctx) error {
	sessionID, err := h.sessionID(c)
	if err != nil {
		return err
	}
	resp, err := h.sessions.Restart(c.UserContext(), sessionID, c.Params("quizID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
