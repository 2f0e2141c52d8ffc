package validation

import (
	"psychotest/internal/domain"
	"psychotest/internal/dto"
	"psychotest/internal/util"
	"regexp"
	"strings"
)

var quizIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuizID checks the path parameter naming a quiz.
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	} else if !quizIDPattern.MatchString(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("quiz_id", quizID))
	}

	return errors
}

// ValidateAnswerRequest checks the request shape only. Whether the index
// names an option of the current question is decided by the session.
func (v *Validator) ValidateAnswerRequest(quizID string, req *dto.AnswerRequest) domain.ValidationErrors {
	errors := v.ValidateQuizID(quizID)

	if req == nil || req.ChoiceIndex == nil {
		errors = append(errors, domain.NewMissingFieldError("choice_index"))
	}

	return errors
}

// ValidateSessionID checks a session id taken from a decoded token.
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if sessionID == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !util.IsULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}
