package domain

import (
	"context"
	"errors"
	"slices"
)

// ErrSessionNotFound is returned by a SessionStore when no state exists for
// the requested session and quiz.
var ErrSessionNotFound = errors.New("session state not found")

// SessionState is one user's progress through one quiz. Score and Result are
// meaningful only once Completed is set; a completed state with a nil Result
// means no band matched the score.
type SessionState struct {
	QuizID               string         `json:"quiz_id"`
	CurrentQuestionIndex int            `json:"current_question_index"`
	Answers              map[string]int `json:"answers"`
	Completed            bool           `json:"completed"`
	Score                int            `json:"score"`
	Result               *ResultBand    `json:"result,omitempty"`
}

// NewSessionState returns the initial InProgress(0) state.
func NewSessionState(quizID string) *SessionState {
	return &SessionState{
		QuizID:  quizID,
		Answers: make(map[string]int),
	}
}

// Session binds a quiz definition to the state of one pass through it and
// owns every transition of that state.
type Session struct {
	quiz  *QuizDefinition
	state *SessionState
}

// NewSession wraps state for quiz. A nil state starts a fresh pass.
func NewSession(quiz *QuizDefinition, state *SessionState) *Session {
	if state == nil {
		state = NewSessionState(quiz.ID)
	}
	if state.Answers == nil {
		state.Answers = make(map[string]int)
	}
	return &Session{quiz: quiz, state: state}
}

// Quiz returns the definition the session runs.
func (s *Session) Quiz() *QuizDefinition {
	return s.quiz
}

// State returns the underlying state for persistence.
func (s *Session) State() *SessionState {
	return s.state
}

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() (*Question, error) {
	if s.state.Completed {
		return nil, NewInvalidOperationError("quiz is already completed")
	}
	idx := s.state.CurrentQuestionIndex
	if idx < 0 || idx >= len(s.quiz.Questions) {
		return nil, NewInvalidOperationError("no current question").
			WithContext("current_question_index", idx)
	}
	question := s.quiz.Questions[idx]
	question.Options = slices.Clone(question.Options)
	question.Scores = slices.Clone(question.Scores)
	return &question, nil
}

// SubmitAnswer records choiceIndex for the current question and advances.
// Answering the last question scores the pass and completes the session.
// A rejected call leaves the state untouched.
func (s *Session) SubmitAnswer(choiceIndex int) error {
	question, err := s.CurrentQuestion()
	if err != nil {
		return err
	}
	if choiceIndex < 0 || choiceIndex >= len(question.Options) {
		return NewChoiceOutOfRangeError(question.ID, choiceIndex, len(question.Options))
	}

	s.state.Answers[question.ID] = choiceIndex
	s.state.CurrentQuestionIndex++

	if s.state.CurrentQuestionIndex == len(s.quiz.Questions) {
		s.complete()
	}
	return nil
}

func (s *Session) complete() {
	score := ComputeScore(s.quiz, s.state.Answers)
	result, _ := ResolveResult(s.quiz, score)
	s.state.Score = score
	s.state.Result = result
	s.state.Completed = true
}

// Restart discards answers, score and result and returns to the first
// question. It is valid from any state.
func (s *Session) Restart() {
	*s.state = *NewSessionState(s.quiz.ID)
}

// Snapshot is the read-only view handed to presentation adapters.
type Snapshot struct {
	QuizID               string      `json:"quiz_id"`
	Completed            bool        `json:"completed"`
	CurrentQuestionIndex int         `json:"current_question_index"`
	TotalQuestions       int         `json:"total_questions"`
	CurrentQuestion      *Question   `json:"current_question,omitempty"`
	Score                *int        `json:"score,omitempty"`
	Result               *ResultBand `json:"result,omitempty"`
}

// ResultFound reports whether a completed pass resolved to a band.
func (s Snapshot) ResultFound() bool {
	return s.Completed && s.Result != nil
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		QuizID:               s.quiz.ID,
		Completed:            s.state.Completed,
		CurrentQuestionIndex: s.state.CurrentQuestionIndex,
		TotalQuestions:       len(s.quiz.Questions),
	}
	if s.state.Completed {
		score := s.state.Score
		snap.Score = &score
		if s.state.Result != nil {
			result := *s.state.Result
			snap.Result = &result
		}
		return snap
	}
	if question, err := s.CurrentQuestion(); err == nil {
		snap.CurrentQuestion = question
	}
	return snap
}

// SessionStore persists session states keyed by session id and quiz id.
type SessionStore interface {
	// Load returns ErrSessionNotFound when nothing is stored for the key.
	Load(ctx context.Context, sessionID, quizID string) (*SessionState, error)
	Save(ctx context.Context, sessionID string, state *SessionState) error
	Delete(ctx context.Context, sessionID, quizID string) error
}
