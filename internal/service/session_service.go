package service

import (
	"context"
	"errors"
	"psychotest/internal/cache"
	"psychotest/internal/domain"
	"psychotest/internal/dto"
	"psychotest/internal/logger"

	"github.com/moby/locker"
	"go.uber.org/zap"
)

// SessionService drives one session's pass through a quiz. Every operation
// returns the snapshot after it has been applied.
type SessionService interface {
	// Initialize creates the session state when absent and otherwise
	// returns the existing one unchanged.
	Initialize(ctx context.Context, sessionID, quizID string) (*dto.SessionResponse, error)
	// Snapshot behaves like Initialize; reading a session never fails for a
	// known quiz.
	Snapshot(ctx context.Context, sessionID, quizID string) (*dto.SessionResponse, error)
	Answer(ctx context.Context, sessionID, quizID string, choiceIndex int) (*dto.SessionResponse, error)
	Restart(ctx context.Context, sessionID, quizID string) (*dto.SessionResponse, error)
}

type sessionService struct {
	catalog QuizCatalogService
	store   domain.SessionStore
	locks   *locker.Locker
}

func NewSessionService(catalog QuizCatalogService, store domain.SessionStore) SessionService {
	return &sessionService{
		catalog: catalog,
		store:   store,
		locks:   locker.New(),
	}
}

func (s *sessionService) Initialize(ctx context.Context, sessionID, quizID string) (*dto.SessionResponse, error) {
	quiz, err := s.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	defer s.lock(sessionID, quizID)()

	session, err := s.loadOrCreate(ctx, sessionID, quiz)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(quiz, session.Snapshot()), nil
}

func (s *sessionService) Snapshot(ctx context.Context, sessionID, quizID string) (*dto.SessionResponse, error) {
	return s.Initialize(ctx, sessionID, quizID)
}

// Answer records choiceIndex for the current question. A rejected answer is
// returned as a domain error and nothing is saved.
func (s *sessionService) Answer(ctx context.Context, sessionID, quizID string, choiceIndex int) (*dto.SessionResponse, error) {
	quiz, err := s.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	defer s.lock(sessionID, quizID)()

	session, err := s.loadOrCreate(ctx, sessionID, quiz)
	if err != nil {
		return nil, err
	}

	if err := session.SubmitAnswer(choiceIndex); err != nil {
		logger.Get().Debug("Answer rejected",
			zap.String("sessionID", sessionID),
			zap.String("quizID", quizID),
			zap.Int("choiceIndex", choiceIndex),
			zap.Error(err))
		return nil, err
	}
	if err := s.store.Save(ctx, sessionID, session.State()); err != nil {
		return nil, err
	}

	snap := session.Snapshot()
	if snap.Completed {
		s.logCompletion(sessionID, snap)
	}
	return toSessionResponse(quiz, snap), nil
}

// Restart is valid from any state and always yields the initial snapshot.
func (s *sessionService) Restart(ctx context.Context, sessionID, quizID string) (*dto.SessionResponse, error) {
	quiz, err := s.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	defer s.lock(sessionID, quizID)()

	state, err := s.store.Load(ctx, sessionID, quizID)
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, err
	}
	session := domain.NewSession(quiz, state)
	session.Restart()
	if err := s.store.Save(ctx, sessionID, session.State()); err != nil {
		return nil, err
	}
	logger.Get().Debug("Session restarted", zap.String("sessionID", sessionID), zap.String("quizID", quizID))
	return toSessionResponse(quiz, session.Snapshot()), nil
}

// lock serializes load-mutate-save on one session state key.
func (s *sessionService) lock(sessionID, quizID string) func() {
	key := cache.SessionStateKey(sessionID, quizID)
	s.locks.Lock(key)
	return func() { _ = s.locks.Unlock(key) }
}

// loadOrCreate must be called with the session key locked.
func (s *sessionService) loadOrCreate(ctx context.Context, sessionID string, quiz *domain.QuizDefinition) (*domain.Session, error) {
	state, err := s.store.Load(ctx, sessionID, quiz.ID)
	switch {
	case err == nil:
		if !stateFits(quiz, state) {
			logger.Get().Warn("Stored session state does not fit the current quiz definition; starting over",
				zap.String("sessionID", sessionID),
				zap.String("quizID", quiz.ID),
				zap.Int("currentQuestionIndex", state.CurrentQuestionIndex))
			break
		}
		return domain.NewSession(quiz, state), nil
	case errors.Is(err, domain.ErrSessionNotFound):
	default:
		return nil, err
	}

	session := domain.NewSession(quiz, nil)
	if err := s.store.Save(ctx, sessionID, session.State()); err != nil {
		return nil, err
	}
	logger.Get().Debug("Session initialized", zap.String("sessionID", sessionID), zap.String("quizID", quiz.ID))
	return session, nil
}

// stateFits rejects states written against an older definition: the index
// must be in range and the answers must be exactly the questions before it.
func stateFits(quiz *domain.QuizDefinition, state *domain.SessionState) bool {
	n := len(quiz.Questions)
	idx := state.CurrentQuestionIndex
	if idx < 0 || idx > n {
		return false
	}
	if state.Completed != (idx == n) {
		return false
	}
	if len(state.Answers) != idx {
		return false
	}
	for _, question := range quiz.Questions[:idx] {
		if _, ok := state.Answers[question.ID]; !ok {
			return false
		}
	}
	return true
}

func (s *sessionService) logCompletion(sessionID string, snap domain.Snapshot) {
	if !snap.ResultFound() {
		logger.Get().Warn("Completed quiz score matches no result band",
			zap.String("sessionID", sessionID),
			zap.String("quizID", snap.QuizID),
			zap.Int("score", *snap.Score))
		return
	}
	logger.Get().Info("Quiz completed",
		zap.String("sessionID", sessionID),
		zap.String("quizID", snap.QuizID),
		zap.Int("score", *snap.Score),
		zap.String("resultType", snap.Result.Type))
}

func toSessionResponse(quiz *domain.QuizDefinition, snap domain.Snapshot) *dto.SessionResponse {
	current := snap.CurrentQuestionIndex + 1
	if current > snap.TotalQuestions {
		current = snap.TotalQuestions
	}

	resp := &dto.SessionResponse{
		QuizID:               snap.QuizID,
		QuizName:             quiz.Name,
		Completed:            snap.Completed,
		CurrentQuestionIndex: snap.CurrentQuestionIndex,
		Progress:             dto.ProgressResponse{Current: current, Total: snap.TotalQuestions},
		Score:                snap.Score,
		ResultFound:          snap.ResultFound(),
	}
	if q := snap.CurrentQuestion; q != nil {
		resp.CurrentQuestion = &dto.QuestionResponse{
			ID:      q.ID,
			Text:    q.Text,
			Options: append([]string(nil), q.Options...),
		}
	}
	if r := snap.Result; r != nil {
		resp.Result = &dto.ResultResponse{
			Type:        r.Type,
			Title:       r.Title,
			Description: r.Description,
			Advice:      r.Advice,
		}
	}
	return resp
}
