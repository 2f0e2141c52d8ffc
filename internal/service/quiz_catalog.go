package service

import (
	"context"
	"fmt"
	"psychotest/internal/domain"
	"psychotest/internal/dto"
	"psychotest/internal/logger"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// QuizCatalogService serves quiz definitions to the session service and
// quiz summaries to the API.
type QuizCatalogService interface {
	ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error)
	GetQuizSummary(ctx context.Context, quizID string) (*dto.QuizSummaryResponse, error)
	GetQuiz(ctx context.Context, quizID string) (*domain.QuizDefinition, error)
}

// quizCatalogService keeps every definition it has loaded for the life of
// the process. Definitions are read-only once cached.
type quizCatalogService struct {
	repo  domain.QuizRepository
	group singleflight.Group

	mu      sync.RWMutex
	quizzes map[string]*catalogEntry
}

// catalogEntry is an admitted definition with its coverage report.
type catalogEntry struct {
	quiz   *domain.QuizDefinition
	issues []domain.CoverageIssue
}

func NewQuizCatalogService(repo domain.QuizRepository) QuizCatalogService {
	return &quizCatalogService{
		repo:    repo,
		quizzes: make(map[string]*catalogEntry),
	}
}

// GetQuiz returns QUIZ_NOT_FOUND for unknown ids and INVALID_QUIZ_DEFINITION
// for stored definitions that fail validation.
func (s *quizCatalogService) GetQuiz(ctx context.Context, quizID string) (*domain.QuizDefinition, error) {
	entry, err := s.entry(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return entry.quiz, nil
}

func (s *quizCatalogService) entry(ctx context.Context, quizID string) (*catalogEntry, error) {
	if entry := s.cached(quizID); entry != nil {
		return entry, nil
	}

	// The load is shared by every waiter, so one caller going away must
	// not fail it for the others.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do("quiz:"+quizID, func() (interface{}, error) {
		if entry := s.cached(quizID); entry != nil {
			return entry, nil
		}
		quiz, err := s.repo.GetQuizByID(loadCtx, quizID)
		if err != nil {
			logger.Get().Error("Failed to load quiz definition", zap.Error(err), zap.String("quizID", quizID))
			return nil, domain.NewInternalError(fmt.Sprintf("failed to load quiz %s", quizID), err)
		}
		if quiz == nil {
			return nil, domain.NewQuizNotFoundError(quizID)
		}
		return s.admit(quiz)
	})
	if err != nil {
		return nil, err
	}
	return v.(*catalogEntry), nil
}

func (s *quizCatalogService) GetQuizSummary(ctx context.Context, quizID string) (*dto.QuizSummaryResponse, error) {
	entry, err := s.entry(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return toQuizSummaryResponse(entry), nil
}

// ListQuizzes skips definitions that fail validation so one bad row does not
// hide the rest of the catalog.
func (s *quizCatalogService) ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do("list", func() (interface{}, error) {
		quizzes, err := s.repo.ListQuizzes(loadCtx)
		if err != nil {
			logger.Get().Error("Failed to list quiz definitions", zap.Error(err))
			return nil, domain.NewInternalError("failed to list quizzes", err)
		}

		valid := make([]*catalogEntry, 0, len(quizzes))
		for _, quiz := range quizzes {
			if cached := s.cached(quiz.ID); cached != nil {
				valid = append(valid, cached)
				continue
			}
			entry, err := s.admit(quiz)
			if err != nil {
				continue
			}
			valid = append(valid, entry)
		}
		return valid, nil
	})
	if err != nil {
		return nil, err
	}

	entries := v.([]*catalogEntry)
	resp := &dto.QuizListResponse{Quizzes: make([]*dto.QuizSummaryResponse, 0, len(entries))}
	for _, entry := range entries {
		resp.Quizzes = append(resp.Quizzes, toQuizSummaryResponse(entry))
	}
	return resp, nil
}

func (s *quizCatalogService) cached(quizID string) *catalogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quizzes[quizID]
}

// admit validates quiz, reports authoring problems and caches it.
func (s *quizCatalogService) admit(quiz *domain.QuizDefinition) (*catalogEntry, error) {
	if err := quiz.Validate(); err != nil {
		logger.Get().Error("Rejected invalid quiz definition", zap.String("quizID", quiz.ID), zap.Error(err))
		return nil, domain.NewInvalidQuizError(quiz.ID, err)
	}
	entry := &catalogEntry{quiz: quiz, issues: quiz.CoverageIssues()}
	for _, issue := range entry.issues {
		logger.Get().Warn("Quiz result bands do not partition the score range",
			zap.String("quizID", quiz.ID),
			zap.String("kind", string(issue.Kind)),
			zap.Int("minScore", issue.MinScore),
			zap.Int("maxScore", issue.MaxScore),
			zap.Strings("types", issue.Types),
		)
	}

	s.mu.Lock()
	s.quizzes[quiz.ID] = entry
	s.mu.Unlock()
	return entry, nil
}

func toQuizSummaryResponse(entry *catalogEntry) *dto.QuizSummaryResponse {
	quiz := entry.quiz
	lo, hi := domain.ScoreBounds(quiz)
	resp := &dto.QuizSummaryResponse{
		ID:            quiz.ID,
		Name:          quiz.Name,
		Description:   quiz.Description,
		QuestionCount: quiz.QuestionCount(),
		ScoreMin:      lo,
		ScoreMax:      hi,
		Results:       make([]dto.ResultBandResponse, 0, len(quiz.Results)),
	}
	for _, band := range quiz.Results {
		resp.Results = append(resp.Results, dto.ResultBandResponse{
			Type:     band.Type,
			Title:    band.Title,
			MinScore: band.MinScore,
			MaxScore: band.MaxScore,
		})
	}
	for _, issue := range entry.issues {
		resp.CoverageIssues = append(resp.CoverageIssues, issue.String())
	}
	return resp
}
