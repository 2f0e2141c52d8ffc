package repository

import (
	"context"
	"psychotest/internal/domain"
	"sort"
	"sync"
)

// StaticQuizRepository serves definitions held in memory, such as the ones
// embedded in the binary.
type StaticQuizRepository struct {
	mu      sync.RWMutex
	quizzes map[string]*domain.QuizDefinition
}

func NewStaticQuizRepository(quizzes []*domain.QuizDefinition) *StaticQuizRepository {
	r := &StaticQuizRepository{quizzes: make(map[string]*domain.QuizDefinition, len(quizzes))}
	for _, quiz := range quizzes {
		r.quizzes[quiz.ID] = quiz
	}
	return r
}

// ListQuizzes implements domain.QuizRepository
func (r *StaticQuizRepository) ListQuizzes(ctx context.Context) ([]*domain.QuizDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quizzes := make([]*domain.QuizDefinition, 0, len(r.quizzes))
	for _, quiz := range r.quizzes {
		quizzes = append(quizzes, quiz)
	}
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].ID < quizzes[j].ID })
	return quizzes, nil
}

// GetQuizByID implements domain.QuizRepository
func (r *StaticQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.QuizDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.quizzes[id], nil
}

// SaveQuiz implements domain.QuizRepository
func (r *StaticQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.QuizDefinition) error {
	if err := quiz.Validate(); err != nil {
		return domain.NewInvalidQuizError(quiz.ID, err)
	}
	r.mu.Lock()
	r.quizzes[quiz.ID] = quiz
	r.mu.Unlock()
	return nil
}
