package service

import (
	"context"

	"psychotest/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) ListQuizzes(ctx context.Context) ([]*domain.QuizDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizDefinition), args.Error(1)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.QuizDefinition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizDefinition), args.Error(1)
}

func (m *MockQuizRepository) SaveQuiz(ctx context.Context, quiz *domain.QuizDefinition) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

// --- MockSessionStore ---
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Load(ctx context.Context, sessionID, quizID string) (*domain.SessionState, error) {
	args := m.Called(ctx, sessionID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionState), args.Error(1)
}

func (m *MockSessionStore) Save(ctx context.Context, sessionID string, state *domain.SessionState) error {
	args := m.Called(ctx, sessionID, state)
	return args.Error(0)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID, quizID string) error {
	args := m.Called(ctx, sessionID, quizID)
	return args.Error(0)
}

// testQuiz has two questions scored [3,2,1,0] and bands low 0..3, high 4..6.
func testQuiz() *domain.QuizDefinition {
	options := []string{"always", "often", "rarely", "never"}
	return &domain.QuizDefinition{
		ID:          "two",
		Name:        "Two questions",
		Description: "A short quiz",
		Questions: []domain.Question{
			{ID: "q1", Text: "First?", Options: options, Scores: []int{3, 2, 1, 0}},
			{ID: "q2", Text: "Second?", Options: options, Scores: []int{3, 2, 1, 0}},
		},
		Results: []domain.ResultBand{
			{Type: "low", Title: "Low", Description: "low", MinScore: 0, MaxScore: 3},
			{Type: "high", Title: "High", Description: "high", Advice: "keep going", MinScore: 4, MaxScore: 6},
		},
	}
}
