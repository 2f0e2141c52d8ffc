package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"psychotest/internal/domain"
	"psychotest/internal/repository/models"
	"psychotest/internal/util"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	selectQuizColumns = `SELECT
		id "id",
		name "name",
		description "description"
	FROM quizzes`

	selectQuestionColumns = `SELECT
		quiz_id "quiz_id",
		position "position",
		question_id "question_id",
		text "text",
		options "options",
		scores "scores"
	FROM quiz_questions`

	selectResultBandColumns = `SELECT
		quiz_id "quiz_id",
		position "position",
		result_type "result_type",
		title "title",
		description "description",
		advice "advice",
		min_score "min_score",
		max_score "max_score"
	FROM quiz_result_bands`
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB. A quiz
// spans three tables; questions and bands keep their authored order in a
// position column.
type QuizDatabaseAdapter struct {
	db *sqlx.DB
	tm domain.TransactionManager
}

func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db, tm: NewTransactionManagerAdapter(db)}
}

// ListQuizzes implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListQuizzes(ctx context.Context) ([]*domain.QuizDefinition, error) {
	exec := GetExecutor(ctx, a.db)

	var quizRows []models.Quiz
	if err := exec.SelectContext(ctx, &quizRows, selectQuizColumns+` ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	var questionRows []models.QuizQuestion
	if err := exec.SelectContext(ctx, &questionRows, selectQuestionColumns+` ORDER BY quiz_id, position`); err != nil {
		return nil, fmt.Errorf("failed to list quiz questions: %w", err)
	}
	var bandRows []models.QuizResultBand
	if err := exec.SelectContext(ctx, &bandRows, selectResultBandColumns+` ORDER BY quiz_id, position`); err != nil {
		return nil, fmt.Errorf("failed to list quiz result bands: %w", err)
	}

	questionsByQuiz := make(map[string][]models.QuizQuestion)
	for _, q := range questionRows {
		questionsByQuiz[q.QuizID] = append(questionsByQuiz[q.QuizID], q)
	}
	bandsByQuiz := make(map[string][]models.QuizResultBand)
	for _, b := range bandRows {
		bandsByQuiz[b.QuizID] = append(bandsByQuiz[b.QuizID], b)
	}

	quizzes := make([]*domain.QuizDefinition, 0, len(quizRows))
	for i := range quizRows {
		row := &quizRows[i]
		quizzes = append(quizzes, toDomainQuiz(row, questionsByQuiz[row.ID], bandsByQuiz[row.ID]))
	}
	return quizzes, nil
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.QuizDefinition, error) {
	exec := GetExecutor(ctx, a.db)

	var quizRow models.Quiz
	err := exec.GetContext(ctx, &quizRow, exec.Rebind(selectQuizColumns+` WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}

	var questionRows []models.QuizQuestion
	if err := exec.SelectContext(ctx, &questionRows,
		exec.Rebind(selectQuestionColumns+` WHERE quiz_id = ? ORDER BY position`), id); err != nil {
		return nil, fmt.Errorf("failed to get questions of quiz %s: %w", id, err)
	}
	var bandRows []models.QuizResultBand
	if err := exec.SelectContext(ctx, &bandRows,
		exec.Rebind(selectResultBandColumns+` WHERE quiz_id = ? ORDER BY position`), id); err != nil {
		return nil, fmt.Errorf("failed to get result bands of quiz %s: %w", id, err)
	}

	return toDomainQuiz(&quizRow, questionRows, bandRows), nil
}

// SaveQuiz replaces any stored quiz with the same id in one transaction.
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.QuizDefinition) error {
	if quiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	if err := quiz.Validate(); err != nil {
		return domain.NewInvalidQuizError(quiz.ID, err)
	}

	quizRow, questionRows, bandRows := toModelQuiz(quiz, time.Now())

	return a.tm.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)

		for _, table := range []string{"quiz_result_bands", "quiz_questions"} {
			if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM `+table+` WHERE quiz_id = ?`), quiz.ID); err != nil {
				return fmt.Errorf("failed to clear %s of quiz %s: %w", table, quiz.ID, err)
			}
		}
		if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM quizzes WHERE id = ?`), quiz.ID); err != nil {
			return fmt.Errorf("failed to clear quiz %s: %w", quiz.ID, err)
		}

		if _, err := exec.ExecContext(ctx,
			exec.Rebind(`INSERT INTO quizzes (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`),
			quizRow.ID, quizRow.Name, quizRow.Description, quizRow.CreatedAt, quizRow.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to save quiz %s: %w", quiz.ID, err)
		}

		for _, q := range questionRows {
			if _, err := exec.ExecContext(ctx,
				exec.Rebind(`INSERT INTO quiz_questions (quiz_id, position, question_id, text, options, scores) VALUES (?, ?, ?, ?, ?, ?)`),
				q.QuizID, q.Position, q.QuestionID, q.Text, q.Options, q.Scores,
			); err != nil {
				return fmt.Errorf("failed to save question %s of quiz %s: %w", q.QuestionID, quiz.ID, err)
			}
		}

		for _, b := range bandRows {
			if _, err := exec.ExecContext(ctx,
				exec.Rebind(`INSERT INTO quiz_result_bands (quiz_id, position, result_type, title, description, advice, min_score, max_score) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
				b.QuizID, b.Position, b.ResultType, b.Title, b.Description, b.Advice, b.MinScore, b.MaxScore,
			); err != nil {
				return fmt.Errorf("failed to save result %s of quiz %s: %w", b.ResultType, quiz.ID, err)
			}
		}
		return nil
	})
}

func toDomainQuiz(row *models.Quiz, questions []models.QuizQuestion, bands []models.QuizResultBand) *domain.QuizDefinition {
	quiz := &domain.QuizDefinition{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description.String,
		Questions:   make([]domain.Question, 0, len(questions)),
		Results:     make([]domain.ResultBand, 0, len(bands)),
	}
	for _, q := range questions {
		quiz.Questions = append(quiz.Questions, domain.Question{
			ID:      q.QuestionID,
			Text:    q.Text,
			Options: []string(q.Options),
			Scores:  []int(q.Scores),
		})
	}
	for _, b := range bands {
		quiz.Results = append(quiz.Results, domain.ResultBand{
			Type:        b.ResultType,
			Title:       b.Title,
			Description: b.Description.String,
			Advice:      b.Advice.String,
			MinScore:    b.MinScore,
			MaxScore:    b.MaxScore,
		})
	}
	return quiz
}

func toModelQuiz(quiz *domain.QuizDefinition, now time.Time) (*models.Quiz, []models.QuizQuestion, []models.QuizResultBand) {
	quizRow := &models.Quiz{
		ID:          quiz.ID,
		Name:        quiz.Name,
		Description: util.StringToNullString(quiz.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	questions := make([]models.QuizQuestion, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions = append(questions, models.QuizQuestion{
			QuizID:     quiz.ID,
			Position:   i,
			QuestionID: q.ID,
			Text:       q.Text,
			Options:    models.StringSlice(q.Options),
			Scores:     models.IntSlice(q.Scores),
		})
	}

	bands := make([]models.QuizResultBand, 0, len(quiz.Results))
	for i, b := range quiz.Results {
		bands = append(bands, models.QuizResultBand{
			QuizID:      quiz.ID,
			Position:    i,
			ResultType:  b.Type,
			Title:       b.Title,
			Description: util.StringToNullString(b.Description),
			Advice:      util.StringToNullString(b.Advice),
			MinScore:    b.MinScore,
			MaxScore:    b.MaxScore,
		})
	}
	return quizRow, questions, bands
}
