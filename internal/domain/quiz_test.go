package domain

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoQuestionQuiz has two questions scored [3,2,1,0] and bands Low 0..3 and
// High 4..6.
func twoQuestionQuiz() *QuizDefinition {
	options := []string{"always", "often", "rarely", "never"}
	return &QuizDefinition{
		ID:   "two",
		Name: "Two questions",
		Questions: []Question{
			{ID: "q1", Text: "First?", Options: options, Scores: []int{3, 2, 1, 0}},
			{ID: "q2", Text: "Second?", Options: options, Scores: []int{3, 2, 1, 0}},
		},
		Results: []ResultBand{
			{Type: "low", Title: "Low", Description: "low", MinScore: 0, MaxScore: 3},
			{Type: "high", Title: "High", Description: "high", Advice: "keep going", MinScore: 4, MaxScore: 6},
		},
	}
}

func TestQuizDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *QuizDefinition)
		errText string
	}{
		{"valid quiz", func(q *QuizDefinition) {}, ""},
		{"missing id", func(q *QuizDefinition) { q.ID = "" }, "quiz id is required"},
		{"missing name", func(q *QuizDefinition) { q.Name = "" }, "name is required"},
		{"no questions", func(q *QuizDefinition) { q.Questions = nil }, "at least one question"},
		{"no results", func(q *QuizDefinition) { q.Results = nil }, "at least one result band"},
		{"single option", func(q *QuizDefinition) {
			q.Questions[0].Options = []string{"only"}
			q.Questions[0].Scores = []int{1}
		}, "at least two options"},
		{"scores length mismatch", func(q *QuizDefinition) { q.Questions[1].Scores = []int{1, 2} }, "4 options but 2 scores"},
		{"duplicate question id", func(q *QuizDefinition) { q.Questions[1].ID = "q1" }, "duplicate question id q1"},
		{"inverted band", func(q *QuizDefinition) { q.Results[0].MinScore = 5 }, "min score 5 exceeds max score 3"},
		{"band without title", func(q *QuizDefinition) { q.Results[1].Title = "" }, "title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := twoQuestionQuiz()
			tt.mutate(quiz)
			err := quiz.Validate()
			if tt.errText == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestQuizDefinition_CoverageIssues(t *testing.T) {
	t.Run("full coverage", func(t *testing.T) {
		assert.Empty(t, twoQuestionQuiz().CoverageIssues())
	})

	t.Run("gap is reported as one run", func(t *testing.T) {
		quiz := twoQuestionQuiz()
		quiz.Results[0].MaxScore = 2
		quiz.Results[1].MinScore = 5

		issues := quiz.CoverageIssues()
		require.Len(t, issues, 1)
		assert.Equal(t, CoverageGap, issues[0].Kind)
		assert.Equal(t, 3, issues[0].MinScore)
		assert.Equal(t, 4, issues[0].MaxScore)
		assert.Equal(t, "scores 3..4 match no result", issues[0].String())
	})

	t.Run("overlap names both bands", func(t *testing.T) {
		quiz := twoQuestionQuiz()
		quiz.Results[0].MaxScore = 4

		issues := quiz.CoverageIssues()
		require.Len(t, issues, 1)
		assert.Equal(t, CoverageOverlap, issues[0].Kind)
		assert.Equal(t, 4, issues[0].MinScore)
		assert.Equal(t, 4, issues[0].MaxScore)
		assert.Equal(t, []string{"low", "high"}, issues[0].Types)
	})

	t.Run("gaps at both ends", func(t *testing.T) {
		quiz := twoQuestionQuiz()
		quiz.Results = []ResultBand{{Type: "mid", Title: "Mid", MinScore: 2, MaxScore: 4}}

		issues := quiz.CoverageIssues()
		require.Len(t, issues, 2)
		assert.Equal(t, CoverageIssue{Kind: CoverageGap, MinScore: 0, MaxScore: 1}, issues[0])
		assert.Equal(t, CoverageIssue{Kind: CoverageGap, MinScore: 5, MaxScore: 6}, issues[1])
	})
}

func TestQuizDefinition_CoverageIssues_WideScoreRange(t *testing.T) {
	const top = 1_000_000_000
	quiz := &QuizDefinition{
		ID:   "wide",
		Name: "Wide",
		Questions: []Question{
			{ID: "q1", Text: "?", Options: []string{"a", "b"}, Scores: []int{0, top}},
		},
		Results: []ResultBand{{Type: "all", Title: "All", MinScore: 0, MaxScore: top}},
	}

	start := time.Now()
	assert.Empty(t, quiz.CoverageIssues())

	quiz.Results = []ResultBand{
		{Type: "low", Title: "Low", MinScore: 0, MaxScore: 10},
		{Type: "high", Title: "High", MinScore: 5, MaxScore: top / 2},
	}
	issues := quiz.CoverageIssues()
	assert.Less(t, time.Since(start), time.Second)

	require.Len(t, issues, 2)
	assert.Equal(t, CoverageIssue{Kind: CoverageOverlap, MinScore: 5, MaxScore: 10, Types: []string{"low", "high"}}, issues[0])
	assert.Equal(t, CoverageIssue{Kind: CoverageGap, MinScore: top/2 + 1, MaxScore: top}, issues[1])
}

// coverageByScan checks every score one by one; it is the reference the
// endpoint sweep must agree with on small ranges.
func coverageByScan(q *QuizDefinition) []CoverageIssue {
	lo, hi := ScoreBounds(q)
	var issues []CoverageIssue
	var open *CoverageIssue
	for score := lo; score <= hi; score++ {
		var matched []string
		for i := range q.Results {
			if q.Results[i].Contains(score) {
				matched = append(matched, q.Results[i].Type)
			}
		}
		var kind CoverageIssueKind
		switch {
		case len(matched) == 0:
			kind = CoverageGap
		case len(matched) > 1:
			kind = CoverageOverlap
		}
		if open != nil && (kind != open.Kind || !sameTypes(open.Types, matched)) {
			issues = append(issues, *open)
			open = nil
		}
		if kind == "" {
			continue
		}
		if open == nil {
			open = &CoverageIssue{Kind: kind, MinScore: score, Types: matched}
		}
		open.MaxScore = score
	}
	if open != nil {
		issues = append(issues, *open)
	}
	return issues
}

func TestQuizDefinition_CoverageIssues_MatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		quiz := twoQuestionQuiz()
		quiz.Results = nil
		for j, n := 0, 1+rng.Intn(4); j < n; j++ {
			lo := rng.Intn(12) - 3
			quiz.Results = append(quiz.Results, ResultBand{
				Type:     fmt.Sprintf("b%d", j),
				Title:    "band",
				MinScore: lo,
				MaxScore: lo + rng.Intn(6),
			})
		}
		require.Equal(t, coverageByScan(quiz), quiz.CoverageIssues(), "bands %+v", quiz.Results)
	}
}
