package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Question is one prompt of a quiz. Scores[i] is the point value of
// choosing Options[i].
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Scores  []int    `json:"scores"`
}

// Validate checks the structural invariants of a question.
func (q *Question) Validate() error {
	if q.ID == "" {
		return errors.New("question id is required")
	}
	if q.Text == "" {
		return fmt.Errorf("question %s: text is required", q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s: at least two options are required, got %d", q.ID, len(q.Options))
	}
	if len(q.Options) != len(q.Scores) {
		return fmt.Errorf("question %s: %d options but %d scores", q.ID, len(q.Options), len(q.Scores))
	}
	return nil
}

// ResultBand is a scored outcome category with an inclusive score range.
type ResultBand struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Advice      string `json:"advice,omitempty"`
	MinScore    int    `json:"min_score"`
	MaxScore    int    `json:"max_score"`
}

// Contains reports whether score lies within the band, bounds included.
func (b *ResultBand) Contains(score int) bool {
	return b.MinScore <= score && score <= b.MaxScore
}

// Validate checks the structural invariants of a band.
func (b *ResultBand) Validate() error {
	if b.Type == "" {
		return errors.New("result type is required")
	}
	if b.Title == "" {
		return fmt.Errorf("result %s: title is required", b.Type)
	}
	if b.MinScore > b.MaxScore {
		return fmt.Errorf("result %s: min score %d exceeds max score %d", b.Type, b.MinScore, b.MaxScore)
	}
	return nil
}

// QuizDefinition is the immutable content of one quiz: ordered questions and
// result bands in authored order. The engine only reads it.
type QuizDefinition struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Questions   []Question   `json:"questions"`
	Results     []ResultBand `json:"results"`
}

// Validate rejects definitions the engine cannot run. Gaps and overlaps
// between bands are tolerated here; see CoverageIssues.
func (q *QuizDefinition) Validate() error {
	if q.ID == "" {
		return errors.New("quiz id is required")
	}
	if q.Name == "" {
		return fmt.Errorf("quiz %s: name is required", q.ID)
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz %s: at least one question is required", q.ID)
	}
	if len(q.Results) == 0 {
		return fmt.Errorf("quiz %s: at least one result band is required", q.ID)
	}

	seen := make(map[string]struct{}, len(q.Questions))
	for i := range q.Questions {
		question := &q.Questions[i]
		if err := question.Validate(); err != nil {
			return fmt.Errorf("quiz %s: %w", q.ID, err)
		}
		if _, dup := seen[question.ID]; dup {
			return fmt.Errorf("quiz %s: duplicate question id %s", q.ID, question.ID)
		}
		seen[question.ID] = struct{}{}
	}
	for i := range q.Results {
		if err := q.Results[i].Validate(); err != nil {
			return fmt.Errorf("quiz %s: %w", q.ID, err)
		}
	}
	return nil
}

// QuestionCount returns the number of questions in the quiz.
func (q *QuizDefinition) QuestionCount() int {
	return len(q.Questions)
}

// CoverageIssueKind classifies an authoring problem in the band layout.
type CoverageIssueKind string

const (
	CoverageGap     CoverageIssueKind = "gap"
	CoverageOverlap CoverageIssueKind = "overlap"
)

// CoverageIssue is a run of reachable totals that resolve to no band (gap)
// or to more than one band (overlap).
type CoverageIssue struct {
	Kind     CoverageIssueKind `json:"kind"`
	MinScore int               `json:"min_score"`
	MaxScore int               `json:"max_score"`
	Types    []string          `json:"types,omitempty"`
}

func (c CoverageIssue) String() string {
	if c.Kind == CoverageGap {
		return fmt.Sprintf("scores %d..%d match no result", c.MinScore, c.MaxScore)
	}
	return fmt.Sprintf("scores %d..%d match %v", c.MinScore, c.MaxScore, c.Types)
}

// CoverageIssues reports gaps and overlaps between the lowest and highest
// reachable score, merged into contiguous runs. Only band endpoints are
// visited, so the cost does not depend on the width of the score range.
func (q *QuizDefinition) CoverageIssues() []CoverageIssue {
	lo, hi := ScoreBounds(q)

	// Every segment between two consecutive cuts is matched by the same
	// set of bands. A cut at x means a segment starts at x.
	cuts := []int{lo}
	for i := range q.Results {
		b := q.Results[i]
		if b.MinScore > lo && b.MinScore <= hi {
			cuts = append(cuts, b.MinScore)
		}
		if b.MaxScore >= lo && b.MaxScore < hi {
			cuts = append(cuts, b.MaxScore+1)
		}
	}
	sort.Ints(cuts)

	var issues []CoverageIssue
	var open *CoverageIssue
	for i, start := range cuts {
		if i > 0 && start == cuts[i-1] {
			continue
		}
		end := hi
		for _, next := range cuts[i+1:] {
			if next > start {
				end = next - 1
				break
			}
		}

		var matched []string
		for j := range q.Results {
			if q.Results[j].Contains(start) {
				matched = append(matched, q.Results[j].Type)
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
			open = &CoverageIssue{Kind: kind, MinScore: start, Types: matched}
		}
		open.MaxScore = end
	}
	if open != nil {
		issues = append(issues, *open)
	}
	return issues
}

func sameTypes(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// QuizRepository defines the interface for quiz definition storage
type QuizRepository interface {
	// ListQuizzes returns every stored definition, ordered by id.
	ListQuizzes(ctx context.Context) ([]*QuizDefinition, error)

	// GetQuizByID returns nil, nil when the quiz does not exist.
	GetQuizByID(ctx context.Context, id string) (*QuizDefinition, error)

	// SaveQuiz inserts or replaces a definition.
	SaveQuiz(ctx context.Context, quiz *QuizDefinition) error
}
