package dto

// QuizSummaryResponse describes a quiz without its answer scores
// @Description Quiz summary
type QuizSummaryResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	QuestionCount  int                  `json:"question_count"`
	ScoreMin       int                  `json:"score_min"`
	ScoreMax       int                  `json:"score_max"`
	Results        []ResultBandResponse `json:"results"`
	CoverageIssues []string             `json:"coverage_issues,omitempty"`
}

// ResultBandResponse is a result outcome with the score range that selects it
type ResultBandResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	MinScore int    `json:"min_score"`
	MaxScore int    `json:"max_score"`
}

// QuizListResponse wraps the quiz catalog
type QuizListResponse struct {
	Quizzes []*QuizSummaryResponse `json:"quizzes"`
}

// QuestionResponse is the question currently awaiting an answer.
// Option scores are never exposed.
type QuestionResponse struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// ResultResponse is the outcome of a completed pass
type ResultResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Advice      string `json:"advice,omitempty"`
}

// ProgressResponse drives the progress bar: Current is 1-based and capped at Total
type ProgressResponse struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// SessionResponse is the snapshot of one session's pass through a quiz
// @Description Session snapshot
type SessionResponse struct {
	QuizID               string            `json:"quiz_id"`
	QuizName             string            `json:"quiz_name"`
	Completed            bool              `json:"completed"`
	CurrentQuestionIndex int               `json:"current_question_index"`
	Progress             ProgressResponse  `json:"progress"`
	CurrentQuestion      *QuestionResponse `json:"current_question,omitempty"`
	Score                *int              `json:"score,omitempty"`
	Result               *ResultResponse   `json:"result"`
	ResultFound          bool              `json:"result_found"`
}

// AnswerRequest represents a user's choice in the API request
// @Description Request body for answering the current question
type AnswerRequest struct {
	ChoiceIndex *int `json:"choice_index"`
}

// HealthResponse reports liveness of the API and its session store
type HealthResponse struct {
	Status       string `json:"status"`
	SessionStore string `json:"session_store"`
}
