package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a []string as a JSON array in a text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	data, err := jsonColumnBytes("StringSlice", value)
	if err != nil {
		return err
	}
	if data == nil {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// IntSlice stores a []int as a JSON array in a text column.
type IntSlice []int

// Value implements the driver.Valuer interface
func (s IntSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *IntSlice) Scan(value interface{}) error {
	data, err := jsonColumnBytes("IntSlice", value)
	if err != nil {
		return err
	}
	if data == nil {
		*s = IntSlice{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// jsonColumnBytes returns nil for NULL, empty and "null" columns.
func jsonColumnBytes(typeName string, value interface{}) ([]byte, error) {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil, errors.New(typeName + " Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	return data, nil
}

// Quiz is a row of the quizzes table.
type Quiz struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// QuizQuestion is a row of quiz_questions; Position keeps authored order.
type QuizQuestion struct {
	QuizID     string      `db:"quiz_id"`
	Position   int         `db:"position"`
	QuestionID string      `db:"question_id"`
	Text       string      `db:"text"`
	Options    StringSlice `db:"options"`
	Scores     IntSlice    `db:"scores"`
}

// QuizResultBand is a row of quiz_result_bands; Position keeps authored
// order, which decides overlaps.
type QuizResultBand struct {
	QuizID      string         `db:"quiz_id"`
	Position    int            `db:"position"`
	ResultType  string         `db:"result_type"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Advice      sql.NullString `db:"advice"`
	MinScore    int            `db:"min_score"`
	MaxScore    int            `db:"max_score"`
}
