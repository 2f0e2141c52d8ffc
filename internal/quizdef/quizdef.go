// Package quizdef reads quiz definition documents: the set embedded in the
// binary and JSON files supplied by operators.
package quizdef

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"psychotest/internal/domain"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

//go:embed builtin/quizzes.json
var builtinJSON []byte

const schemaURL = "schema://quiz-definitions.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Document is the on-disk shape of a definitions file.
type Document struct {
	Quizzes []*domain.QuizDefinition `json:"quizzes"`
}

// Builtin returns fresh copies of the quizzes shipped with the binary.
func Builtin() ([]*domain.QuizDefinition, error) {
	return Parse(builtinJSON)
}

// LoadFile reads and parses a definitions file.
func LoadFile(path string) ([]*domain.QuizDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definitions file: %w", err)
	}
	quizzes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return quizzes, nil
}

// Parse checks data against the definitions schema, decodes it and runs the
// structural validation of every quiz. Quiz ids must be unique.
func Parse(data []byte) ([]*domain.QuizDefinition, error) {
	raw, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode definitions: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Quizzes))
	for _, quiz := range doc.Quizzes {
		if err := quiz.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[quiz.ID]; dup {
			return nil, fmt.Errorf("duplicate quiz id %s", quiz.ID)
		}
		seen[quiz.ID] = struct{}{}
	}
	return doc.Quizzes, nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}
