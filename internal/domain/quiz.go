package domain

import (
	"fmt"
	"time"
)

// QuestionType identifies how a question is presented and graded.
type QuestionType string

const (
	SingleChoice   QuestionType = "SINGLE_CHOICE"
	MultipleChoice QuestionType = "MULTIPLE_CHOICE"
	FillInTheBlank QuestionType = "FILL_IN_THE_BLANK"
	TrueFalse      QuestionType = "TRUE_FALSE"
	Subjective     QuestionType = "SUBJECTIVE"
)

// IsChoice reports whether the type carries an option list whose ids
// the correct answers reference.
func (t QuestionType) IsChoice() bool {
	return t == SingleChoice || t == MultipleChoice
}

// IsValid reports whether t is one of the five known question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case SingleChoice, MultipleChoice, FillInTheBlank, TrueFalse, Subjective:
		return true
	}
	return false
}

// Option is a single selectable choice within a question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question represents one question within a QuizSet.
// CorrectAnswers semantics depend on Type: option ids for the choice types,
// the literal "true"/"false" for TRUE_FALSE, accepted answer strings
// (pipe-delimited synonym groups allowed) for FILL_IN_THE_BLANK, and
// unused for SUBJECTIVE.
type Question struct {
	ID                  string       `json:"id"`
	Type                QuestionType `json:"type"`
	Text                string       `json:"text"`
	Points              float64      `json:"points,omitempty"`
	Options             []Option     `json:"options,omitempty"`
	CorrectAnswers      []string     `json:"correctAnswers,omitempty"`
	SubjectiveReference string       `json:"subjectiveReference,omitempty"`
	Explanation         string       `json:"explanation,omitempty"`
}

// QuizSet is a titled, ordered collection of questions. Question order is
// significant: it defines display order and answer-key order.
type QuizSet struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	CreatedAt   int64      `json:"createdAt,omitempty"` // epoch milliseconds
	Questions   []Question `json:"questions"`
}

// NewQuizSet creates a QuizSet stamped with the current time.
func NewQuizSet(id, title, description string, questions []Question) *QuizSet {
	return &QuizSet{
		ID:          id,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UnixMilli(),
		Questions:   questions,
	}
}

// Validate checks the quiz set against the data model invariants.
func (q *QuizSet) Validate() error {
	if q.ID == "" {
		return NewValidationFailure("quiz set id is required")
	}
	if q.Title == "" {
		return NewValidationFailure("quiz set title is required")
	}
	seen := make(map[string]struct{}, len(q.Questions))
	for i := range q.Questions {
		qn := &q.Questions[i]
		if err := qn.Validate(); err != nil {
			return err
		}
		if _, dup := seen[qn.ID]; dup {
			return NewValidationFailure(fmt.Sprintf("duplicate question id %q", qn.ID))
		}
		seen[qn.ID] = struct{}{}
	}
	return nil
}

// Validate checks the per-type invariants of a single question.
func (q *Question) Validate() error {
	if q.ID == "" {
		return NewValidationFailure("question id is required")
	}
	if !q.Type.IsValid() {
		return NewValidationFailure(fmt.Sprintf("unknown question type %q", q.Type))
	}
	if q.Points < 0 {
		return NewValidationFailure("question points must be non-negative")
	}
	switch q.Type {
	case SingleChoice, MultipleChoice:
		ids := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			if _, dup := ids[opt.ID]; dup {
				return NewValidationFailure(fmt.Sprintf("duplicate option id %q", opt.ID))
			}
			ids[opt.ID] = struct{}{}
		}
		for _, ans := range q.CorrectAnswers {
			if _, ok := ids[ans]; !ok {
				return NewValidationFailure(fmt.Sprintf("correct answer %q references no option", ans))
			}
		}
	case TrueFalse:
		if len(q.CorrectAnswers) != 1 || (q.CorrectAnswers[0] != "true" && q.CorrectAnswers[0] != "false") {
			return NewValidationFailure(`true/false question requires exactly one answer, "true" or "false"`)
		}
	}
	return nil
}
