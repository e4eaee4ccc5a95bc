package domain

import (
	"errors"
	"testing"
)

func choiceQuestion() Question {
	return Question{
		ID:   "q1",
		Type: SingleChoice,
		Text: "Pick one",
		Options: []Option{
			{ID: "1", Text: "A"},
			{ID: "2", Text: "B"},
		},
		CorrectAnswers: []string{"1"},
	}
}

func TestQuestionType_IsChoice(t *testing.T) {
	if !SingleChoice.IsChoice() || !MultipleChoice.IsChoice() {
		t.Error("choice types must report IsChoice")
	}
	if FillInTheBlank.IsChoice() || TrueFalse.IsChoice() || Subjective.IsChoice() {
		t.Error("non-choice types must not report IsChoice")
	}
}

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid choice question", func(q *Question) {}, false},
		{"missing id", func(q *Question) { q.ID = "" }, true},
		{"unknown type", func(q *Question) { q.Type = "ESSAY" }, true},
		{"negative points", func(q *Question) { q.Points = -1 }, true},
		{"answer references no option", func(q *Question) { q.CorrectAnswers = []string{"99"} }, true},
		{"duplicate option ids", func(q *Question) { q.Options[1].ID = "1" }, true},
		{
			"valid true/false",
			func(q *Question) {
				q.Type = TrueFalse
				q.Options = nil
				q.CorrectAnswers = []string{"false"}
			},
			false,
		},
		{
			"true/false with bad answer",
			func(q *Question) {
				q.Type = TrueFalse
				q.Options = nil
				q.CorrectAnswers = []string{"yes"}
			},
			true,
		},
		{
			"true/false with two answers",
			func(q *Question) {
				q.Type = TrueFalse
				q.Options = nil
				q.CorrectAnswers = []string{"true", "false"}
			},
			true,
		},
		{
			"subjective ignores answers",
			func(q *Question) {
				q.Type = Subjective
				q.Options = nil
				q.CorrectAnswers = []string{"anything"}
				q.SubjectiveReference = "reference"
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := choiceQuestion()
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected a validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestQuizSet_Validate(t *testing.T) {
	valid := func() *QuizSet {
		return &QuizSet{
			ID:        "set-1",
			Title:     "Valid",
			Questions: []Question{choiceQuestion()},
		}
	}

	t.Run("valid quiz set", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		q := valid()
		q.ID = ""
		if err := q.Validate(); err == nil {
			t.Error("expected a validation error, got nil")
		}
	})

	t.Run("missing title", func(t *testing.T) {
		q := valid()
		q.Title = ""
		if err := q.Validate(); err == nil {
			t.Error("expected a validation error, got nil")
		}
	})

	t.Run("duplicate question ids", func(t *testing.T) {
		q := valid()
		q.Questions = append(q.Questions, choiceQuestion())
		if err := q.Validate(); err == nil {
			t.Error("expected a validation error, got nil")
		}
	})

	t.Run("errors carry the validation code", func(t *testing.T) {
		q := valid()
		q.Title = ""
		err := q.Validate()
		var domainErr *DomainError
		if !errors.As(err, &domainErr) {
			t.Fatalf("expected a DomainError, got %T", err)
		}
		if domainErr.Code != ErrValidation {
			t.Errorf("expected code %s, got %s", ErrValidation, domainErr.Code)
		}
	})
}
