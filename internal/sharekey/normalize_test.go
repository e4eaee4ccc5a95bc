package sharekey

import (
	"encoding/json"
	"testing"

	"quizshare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestNormalizeQuizSet_StringOptionsAndNumericAnswers(t *testing.T) {
	raw := decodeJSON(t, `{
		"questions": [
			{"type": "SINGLE_CHOICE", "options": ["A", "B"], "correctAnswers": [1]}
		]
	}`)

	quiz, err := NormalizeQuizSet(raw)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 1)

	q := quiz.Questions[0]
	assert.Equal(t, domain.SingleChoice, q.Type)
	assert.Equal(t, []domain.Option{{ID: "1", Text: "A"}, {ID: "2", Text: "B"}}, q.Options)
	assert.Equal(t, []string{"2"}, q.CorrectAnswers)
}

func TestNormalizeQuizSet_GeneratesMissingIDs(t *testing.T) {
	raw := decodeJSON(t, `{"title": "No IDs", "questions": [{"type": "SUBJECTIVE", "text": "Discuss."}]}`)

	quiz, err := NormalizeQuizSet(raw)
	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	assert.NotEmpty(t, quiz.Questions[0].ID)
}

func TestNormalizeQuizSet_KeepsExistingIDs(t *testing.T) {
	raw := decodeJSON(t, `{
		"id": "set-1", "title": "Keep", "createdAt": 1700000000000,
		"questions": [{"id": "q-1", "type": "TRUE_FALSE", "text": "Sky is blue?", "correctAnswers": ["true"]}]
	}`)

	quiz, err := NormalizeQuizSet(raw)
	require.NoError(t, err)
	assert.Equal(t, "set-1", quiz.ID)
	assert.Equal(t, int64(1700000000000), quiz.CreatedAt)
	assert.Equal(t, "q-1", quiz.Questions[0].ID)
	assert.Equal(t, []string{"true"}, quiz.Questions[0].CorrectAnswers)
}

func TestNormalizeQuizSet_BareQuestionArray(t *testing.T) {
	raw := decodeJSON(t, `[{"type": "FILL_IN_THE_BLANK", "text": "2+2=?", "correctAnswers": ["4", "four"]}]`)

	quiz, err := NormalizeQuizSet(raw)
	require.NoError(t, err)
	assert.NotEmpty(t, quiz.ID)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, []string{"4", "four"}, quiz.Questions[0].CorrectAnswers)
}

func TestNormalizeQuizSet_NonChoiceNumericAnswersAreCoerced(t *testing.T) {
	raw := decodeJSON(t, `{"questions": [{"type": "FILL_IN_THE_BLANK", "text": "6*7=?", "correctAnswers": [42]}]}`)

	quiz, err := NormalizeQuizSet(raw)
	require.NoError(t, err)
	// No index reinterpretation outside the choice types.
	assert.Equal(t, []string{"42"}, quiz.Questions[0].CorrectAnswers)
}

func TestNormalizeQuizSet_ObjectOptionsPassThrough(t *testing.T) {
	raw := decodeJSON(t, `{
		"questions": [{
			"type": "MULTIPLE_CHOICE",
			"options": [{"id": "a", "text": "Alpha"}, {"id": "b", "text": "Beta"}],
			"correctAnswers": ["a", "b"]
		}]
	}`)

	quiz, err := NormalizeQuizSet(raw)
	require.NoError(t, err)
	assert.Equal(t, []domain.Option{{ID: "a", Text: "Alpha"}, {ID: "b", Text: "Beta"}}, quiz.Questions[0].Options)
	assert.Equal(t, []string{"a", "b"}, quiz.Questions[0].CorrectAnswers)
}

func TestNormalizeQuizSet_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"top level string", "not a quiz"},
		{"top level number", float64(42)},
		{"top level nil", nil},
		{"questions not an array", decodeJSON(t, `{"questions": "nope"}`)},
		{"question not an object", decodeJSON(t, `{"questions": ["nope"]}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeQuizSet(tt.raw)
			require.Error(t, err)
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.ErrMalformedQuiz, domainErr.Code)
		})
	}
}

func TestNormalizeQuizSet_Idempotent(t *testing.T) {
	raw := decodeJSON(t, `{
		"id": "set-1", "title": "Idempotent",
		"questions": [
			{"id": "q1", "type": "SINGLE_CHOICE", "text": "Pick", "options": ["A", "B"], "correctAnswers": [0]},
			{"id": "q2", "type": "SUBJECTIVE", "text": "Write", "subjectiveReference": "ref"}
		]
	}`)

	first, err := NormalizeQuizSet(raw)
	require.NoError(t, err)

	// Feed the canonical result back through a JSON round trip, as a caller
	// re-importing its own export would.
	data, err := json.Marshal(first)
	require.NoError(t, err)
	second, err := NormalizeQuizSet(decodeJSON(t, string(data)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNormalizeQuizSet_DoesNotMutateInput(t *testing.T) {
	raw := decodeJSON(t, `{"questions": [{"type": "SINGLE_CHOICE", "options": ["A"], "correctAnswers": [0]}]}`)
	before, err := json.Marshal(raw)
	require.NoError(t, err)

	_, err = NormalizeQuizSet(raw)
	require.NoError(t, err)

	after, err := json.Marshal(raw)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}
