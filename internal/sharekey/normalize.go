package sharekey

import (
	"fmt"
	"math"
	"strconv"

	"quizshare/internal/domain"
	"quizshare/internal/util"
)

// NormalizeQuizSet reshapes loosely typed, externally authored quiz data
// (hand-written JSON, AI-generated JSON, legacy exports) into a canonical
// QuizSet. The input is a JSON-decoded value: either an object or a bare
// array of questions. The input is never mutated.
//
// Normalization is idempotent modulo fresh id assignment: ids are only
// generated where none are present.
func NormalizeQuizSet(raw any) (*domain.QuizSet, error) {
	var obj map[string]any
	switch v := raw.(type) {
	case map[string]any:
		obj = v
	case []any:
		// A bare question list is accepted as a quiz without metadata.
		obj = map[string]any{"questions": v}
	default:
		return nil, domain.NewMalformedQuizError("quiz data must be an object or an array of questions")
	}

	quiz := &domain.QuizSet{
		ID:          asString(obj["id"]),
		Title:       asString(obj["title"]),
		Description: asString(obj["description"]),
	}
	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	if n, ok := asInt64(obj["createdAt"]); ok {
		quiz.CreatedAt = n
	}

	rawQuestions, present := obj["questions"]
	if !present || rawQuestions == nil {
		quiz.Questions = []domain.Question{}
		return quiz, nil
	}
	list, ok := rawQuestions.([]any)
	if !ok {
		return nil, domain.NewMalformedQuizError("questions must be an array")
	}

	quiz.Questions = make([]domain.Question, 0, len(list))
	for i, rq := range list {
		question, err := normalizeQuestion(rq)
		if err != nil {
			return nil, domain.NewMalformedQuizError(fmt.Sprintf("question %d: %v", i, err))
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz, nil
}

func normalizeQuestion(raw any) (domain.Question, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.Question{}, fmt.Errorf("must be an object")
	}

	q := domain.Question{
		ID:                  asString(obj["id"]),
		Type:                domain.QuestionType(asString(obj["type"])),
		Text:                asString(obj["text"]),
		Points:              asFloat(obj["points"]),
		SubjectiveReference: asString(obj["subjectiveReference"]),
		Explanation:         asString(obj["explanation"]),
	}
	if q.ID == "" {
		q.ID = util.NewULID()
	}

	if rawOptions, ok := obj["options"].([]any); ok {
		q.Options = normalizeOptions(rawOptions)
	}
	if rawAnswers, ok := obj["correctAnswers"].([]any); ok {
		q.CorrectAnswers = normalizeAnswers(rawAnswers, q.Type.IsChoice())
	}
	return q, nil
}

// normalizeOptions accepts both option shapes: plain strings get 1-based
// positional ids, records keep their explicit id/text pair.
func normalizeOptions(raw []any) []domain.Option {
	options := make([]domain.Option, 0, len(raw))
	for i, ro := range raw {
		if obj, ok := ro.(map[string]any); ok {
			options = append(options, domain.Option{
				ID:   asString(obj["id"]),
				Text: asString(obj["text"]),
			})
			continue
		}
		options = append(options, domain.Option{
			ID:   strconv.Itoa(i + 1),
			Text: asString(ro),
		})
	}
	return options
}

// normalizeAnswers coerces answers to strings. For choice questions a
// numeric answer is a 0-based option index and becomes the matching 1-based
// string id (index i -> id i+1).
func normalizeAnswers(raw []any, choice bool) []string {
	answers := make([]string, 0, len(raw))
	for _, ra := range raw {
		if choice {
			if n, ok := asInt64(ra); ok {
				answers = append(answers, strconv.FormatInt(n+1, 10))
				continue
			}
		}
		answers = append(answers, asString(ra))
	}
	return answers
}

// asString coerces a JSON-decoded scalar to its string form; nil becomes "".
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == math.Trunc(s) && math.Abs(s) < 1e15 {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
