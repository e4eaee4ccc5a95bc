package sharekey

import (
	"fmt"
	"strconv"

	"quizshare/internal/domain"
)

// Minify converts a canonical quiz set into the compact keyed shape carried
// inside the V2 payload. Field names are replaced by their short codes and
// question types by their integer codes; fields outside the table are not
// preserved.
func Minify(quiz *domain.QuizSet) map[string]any {
	m := map[string]any{
		keyID:    quiz.ID,
		keyTitle: quiz.Title,
	}
	if quiz.Description != "" {
		m[keyDescription] = quiz.Description
	}
	if quiz.CreatedAt != 0 {
		m[keyCreatedAt] = quiz.CreatedAt
	}
	questions := make([]any, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		questions = append(questions, minifyQuestion(&quiz.Questions[i]))
	}
	m[keyQuestions] = questions
	return m
}

// minifyQuestion compacts a single question. For the choice types the option
// ids are dropped entirely: options become a list of text strings whose
// 0-based position stands in for the id, and each correct answer becomes the
// position of the option it references. An answer that resolves to no option
// is dropped, so a reference to a deleted option can never corrupt a key.
func minifyQuestion(q *domain.Question) map[string]any {
	m := map[string]any{
		keyID:   q.ID,
		keyType: typeToCode[q.Type],
		keyText: q.Text,
	}
	if q.Points != 0 {
		m[keyPoints] = q.Points
	}
	if q.SubjectiveReference != "" {
		m[keySubjectiveReference] = q.SubjectiveReference
	}
	if q.Explanation != "" {
		m[keyExplanation] = q.Explanation
	}

	if q.Type.IsChoice() {
		if len(q.Options) > 0 {
			texts := make([]any, len(q.Options))
			position := make(map[string]int, len(q.Options))
			for i, opt := range q.Options {
				texts[i] = opt.Text
				position[opt.ID] = i
			}
			m[keyOptions] = texts

			if q.CorrectAnswers != nil {
				indices := make([]any, 0, len(q.CorrectAnswers))
				for _, ans := range q.CorrectAnswers {
					if pos, ok := position[ans]; ok {
						indices = append(indices, pos)
					}
				}
				m[keyCorrectAnswers] = indices
			}
		}
		return m
	}

	if len(q.Options) > 0 {
		options := make([]any, len(q.Options))
		for i, opt := range q.Options {
			options[i] = map[string]any{keyID: opt.ID, keyText: opt.Text}
		}
		m[keyOptions] = options
	}
	if len(q.CorrectAnswers) > 0 {
		answers := make([]any, len(q.CorrectAnswers))
		for i, ans := range q.CorrectAnswers {
			answers[i] = ans
		}
		m[keyCorrectAnswers] = answers
	}
	return m
}

// Unminify is the exact inverse of Minify. It must also keep decoding
// payloads produced before the choice-question compaction existed, so for
// every question it inspects the serialized options and branches between the
// compact string form and the explicit record form.
func Unminify(m map[string]any) (*domain.QuizSet, error) {
	quiz := &domain.QuizSet{
		ID:          asString(m[keyID]),
		Title:       asString(m[keyTitle]),
		Description: asString(m[keyDescription]),
	}
	if n, ok := asInt64(m[keyCreatedAt]); ok {
		quiz.CreatedAt = n
	}

	rawQuestions, present := m[keyQuestions]
	if !present || rawQuestions == nil {
		quiz.Questions = []domain.Question{}
		return quiz, nil
	}
	list, ok := rawQuestions.([]any)
	if !ok {
		return nil, fmt.Errorf("questions payload is not an array")
	}
	quiz.Questions = make([]domain.Question, 0, len(list))
	for i, rq := range list {
		question, err := unminifyQuestion(rq)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz, nil
}

func unminifyQuestion(raw any) (domain.Question, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.Question{}, fmt.Errorf("payload is not an object")
	}

	q := domain.Question{
		ID:                  asString(obj[keyID]),
		Text:                asString(obj[keyText]),
		Points:              asFloat(obj[keyPoints]),
		SubjectiveReference: asString(obj[keySubjectiveReference]),
		Explanation:         asString(obj[keyExplanation]),
	}

	switch t := obj[keyType].(type) {
	case float64:
		qt, known := codeToType[int(t)]
		if !known {
			return domain.Question{}, fmt.Errorf("unknown question type code %d", int(t))
		}
		q.Type = qt
	case string:
		// Tolerated for hand-edited payloads that kept the type name.
		q.Type = domain.QuestionType(t)
	default:
		return domain.Question{}, fmt.Errorf("missing question type")
	}

	if rawOptions, ok := obj[keyOptions].([]any); ok {
		q.Options = unminifyOptions(rawOptions)
	}
	if rawAnswers, ok := obj[keyCorrectAnswers].([]any); ok {
		q.CorrectAnswers = unminifyAnswers(rawAnswers)
	}
	return q, nil
}

// unminifyOptions reverses both option encodings: plain strings from the
// compact form get 1-based positional ids (index i -> id i+1, mirroring the
// normalizer's convention), records keep their explicit id and text.
func unminifyOptions(raw []any) []domain.Option {
	options := make([]domain.Option, 0, len(raw))
	for i, ro := range raw {
		if obj, ok := ro.(map[string]any); ok {
			opt := domain.Option{ID: asString(obj[keyID]), Text: asString(obj[keyText])}
			if opt.ID == "" && opt.Text == "" {
				// Records written before minified option keys existed.
				opt = domain.Option{ID: asString(obj["id"]), Text: asString(obj["text"])}
			}
			options = append(options, opt)
			continue
		}
		options = append(options, domain.Option{
			ID:   strconv.Itoa(i + 1),
			Text: asString(ro),
		})
	}
	return options
}

// unminifyAnswers maps numeric answers back from 0-based option positions to
// the 1-based string id scheme; string answers pass through untouched.
func unminifyAnswers(raw []any) []string {
	answers := make([]string, 0, len(raw))
	for _, ra := range raw {
		switch n := ra.(type) {
		case float64:
			answers = append(answers, strconv.Itoa(int(n)+1))
		case int:
			answers = append(answers, strconv.Itoa(n+1))
		default:
			answers = append(answers, asString(ra))
		}
	}
	return answers
}
