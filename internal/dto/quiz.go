package dto

import "quizshare/internal/domain"

// OptionResponse represents one selectable option in the API response
type OptionResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuestionResponse represents a question in the API response
type QuestionResponse struct {
	ID                  string           `json:"id"`
	Type                string           `json:"type"`
	Text                string           `json:"text"`
	Points              float64          `json:"points,omitempty"`
	Options             []OptionResponse `json:"options,omitempty"`
	CorrectAnswers      []string         `json:"correctAnswers,omitempty"`
	SubjectiveReference string           `json:"subjectiveReference,omitempty"`
	Explanation         string           `json:"explanation,omitempty"`
}

// QuizSetResponse represents a quiz set in the API response
// @Description Quiz set information
type QuizSetResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	CreatedAt   int64              `json:"createdAt,omitempty"`
	Questions   []QuestionResponse `json:"questions"`
}

// NewQuizSetResponse maps a domain quiz set onto the response shape.
func NewQuizSetResponse(quiz *domain.QuizSet) QuizSetResponse {
	questions := make([]QuestionResponse, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		var options []OptionResponse
		if len(q.Options) > 0 {
			options = make([]OptionResponse, 0, len(q.Options))
			for _, opt := range q.Options {
				options = append(options, OptionResponse{ID: opt.ID, Text: opt.Text})
			}
		}
		questions = append(questions, QuestionResponse{
			ID:                  q.ID,
			Type:                string(q.Type),
			Text:                q.Text,
			Points:              q.Points,
			Options:             options,
			CorrectAnswers:      q.CorrectAnswers,
			SubjectiveReference: q.SubjectiveReference,
			Explanation:         q.Explanation,
		})
	}
	return QuizSetResponse{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		CreatedAt:   quiz.CreatedAt,
		Questions:   questions,
	}
}

// ShareKeyResponse carries one encoded share key
type ShareKeyResponse struct {
	QuizID   string `json:"quiz_id"`
	ShareKey string `json:"share_key"`
}

// ShareKeyRequest carries a share key to decode or import
// @Description Request body holding a share key
type ShareKeyRequest struct {
	Key string `json:"key"`
}

// BulkShareKeysRequest asks for share keys for several library quizzes
type BulkShareKeysRequest struct {
	QuizIDs []string `json:"quiz_ids"`
}

// BulkShareKeysResponse maps quiz id to its share key
type BulkShareKeysResponse struct {
	Keys map[string]string `json:"keys"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
