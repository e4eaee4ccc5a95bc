package service

import (
	"context"
	"encoding/json"
	"sync"

	"quizshare/internal/domain"
	"quizshare/internal/logger"
	"quizshare/internal/sharekey"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ShareService exposes the share-key operations of the application: encoding
// library quizzes into portable keys and importing quizzes back from keys or
// from raw authored JSON.
type ShareService interface {
	// CreateShareKey encodes the identified library quiz into a V2 share key.
	CreateShareKey(ctx context.Context, quizID string) (string, error)

	// CreateShareKeys encodes several library quizzes concurrently and
	// returns quiz id -> share key. Independent encodes share no mutable
	// state, so they run in parallel.
	CreateShareKeys(ctx context.Context, quizIDs []string) (map[string]string, error)

	// DecodeShareKey decodes a key without touching the library.
	DecodeShareKey(ctx context.Context, key string) (*domain.QuizSet, error)

	// ImportFromKey decodes a share key and stores the quiz in the library.
	ImportFromKey(ctx context.Context, key string) (*domain.QuizSet, error)

	// ImportQuizJSON normalizes externally authored quiz JSON and stores the
	// result in the library.
	ImportQuizJSON(ctx context.Context, raw []byte) (*domain.QuizSet, error)

	// GetQuiz returns one library quiz.
	GetQuiz(ctx context.Context, quizID string) (*domain.QuizSet, error)

	// ListQuizzes returns the whole library.
	ListQuizzes(ctx context.Context) ([]*domain.QuizSet, error)

	// DeleteQuiz removes a quiz from the library.
	DeleteQuiz(ctx context.Context, quizID string) error
}

type shareService struct {
	library domain.QuizLibrary
}

// NewShareService creates a new ShareService backed by the given library.
func NewShareService(library domain.QuizLibrary) ShareService {
	return &shareService{library: library}
}

func (s *shareService) CreateShareKey(ctx context.Context, quizID string) (string, error) {
	quiz, err := s.library.Get(ctx, quizID)
	if err != nil {
		return "", err
	}

	key, err := sharekey.Encode(quiz)
	if err != nil {
		// Encode failures must never take the host down; the caller gets a
		// recoverable error and the details land in the log.
		logger.Get().Error("Failed to encode quiz into share key",
			zap.String("quiz_id", quizID),
			zap.Error(err),
		)
		return "", err
	}
	return key, nil
}

func (s *shareService) CreateShareKeys(ctx context.Context, quizIDs []string) (map[string]string, error) {
	keys := make(map[string]string, len(quizIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, quizID := range quizIDs {
		g.Go(func() error {
			key, err := s.CreateShareKey(ctx, quizID)
			if err != nil {
				return err
			}
			mu.Lock()
			keys[quizID] = key
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *shareService) DecodeShareKey(_ context.Context, key string) (*domain.QuizSet, error) {
	quiz, err := sharekey.Decode(key)
	if err != nil {
		logger.Get().Warn("Failed to decode share key", zap.Error(err))
		return nil, err
	}
	return quiz, nil
}

func (s *shareService) ImportFromKey(ctx context.Context, key string) (*domain.QuizSet, error) {
	quiz, err := s.DecodeShareKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.library.Save(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *shareService) ImportQuizJSON(ctx context.Context, raw []byte) (*domain.QuizSet, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, domain.NewMalformedQuizError("quiz data is not valid JSON")
	}
	quiz, err := sharekey.NormalizeQuizSet(decoded)
	if err != nil {
		return nil, err
	}
	if err := s.library.Save(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *shareService) GetQuiz(ctx context.Context, quizID string) (*domain.QuizSet, error) {
	return s.library.Get(ctx, quizID)
}

func (s *shareService) ListQuizzes(ctx context.Context) ([]*domain.QuizSet, error) {
	return s.library.List(ctx)
}

func (s *shareService) DeleteQuiz(ctx context.Context, quizID string) error {
	return s.library.Delete(ctx, quizID)
}
