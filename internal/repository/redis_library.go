package repository

import (
	"context"
	"encoding/json"
	"errors"

	"quizshare/internal/cache"
	"quizshare/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	libraryService  = "library"
	quizObjectType  = "quiz"
	indexObjectType = "index"
)

// RedisQuizLibrary implements the domain.QuizLibrary port on Redis. Each
// quiz set is stored as canonical JSON under its own key, with a set of ids
// as the listing index.
type RedisQuizLibrary struct {
	client *redis.Client
}

// NewRedisQuizLibrary creates a new RedisQuizLibrary. It expects a
// connected *redis.Client.
func NewRedisQuizLibrary(client *redis.Client) domain.QuizLibrary {
	return &RedisQuizLibrary{client: client}
}

func quizKey(id string) string {
	return cache.GenerateCacheKey(libraryService, quizObjectType, id)
}

func indexKey() string {
	return cache.GenerateCacheKey(libraryService, indexObjectType, "quizzes")
}

// Save stores a new quiz set. A colliding id means the quiz was already
// imported, so the write is rejected rather than overwritten.
func (r *RedisQuizLibrary) Save(ctx context.Context, quiz *domain.QuizSet) error {
	data, err := json.Marshal(quiz)
	if err != nil {
		return domain.NewInternalError("failed to serialize quiz for storage", err)
	}

	stored, err := r.client.SetNX(ctx, quizKey(quiz.ID), string(data), 0).Result()
	if err != nil {
		return err
	}
	if !stored {
		return domain.NewDuplicateQuizError(quiz.ID)
	}

	return r.client.SAdd(ctx, indexKey(), quiz.ID).Err()
}

// Get retrieves a quiz set by id.
func (r *RedisQuizLibrary) Get(ctx context.Context, id string) (*domain.QuizSet, error) {
	data, err := r.client.Get(ctx, quizKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.NewQuizNotFoundError(id)
		}
		return nil, err
	}

	var quiz domain.QuizSet
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		return nil, domain.NewInternalError("failed to deserialize stored quiz", err)
	}
	return &quiz, nil
}

// List returns every quiz set in the library. Index entries whose value key
// has gone missing are skipped.
func (r *RedisQuizLibrary) List(ctx context.Context) ([]*domain.QuizSet, error) {
	ids, err := r.client.SMembers(ctx, indexKey()).Result()
	if err != nil {
		return nil, err
	}

	quizzes := make([]*domain.QuizSet, 0, len(ids))
	for _, id := range ids {
		quiz, err := r.Get(ctx, id)
		if err != nil {
			var domainErr *domain.DomainError
			if errors.As(err, &domainErr) && domainErr.Code == domain.ErrQuizNotFound {
				continue
			}
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}

// Delete removes a quiz set and its index entry.
func (r *RedisQuizLibrary) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, quizKey(id)).Err(); err != nil {
		return err
	}
	return r.client.SRem(ctx, indexKey(), id).Err()
}
