package domain

import "context"

// QuizLibrary defines the port for the user's local quiz collection.
// The collection is a flat key-value slot keyed by quiz set id; the host
// environment owns where it actually lives.
type QuizLibrary interface {
	// Save stores a new quiz set. It returns a DUPLICATE_QUIZ error when a
	// quiz with the same id is already present; imports never overwrite.
	Save(ctx context.Context, quiz *QuizSet) error

	// Get retrieves a quiz set by id, or a QUIZ_NOT_FOUND error.
	Get(ctx context.Context, id string) (*QuizSet, error)

	// List returns every quiz set in the library.
	List(ctx context.Context) ([]*QuizSet, error)

	// Delete removes a quiz set. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
