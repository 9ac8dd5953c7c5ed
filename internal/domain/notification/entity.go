package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	KindWelcome       = "welcome"
	KindQuizCompleted = "quiz_completed"
)

var ErrNotFound = errors.New("notification not found")

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      string
	Title     string
	Body      string
	ReadAt    *time.Time
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, n Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Notification, error)
	// MarkRead is scoped to the owning user; a foreign id reports ErrNotFound.
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}
