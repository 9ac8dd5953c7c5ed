package game

import (
	"context"

	"github.com/google/uuid"
)

// Level is one node on the static game map. Content is seeded at startup and
// read-only at runtime.
type Level struct {
	ID           uuid.UUID
	Position     int
	Title        string
	Description  string
	RewardPoints int
}

type Repository interface {
	ListLevels(ctx context.Context) ([]Level, error)
}
