package quiz

import (
	"context"

	"github.com/google/uuid"
)

type Question struct {
	ID       uuid.UUID
	Category string
	Prompt   string
	Position int
	Options  []Option
}

type Option struct {
	ID        uuid.UUID
	Label     string
	Position  int
	IsCorrect bool
}

type Repository interface {
	ListQuestions(ctx context.Context, category string) ([]Question, error)
	ListCategories(ctx context.Context) ([]string, error)
}
