package quiz

import (
	"context"
	"errors"
	"time"

	"finquest/internal/domain/quiz"
)

var ErrInternal = errors.New("internal error")

const cacheTTL = time.Hour

// Cache is the subset of the Redis wrapper the quiz service needs. A nil
// cache disables caching entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type QuizUsecase interface {
	Questions(ctx context.Context, category string) ([]quiz.Question, error)
	Categories(ctx context.Context) ([]string, error)
}

type Service struct {
	repo  quiz.Repository
	cache Cache
}

func NewService(repo quiz.Repository, cache Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Questions serves the seeded quiz content, read-through cached. Content only
// changes via reseeding so a flat TTL is enough.
func (s *Service) Questions(ctx context.Context, category string) ([]quiz.Question, error) {
	key := "quiz:questions:" + category

	if s.cache != nil {
		var cached []quiz.Question
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	questions, err := s.repo.ListQuestions(ctx, category)
	if err != nil {
		return nil, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, questions, cacheTTL)
	}
	return questions, nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	key := "quiz:categories"

	if s.cache != nil {
		var cached []string
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, categories, cacheTTL)
	}
	return categories, nil
}
