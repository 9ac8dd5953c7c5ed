package game

import (
	"context"
	"errors"
	"time"

	"finquest/internal/domain/game"
	"finquest/internal/domain/user"
)

var ErrInternal = errors.New("internal error")

const cacheTTL = time.Hour

// LevelProgress is one map node annotated with the acting user's state.
// Unlocking is gated on the onboarding quiz: until it is completed only the
// first level is playable.
type LevelProgress struct {
	Level    game.Level
	Unlocked bool
}

type Progress struct {
	QuizCompleted bool
	Levels        []LevelProgress
}

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type GameUsecase interface {
	Map(ctx context.Context) ([]game.Level, error)
	ProgressFor(ctx context.Context, u user.User) (Progress, error)
}

type Service struct {
	levels game.Repository
	cache  Cache
}

func NewService(levels game.Repository, cache Cache) *Service {
	return &Service{levels: levels, cache: cache}
}

func (s *Service) Map(ctx context.Context) ([]game.Level, error) {
	key := "game:map"

	if s.cache != nil {
		var cached []game.Level
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	levels, err := s.levels.ListLevels(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, levels, cacheTTL)
	}
	return levels, nil
}

func (s *Service) ProgressFor(ctx context.Context, u user.User) (Progress, error) {
	levels, err := s.Map(ctx)
	if err != nil {
		return Progress{}, err
	}

	p := Progress{
		QuizCompleted: u.QuizCompleted,
		Levels:        make([]LevelProgress, 0, len(levels)),
	}
	for i, l := range levels {
		p.Levels = append(p.Levels, LevelProgress{
			Level:    l,
			Unlocked: i == 0 || u.QuizCompleted,
		})
	}
	return p, nil
}
