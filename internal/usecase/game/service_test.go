package game

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"finquest/internal/domain/game"
	"finquest/internal/domain/user"
)

type mockLevelRepo struct {
	levels []game.Level
	err    error
}

func (m *mockLevelRepo) ListLevels(context.Context) ([]game.Level, error) {
	return m.levels, m.err
}

func sampleLevels() []game.Level {
	return []game.Level{
		{ID: uuid.New(), Position: 1, Title: "First Paycheck", RewardPoints: 50},
		{ID: uuid.New(), Position: 2, Title: "Budget Builder", RewardPoints: 75},
		{ID: uuid.New(), Position: 3, Title: "Rainy Day", RewardPoints: 100},
	}
}

func TestService_ProgressFor_QuizPending(t *testing.T) {
	svc := NewService(&mockLevelRepo{levels: sampleLevels()}, nil)

	p, err := svc.ProgressFor(context.Background(), user.User{ID: uuid.New()})
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if p.QuizCompleted {
		t.Fatalf("expected quizCompleted=false")
	}
	if len(p.Levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(p.Levels))
	}
	if !p.Levels[0].Unlocked {
		t.Fatalf("first level must always be unlocked")
	}
	for _, lp := range p.Levels[1:] {
		if lp.Unlocked {
			t.Fatalf("level %d unlocked before quiz completion", lp.Level.Position)
		}
	}
}

func TestService_ProgressFor_QuizCompleted(t *testing.T) {
	svc := NewService(&mockLevelRepo{levels: sampleLevels()}, nil)

	p, err := svc.ProgressFor(context.Background(), user.User{ID: uuid.New(), QuizCompleted: true})
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	for _, lp := range p.Levels {
		if !lp.Unlocked {
			t.Fatalf("level %d locked after quiz completion", lp.Level.Position)
		}
	}
}

func TestService_Map_Ordering(t *testing.T) {
	levels := sampleLevels()
	svc := NewService(&mockLevelRepo{levels: levels}, nil)

	got, err := svc.Map(context.Background())
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(got) != len(levels) {
		t.Fatalf("expected %d levels, got %d", len(levels), len(got))
	}
	for i, l := range got {
		if l.Position != i+1 {
			t.Fatalf("unexpected position %d at index %d", l.Position, i)
		}
	}
}
