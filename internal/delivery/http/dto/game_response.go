package dto

import (
	"finquest/internal/domain/game"
	gameuc "finquest/internal/usecase/game"

	"github.com/google/uuid"
)

type LevelResponse struct {
	ID           uuid.UUID `json:"id"`
	Position     int       `json:"position"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	RewardPoints int       `json:"rewardPoints"`
}

type LevelProgressResponse struct {
	LevelResponse
	Unlocked bool `json:"unlocked"`
}

type ProgressResponse struct {
	QuizCompleted bool                    `json:"quizCompleted"`
	Levels        []LevelProgressResponse `json:"levels"`
}

func NewLevelResponses(levels []game.Level) []LevelResponse {
	out := make([]LevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, newLevelResponse(l))
	}
	return out
}

func NewProgressResponse(p gameuc.Progress) ProgressResponse {
	levels := make([]LevelProgressResponse, 0, len(p.Levels))
	for _, lp := range p.Levels {
		levels = append(levels, LevelProgressResponse{
			LevelResponse: newLevelResponse(lp.Level),
			Unlocked:      lp.Unlocked,
		})
	}
	return ProgressResponse{QuizCompleted: p.QuizCompleted, Levels: levels}
}

func newLevelResponse(l game.Level) LevelResponse {
	return LevelResponse{
		ID:           l.ID,
		Position:     l.Position,
		Title:        l.Title,
		Description:  l.Description,
		RewardPoints: l.RewardPoints,
	}
}
