package postgres

import (
	"context"

	"finquest/internal/database"
	"finquest/internal/domain/game"
)

type LevelRepository struct {
	db database.DB
}

func NewLevelRepository(db database.DB) *LevelRepository {
	return &LevelRepository{db: db}
}

func (r *LevelRepository) ListLevels(ctx context.Context) ([]game.Level, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, position, title, description, reward_points
		 FROM game_levels
		 ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]game.Level, 0)
	for rows.Next() {
		var l game.Level
		if err := rows.Scan(&l.ID, &l.Position, &l.Title, &l.Description, &l.RewardPoints); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
