package seeder

import (
	"context"

	"finquest/internal/database"

	"github.com/google/uuid"
)

// LevelSeeder loads the static game map. Like QuizSeeder it only populates an
// empty table.
type LevelSeeder struct{}

func (LevelSeeder) Name() string { return "game_levels" }

type seedLevel struct {
	title       string
	description string
	reward      int
}

var levelFixture = []seedLevel{
	{title: "First Paycheck", description: "Learn where your money goes each month.", reward: 50},
	{title: "Budget Builder", description: "Put together your first monthly budget.", reward: 75},
	{title: "Rainy Day", description: "Start an emergency fund.", reward: 100},
	{title: "Debt Slayer", description: "Understand interest and pay down debt.", reward: 150},
	{title: "Future You", description: "Take your first step into investing.", reward: 200},
}

func (LevelSeeder) Run(ctx context.Context, db database.DB) error {
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM game_levels`)
	var count int64
	if err := row.Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, l := range levelFixture {
		if _, err := db.Exec(ctx,
			`INSERT INTO game_levels (id, position, title, description, reward_points)
			 VALUES ($1, $2, $3, $4, $5)`,
			uuid.New(), i+1, l.title, l.description, l.reward,
		); err != nil {
			return err
		}
	}
	return nil
}
