package seeder

import (
	"context"

	"finquest/internal/database"

	"github.com/google/uuid"
)

// QuizSeeder loads the static financial-literacy quiz. It only runs against
// an empty quiz_questions table; existing content is never touched.
type QuizSeeder struct{}

func (QuizSeeder) Name() string { return "quiz_questions" }

type seedQuestion struct {
	category string
	prompt   string
	options  []seedOption
}

type seedOption struct {
	label   string
	correct bool
}

var quizFixture = []seedQuestion{
	{
		category: "budgeting",
		prompt:   "What is the 50/30/20 rule about?",
		options: []seedOption{
			{label: "Splitting income between needs, wants and savings", correct: true},
			{label: "A tax bracket schedule"},
			{label: "A stock portfolio allocation"},
			{label: "A credit card interest formula"},
		},
	},
	{
		category: "budgeting",
		prompt:   "Which expense is a fixed cost?",
		options: []seedOption{
			{label: "Monthly rent", correct: true},
			{label: "Restaurant meals"},
			{label: "Concert tickets"},
			{label: "Impulse purchases"},
		},
	},
	{
		category: "saving",
		prompt:   "An emergency fund should ideally cover how many months of expenses?",
		options: []seedOption{
			{label: "Three to six months", correct: true},
			{label: "One week"},
			{label: "Ten years"},
			{label: "None, credit cards cover emergencies"},
		},
	},
	{
		category: "saving",
		prompt:   "What does compound interest mean?",
		options: []seedOption{
			{label: "Earning interest on previously earned interest", correct: true},
			{label: "Paying interest twice"},
			{label: "A fee charged by banks"},
			{label: "Interest that never changes"},
		},
	},
	{
		category: "credit",
		prompt:   "Paying only the minimum on a credit card means",
		options: []seedOption{
			{label: "The remaining balance keeps accruing interest", correct: true},
			{label: "The debt is forgiven"},
			{label: "The interest rate drops"},
			{label: "The credit score always improves"},
		},
	},
}

func (QuizSeeder) Run(ctx context.Context, db database.DB) error {
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM quiz_questions`)
	var count int64
	if err := row.Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	positions := map[string]int{}
	for _, q := range quizFixture {
		positions[q.category]++
		qid := uuid.New()
		if _, err := tx.Exec(ctx,
			`INSERT INTO quiz_questions (id, category, prompt, position) VALUES ($1, $2, $3, $4)`,
			qid, q.category, q.prompt, positions[q.category],
		); err != nil {
			return err
		}
		for i, o := range q.options {
			if _, err := tx.Exec(ctx,
				`INSERT INTO quiz_options (id, question_id, label, position, is_correct)
				 VALUES ($1, $2, $3, $4, $5)`,
				uuid.New(), qid, o.label, i+1, o.correct,
			); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}
