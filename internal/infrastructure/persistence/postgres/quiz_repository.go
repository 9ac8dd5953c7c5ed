package postgres

import (
	"context"

	"finquest/internal/database"
	"finquest/internal/domain/quiz"

	"github.com/google/uuid"
)

type QuizRepository struct {
	db database.DB
}

func NewQuizRepository(db database.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// ListQuestions returns questions ordered by position with their options
// attached. An empty category means all categories.
func (r *QuizRepository) ListQuestions(ctx context.Context, category string) ([]quiz.Question, error) {
	args := []any{}
	query := `SELECT id, category, prompt, position FROM quiz_questions`
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, position`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var q quiz.Question
		if err := rows.Scan(&q.ID, &q.Category, &q.Prompt, &q.Position); err != nil {
			return nil, err
		}
		index[q.ID] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return questions, nil
	}

	ids := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}

	optRows, err := r.db.Query(ctx,
		`SELECT id, question_id, label, position, is_correct
		 FROM quiz_options
		 WHERE question_id = ANY($1)
		 ORDER BY question_id, position`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var o quiz.Option
		var qid uuid.UUID
		if err := optRows.Scan(&o.ID, &qid, &o.Label, &o.Position, &o.IsCorrect); err != nil {
			return nil, err
		}
		if i, ok := index[qid]; ok {
			questions[i].Options = append(questions[i].Options, o)
		}
	}
	if err := optRows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *QuizRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT category FROM quiz_questions ORDER BY category`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
