package dto

import (
	"finquest/internal/domain/quiz"

	"github.com/google/uuid"
)

// QuestionResponse deliberately omits the correct-answer flag; clients only
// ever see question text and options.
type QuestionResponse struct {
	ID       uuid.UUID        `json:"id"`
	Category string           `json:"category"`
	Prompt   string           `json:"prompt"`
	Options  []OptionResponse `json:"options"`
}

type OptionResponse struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

func NewQuestionResponses(questions []quiz.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		opts := make([]OptionResponse, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, OptionResponse{ID: o.ID, Label: o.Label})
		}
		out = append(out, QuestionResponse{
			ID:       q.ID,
			Category: q.Category,
			Prompt:   q.Prompt,
			Options:  opts,
		})
	}
	return out
}
