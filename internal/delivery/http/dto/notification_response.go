package dto

import (
	"time"

	"finquest/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewNotificationResponses(items []notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			Kind:      n.Kind,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.ReadAt != nil,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
