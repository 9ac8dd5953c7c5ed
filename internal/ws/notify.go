package ws

import (
	"encoding/json"
	"time"

	"finquest/internal/domain/notification"
)

// NotificationEvent is the wire shape pushed to connected clients when a
// notification row is recorded.
type NotificationEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the notification usecase's Broadcaster.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotificationCreated(notif notification.Notification) {
	if n == nil || n.hub == nil {
		return
	}

	evt := NotificationEvent{
		Type:      "notification",
		UserID:    notif.UserID.String(),
		Kind:      notif.Kind,
		Title:     notif.Title,
		Body:      notif.Body,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
