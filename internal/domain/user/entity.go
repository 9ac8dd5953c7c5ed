package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole persisted account entity. Phone doubles as the login
// handle and stays unique across all users.
type User struct {
	ID            uuid.UUID
	Name          string
	Phone         string
	PasswordHash  string
	QuizCompleted bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Sanitized returns a copy safe for any outward-facing representation.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
