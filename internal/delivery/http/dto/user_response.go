package dto

import (
	"finquest/internal/domain/user"

	"github.com/google/uuid"
)

// AuthResponse is the register/login/profile-update body. The password hash
// has no representation here on purpose.
type AuthResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	QuizCompleted bool      `json:"quizCompleted"`
	Token         string    `json:"token"`
}

type ProfileResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	QuizCompleted bool      `json:"quizCompleted"`
}

type QuizStatusResponse struct {
	Success       bool `json:"success"`
	QuizCompleted bool `json:"quizCompleted"`
}

func NewAuthResponse(u user.User, token string) AuthResponse {
	return AuthResponse{
		ID:            u.ID,
		Name:          u.Name,
		Phone:         u.Phone,
		QuizCompleted: u.QuizCompleted,
		Token:         token,
	}
}

func NewProfileResponse(u user.User) ProfileResponse {
	return ProfileResponse{
		ID:            u.ID,
		Name:          u.Name,
		Phone:         u.Phone,
		QuizCompleted: u.QuizCompleted,
	}
}
