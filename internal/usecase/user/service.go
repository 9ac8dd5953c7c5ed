package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"finquest/internal/domain/user"
	"finquest/internal/pkg/jwt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrPersistence  = errors.New("persistence failure")
)

// UpdateProfileInput carries a partial profile mutation; nil fields are left
// unchanged. A supplied password is re-hashed before it reaches the store.
type UpdateProfileInput struct {
	Name          *string
	Phone         *string
	Password      *string
	QuizCompleted *bool
}

// Notifier records the quiz-completion notification. Failures are non-fatal.
type Notifier interface {
	QuizCompleted(ctx context.Context, u user.User)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, string, error)
	SetQuizCompleted(ctx context.Context, userID uuid.UUID, completed bool) (bool, error)
}

type Service struct {
	users    user.Repository
	tokens   jwt.Service
	notifier Notifier
}

func NewService(users user.Repository, tokens jwt.Service, notifier Notifier) *Service {
	return &Service{users: users, tokens: tokens, notifier: notifier}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	return u.Sanitized(), nil
}

// UpdateProfile persists the supplied fields and rotates the session token.
// The fresh token is bound to the same user id.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, string, error) {
	upd := user.Update{
		QuizCompleted: in.QuizCompleted,
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, "", ErrInvalidInput
		}
		upd.Name = &name
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if phone == "" {
			return user.User{}, "", ErrInvalidInput
		}
		upd.Phone = &phone
	}
	if in.Password != nil {
		if *in.Password == "" {
			return user.User{}, "", ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, "", ErrPersistence
		}
		h := string(hash)
		upd.PasswordHash = &h
	}

	if upd.Empty() {
		return user.User{}, "", ErrInvalidInput
	}

	updated, err := s.users.Update(ctx, userID, upd)
	if err != nil {
		return user.User{}, "", err
	}

	token, err := s.tokens.Issue(updated.ID)
	if err != nil {
		return user.User{}, "", ErrPersistence
	}

	return updated.Sanitized(), token, nil
}

func (s *Service) SetQuizCompleted(ctx context.Context, userID uuid.UUID, completed bool) (bool, error) {
	updated, err := s.users.Update(ctx, userID, user.Update{QuizCompleted: &completed})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return false, err
		}
		return false, ErrPersistence
	}

	if completed && s.notifier != nil {
		s.notifier.QuizCompleted(ctx, updated.Sanitized())
	}

	return updated.QuizCompleted, nil
}
