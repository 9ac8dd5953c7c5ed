package auth

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
	ErrPhoneAlreadyRegistered = errors.New("phone already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Phone    string
	Password string
}

type LoginInput struct {
	Phone    string
	Password string
}

// Welcomer records a greeting notification for a freshly registered user.
// Failures are non-fatal to registration.
type Welcomer interface {
	Welcome(ctx context.Context, u user.User)
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, error)
}

type Service struct {
	users    user.Repository
	tokens   jwt.Service
	welcomer Welcomer
}

func NewService(users user.Repository, tokens jwt.Service, welcomer Welcomer) *Service {
	return &Service{users: users, tokens: tokens, welcomer: welcomer}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, string, error) {
	name := strings.TrimSpace(in.Name)
	phone := normalizePhone(in.Phone)
	if name == "" || phone == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidInput
	}

	exists, err := s.users.ExistsByPhone(ctx, phone)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	if exists {
		return user.User{}, "", ErrPhoneAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, u); err != nil {
		// The unique index is the authority; a concurrent register between
		// the existence check and the insert lands here.
		if errors.Is(err, user.ErrDuplicatePhone) {
			return user.User{}, "", ErrPhoneAlreadyRegistered
		}
		return user.User{}, "", ErrInternal
	}

	created, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	if s.welcomer != nil {
		s.welcomer.Welcome(ctx, created.Sanitized())
	}

	return created.Sanitized(), token, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	phone := normalizePhone(in.Phone)
	if phone == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	u, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	return u.Sanitized(), token, nil
}

func normalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}
