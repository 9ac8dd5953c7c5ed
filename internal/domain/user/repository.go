package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicatePhone = errors.New("phone already registered")
)

// Update carries a partial mutation; nil fields are left untouched. When
// PasswordHash is set the stored hash is overwritten.
type Update struct {
	Name          *string
	Phone         *string
	PasswordHash  *string
	QuizCompleted *bool
}

func (u Update) Empty() bool {
	return u.Name == nil && u.Phone == nil && u.PasswordHash == nil && u.QuizCompleted == nil
}

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByPhone(ctx context.Context, phone string) (User, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Update(ctx context.Context, id uuid.UUID, upd Update) (User, error)
}
