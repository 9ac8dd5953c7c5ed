package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finquest/internal/database"
	"finquest/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db database.DB
}

func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, phone, password_hash, quiz_completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		u.ID, u.Name, u.Phone, u.PasswordHash, u.QuizCompleted, time.Now().UTC(),
	)
	if isUniqueViolation(err) {
		return user.ErrDuplicatePhone
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, phone, password_hash, quiz_completed, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	)
	return scanUser(row)
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, phone, password_hash, quiz_completed, created_at, updated_at
		 FROM users WHERE phone = $1`,
		phone,
	)
	return scanUser(row)
}

func (r *UserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	row := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1)`, phone)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Update applies only the supplied fields and returns the resulting row.
// Phone uniqueness stays enforced by the users_phone_key index.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, upd user.Update) (user.User, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.PasswordHash != nil {
		add("password_hash", *upd.PasswordHash)
	}
	if upd.QuizCompleted != nil {
		add("quiz_completed", *upd.QuizCompleted)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	add("updated_at", time.Now().UTC())

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d
		 RETURNING id, name, phone, password_hash, quiz_completed, created_at, updated_at`,
		strings.Join(sets, ", "), len(args),
	)

	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if isUniqueViolation(err) {
		return user.User{}, user.ErrDuplicatePhone
	}
	return u, err
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Phone, &u.PasswordHash, &u.QuizCompleted, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
