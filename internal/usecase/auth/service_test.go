package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"finquest/internal/domain/user"
	"finquest/internal/pkg/jwt"
)

type memoryUserRepo struct {
	byID    map[uuid.UUID]user.User
	byPhone map[string]uuid.UUID

	createErr error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byPhone: map[string]uuid.UUID{},
	}
}

func (m *memoryUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byPhone[u.Phone]; ok {
		return user.ErrDuplicatePhone
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	m.byID[u.ID] = u
	m.byPhone[u.Phone] = u.ID
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) GetByPhone(_ context.Context, phone string) (user.User, error) {
	id, ok := m.byPhone[phone]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return m.byID[id], nil
}

func (m *memoryUserRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	_, ok := m.byPhone[phone]
	return ok, nil
}

func (m *memoryUserRepo) Update(_ context.Context, id uuid.UUID, upd user.Update) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.QuizCompleted != nil {
		u.QuizCompleted = *upd.QuizCompleted
	}
	m.byID[id] = u
	return u, nil
}

type recordingWelcomer struct {
	called int
	lastID uuid.UUID
}

func (r *recordingWelcomer) Welcome(_ context.Context, u user.User) {
	r.called++
	r.lastID = u.ID
}

func newTestService(repo *memoryUserRepo, w Welcomer) *Service {
	return NewService(repo, jwt.NewHMACService("test-secret", time.Hour), w)
}

func TestService_Register_ThenLogin_SameUser(t *testing.T) {
	repo := newMemoryUserRepo()
	welcomer := &recordingWelcomer{}
	svc := newTestService(repo, welcomer)
	ctx := context.Background()

	registered, token, err := svc.Register(ctx, RegisterInput{Name: "Ana", Phone: "5550001", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatalf("register: expected token")
	}
	if registered.QuizCompleted {
		t.Fatalf("register: expected quizCompleted=false")
	}
	if registered.PasswordHash != "" {
		t.Fatalf("register: password hash leaked")
	}
	if welcomer.called != 1 || welcomer.lastID != registered.ID {
		t.Fatalf("register: welcome notification not recorded")
	}

	loggedIn, loginToken, err := svc.Login(ctx, LoginInput{Phone: "5550001", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.ID != registered.ID {
		t.Fatalf("login: expected id %s, got %s", registered.ID, loggedIn.ID)
	}
	if loginToken == "" {
		t.Fatalf("login: expected token")
	}
	if loggedIn.PasswordHash != "" {
		t.Fatalf("login: password hash leaked")
	}
}

func TestService_Register_EmptyFields(t *testing.T) {
	svc := newTestService(newMemoryUserRepo(), nil)
	ctx := context.Background()

	cases := []RegisterInput{
		{Name: "", Phone: "5550001", Password: "secret1"},
		{Name: "Ana", Phone: "", Password: "secret1"},
		{Name: "Ana", Phone: "5550001", Password: ""},
		{Name: "   ", Phone: "5550001", Password: "secret1"},
	}
	for _, in := range cases {
		if _, _, err := svc.Register(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestService_Register_DuplicatePhone(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, RegisterInput{Name: "Ana", Phone: "5550001", Password: "secret1"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, _, err := svc.Register(ctx, RegisterInput{Name: "Bea", Phone: "5550001", Password: "secret2"})
	if !errors.Is(err, ErrPhoneAlreadyRegistered) {
		t.Fatalf("expected ErrPhoneAlreadyRegistered, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected store unchanged, have %d users", len(repo.byID))
	}
}

func TestService_Register_DuplicateRace(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.createErr = user.ErrDuplicatePhone
	svc := newTestService(repo, nil)

	_, _, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Phone: "5550001", Password: "secret1"})
	if !errors.Is(err, ErrPhoneAlreadyRegistered) {
		t.Fatalf("expected ErrPhoneAlreadyRegistered, got %v", err)
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, RegisterInput{Name: "Ana", Phone: "5550001", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, token, err := svc.Login(ctx, LoginInput{Phone: "5550001", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" {
		t.Fatalf("expected no token on failed login")
	}
}

func TestService_Login_UnknownPhone(t *testing.T) {
	svc := newTestService(newMemoryUserRepo(), nil)

	_, _, err := svc.Login(context.Background(), LoginInput{Phone: "5559999", Password: "secret1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
