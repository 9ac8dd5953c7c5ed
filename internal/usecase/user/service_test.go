package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"finquest/internal/domain/user"
	"finquest/internal/pkg/jwt"
)

type memoryUserRepo struct {
	users map[uuid.UUID]user.User

	updateErr error
}

func newMemoryUserRepo(seed ...user.User) *memoryUserRepo {
	m := &memoryUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range seed {
		m.users[u.ID] = u
	}
	return m
}

func (m *memoryUserRepo) Create(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) GetByPhone(_ context.Context, phone string) (user.User, error) {
	for _, u := range m.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memoryUserRepo) ExistsByPhone(_ context.Context, phone string) (bool, error) {
	_, err := m.GetByPhone(context.Background(), phone)
	return err == nil, nil
}

func (m *memoryUserRepo) Update(_ context.Context, id uuid.UUID, upd user.Update) (user.User, error) {
	if m.updateErr != nil {
		return user.User{}, m.updateErr
	}
	u, ok := m.users[id]
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
	u.UpdatedAt = time.Now().UTC()
	m.users[id] = u
	return u, nil
}

type recordingNotifier struct {
	quizCompleted int
}

func (r *recordingNotifier) QuizCompleted(context.Context, user.User) {
	r.quizCompleted++
}

func seedUser() user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	return user.User{
		ID:           uuid.New(),
		Name:         "Ana",
		Phone:        "5550001",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestService_UpdateProfile_OnlyName(t *testing.T) {
	seed := seedUser()
	repo := newMemoryUserRepo(seed)
	tokens := jwt.NewHMACService("test-secret", time.Hour)
	svc := NewService(repo, tokens, nil)

	updated, token, err := svc.UpdateProfile(context.Background(), seed.ID, UpdateProfileInput{
		Name: strPtr("Ana Maria"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Ana Maria" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if updated.Phone != seed.Phone {
		t.Fatalf("phone changed unexpectedly: %q", updated.Phone)
	}
	if updated.QuizCompleted {
		t.Fatalf("quizCompleted changed unexpectedly")
	}
	if updated.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}

	// rotated token is bound to the same user id
	got, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify rotated token: %v", err)
	}
	if got != seed.ID {
		t.Fatalf("rotated token bound to %s, expected %s", got, seed.ID)
	}
}

func TestService_UpdateProfile_PasswordRehashed(t *testing.T) {
	seed := seedUser()
	repo := newMemoryUserRepo(seed)
	svc := NewService(repo, jwt.NewHMACService("test-secret", time.Hour), nil)

	if _, _, err := svc.UpdateProfile(context.Background(), seed.ID, UpdateProfileInput{
		Password: strPtr("newsecret"),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored := repo.users[seed.ID]
	if stored.PasswordHash == seed.PasswordHash {
		t.Fatalf("expected password hash to be re-derived")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newsecret")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestService_UpdateProfile_NoFields(t *testing.T) {
	seed := seedUser()
	svc := NewService(newMemoryUserRepo(seed), jwt.NewHMACService("test-secret", time.Hour), nil)

	_, _, err := svc.UpdateProfile(context.Background(), seed.ID, UpdateProfileInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_UpdateProfile_UnknownUser(t *testing.T) {
	svc := NewService(newMemoryUserRepo(), jwt.NewHMACService("test-secret", time.Hour), nil)

	_, _, err := svc.UpdateProfile(context.Background(), uuid.New(), UpdateProfileInput{
		Name: strPtr("Nobody"),
	})
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_SetQuizCompleted(t *testing.T) {
	seed := seedUser()
	repo := newMemoryUserRepo(seed)
	notifier := &recordingNotifier{}
	svc := NewService(repo, jwt.NewHMACService("test-secret", time.Hour), notifier)

	completed, err := svc.SetQuizCompleted(context.Background(), seed.ID, true)
	if err != nil {
		t.Fatalf("set quiz completed: %v", err)
	}
	if !completed {
		t.Fatalf("expected quizCompleted=true")
	}
	if !repo.users[seed.ID].QuizCompleted {
		t.Fatalf("flag not persisted")
	}
	if notifier.quizCompleted != 1 {
		t.Fatalf("expected quiz-completed notification, got %d", notifier.quizCompleted)
	}

	// clearing the flag does not notify
	completed, err = svc.SetQuizCompleted(context.Background(), seed.ID, false)
	if err != nil {
		t.Fatalf("clear quiz completed: %v", err)
	}
	if completed {
		t.Fatalf("expected quizCompleted=false")
	}
	if notifier.quizCompleted != 1 {
		t.Fatalf("unexpected notification on clear")
	}
}

func TestService_SetQuizCompleted_PersistenceError(t *testing.T) {
	seed := seedUser()
	repo := newMemoryUserRepo(seed)
	repo.updateErr = errors.New("write failed")
	svc := NewService(repo, jwt.NewHMACService("test-secret", time.Hour), nil)

	_, err := svc.SetQuizCompleted(context.Background(), seed.ID, true)
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestService_GetProfile_Sanitized(t *testing.T) {
	seed := seedUser()
	svc := NewService(newMemoryUserRepo(seed), jwt.NewHMACService("test-secret", time.Hour), nil)

	prof, err := svc.GetProfile(context.Background(), seed.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if prof.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if prof.Phone != seed.Phone || prof.Name != seed.Name {
		t.Fatalf("unexpected profile %+v", prof)
	}
}
