package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"finquest/internal/domain/user"
	"finquest/internal/pkg/jwt"
)

type stubTokens struct {
	userID uuid.UUID
	err    error
}

func (s stubTokens) Issue(uuid.UUID) (string, error) {
	return "stub-token", nil
}

func (s stubTokens) Verify(string) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	return s.userID, nil
}

type stubUsers struct {
	users map[uuid.UUID]user.User
}

func (s stubUsers) Create(context.Context, user.User) error { return nil }

func (s stubUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (s stubUsers) GetByPhone(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func (s stubUsers) ExistsByPhone(context.Context, string) (bool, error) { return false, nil }

func (s stubUsers) Update(context.Context, uuid.UUID, user.Update) (user.User, error) {
	return user.User{}, user.ErrNotFound
}

func newTestApp(tokens jwt.Service, users user.Repository) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())

	mw := NewAuthMiddleware(tokens, users)
	app.Get("/protected", mw.Middleware(), func(c fiber.Ctx) error {
		actor, ok := ActingUser(c)
		if !ok {
			return NewAppError(fiber.StatusInternalServerError, "no acting user", nil, nil)
		}
		return c.SendString(actor.ID.String())
	})

	return app
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newTestApp(stubTokens{}, stubUsers{})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := newTestApp(stubTokens{}, stubUsers{})

	for _, header := range []string{"Bearer", "Token abc", "Bearer   "} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.StatusCode)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := newTestApp(stubTokens{err: jwt.ErrTokenInvalid}, stubUsers{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_StaleToken(t *testing.T) {
	// token verifies but the account is gone
	app := newTestApp(stubTokens{userID: uuid.New()}, stubUsers{users: map[uuid.UUID]user.User{}})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer stale")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	id := uuid.New()
	users := stubUsers{users: map[uuid.UUID]user.User{
		id: {ID: id, Name: "Ana", Phone: "5550001", PasswordHash: "hash"},
	}}
	app := newTestApp(stubTokens{userID: id}, users)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if string(body) != id.String() {
		t.Fatalf("expected acting user %s, got %q", id, body)
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"  Bearer abc  ", "abc", true},
		{"", "", false},
		{"abc", "", false},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
	}

	for _, tc := range cases {
		token, ok := bearerTokenFromHeader(tc.header)
		if ok != tc.ok || token != tc.token {
			t.Fatalf("header %q: got (%q, %v), want (%q, %v)", tc.header, token, ok, tc.token, tc.ok)
		}
	}
}
