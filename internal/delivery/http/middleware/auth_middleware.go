package middleware

import (
	"errors"
	"strings"

	"finquest/internal/domain/user"
	"finquest/internal/pkg/jwt"
	"finquest/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// CtxUserKey holds the sanitized acting user in request locals.
const CtxUserKey = "acting_user"

// AuthMiddleware walks each request from bearer extraction through token
// verification to user resolution. Every failure mode (missing header,
// malformed header, bad signature, expired token, deleted user) collapses to
// the same 401 so callers cannot tell which condition tripped.
type AuthMiddleware struct {
	jwt   jwt.Service
	users user.Repository
}

func NewAuthMiddleware(jwtSvc jwt.Service, users user.Repository) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, users: users}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return unauthenticated(nil)
		}

		userID, err := m.jwt.Verify(token)
		if err != nil {
			return unauthenticated(err)
		}

		u, err := m.users.GetByID(c.Context(), userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				// stale token for a deleted account
				return unauthenticated(err)
			}
			return NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}

		c.Locals(CtxUserKey, u.Sanitized())

		return c.Next()
	}
}

// ActingUser resolves the authenticated user placed by the middleware.
func ActingUser(c fiber.Ctx) (user.User, bool) {
	u, ok := c.Locals(CtxUserKey).(user.User)
	return u, ok
}

func unauthenticated(cause error) error {
	return NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, cause)
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
