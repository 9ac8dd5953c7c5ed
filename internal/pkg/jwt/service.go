package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`

	jwtlib.RegisteredClaims
}

// Service issues and verifies the stateless session tokens clients present as
// bearer credentials.
type Service interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(tokenString string) (uuid.UUID, error)
}

// HMACService signs HS256 tokens with one process-wide secret configured at
// startup. The secret is never rotated at runtime.
type HMACService struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time
}

func NewHMACService(secret string, ttl time.Duration) *HMACService {
	return &HMACService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *HMACService) Issue(userID uuid.UUID) (string, error) {
	if len(s.secret) == 0 || s.ttl <= 0 {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		UserID: userID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) Verify(tokenString string) (uuid.UUID, error) {
	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(func() time.Time { return s.now() }),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return uuid.Nil, ErrTokenInvalid
	}
	if c.UserID == uuid.Nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return c.UserID, nil
}
