package services

import (
	"context"
	"time"

	paperstash_errors "paperstash/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService verifies bearer tokens issued by the account service. Tokens
// are HS256 JWTs whose subject is the user id.
type AuthService struct {
	jwtSecret []byte
	accessTTL time.Duration
}

func NewAuthService(secret string, accessTTL time.Duration) *AuthService {
	return &AuthService{
		jwtSecret: []byte(secret),
		accessTTL: accessTTL,
	}
}

// AccessClaims carries the user id in the standard subject claim.
type AccessClaims struct {
	jwt.RegisteredClaims
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, paperstash_errors.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, paperstash_errors.ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, paperstash_errors.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, paperstash_errors.ErrUnauthorized
	}

	return *claims, nil
}

// Authenticate parses the token and returns the user id it carries.
func (s *AuthService) Authenticate(tokenString string) (uuid.UUID, error) {
	claims, err := s.ParseAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, paperstash_errors.ErrUnauthorized
	}
	return userID, nil
}

// NewAccessToken signs a token for userID. The API never hands these out;
// it exists for local tooling and tests.
func (s *AuthService) NewAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

type ctxKey string

var userIDKey ctxKey = "user_id"

func WithUserContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}
