package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenFormat is returned when a presented token fails
// verification: bad signature, expired, or not a JWT at all. A token that
// verifies but lacks required claims is not an error; it resolves to
// anonymous instead.
var ErrInvalidTokenFormat = errors.New("invalid token format")

// Claims is the payload of a session token.
type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. It is stateless
// and safe for concurrent use.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewTokenService creates a TokenService signing with the given secret.
// defaultTTL is used when Issue is called with a zero ttl.
func NewTokenService(secret string, defaultTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
	}
}

// Issue creates a signed token for the user. An expiry is always embedded:
// a zero ttl falls back to the service default.
func (s *TokenService) Issue(userID uint64, username string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Resolve verifies a raw token and returns the identity it proves.
//
// The nil-identity and error cases are deliberately asymmetric: an absent
// token, or a verified token missing its subject or user id, resolves to
// (nil, nil) — anonymous. A token that fails verification resolves to
// ErrInvalidTokenFormat.
func (s *TokenService) Resolve(raw string) (*Identity, error) {
	if raw == "" {
		return nil, nil
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidTokenFormat
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return nil, nil
	}

	return &Identity{
		UserID:   claims.UserID,
		Username: claims.Subject,
	}, nil
}
