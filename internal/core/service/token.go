package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies signed identity tokens. The signing secret
// is fixed at construction time and never read from the environment here.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces an HS256 JWT embedding the user's id, email and role.
func (s *TokenService) Issue(userID int64, email string, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the embedded principal.
// Every failure mode returns domain.ErrInvalidToken: callers must not be able
// to distinguish an expired token from a forged one.
func (s *TokenService) Verify(token string) (domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	// JSON numbers decode as float64.
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	role := domain.Role(roleStr)
	if !role.Valid() {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{
		UserID: int64(userID),
		Email:  email,
		Role:   role,
	}, nil
}
