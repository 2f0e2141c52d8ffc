package service

import (
	"errors"
	"fmt"
	"psychotest/internal/logger"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const sessionTokenIssuer = "psychotest"

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims identify a browser session. The subject is the session id.
// They carry no user identity.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionTokenService signs and checks session tokens.
type SessionTokenService interface {
	Issue(sessionID string) (string, error)
	Validate(tokenString string) (*SessionClaims, error)
	TTL() time.Duration
}

type sessionTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionTokenService(secret string, ttl time.Duration) (SessionTokenService, error) {
	if secret == "" {
		return nil, errors.New("session token secret is empty")
	}
	if ttl <= 0 {
		return nil, errors.New("session token ttl must be positive")
	}
	return &sessionTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *sessionTokenService) TTL() time.Duration {
	return s.ttl
}

func (s *sessionTokenService) Issue(sessionID string) (string, error) {
	now := s.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionTokenIssuer,
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *sessionTokenService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(sessionTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		logger.Get().Debug("Session token rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
