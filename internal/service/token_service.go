package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classroom-player/internal/config"
	"classroom-player/internal/dto"
	"classroom-player/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ErrInvalidSessionToken wraps every token validation failure.
var ErrInvalidSessionToken = errors.New("invalid session token")

// TokenService issues and validates the bearer tokens of sessions.
type TokenService interface {
	CreateToken(ctx context.Context, sessionID string) (string, time.Time, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.SessionClaims, error)
}

type tokenServiceImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates an HS256 TokenService.
func NewTokenService(cfg config.JWTConfig) (TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &tokenServiceImpl{secret: []byte(cfg.SecretKey), ttl: ttl, now: time.Now}, nil
}

func (s *tokenServiceImpl) CreateToken(_ context.Context, sessionID string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := dto.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   sessionID,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *tokenServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("Session token expired", zap.Error(err))
		} else {
			logger.Get().Warn("Session token validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	claims, ok := token.Claims.(*dto.SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
