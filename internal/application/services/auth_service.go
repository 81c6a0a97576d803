package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockroom/core/internal/infrastructure/config"
	"github.com/stockroom/core/internal/infrastructure/logger"
	"github.com/stockroom/core/internal/ports"
)

// Claims represents the JWT claims issued to the operator
type Claims struct {
	jwt.RegisteredClaims
}

// AuthService authenticates the configured operator account and issues
// access tokens for the mutating API routes.
type AuthService struct {
	cfg    config.AuthConfig
	logger *logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(cfg config.AuthConfig, log *logger.Logger) *AuthService {
	return &AuthService{cfg: cfg, logger: log.WithComponent("auth")}
}

// Login verifies the operator credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, req ports.LoginRequest) (*ports.AuthResponse, error) {
	if req.Username != s.cfg.OperatorUser {
		s.logger.Warnw("Login attempt with unknown username", "username", req.Username)
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.OperatorPassHash), []byte(req.Password)); err != nil {
		s.logger.Warnw("Login attempt with invalid password", "username", req.Username)
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := s.generateAccessToken(req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Infow("Operator logged in", "username", req.Username)

	return &ports.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.cfg.TokenExpiry.Seconds()),
	}, nil
}

// ValidateToken parses and validates a token string, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &ports.TokenClaims{Subject: claims.Subject}, nil
}

func (s *AuthService) generateAccessToken(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
