package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockroom/core/internal/infrastructure/config"
	"github.com/stockroom/core/internal/infrastructure/logger"
	"github.com/stockroom/core/internal/ports"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.AuthConfig{
		Enabled:          true,
		JWTSecret:        "test-signing-key",
		TokenExpiry:      time.Hour,
		Issuer:           "stockroom-test",
		OperatorUser:     "operator",
		OperatorPassHash: string(hash),
	}
	return NewAuthService(cfg, logger.NewNop())
}

func TestAuthServiceLoginAndValidate(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), ports.LoginRequest{
		Username: "operator",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), ports.LoginRequest{
		Username: "operator",
		Password: "wrong",
	})
	assert.Error(t, err)
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), ports.LoginRequest{
		Username: "intruder",
		Password: "secret-pass",
	})
	assert.Error(t, err)
}

func TestAuthServiceValidateRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
