package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hotelbooking/constants"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/services/logger"
)

func newAuthFixture() (*AuthService, *TokenService) {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(AuthServiceOptions{
		Users:      newFakeUsers(),
		Tokens:     tokens,
		BcryptCost: bcrypt.MinCost,
		Logger:     logger.Nop{},
	}), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tokens := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterInput{Name: "Ana", Email: " Ana@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, constants.RoleUser, user.Role)
	assert.NotEqual(t, "secret1", user.Password)

	resp, err := svc.Login(ctx, dto.LoginInput{Email: "ANA@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserInfo.UserID)

	caller, err := tokens.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, caller.UserID)
	assert.Equal(t, constants.RoleUser, caller.Role)
}

func TestRegisterErrors(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterInput{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterInput{Email: "ana@example.com", Password: "secret1"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeConflict))

	_, err = svc.Register(ctx, dto.RegisterInput{Email: "bob@example.com", Password: "123"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidInput))

	_, err = svc.Register(ctx, dto.RegisterInput{Email: "bob", Password: "secret1"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidInput))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()
	_, err := svc.Register(ctx, dto.RegisterInput{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginInput{Email: "ana@example.com", Password: "wrong"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUnauthenticated))

	_, err = svc.Login(ctx, dto.LoginInput{Email: "nobody@example.com", Password: "secret1"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUnauthenticated))
}
