package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learntrack_backend/internal/config"
	"learntrack_backend/internal/repository"
	"learntrack_backend/internal/util"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	s := newAuthService(db)

	user, err := s.Register(RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", user.Password, "password must be stored hashed")

	logged, token, err := s.Login("alice@example.com", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	require.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	s := newAuthService(db)

	_, err := s.Register(RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)

	_, err = s.Register(RegisterRequest{Name: "Other", Email: "alice@example.com", Password: "another-pw"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	s := newAuthService(db)

	_, err := s.Register(RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)

	_, _, err = s.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = s.Login("nobody@example.com", "s3cret-pw")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestGoogleLogin(t *testing.T) {
	db := newTestDB(t)
	s := newAuthService(db)

	// Unknown identity creates a passwordless account.
	user, token, err := s.GoogleLogin("g-123", "carol@example.com", "Carol")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, user.GoogleID)
	assert.Equal(t, "g-123", *user.GoogleID)

	// Same identity logs into the same account.
	again, _, err := s.GoogleLogin("g-123", "carol@example.com", "Carol")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestGoogleLoginLinksExistingEmail(t *testing.T) {
	db := newTestDB(t)
	s := newAuthService(db)

	registered, err := s.Register(RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)

	linked, _, err := s.GoogleLogin("g-456", "alice@example.com", "Alice")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, linked.ID)
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "g-456", *linked.GoogleID)
}
