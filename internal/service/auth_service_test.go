package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "unit-test-secret-unit-test-secret!!",
			ExpireTime: time.Hour,
		},
	}
}

func TestSignupAndLogin(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewAuthService(store.Users(), testConfig())

	user, token, err := svc.Signup("Ada", "ada@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Ada", user.Name)
	assert.NotEqual(t, "secret1", user.Password, "password must be hashed")

	_, _, err = svc.Login("ada@example.com", "secret1")
	assert.NoError(t, err)

	_, _, err = svc.Login("ada@example.com", "wrong")
	assert.Error(t, err)
}

func TestSignupRejectsShortPassword(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewAuthService(store.Users(), testConfig())

	_, _, err := svc.Signup("Ada", "ada@example.com", "abc")
	assert.ErrorIs(t, err, util.ErrPasswordTooShort)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewAuthService(store.Users(), testConfig())

	_, _, err := svc.Signup("Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Signup("Other", "ada@example.com", "secret2")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestVerifyReissuesFreshClaims(t *testing.T) {
	store := repository.NewMemoryStore()
	cfg := testConfig()
	svc := NewAuthService(store.Users(), cfg)

	user, _, err := svc.Signup("Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	// Mutate XP behind the token's back, as a quiz completion would.
	user.XP = 40
	require.NoError(t, store.Users().Update(user))

	_, token, err := svc.Verify(user.ID)
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, 40, claims.XP)
}
