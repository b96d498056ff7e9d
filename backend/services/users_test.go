package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillshub/backend/store"
)

func TestSignUpAndAuthenticate(t *testing.T) {
	svc := NewUserService(store.NewMemoryStore())

	user, err := svc.SignUp("Test User", "Test@Example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEqual(t, "password123", user.PasswordHash)

	got, err := svc.Authenticate("test@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate("test@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc := NewUserService(store.NewMemoryStore())

	_, err := svc.SignUp("Test User", "test@example.com", "password123")
	require.NoError(t, err)

	// Email comparison ignores case.
	_, err = svc.SignUp("Other User", "TEST@example.com", "password456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestFindByID(t *testing.T) {
	svc := NewUserService(store.NewMemoryStore())

	user, err := svc.SignUp("Test User", "test@example.com", "password123")
	require.NoError(t, err)

	got, err := svc.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.Email, got.Email)

	got, err = svc.FindByID("user_0_missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}
