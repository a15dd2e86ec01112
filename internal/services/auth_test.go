package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketo/internal/logger"
	"ticketo/internal/storage"
)

func TestLogin(t *testing.T) {
	svc := NewAuthService(storage.NewSingleWriter(storage.NewInMemoryStoreWith(testDocument())), logger.NewLogger())

	t.Run("success strips the password", func(t *testing.T) {
		user, err := svc.Login("admin@ticketo.sa", "admin")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Empty(t, user.Password)
	})

	t.Run("email is case-insensitive and trimmed", func(t *testing.T) {
		user, err := svc.Login("  Admin@Ticketo.SA ", "admin")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("admin@ticketo.sa", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login("ghost@ticketo.sa", "admin")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Login("", "admin")
		assert.ErrorIs(t, err, ErrMissingFields)
		_, err = svc.Login("admin@ticketo.sa", "")
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}
