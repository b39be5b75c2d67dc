package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobtalk/domain"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("should round-trip the user claims", func(t *testing.T) {
		req := require.New(t)

		token, err := GenerateToken(secret, "user-1", domain.RoleEmployer, time.Hour)
		req.NoError(err)
		req.NotEmpty(token)

		claims, err := ValidateToken(secret, token)
		req.NoError(err)
		req.Equal("user-1", claims.UserID)
		req.Equal("employer", claims.Role)
		req.Equal("jobtalk", claims.Issuer)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		token, err := GenerateToken([]byte("other-secret"), "user-1", domain.RoleEmployer, time.Hour)
		require.NoError(t, err)

		_, err = ValidateToken(secret, token)
		require.Error(t, err)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		token, err := GenerateToken(secret, "user-1", domain.RoleEmployer, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateToken(secret, token)
		require.Error(t, err)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := ValidateToken(secret, "not.a.token")
		require.Error(t, err)
	})
}
