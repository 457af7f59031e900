//go:build unit

package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	svc := NewService("secret", "parking-reservation", time.Hour)

	token, err := svc.GenerateToken("ops-1", "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("expired", func(t *testing.T) {
		svc := NewService("secret", "parking-reservation", time.Minute)
		svc.now = func() time.Time { return base }
		token, err := svc.GenerateToken("ops-1", "admin")
		require.NoError(t, err)

		svc.now = func() time.Time { return base.Add(2 * time.Minute) }
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("other", "parking-reservation", time.Hour).GenerateToken("ops-1", "admin")
		require.NoError(t, err)

		_, err = NewService("secret", "parking-reservation", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := NewService("secret", "someone-else", time.Hour).GenerateToken("ops-1", "admin")
		require.NoError(t, err)

		_, err = NewService("secret", "parking-reservation", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{Role: "admin"})
		raw, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewService("secret", "parking-reservation", time.Hour).ValidateToken(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no subject", func(t *testing.T) {
		svc := NewService("secret", "parking-reservation", time.Hour)
		token, err := svc.GenerateToken("", "admin")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", "parking-reservation", time.Hour).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
