package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerify(t *testing.T) {
	token := sign(t, "shared-secret", jwt.MapClaims{
		"email":   "carol@example.com",
		"name":    "Carol",
		"picture": "https://example.com/carol.png",
	})

	p, err := Verify(token, "shared-secret")
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", p.Email)
	assert.Equal(t, "Carol", p.DisplayName)
	assert.Equal(t, "https://example.com/carol.png", p.AvatarURL)
}

func TestVerifyOptionalClaims(t *testing.T) {
	token := sign(t, "shared-secret", jwt.MapClaims{"email": "carol@example.com"})

	p, err := Verify(token, "shared-secret")
	require.NoError(t, err)
	assert.Empty(t, p.DisplayName)
	assert.Empty(t, p.AvatarURL)
}

func TestVerifyRejections(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token := sign(t, "other-secret", jwt.MapClaims{"email": "carol@example.com"})

		_, err := Verify(token, "shared-secret")
		assert.Error(t, err)
	})

	t.Run("no email claim", func(t *testing.T) {
		token := sign(t, "shared-secret", jwt.MapClaims{"name": "Carol"})

		_, err := Verify(token, "shared-secret")
		assert.ErrorIs(t, err, ErrNoEmail)
	})

	t.Run("expired", func(t *testing.T) {
		token := sign(t, "shared-secret", jwt.MapClaims{
			"email": "carol@example.com",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})

		_, err := Verify(token, "shared-secret")
		assert.Error(t, err)
	})

	t.Run("no secret configured", func(t *testing.T) {
		_, err := Verify("anything", "")
		assert.ErrorIs(t, err, ErrNoSecret)
	})

	t.Run("unsigned algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"email": "carol@example.com",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = Verify(token, "shared-secret")
		assert.Error(t, err)
	})
}
