package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

func TestVerifier(t *testing.T) {
	v := NewVerifier("secret", "shortlink")

	t.Run("round trip", func(t *testing.T) {
		for _, p := range []entity.Principal{
			{ID: 7, Role: entity.RoleUser},
			{ID: 1, Role: entity.RoleAdmin},
		} {
			token, err := v.Issue(p, time.Hour)
			require.NoError(t, err)

			got, err := v.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewVerifier("other", "shortlink").Issue(entity.Principal{ID: 7, Role: entity.RoleUser}, time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, entity.ErrUnauthenticated)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := NewVerifier("secret", "someone-else").Issue(entity.Principal{ID: 7, Role: entity.RoleUser}, time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		issuer := NewVerifier("secret", "shortlink")
		issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := issuer.Issue(entity.Principal{ID: 7, Role: entity.RoleUser}, time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := v.Issue(entity.Principal{ID: 7, Role: "ROOT"}, time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("malformed subject", func(t *testing.T) {
		claims := Claims{
			Role: string(entity.RoleUser),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "alice",
				Issuer:    "shortlink",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = v.Verify(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not-a-token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
