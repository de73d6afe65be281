package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	raw, err := issuer.Issue(42, "sid-1", "student")
	require.NoError(t, err)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, "student", claims.Role)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	raw, err := NewTokenIssuer("one", time.Hour).Issue(1, "sid", "admin")
	require.NoError(t, err)

	_, err = NewTokenIssuer("two", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	issuer.now = func() time.Time { return time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC) }

	raw, err := issuer.Issue(1, "sid", "student")
	require.NoError(t, err)

	issuer.now = func() time.Time { return time.Date(2024, 1, 16, 9, 2, 0, 0, time.UTC) }
	_, err = issuer.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{SessionID: "sid"})
	raw, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RequiresSessionID(t *testing.T) {
	raw, err := NewTokenIssuer("secret", time.Hour).Issue(1, "", "student")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
