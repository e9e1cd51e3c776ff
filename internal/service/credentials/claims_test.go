package credentials

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("remote-secret"))
	require.NoError(t, err)
	return token
}

func TestDecode_NumericSalonClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"salon_id": 42, "sub": "7"})

	claims, err := Decode(token)

	require.NoError(t, err)
	assert.Equal(t, "42", claims.SalonID)
	assert.Equal(t, "7", claims.Subject)
	assert.Nil(t, claims.ExpiresAt)
}

func TestDecode_StringSalonClaimWithBearerPrefix(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{"salon_id": "salon-9", "exp": exp.Unix()})

	claims, err := Decode("Bearer " + token)

	require.NoError(t, err)
	assert.Equal(t, "salon-9", claims.SalonID)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Equal(exp))
}

func TestDecode_MissingSalonClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "7"})

	claims, err := Decode(token)

	require.NoError(t, err)
	assert.Empty(t, claims.SalonID)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode("   ")
	assert.ErrorIs(t, err, ErrEmptyToken)

	_, err = Decode("not-a-token")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestNewSession(t *testing.T) {
	now := time.Date(2025, 4, 24, 9, 0, 0, 0, time.UTC)
	token := signedToken(t, jwt.MapClaims{"salon_id": 5})

	session, err := NewSession("sess-1", token, "9876543210", "Priya", now)

	require.NoError(t, err)
	assert.Equal(t, "5", session.SalonID)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, now, session.CreatedAt)
	assert.True(t, session.Context().HasSalon())
}
