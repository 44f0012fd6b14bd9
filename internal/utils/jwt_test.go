package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 42, "user@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), tok.Exp, 5*time.Second)

	ident, err := VerifySessionToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), ident.UserID)
	assert.Equal(t, "user@example.com", ident.Email)
}

func TestVerifySessionTokenWrongSecret(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 1, "a@b.com", time.Hour)
	require.NoError(t, err)

	_, err = VerifySessionToken("other-secret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionTokenExpired(t *testing.T) {
	tok, err := NewSessionToken(testSecret, 1, "a@b.com", -time.Minute)
	require.NoError(t, err)

	_, err = VerifySessionToken(testSecret, tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifySessionTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := VerifySessionToken(testSecret, raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "raw=%q", raw)
	}
}
