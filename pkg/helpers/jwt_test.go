package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("session", "csrf", time.Hour, time.Minute)

	tok, exp, err := m.GenerateSessionToken(42, "sid-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseSessionToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "sid-1", claims.SessionID)
}

func TestSessionTokenRejectsCSRFSecret(t *testing.T) {
	m := NewJWTManager("session", "csrf", time.Hour, time.Minute)
	tok, err := m.GenerateCSRFToken("authenticate", "nonce")
	require.NoError(t, err)

	_, err = m.ParseSessionToken(tok)
	assert.Error(t, err)
}

func TestCSRFTokenExpires(t *testing.T) {
	m := NewJWTManager("session", "csrf", time.Hour, -time.Minute)
	tok, err := m.GenerateCSRFToken("authenticate", "nonce")
	require.NoError(t, err)

	_, err = m.ParseCSRFToken(tok)
	assert.Error(t, err)
}
