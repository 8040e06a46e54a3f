package xsrf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("sess-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "sess-1")
	require.NoError(t, err)
	require.Equal(t, "sess-1", claims.SessionID)
}

func TestValidateToken_Invalid(t *testing.T) {
	_, err := ValidateToken("invalid.token", "sess-1")
	require.Error(t, err)
}

func TestValidateToken_WrongSession(t *testing.T) {
	token, err := GenerateToken("sess-1")
	require.NoError(t, err)

	_, err = ValidateToken(token, "sess-2")
	require.Error(t, err)
}

func TestGenerateToken_EmptySession(t *testing.T) {
	_, err := GenerateToken("")
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	orig := xsrfLifetime
	xsrfLifetime = -time.Minute
	t.Cleanup(func() { xsrfLifetime = orig })

	token, err := GenerateToken("sess-1")
	require.NoError(t, err)

	_, err = ValidateToken(token, "sess-1")
	require.Error(t, err)
}

func TestValidateToken_TamperedSecret(t *testing.T) {
	token, err := GenerateToken("sess-1")
	require.NoError(t, err)

	orig := xsrfSecret
	xsrfSecret = []byte("a-different-secret")
	t.Cleanup(func() { xsrfSecret = orig })

	_, err = ValidateToken(token, "sess-1")
	require.Error(t, err)
}
