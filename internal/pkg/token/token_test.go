package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	tok, err := Generate("u1", "a@b.com", "verifier", "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := Validate(tok, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, "verifier", claims.Role)
	require.Equal(t, "u1", claims.Subject)
}

func TestValidate_WrongSecret(t *testing.T) {
	tok, err := Generate("u1", "a@b.com", "citizen", "secret-one", time.Hour)
	require.NoError(t, err)

	_, err = Validate(tok, "secret-two")
	require.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	tok, err := Generate("u1", "a@b.com", "citizen", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = Validate(tok, "test-secret")
	require.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := Validate("not-a-token", "test-secret")
	require.Error(t, err)
}
