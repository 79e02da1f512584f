package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "ravi@example.com", "farmer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ravi@example.com", claims.Email)
	assert.Equal(t, "farmer", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken("user-1", "ravi@example.com", "farmer")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestPrincipalContext(t *testing.T) {
	ctx := WithPrincipal(context.Background(), Principal{UserID: "u1", Email: "a@b.co", Role: "buyer"})
	p, ok := PrincipalFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", p.UserID)

	_, ok = PrincipalFrom(context.Background())
	assert.False(t, ok)
}
