package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	Init("test-secret")

	token, err := GenerateToken("admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestValidateToken_WrongKey(t *testing.T) {
	Init("first")
	token, err := GenerateToken("admin")
	require.NoError(t, err)

	Init("second")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	Init("test-secret")
	past := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			Issuer:    tokenIssuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestInit_EmptySecretStillSigns(t *testing.T) {
	Init("")
	token, err := GenerateToken("admin")
	require.NoError(t, err)
	_, err = ValidateToken(token)
	assert.NoError(t, err)
}
