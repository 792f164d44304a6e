package lib

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-do-not-reuse"

func mintToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func baseClaims(sub, jti uuid.UUID) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":   sub.String(),
		"email": "kim@example.com",
		"role":  "customer",
		"srv":   "instance-a",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
		"jti":   jti.String(),
	}
}

func TestParseTokenRoundTrip(t *testing.T) {
	sub := uuid.New()
	jti := uuid.New()
	signed := mintToken(t, baseClaims(sub, jti), testSecret)

	claims, err := ParseToken(signed, testSecret)
	require.NoError(t, err)

	assert.Equal(t, sub, claims.Sub)
	assert.Equal(t, "kim@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "instance-a", claims.Srv)
	assert.Equal(t, jti, claims.Jti)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Exp, 5*time.Second)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	signed := mintToken(t, baseClaims(uuid.New(), uuid.New()), testSecret)

	_, err := ParseToken(signed, "another-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	claims := baseClaims(uuid.New(), uuid.New())
	claims["iat"] = time.Now().Add(-2 * time.Hour).Unix()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	signed := mintToken(t, claims, testSecret)

	_, err := ParseToken(signed, testSecret)
	assert.Error(t, err)
}

func TestParseTokenRejectsMissingClaims(t *testing.T) {
	claims := baseClaims(uuid.New(), uuid.New())
	delete(claims, "srv")
	signed := mintToken(t, claims, testSecret)

	_, err := ParseToken(signed, testSecret)
	assert.ErrorContains(t, err, "srv")
}

func TestParseTokenRejectsBadSubject(t *testing.T) {
	claims := baseClaims(uuid.New(), uuid.New())
	claims["sub"] = "not-a-uuid"
	signed := mintToken(t, claims, testSecret)

	_, err := ParseToken(signed, testSecret)
	assert.ErrorContains(t, err, "sub")
}
