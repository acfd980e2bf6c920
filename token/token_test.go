package token

import (
	"testing"
	"time"

	"foodondoor-backend/config"
	"foodondoor-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParsePair(t *testing.T) {
	pair, err := IssuePair("42", models.UserTypeCustomer, "Asha", "9876543210")
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := ParseAccess(pair.Access, models.UserTypeCustomer)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.PrincipalID)
	assert.Equal(t, models.UserTypeCustomer, claims.UserType)
	assert.Equal(t, TypeAccess, claims.TokenType)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, "9876543210", claims.Phone)

	refresh, err := ParseRefresh(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, "42", refresh.PrincipalID)
	assert.Equal(t, models.UserTypeCustomer, refresh.UserType)
	// Refresh tokens carry identity only
	assert.Empty(t, refresh.Name)
	assert.Empty(t, refresh.Phone)
}

func TestParseAccessRejectsWrongRole(t *testing.T) {
	pair, err := IssuePair("7", models.UserTypeVendor, "Spice Villa", "9000000001")
	require.NoError(t, err)

	_, err = ParseAccess(pair.Access, models.UserTypeCustomer)
	assert.ErrorIs(t, err, ErrWrongRole)

	_, err = ParseAccess(pair.Access, models.UserTypeCourier)
	assert.ErrorIs(t, err, ErrWrongRole)

	_, err = ParseAccess(pair.Access, models.UserTypeVendor)
	assert.NoError(t, err)
}

func TestParseAccessRejectsRefreshToken(t *testing.T) {
	pair, err := IssuePair("7", models.UserTypeVendor, "Spice Villa", "9000000001")
	require.NoError(t, err)

	_, err = ParseAccess(pair.Refresh, models.UserTypeVendor)
	assert.ErrorIs(t, err, ErrNotAccess)

	_, err = ParseRefresh(pair.Access)
	assert.ErrorIs(t, err, ErrNotRefresh)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	foreign := Claims{
		PrincipalID: "42",
		UserType:    models.UserTypeCustomer,
		TokenType:   TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, foreign).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = Parse(raw)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsExpired(t *testing.T) {
	expired := Claims{
		PrincipalID: "42",
		UserType:    models.UserTypeCustomer,
		TokenType:   TypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString(config.JWTSecret)
	require.NoError(t, err)

	_, err = Parse(raw)
	assert.ErrorIs(t, err, ErrExpired)
}
