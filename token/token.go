// Package token mints and validates the signed access/refresh pairs carrying
// role-specific claims.
package token

import (
	"errors"
	"time"

	"foodondoor-backend/config"
	"foodondoor-backend/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired    = errors.New("token has expired")
	ErrInvalid    = errors.New("invalid token")
	ErrNotRefresh = errors.New("not a refresh token")
	ErrNotAccess  = errors.New("not an access token")
	ErrWrongRole  = errors.New("token role does not match")
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Claims struct {
	PrincipalID string          `json:"principal_id"`
	UserType    models.UserType `json:"user_type"`
	TokenType   string          `json:"token_type"`
	// Denormalized display fields on access tokens save the client a lookup.
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}

type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IssuePair signs an access/refresh pair for the principal. A signing
// failure is fatal for the request; callers must surface it as a server
// error, never fall back to an unsigned token.
func IssuePair(principalID string, role models.UserType, name, phone string) (Pair, error) {
	now := time.Now()

	access := Claims{
		PrincipalID: principalID,
		UserType:    role,
		TokenType:   TypeAccess,
		Name:        name,
		Phone:       phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	// Refresh tokens carry identity claims only.
	refresh := Claims{
		PrincipalID: principalID,
		UserType:    role,
		TokenType:   TypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(config.RefreshTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	accessStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, access).SignedString(config.JWTSecret)
	if err != nil {
		return Pair{}, err
	}
	refreshStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refresh).SignedString(config.JWTSecret)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: accessStr, Refresh: refreshStr}, nil
}

// Parse verifies signature and expiry and returns the claims.
func Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return config.JWTSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !parsed.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}

// ParseAccess verifies an access token for the expected role. A valid token
// of another role is rejected — this is what lets three authenticators share
// one signing secret without cross-role impersonation.
func ParseAccess(raw string, role models.UserType) (*Claims, error) {
	claims, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeAccess {
		return nil, ErrNotAccess
	}
	if claims.UserType != role {
		return nil, ErrWrongRole
	}
	return claims, nil
}

// ParseRefresh verifies a refresh token of any role.
func ParseRefresh(raw string) (*Claims, error) {
	claims, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeRefresh {
		return nil, ErrNotRefresh
	}
	return claims, nil
}
