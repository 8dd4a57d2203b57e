// Copyright (c) 2026 Vocably. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (JWT signing and verification)
// from the domain logic. It acts as an Infrastructure service injected into
// the Application layer via small interfaces defined at the point of use.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure.
//
// Malformed, expired, and forged tokens are deliberately indistinguishable
// to callers; the distinction is never surfaced to clients.
var ErrInvalidToken = errors.New("sec: invalid token")

// AuthClaims represents the payload embedded inside an access token.
//
// The identity claim is the account email alone. Role is NOT embedded:
// route guards re-query the users collection on every request, so a role
// change takes effect immediately without waiting for token expiry.
type AuthClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewTokenService creates a new TokenService signing with the shared secret.
func NewTokenService(secret string, tokenTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}

	return &TokenService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}, nil
}

// IssueToken creates a new signed access token carrying the email claim.
func (service *TokenService) IssueToken(email string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.tokenTTL)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and expiry of a JWT string.
//
// Every failure mode collapses into [ErrInvalidToken].
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
