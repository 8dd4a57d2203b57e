// Copyright (c) 2026 Vocably. All rights reserved.

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocably/server/internal/platform/ctxutil"
	"github.com/vocably/server/internal/platform/middleware"
	"github.com/vocably/server/internal/platform/sec"
)

// fakeVerifier accepts a single known token string.
type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (v *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == v.validToken {
		return v.claims, nil
	}
	return nil, sec.ErrInvalidToken
}

// fakeDirectory resolves roles from an in-memory map.
type fakeDirectory struct {
	roles map[string]sec.UserRole
	err   error
}

func (d *fakeDirectory) RoleByEmail(_ context.Context, email string) (sec.UserRole, bool, error) {
	if d.err != nil {
		return "", false, d.err
	}
	role, found := d.roles[email]
	return role, found, nil
}

// nextRecorder is a terminal handler that records whether it ran.
type nextRecorder struct {
	called bool
	claims *sec.AuthClaims
}

func (n *nextRecorder) ServeHTTP(_ http.ResponseWriter, request *http.Request) {
	n.called = true
	n.claims = ctxutil.GetClaims(request.Context())
}

/*
TestRequireAuthenticated covers the bearer-token gate: header presence,
format, and verification outcomes.
*/
func TestRequireAuthenticated(t *testing.T) {
	verifier := &fakeVerifier{
		validToken: "good-token",
		claims:     &sec.AuthClaims{Email: "learner@example.com"},
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{"missing_header", "", http.StatusUnauthorized, false},
		{"not_bearer", "Basic abc123", http.StatusUnauthorized, false},
		{"no_token_part", "Bearer", http.StatusUnauthorized, false},
		{"invalid_token", "Bearer bad-token", http.StatusUnauthorized, false},
		{"valid_token", "Bearer good-token", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &nextRecorder{}
			guard := middleware.RequireAuthenticated(verifier)(next)

			request := httptest.NewRequest(http.MethodGet, "/lessons", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			guard.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNext, next.called)
			if tt.wantNext {
				// Decoded claims must be attached for downstream guards.
				require.NotNil(t, next.claims)
				assert.Equal(t, "learner@example.com", next.claims.Email)
			}
		})
	}
}

/*
TestRequireRole covers the fresh-lookup role gate, including the exact-match
asymmetry: an admin account is forbidden from user-only routes.
*/
func TestRequireRole(t *testing.T) {
	directory := &fakeDirectory{roles: map[string]sec.UserRole{
		"admin@example.com":   sec.RoleAdmin,
		"learner@example.com": sec.RoleUser,
	}}

	tests := []struct {
		name       string
		email      string // empty = unauthenticated request
		required   sec.UserRole
		wantStatus int
		wantNext   bool
	}{
		{"admin_on_admin_route", "admin@example.com", sec.RoleAdmin, http.StatusOK, true},
		{"user_on_user_route", "learner@example.com", sec.RoleUser, http.StatusOK, true},
		{"user_on_admin_route", "learner@example.com", sec.RoleAdmin, http.StatusForbidden, false},
		{"admin_on_user_route", "admin@example.com", sec.RoleUser, http.StatusForbidden, false},
		{"unknown_account", "ghost@example.com", sec.RoleUser, http.StatusForbidden, false},
		{"no_claims_in_context", "", sec.RoleAdmin, http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &nextRecorder{}
			guard := middleware.RequireRole(directory, tt.required)(next)

			request := httptest.NewRequest(http.MethodGet, "/allUsers", nil)
			if tt.email != "" {
				ctx := ctxutil.WithClaims(request.Context(), &sec.AuthClaims{Email: tt.email})
				request = request.WithContext(ctx)
			}
			recorder := httptest.NewRecorder()

			guard.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantNext, next.called)
		})
	}
}

/*
TestRequireRole_DirectoryError verifies that a storage failure during role
lookup surfaces as a structured 500, not a silent pass.
*/
func TestRequireRole_DirectoryError(t *testing.T) {
	directory := &fakeDirectory{err: errors.New("connection reset")}

	next := &nextRecorder{}
	guard := middleware.RequireRole(directory, sec.RoleAdmin)(next)

	request := httptest.NewRequest(http.MethodGet, "/allUsers", nil)
	ctx := ctxutil.WithClaims(request.Context(), &sec.AuthClaims{Email: "admin@example.com"})
	request = request.WithContext(ctx)
	recorder := httptest.NewRecorder()

	guard.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.False(t, next.called)
}

/*
TestNewGuards verifies the chain value carries all three guard elements.
*/
func TestNewGuards(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good-token", claims: &sec.AuthClaims{Email: "a@b.c"}}
	directory := &fakeDirectory{roles: map[string]sec.UserRole{}}

	guards := middleware.NewGuards(verifier, directory)

	assert.NotNil(t, guards.Authenticated)
	assert.NotNil(t, guards.AdminOnly)
	assert.NotNil(t, guards.UserOnly)
}
