// Copyright (c) 2026 Vocably. All rights reserved.

// Authorization gate: the ordered guard chain applied in front of protected
// routes.
//
// # Architecture
//
// Guards are plain chi-compatible middleware values, built once at wiring
// time and listed explicitly per route. A guard either passes the request to
// the next element of the chain or short-circuits with 401/403; the route
// handler never runs after a guard failure.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vocably/server/internal/platform/apperr"
	"github.com/vocably/server/internal/platform/constants"
	"github.com/vocably/server/internal/platform/ctxutil"
	"github.com/vocably/server/internal/platform/respond"
	"github.com/vocably/server/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in guards.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the guards from the `sec` token
// service implementation, allowing us to easily inject fakes during unit
// testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// RoleDirectory resolves the current role of an account by email.
//
// Guards look the role up fresh on every request — roles are never cached
// across requests, so a demotion takes effect on the demoted account's very
// next call.
type RoleDirectory interface {
	RoleByEmail(ctx context.Context, email string) (role sec.UserRole, found bool, err error)
}

// Guards bundles the guard chain elements used by the route table.
//
// Making the chain a first-class value (rather than implicit registration
// order) keeps the per-route policy readable and testable.
type Guards struct {
	// Authenticated rejects requests without a valid bearer token.
	Authenticated func(http.Handler) http.Handler

	// AdminOnly rejects authenticated requests whose account role is not admin.
	AdminOnly func(http.Handler) http.Handler

	// UserOnly rejects authenticated requests whose account role is not user.
	// The match is exact: admin accounts are forbidden here too.
	UserOnly func(http.Handler) http.Handler
}

// NewGuards builds the guard chain from its two collaborators.
func NewGuards(verifier TokenVerifier, directory RoleDirectory) Guards {
	return Guards{
		Authenticated: RequireAuthenticated(verifier),
		AdminOnly:     RequireRole(directory, sec.RoleAdmin),
		UserOnly:      RequireRole(directory, sec.RoleUser),
	}
}

// RequireAuthenticated extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Require an 'Authorization: Bearer <token>' header; absent → 401.
//  2. Parse and verify the JWT via [TokenVerifier]; invalid or expired → 401.
//  3. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// Malformed, forged, and expired tokens all produce the same 401 — the
// failure kind is never surfaced to the client.
func RequireAuthenticated(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Header Presence ────────────────────────────────────────────
			if authHeader == "" {
				respond.Error(writer, request, apperr.Unauthorized("unauthorized access"))
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("unauthorized access"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("unauthorized access"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithClaims(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests whose account role does not exactly match role.
//
// # Usage
//
// Must be listed in the route's guard chain AFTER [RequireAuthenticated].
//
// # Flow
//  1. Check that [*sec.AuthClaims] exists in context; missing → 401.
//  2. Look the account up by claimed email — a fresh query on every request.
//  3. Account absent or role mismatch → 403. The chain fails closed.
//
// Role matching is exact, not hierarchical: an admin account calling a
// user-only route is rejected just like a user account calling an
// admin-only route.
func RequireRole(directory RoleDirectory, role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Authentication Check ───────────────────────────────────────
			claims := ctxutil.GetClaims(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("unauthorized access"))
				return
			}

			// ── 2. Fresh Role Lookup ──────────────────────────────────────────
			currentRole, found, err := directory.RoleByEmail(request.Context(), claims.Email)
			if err != nil {
				respond.Error(writer, request, apperr.Internal(err))
				return
			}

			// ── 3. Authorization Check ────────────────────────────────────────
			if !found || !currentRole.Is(role) {
				respond.Error(writer, request, apperr.Forbidden("forbidden access"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
