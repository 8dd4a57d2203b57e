// Copyright (c) 2026 Vocably. All rights reserved.

package users

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vocably/server/internal/platform/apperr"
	"github.com/vocably/server/internal/platform/sec"
)

// TokenIssuer is the slice of the token service needed for /jwt.
type TokenIssuer interface {
	IssueToken(email string) (string, error)
}

// Service implements account operations on top of the [Store].
type Service struct {
	store  Store
	tokens TokenIssuer
	logger *slog.Logger
}

// NewService constructs a Service with its store and token dependencies.
func NewService(store Store, tokens TokenIssuer, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// IssueToken signs an access token for a registered email.
//
// Token issuance is denied (403) when no account with the email exists —
// registration must happen first via Create. The denial carries an empty
// accessToken field so front-end clients can clear stale credentials.
func (service *Service) IssueToken(ctx context.Context, email string) (string, error) {
	user, err := service.store.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.Forbidden("forbidden access")
	}

	return service.tokens.IssueToken(email)
}

// IsAdmin reports whether the account with the given email has the admin role.
//
// A missing account is not an error: the probe defaults to false. This feeds
// the front-end's decision to show admin UI; the real security boundary is
// the guard chain on each admin route.
func (service *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := service.store.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role.Is(sec.RoleAdmin), nil
}

// RoleByEmail resolves the current role for the guard chain.
//
// It satisfies [middleware.RoleDirectory]; every guarded request lands here,
// so role changes are effective immediately.
func (service *Service) RoleByEmail(ctx context.Context, email string) (sec.UserRole, bool, error) {
	user, err := service.store.FindByEmail(ctx, email)
	if err != nil {
		return "", false, err
	}
	if user == nil {
		return "", false, nil
	}
	return user.Role, true, nil
}

// Create registers a new account.
func (service *Service) Create(ctx context.Context, user *User) (*mongo.InsertOneResult, error) {
	return service.store.Insert(ctx, user)
}

// List returns every account.
func (service *Service) List(ctx context.Context) ([]User, error) {
	return service.store.List(ctx)
}

// SetRole changes an account's role to the given value.
func (service *Service) SetRole(ctx context.Context, id primitive.ObjectID, role sec.UserRole) (*mongo.UpdateResult, error) {
	return service.store.SetRole(ctx, id, role)
}

// Delete removes an account.
func (service *Service) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return service.store.Delete(ctx, id)
}
