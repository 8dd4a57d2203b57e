// Copyright (c) 2026 Vocably. All rights reserved.

package users

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vocably/server/internal/platform/sec"
)

// Store defines the data access contract for the users collection.
//
// Write operations return the driver's result structs unmodified — the API
// echoes acknowledgements and matched/modified counts to clients verbatim.
type Store interface {
	// Insert persists a new account.
	Insert(ctx context.Context, user *User) (*mongo.InsertOneResult, error)

	// List returns every account, in natural order.
	List(ctx context.Context) ([]User, error)

	// FindByEmail returns the account with the given email, or (nil, nil)
	// when no such account exists.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// SetRole updates the role field of the account with the given id.
	// A missing id is not an error; the result reports zero matches.
	SetRole(ctx context.Context, id primitive.ObjectID, role sec.UserRole) (*mongo.UpdateResult, error)

	// Delete removes the account with the given id. Deleting a missing id
	// is not an error; the result reports zero deletions.
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}
