// Copyright (c) 2026 Vocably. All rights reserved.

/*
Package users implements the account and identity layer.

It owns the users collection: self-registration, token issuance, the admin
probe used by front-end clients, and the admin-only role management
operations. The route guards also resolve account roles through this
package (see [Service.RoleByEmail]).

# Architecture

Accounts carry no credential material. Authentication trusts an
externally-issued identity claim (the email embedded in the access token)
matched against the stored record.
*/
package users

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocably/server/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account, learner or administrator.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  sec.UserRole       `bson:"role" json:"role"`
}
