// Copyright (c) 2026 Vocably. All rights reserved.

/*
Package tutorial implements the read-only tutorials catalogue.

Tutorials are seeded out-of-band; this surface only lists them for
authenticated learners.
*/
package tutorial

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tutorial represents one learning tutorial.
type Tutorial struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title string             `bson:"title" json:"title"`
}
