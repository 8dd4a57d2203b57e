// Copyright (c) 2026 Vocably. All rights reserved.

package vocabulary

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store defines the data access contract for the vocabulary collection.
type Store interface {
	// ListByLesson returns the entries with the given lessonNumber, in
	// natural order.
	ListByLesson(ctx context.Context, lessonNumber int) ([]Entry, error)

	// ListAll returns every entry sorted by lessonNumber ascending.
	ListAll(ctx context.Context) ([]Entry, error)

	// FindByID returns the entry with the given id, or (nil, nil) when no
	// such entry exists.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Entry, error)

	// Insert persists a new entry.
	Insert(ctx context.Context, entry *Entry) (*mongo.InsertOneResult, error)

	// Replace overwrites the full document with the given id. A missing id
	// is not an error; the result reports zero matches.
	Replace(ctx context.Context, id primitive.ObjectID, entry *Entry) (*mongo.UpdateResult, error)

	// Delete removes the entry with the given id. Deleting a missing id is
	// not an error; the result reports zero deletions.
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}
