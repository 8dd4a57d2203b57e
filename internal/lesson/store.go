// Copyright (c) 2026 Vocably. All rights reserved.

package lesson

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store defines the data access contract for the lessons collection.
type Store interface {
	// List returns every lesson sorted by lessonNumber ascending.
	List(ctx context.Context) ([]Lesson, error)

	// FindByID returns the lesson with the given id, or (nil, nil) when no
	// such lesson exists.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Lesson, error)

	// Insert persists a new lesson.
	Insert(ctx context.Context, lesson *Lesson) (*mongo.InsertOneResult, error)

	// Replace overwrites the full document with the given id. A missing id
	// is not an error; the result reports zero matches.
	Replace(ctx context.Context, id primitive.ObjectID, lesson *Lesson) (*mongo.UpdateResult, error)

	// Delete removes the lesson with the given id. Deleting a missing id is
	// not an error; the result reports zero deletions.
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)

	// IncrementWordCount atomically adds 1 to the wordCount of the first
	// lesson matching lessonNumber.
	IncrementWordCount(ctx context.Context, lessonNumber int) (*mongo.UpdateResult, error)
}
