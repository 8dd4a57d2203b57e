// Copyright (c) 2026 Vocably. All rights reserved.

// MongoDB implementation of the vocabulary [Store].
package vocabulary

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements the [Store] interface on a vocabulary collection handle.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a new MongoDB implementation of the [Store].
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

func (store *MongoStore) ListByLesson(ctx context.Context, lessonNumber int) ([]Entry, error) {
	cursor, err := store.collection.Find(ctx, bson.M{"lessonNumber": lessonNumber})
	if err != nil {
		return nil, fmt.Errorf("vocabulary: list by lesson failed: %w", err)
	}

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("vocabulary: decode failed: %w", err)
	}
	return entries, nil
}

func (store *MongoStore) ListAll(ctx context.Context) ([]Entry, error) {
	sort := options.Find().SetSort(bson.D{{Key: "lessonNumber", Value: 1}})

	cursor, err := store.collection.Find(ctx, bson.D{}, sort)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: list failed: %w", err)
	}

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("vocabulary: decode failed: %w", err)
	}
	return entries, nil
}

func (store *MongoStore) FindByID(ctx context.Context, id primitive.ObjectID) (*Entry, error) {
	entry := &Entry{}
	err := store.collection.FindOne(ctx, bson.M{"_id": id}).Decode(entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("vocabulary: find by id failed: %w", err)
	}
	return entry, nil
}

func (store *MongoStore) Insert(ctx context.Context, entry *Entry) (*mongo.InsertOneResult, error) {
	result, err := store.collection.InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: insert failed: %w", err)
	}
	return result, nil
}

func (store *MongoStore) Replace(ctx context.Context, id primitive.ObjectID, entry *Entry) (*mongo.UpdateResult, error) {
	// Full-document replace; the replacement never carries an _id so the
	// stored identifier is preserved.
	replacement := bson.M{
		"word":          entry.Word,
		"pronunciation": entry.Pronunciation,
		"meaning":       entry.Meaning,
		"whenToSay":     entry.WhenToSay,
		"lessonNumber":  entry.LessonNumber,
	}

	result, err := store.collection.ReplaceOne(ctx, bson.M{"_id": id}, replacement)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: replace failed: %w", err)
	}
	return result, nil
}

func (store *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := store.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("vocabulary: delete failed: %w", err)
	}
	return result, nil
}
