// Copyright (c) 2026 Vocably. All rights reserved.

// MongoDB implementation of the tutorial [Store].
package tutorial

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements the [Store] interface on a tutorials collection handle.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a new MongoDB implementation of the [Store].
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

func (store *MongoStore) List(ctx context.Context) ([]Tutorial, error) {
	sort := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})

	cursor, err := store.collection.Find(ctx, bson.D{}, sort)
	if err != nil {
		return nil, fmt.Errorf("tutorial: list failed: %w", err)
	}

	var tutorials []Tutorial
	if err := cursor.All(ctx, &tutorials); err != nil {
		return nil, fmt.Errorf("tutorial: decode failed: %w", err)
	}
	return tutorials, nil
}
