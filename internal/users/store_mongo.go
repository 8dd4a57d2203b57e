// Copyright (c) 2026 Vocably. All rights reserved.

// MongoDB implementation of the users [Store].
//
// # Error Mapping
//
// mongo.ErrNoDocuments is mapped to (nil, nil) at this boundary: a missing
// account is a domain outcome (deny, default false, zero-effect write), not
// a storage failure. All other driver errors are wrapped and propagated.
package users

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vocably/server/internal/platform/sec"
)

// MongoStore implements the [Store] interface on a users collection handle.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a new MongoDB implementation of the [Store].
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

func (store *MongoStore) Insert(ctx context.Context, user *User) (*mongo.InsertOneResult, error) {
	result, err := store.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("users: insert failed: %w", err)
	}
	return result, nil
}

func (store *MongoStore) List(ctx context.Context) ([]User, error) {
	cursor, err := store.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("users: list failed: %w", err)
	}

	var accounts []User
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("users: decode failed: %w", err)
	}
	return accounts, nil
}

func (store *MongoStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := store.collection.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("users: find by email failed: %w", err)
	}
	return user, nil
}

func (store *MongoStore) SetRole(ctx context.Context, id primitive.ObjectID, role sec.UserRole) (*mongo.UpdateResult, error) {
	result, err := store.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return nil, fmt.Errorf("users: set role failed: %w", err)
	}
	return result, nil
}

func (store *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := store.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("users: delete failed: %w", err)
	}
	return result, nil
}
