// Copyright (c) 2026 Vocably. All rights reserved.

// MongoDB implementation of the lesson [Store].
package lesson

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements the [Store] interface on a lessons collection handle.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a new MongoDB implementation of the [Store].
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

func (store *MongoStore) List(ctx context.Context) ([]Lesson, error) {
	sort := options.Find().SetSort(bson.D{{Key: "lessonNumber", Value: 1}})

	cursor, err := store.collection.Find(ctx, bson.D{}, sort)
	if err != nil {
		return nil, fmt.Errorf("lesson: list failed: %w", err)
	}

	var lessons []Lesson
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("lesson: decode failed: %w", err)
	}
	return lessons, nil
}

func (store *MongoStore) FindByID(ctx context.Context, id primitive.ObjectID) (*Lesson, error) {
	lesson := &Lesson{}
	err := store.collection.FindOne(ctx, bson.M{"_id": id}).Decode(lesson)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lesson: find by id failed: %w", err)
	}
	return lesson, nil
}

func (store *MongoStore) Insert(ctx context.Context, lesson *Lesson) (*mongo.InsertOneResult, error) {
	result, err := store.collection.InsertOne(ctx, lesson)
	if err != nil {
		return nil, fmt.Errorf("lesson: insert failed: %w", err)
	}
	return result, nil
}

func (store *MongoStore) Replace(ctx context.Context, id primitive.ObjectID, lesson *Lesson) (*mongo.UpdateResult, error) {
	// Full-document replace; the replacement never carries an _id so the
	// stored identifier is preserved.
	replacement := bson.M{
		"lessonNumber": lesson.LessonNumber,
		"lessonName":   lesson.LessonName,
		"wordCount":    lesson.WordCount,
	}

	result, err := store.collection.ReplaceOne(ctx, bson.M{"_id": id}, replacement)
	if err != nil {
		return nil, fmt.Errorf("lesson: replace failed: %w", err)
	}
	return result, nil
}

func (store *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := store.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("lesson: delete failed: %w", err)
	}
	return result, nil
}

func (store *MongoStore) IncrementWordCount(ctx context.Context, lessonNumber int) (*mongo.UpdateResult, error) {
	// $inc is the server-side atomic increment: concurrent creations for
	// the same lesson cannot lose counter updates.
	result, err := store.collection.UpdateOne(ctx,
		bson.M{"lessonNumber": lessonNumber},
		bson.M{"$inc": bson.M{"wordCount": 1}},
	)
	if err != nil {
		return nil, fmt.Errorf("lesson: increment word count failed: %w", err)
	}
	return result, nil
}
