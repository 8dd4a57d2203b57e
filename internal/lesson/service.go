// Copyright (c) 2026 Vocably. All rights reserved.

package lesson

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service implements lesson operations on top of the [Store].
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a Service with its store dependency.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// List returns the catalogue sorted by lessonNumber.
func (service *Service) List(ctx context.Context) ([]Lesson, error) {
	return service.store.List(ctx)
}

// Get returns a single lesson, or nil when the id does not exist.
func (service *Service) Get(ctx context.Context, id primitive.ObjectID) (*Lesson, error) {
	return service.store.FindByID(ctx, id)
}

// Create inserts a new lesson.
func (service *Service) Create(ctx context.Context, lesson *Lesson) (*mongo.InsertOneResult, error) {
	return service.store.Insert(ctx, lesson)
}

// Replace overwrites the lesson with the given id.
func (service *Service) Replace(ctx context.Context, id primitive.ObjectID, lesson *Lesson) (*mongo.UpdateResult, error) {
	return service.store.Replace(ctx, id, lesson)
}

// Delete removes the lesson with the given id.
func (service *Service) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return service.store.Delete(ctx, id)
}

// IncrementWordCount bumps the denormalized counter for a lesson number.
//
// It satisfies [vocabulary.LessonCounter]; the vocabulary domain calls it
// after each entry insert.
func (service *Service) IncrementWordCount(ctx context.Context, lessonNumber int) (*mongo.UpdateResult, error) {
	return service.store.IncrementWordCount(ctx, lessonNumber)
}
