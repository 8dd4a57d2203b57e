// Copyright (c) 2026 Vocably. All rights reserved.

package vocabulary

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LessonCounter is the slice of the lesson domain this package depends on:
// the atomic wordCount increment performed after each entry insert.
type LessonCounter interface {
	IncrementWordCount(ctx context.Context, lessonNumber int) (*mongo.UpdateResult, error)
}

// Service implements vocabulary operations on top of the [Store].
type Service struct {
	store   Store
	lessons LessonCounter
	logger  *slog.Logger
}

// NewService constructs a Service with its store and lesson-counter dependencies.
func NewService(store Store, lessons LessonCounter, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		lessons: lessons,
		logger:  logger,
	}
}

// ListByLesson returns the entries of one lesson.
func (service *Service) ListByLesson(ctx context.Context, lessonNumber int) ([]Entry, error) {
	return service.store.ListByLesson(ctx, lessonNumber)
}

// ListAll returns every entry sorted by lessonNumber.
func (service *Service) ListAll(ctx context.Context) ([]Entry, error) {
	return service.store.ListAll(ctx)
}

// Get returns a single entry, or nil when the id does not exist.
func (service *Service) Get(ctx context.Context, id primitive.ObjectID) (*Entry, error) {
	return service.store.FindByID(ctx, id)
}

// Create inserts a new entry, then increments the owning lesson's wordCount.
//
// The two writes are ordered but not atomic as a unit: the counter `$inc`
// itself is atomic on the server, yet if it fails after a successful insert
// the entry exists without the counter update. There is no rollback — the
// partial state is logged and the insert acknowledgement is still returned,
// matching the counter's accepted-drift semantics.
func (service *Service) Create(ctx context.Context, entry *Entry) (*mongo.InsertOneResult, error) {
	result, err := service.store.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}

	if _, err := service.lessons.IncrementWordCount(ctx, entry.LessonNumber); err != nil {
		service.logger.ErrorContext(ctx, "word_count_increment_failed",
			slog.Int("lesson_number", entry.LessonNumber),
			slog.Any("error", err),
		)
	}

	return result, nil
}

// Replace overwrites the entry with the given id.
//
// The edit does not touch any lesson counter, even when lessonNumber
// changes — another accepted source of counter drift.
func (service *Service) Replace(ctx context.Context, id primitive.ObjectID, entry *Entry) (*mongo.UpdateResult, error) {
	return service.store.Replace(ctx, id, entry)
}

// Delete removes the entry with the given id. The owning lesson's wordCount
// is left as-is.
func (service *Service) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return service.store.Delete(ctx, id)
}
