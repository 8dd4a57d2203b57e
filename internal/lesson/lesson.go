// Copyright (c) 2026 Vocably. All rights reserved.

/*
Package lesson implements the lesson catalogue.

Lessons order the curriculum by lessonNumber and carry a denormalized
wordCount counter that the vocabulary domain increments on entry creation.
The counter is maintained incrementally, never recomputed from the
vocabulary set, so it can drift when entries are deleted or edited — an
accepted trade-off inherited from the product's data model.
*/
package lesson

import "go.mongodb.org/mongo-driver/bson/primitive"

// Lesson represents one unit of the curriculum.
//
// LessonNumber is the ordering key; it is not guaranteed unique.
type Lesson struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	LessonNumber int                `bson:"lessonNumber" json:"lessonNumber"`
	LessonName   string             `bson:"lessonName" json:"lessonName"`
	WordCount    int                `bson:"wordCount" json:"wordCount"`
}
