// Copyright (c) 2026 Vocably. All rights reserved.

/*
Package vocabulary implements the vocabulary entry catalogue.

Entries belong to a lesson by lessonNumber — a foreign key by value, with no
referential integrity enforced by the store. Creating an entry also bumps
the owning lesson's denormalized wordCount via [LessonCounter]; the two
writes are not transactional (see [Service.Create]).
*/
package vocabulary

import "go.mongodb.org/mongo-driver/bson/primitive"

// Entry represents one vocabulary item within a lesson.
type Entry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Word          string             `bson:"word" json:"word"`
	Pronunciation string             `bson:"pronunciation" json:"pronunciation"`
	Meaning       string             `bson:"meaning" json:"meaning"`
	WhenToSay     string             `bson:"whenToSay" json:"whenToSay"`
	LessonNumber  int                `bson:"lessonNumber" json:"lessonNumber"`
}
