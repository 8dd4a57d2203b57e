// Copyright (c) 2026 Vocably. All rights reserved.

package vocabulary

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocably/server/internal/platform/middleware"
)

func passGuards() middleware.Guards {
	pass := func(next http.Handler) http.Handler { return next }
	return middleware.Guards{Authenticated: pass, AdminOnly: pass, UserOnly: pass}
}

func newTestRouter(store Store, counter LessonCounter) chi.Router {
	service := NewService(store, counter, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := chi.NewRouter()
	NewHandler(service).RegisterRoutes(router, passGuards())
	return router
}

/*
TestHandler_ListByLesson covers GET /vocabulary/{lessonNumber}: only the
requested lesson's entries come back, an unknown lesson yields an empty
list, and a non-numeric parameter is rejected with 400.
*/
func TestHandler_ListByLesson(t *testing.T) {
	store := &fakeStore{entries: []*Entry{
		{ID: primitive.NewObjectID(), Word: "pani", LessonNumber: 2},
		{ID: primitive.NewObjectID(), Word: "bhat", LessonNumber: 2},
		{ID: primitive.NewObjectID(), Word: "haat", LessonNumber: 3},
	}}
	router := newTestRouter(store, newFakeCounter())

	t.Run("known_lesson", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/vocabulary/2", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		var entries []Entry
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &entries))
		require.Len(t, entries, 2)
		assert.Equal(t, "pani", entries[0].Word)
	})

	t.Run("unknown_lesson", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/vocabulary/99", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		var entries []Entry
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &entries))
		assert.Empty(t, entries)
	})

	t.Run("non_numeric_parameter", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/vocabulary/first", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

/*
TestHandler_Get covers GET /word/{id}, including the null body for missing
ids.
*/
func TestHandler_Get(t *testing.T) {
	known := &Entry{ID: primitive.NewObjectID(), Word: "pani", Meaning: "water", LessonNumber: 2}
	router := newTestRouter(&fakeStore{entries: []*Entry{known}}, newFakeCounter())

	t.Run("known_id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/word/"+known.ID.Hex(), nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		var entry Entry
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &entry))
		assert.Equal(t, "water", entry.Meaning)
	})

	t.Run("missing_id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/word/"+primitive.NewObjectID().Hex(), nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "null", strings.TrimSpace(recorder.Body.String()))
	})
}

/*
TestHandler_Create covers POST /vocabulary end to end at the handler level:
the insert acknowledgement is echoed and the lesson counter is bumped.
*/
func TestHandler_Create(t *testing.T) {
	store := &fakeStore{}
	counter := newFakeCounter()
	router := newTestRouter(store, counter)

	payload := `{"word":"pani","pronunciation":"pa-ni","meaning":"water","whenToSay":"asking for a drink","lessonNumber":2}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/vocabulary", strings.NewReader(payload)))

	require.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotEmpty(t, body["InsertedID"])
	assert.Equal(t, 1, counter.increments[2])
}

/*
TestHandler_ReplaceRoundTrip verifies that a full replace followed by a read
returns exactly the submitted document under the original id.
*/
func TestHandler_ReplaceRoundTrip(t *testing.T) {
	known := &Entry{ID: primitive.NewObjectID(), Word: "pani", Meaning: "water", LessonNumber: 2}
	counter := newFakeCounter()
	router := newTestRouter(&fakeStore{entries: []*Entry{known}}, counter)

	payload := `{"word":"jol","pronunciation":"jol","meaning":"water","whenToSay":"formal register","lessonNumber":2}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/updatevocab/"+known.ID.Hex(), strings.NewReader(payload)))
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/word/"+known.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var entry Entry
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &entry))
	assert.Equal(t, known.ID, entry.ID)
	assert.Equal(t, "jol", entry.Word)
	assert.Equal(t, "formal register", entry.WhenToSay)
	assert.Empty(t, counter.increments)
}

/*
TestHandler_Delete covers DELETE /delete-vocabulary/{id}: the counters stay
untouched and repeating the delete reports zero.
*/
func TestHandler_Delete(t *testing.T) {
	known := &Entry{ID: primitive.NewObjectID(), Word: "pani", LessonNumber: 2}
	counter := newFakeCounter()
	router := newTestRouter(&fakeStore{entries: []*Entry{known}}, counter)

	deleteOnce := func() map[string]any {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/delete-vocabulary/"+known.ID.Hex(), nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		return body
	}

	assert.EqualValues(t, 1, deleteOnce()["DeletedCount"])
	assert.EqualValues(t, 0, deleteOnce()["DeletedCount"])
	assert.Empty(t, counter.increments)
}
