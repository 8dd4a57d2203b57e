// Copyright (c) 2026 Vocably. All rights reserved.

package tutorial

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocably/server/internal/platform/middleware"
)

type fakeStore struct {
	tutorials []Tutorial
	err       error
}

func (s *fakeStore) List(context.Context) ([]Tutorial, error) {
	return s.tutorials, s.err
}

func newTestRouter(store Store) chi.Router {
	pass := func(next http.Handler) http.Handler { return next }
	guards := middleware.Guards{Authenticated: pass, AdminOnly: pass, UserOnly: pass}

	service := NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := chi.NewRouter()
	NewHandler(service).RegisterRoutes(router, guards)
	return router
}

/*
TestHandler_List covers GET /tutorials: the store's sorted catalogue is
passed through unchanged.
*/
func TestHandler_List(t *testing.T) {
	store := &fakeStore{tutorials: []Tutorial{
		{ID: primitive.NewObjectID(), Title: "Counting to ten"},
		{ID: primitive.NewObjectID(), Title: "Greeting an elder"},
	}}
	router := newTestRouter(store)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/tutorials", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var tutorials []Tutorial
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &tutorials))
	require.Len(t, tutorials, 2)
	assert.Equal(t, "Counting to ten", tutorials[0].Title)
}

/*
TestHandler_List_StoreError verifies a store failure surfaces as a
structured 500.
*/
func TestHandler_List_StoreError(t *testing.T) {
	router := newTestRouter(&fakeStore{err: errors.New("connection reset")})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/tutorials", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
