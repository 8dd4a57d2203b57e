// Copyright (c) 2026 Vocably. All rights reserved.

// HTTP delivery layer for the vocabulary domain.
package vocabulary

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vocably/server/internal/platform/apperr"
	"github.com/vocably/server/internal/platform/middleware"
	requestutil "github.com/vocably/server/internal/platform/request"
	"github.com/vocably/server/internal/platform/respond"
)

// Handler implements vocabulary-related HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the vocabulary routes with their guard chains.
//
// # Endpoints
//   - GET    /vocabulary/{lessonNumber} : entries of one lesson (public)
//   - GET    /word/{id}                 : single entry (public)
//   - GET    /allVocabulary             : full catalogue (admin)
//   - POST   /vocabulary                : create + lesson counter bump (admin)
//   - PUT    /updatevocab/{id}          : full replace (admin)
//   - DELETE /delete-vocabulary/{id}    : remove (admin)
func (handler *Handler) RegisterRoutes(router chi.Router, guard middleware.Guards) {
	// Public endpoints
	router.Get("/vocabulary/{lessonNumber}", handler.listByLesson)
	router.Get("/word/{id}", handler.get)

	// Admin endpoints
	router.With(guard.Authenticated, guard.AdminOnly).Get("/allVocabulary", handler.listAll)
	router.With(guard.Authenticated, guard.AdminOnly).Post("/vocabulary", handler.create)
	router.With(guard.Authenticated, guard.AdminOnly).Put("/updatevocab/{id}", handler.replace)
	router.With(guard.Authenticated, guard.AdminOnly).Delete("/delete-vocabulary/{id}", handler.delete)
}

// listByLesson handles GET /vocabulary/{lessonNumber}.
func (handler *Handler) listByLesson(writer http.ResponseWriter, request *http.Request) {
	lessonNumber, err := strconv.Atoi(requestutil.Param(request, "lessonNumber"))
	if err != nil {
		respond.Error(writer, request, apperr.BadRequest("Invalid lesson number"))
		return
	}

	entries, err := handler.service.ListByLesson(request.Context(), lessonNumber)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}

// listAll handles GET /allVocabulary.
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}

// get handles GET /word/{id}. A missing id yields 200 with a null body,
// never 404.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entry)
}

// create handles POST /vocabulary. The response echoes the insert
// acknowledgement; the lesson counter update happens behind it.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var entry Entry
	if err := requestutil.DecodeJSON(request, &entry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Create(request.Context(), &entry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// replace handles PUT /updatevocab/{id}: a full-document replace, not a
// partial merge.
func (handler *Handler) replace(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var entry Entry
	if err := requestutil.DecodeJSON(request, &entry); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Replace(request.Context(), id, &entry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// delete handles DELETE /delete-vocabulary/{id}. Idempotent: a second
// delete reports zero matches with 200.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
