// Copyright (c) 2026 Vocably. All rights reserved.

// HTTP delivery layer for the lesson domain.
package lesson

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vocably/server/internal/platform/middleware"
	requestutil "github.com/vocably/server/internal/platform/request"
	"github.com/vocably/server/internal/platform/respond"
)

// Handler implements lesson-related HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the lesson routes with their guard chains.
//
// # Endpoints
//   - GET    /lessons              : learner-facing catalogue (user)
//   - GET    /lesson/{id}          : single lesson (public)
//   - GET    /allLessons           : management catalogue (admin)
//   - POST   /lesson               : create (admin)
//   - PUT    /updatelesson/{id}    : full replace (admin)
//   - DELETE /delete-lesson/{id}   : remove (admin)
func (handler *Handler) RegisterRoutes(router chi.Router, guard middleware.Guards) {
	// Public endpoints
	router.Get("/lesson/{id}", handler.get)

	// Learner endpoints
	router.With(guard.Authenticated, guard.UserOnly).Get("/lessons", handler.list)

	// Admin endpoints
	router.With(guard.Authenticated, guard.AdminOnly).Get("/allLessons", handler.list)
	router.With(guard.Authenticated, guard.AdminOnly).Post("/lesson", handler.create)
	router.With(guard.Authenticated, guard.AdminOnly).Put("/updatelesson/{id}", handler.replace)
	router.With(guard.Authenticated, guard.AdminOnly).Delete("/delete-lesson/{id}", handler.delete)
}

// list serves both GET /lessons and GET /allLessons: the same sorted
// catalogue behind different guard chains.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	lessons, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lessons)
}

// get handles GET /lesson/{id}. A missing id yields 200 with a null body,
// never 404.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lesson, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lesson)
}

// create handles POST /lesson.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var lesson Lesson
	if err := requestutil.DecodeJSON(request, &lesson); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Create(request.Context(), &lesson)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// replace handles PUT /updatelesson/{id}: a full-document replace, not a
// partial merge.
func (handler *Handler) replace(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var lesson Lesson
	if err := requestutil.DecodeJSON(request, &lesson); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Replace(request.Context(), id, &lesson)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// delete handles DELETE /delete-lesson/{id}. Idempotent: a second delete
// reports zero matches with 200.
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
