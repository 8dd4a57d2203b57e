// Copyright (c) 2026 Vocably. All rights reserved.

// HTTP delivery layer for the tutorial domain.
package tutorial

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vocably/server/internal/platform/middleware"
	"github.com/vocably/server/internal/platform/respond"
)

// Handler implements tutorial-related HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the tutorial routes with their guard chains.
//
// # Endpoints
//   - GET /tutorials : sorted catalogue (user)
func (handler *Handler) RegisterRoutes(router chi.Router, guard middleware.Guards) {
	router.With(guard.Authenticated, guard.UserOnly).Get("/tutorials", handler.list)
}

// list handles GET /tutorials.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	tutorials, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tutorials)
}
