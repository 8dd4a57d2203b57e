// Copyright (c) 2026 Vocably. All rights reserved.

// HTTP delivery layer for the users domain.
//
// This layer is strictly responsible for transport concerns (status codes,
// parameters, JSON); every handler performs exactly one service call.
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vocably/server/internal/platform/apperr"
	"github.com/vocably/server/internal/platform/middleware"
	requestutil "github.com/vocably/server/internal/platform/request"
	"github.com/vocably/server/internal/platform/respond"
	"github.com/vocably/server/internal/platform/sec"
)

// Handler implements account-related HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the users routes with their guard chains.
//
// # Endpoints
//   - GET    /jwt                      : issue an access token (public)
//   - GET    /users/admin/{email}      : admin probe (public)
//   - POST   /users                    : self-registration (public)
//   - GET    /allUsers                 : list accounts (admin)
//   - PATCH  /users/makeAdmin/{id}     : promote to admin (admin)
//   - PATCH  /users/makeUser/{id}      : demote to user (admin)
//   - DELETE /delete-my-users/{id}     : remove an account (admin)
func (handler *Handler) RegisterRoutes(router chi.Router, guard middleware.Guards) {
	// Public endpoints
	router.Get("/jwt", handler.issueToken)
	router.Get("/users/admin/{email}", handler.adminCheck)
	router.Post("/users", handler.create)

	// Admin endpoints
	router.With(guard.Authenticated, guard.AdminOnly).Get("/allUsers", handler.list)
	router.With(guard.Authenticated, guard.AdminOnly).Patch("/users/makeAdmin/{id}", handler.makeAdmin)
	router.With(guard.Authenticated, guard.AdminOnly).Patch("/users/makeUser/{id}", handler.makeUser)
	router.With(guard.Authenticated, guard.AdminOnly).Delete("/delete-my-users/{id}", handler.delete)
}

// # Response Payloads

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type adminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

/*
issueToken handles GET /jwt?email=<email>.

Response:
  - 200: {accessToken} for a registered email
  - 403: {accessToken: ""} when no account with the email exists
*/
func (handler *Handler) issueToken(writer http.ResponseWriter, request *http.Request) {
	email := request.URL.Query().Get("email")

	token, err := handler.service.IssueToken(request.Context(), email)
	if err != nil {
		// Denied issuance still carries the empty-token body alongside 403.
		if sendEmptyTokenOnDenied(writer, err) {
			return
		}
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tokenResponse{AccessToken: token})
}

/*
adminCheck handles GET /users/admin/{email}.

Returns {isAdmin: bool}, defaulting to false for unknown emails. This is a
UI hint, not a security boundary; see the guard chain for the real gate.
*/
func (handler *Handler) adminCheck(writer http.ResponseWriter, request *http.Request) {
	email := requestutil.Param(request, "email")

	isAdmin, err := handler.service.IsAdmin(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, adminCheckResponse{IsAdmin: isAdmin})
}

// create handles POST /users. The inserted acknowledgement is echoed back.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var user User
	if err := requestutil.DecodeJSON(request, &user); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Create(request.Context(), &user)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// list handles GET /allUsers.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	accounts, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, accounts)
}

// makeAdmin handles PATCH /users/makeAdmin/{id}.
func (handler *Handler) makeAdmin(writer http.ResponseWriter, request *http.Request) {
	handler.setRole(writer, request, sec.RoleAdmin)
}

// makeUser handles PATCH /users/makeUser/{id}.
func (handler *Handler) makeUser(writer http.ResponseWriter, request *http.Request) {
	handler.setRole(writer, request, sec.RoleUser)
}

func (handler *Handler) setRole(writer http.ResponseWriter, request *http.Request, role sec.UserRole) {
	id, err := requestutil.ObjectID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.SetRole(request.Context(), id, role)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// sendEmptyTokenOnDenied writes the /jwt denial body.
//
// Front-end clients key off the empty accessToken field to clear stale
// credentials, so the 403 carries it instead of the error envelope.
func sendEmptyTokenOnDenied(writer http.ResponseWriter, err error) bool {
	ae := apperr.As(err)
	if ae == nil || ae.HTTPStatus != http.StatusForbidden {
		return false
	}
	respond.JSON(writer, http.StatusForbidden, tokenResponse{AccessToken: ""})
	return true
}

// delete handles DELETE /delete-my-users/{id}.
//
// Deleting a missing id reports zero deletions with 200; repeating the call
// is harmless.
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
