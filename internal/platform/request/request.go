// Copyright (c) 2026 Vocably. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vocably/server/internal/platform/apperr"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: a 400 [apperr.AppError] if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return apperr.BadRequest("Invalid JSON body")
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ObjectID retrieves a named URL parameter and parses it as a MongoDB ObjectID.

Identifiers in path segments are the hex form of the store-generated _id; a
value that does not parse is rejected with a 400 before any storage call.
*/
func ObjectID(request *http.Request, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(request, name))
	if err != nil {
		return primitive.NilObjectID, apperr.BadRequest("Invalid identifier")
	}
	return id, nil
}
