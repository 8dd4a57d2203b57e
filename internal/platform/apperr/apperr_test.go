// Copyright (c) 2026 Vocably. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocably/server/internal/platform/apperr"
)

/*
TestAppError_StatusMapping checks the HTTP status assigned by each constructor.
*/
func TestAppError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		wantStatus int
		wantCode   string
	}{
		{"unauthorized", apperr.Unauthorized("unauthorized access"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", apperr.Forbidden("forbidden access"), http.StatusForbidden, "FORBIDDEN"},
		{"bad_request", apperr.BadRequest("Invalid identifier"), http.StatusBadRequest, "BAD_REQUEST"},
		{"internal", apperr.Internal(errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

/*
TestAppError_CauseChain verifies unwrapping through wrapped causes.
*/
func TestAppError_CauseChain(t *testing.T) {
	cause := errors.New("driver failure")
	wrapped := fmt.Errorf("store: %w", apperr.Internal(cause))

	require.True(t, apperr.IsAppError(wrapped))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.ErrorIs(t, ae, cause)

	// The client-safe message never exposes the cause.
	assert.Equal(t, "An unexpected error occurred", ae.Error())
}

/*
TestAppError_As_NonAppError confirms plain errors are not misclassified.
*/
func TestAppError_As_NonAppError(t *testing.T) {
	plain := errors.New("plain")
	assert.False(t, apperr.IsAppError(plain))
	assert.Nil(t, apperr.As(plain))
}
