// Copyright (c) 2026 Vocably. All rights reserved.

package tutorial

import (
	"context"
	"log/slog"
)

// Service implements tutorial operations on top of the [Store].
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a Service with its store dependency.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// List returns the catalogue sorted by title.
func (service *Service) List(ctx context.Context) ([]Tutorial, error) {
	return service.store.List(ctx)
}
