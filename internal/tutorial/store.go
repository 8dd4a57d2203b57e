// Copyright (c) 2026 Vocably. All rights reserved.

package tutorial

import "context"

// Store defines the data access contract for the tutorials collection.
type Store interface {
	// List returns every tutorial sorted by title ascending.
	List(ctx context.Context) ([]Tutorial, error)
}
