package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the Author domain.
type Service interface {
	// Create validates and persists a new author.
	// Errors: validation errors from the request, ErrStore.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID returns the author or ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List returns all authors in insertion order.
	List(ctx context.Context) ([]Author, error)

	// Delete removes the author. Absent ids succeed as a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// Seed inserts the sample author set and returns how many rows
	// were created.
	Seed(ctx context.Context) (int, error)
}
