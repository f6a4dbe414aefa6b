package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the Author domain. The interface
// keeps handlers and services testable without a database.
type Repository interface {
	// Create inserts a new author and returns it with the generated
	// id and creation timestamp.
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll returns every author in insertion order.
	GetAll(ctx context.Context) ([]Author, error)

	// Delete removes at most one row. Deleting an id that does not
	// exist is a successful no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
