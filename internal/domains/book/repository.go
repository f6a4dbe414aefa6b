package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the Book domain.
type Repository interface {
	// Create inserts a new book and returns it with the generated id
	// and creation timestamp.
	Create(ctx context.Context, book *Book) (*Book, error)

	// GetByID returns ErrBookNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetAll returns every book in insertion order.
	GetAll(ctx context.Context) ([]Book, error)

	// Delete removes at most one row; absent ids succeed as a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
