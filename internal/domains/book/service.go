package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business operations for the Book domain.
type Service interface {
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
