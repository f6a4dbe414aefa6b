package user

import "context"

// Service defines business operations for the User domain.
type Service interface {
	// Create validates and persists a new user. The email must be
	// syntactically valid; a rejected request never reaches the store.
	Create(ctx context.Context, req *CreateUserRequest) (*User, error)
}
