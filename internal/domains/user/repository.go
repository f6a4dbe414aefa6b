package user

import "context"

// Repository defines data access for the User domain.
type Repository interface {
	// Create inserts a new user and returns it with the generated id
	// and creation timestamp.
	Create(ctx context.Context, user *User) (*User, error)
}
