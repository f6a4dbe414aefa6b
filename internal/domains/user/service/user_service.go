package service

import (
	"context"
	"strings"

	"bookstore-api/internal/domains/user"
)

type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newUser := &user.User{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(strings.ToLower(req.Email)),
	}

	return s.repo.Create(ctx, newUser)
}
