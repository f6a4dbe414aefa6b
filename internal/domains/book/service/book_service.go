package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"bookstore-api/internal/domains/book"
)

type bookService struct {
	repo book.Repository
}

func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	// Validate before touching the store; a rejected request must not
	// create a row.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newBook := req.ToEntity()
	newBook.Title = strings.TrimSpace(newBook.Title)
	newBook.Genre = strings.TrimSpace(newBook.Genre)

	return s.repo.Create(ctx, newBook)
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	if id == uuid.Nil {
		return nil, book.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context) ([]book.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
