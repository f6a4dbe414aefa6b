package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"bookstore-api/internal/domains/author"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	// Validation has to happen before any store interaction so a bad
	// request never creates a row.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newAuthor := &author.Author{
		Name:        strings.TrimSpace(req.Name),
		Nationality: strings.TrimSpace(req.Nationality),
	}

	return s.repo.Create(ctx, newAuthor)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// seedAuthors is the fixed sample set behind GET /seed_authors.
var seedAuthors = []author.CreateAuthorRequest{
	{Name: "JRR Tolkien", Nationality: "British"},
	{Name: "Herman Melville", Nationality: "American"},
	{Name: "Virginia Woolf", Nationality: "British"},
	{Name: "Jorge Luis Borges", Nationality: "Argentine"},
	{Name: "Chinua Achebe", Nationality: "Nigerian"},
}

func (s *authorService) Seed(ctx context.Context) (int, error) {
	created := 0
	for i := range seedAuthors {
		if _, err := s.Create(ctx, &seedAuthors[i]); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
