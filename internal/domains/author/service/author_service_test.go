package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domains/author"
)

// memoryRepo is an in-memory author.Repository preserving insertion
// order, so service behavior can be tested without a database.
type memoryRepo struct {
	authors []author.Author
	failErr error
}

func (m *memoryRepo) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	created := author.Author{
		ID:          uuid.New(),
		Name:        a.Name,
		Nationality: a.Nationality,
		CreatedAt:   time.Now().UTC(),
	}
	m.authors = append(m.authors, created)
	return &created, nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	for i := range m.authors {
		if m.authors[i].ID == id {
			return &m.authors[i], nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (m *memoryRepo) GetAll(ctx context.Context) ([]author.Author, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	return append([]author.Author(nil), m.authors...), nil
}

func (m *memoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.failErr != nil {
		return m.failErr
	}
	for i := range m.authors {
		if m.authors[i].ID == id {
			m.authors = append(m.authors[:i], m.authors[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestCreateTrimsFields(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		Name:        "  JRR Tolkien  ",
		Nationality: " British ",
	})
	require.NoError(t, err)

	assert.Equal(t, "JRR Tolkien", created.Name)
	assert.Equal(t, "British", created.Nationality)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateValidationGate(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		Name: "JRR Tolkien",
	})
	require.Error(t, err)

	// The store must stay untouched when validation fails.
	assert.Empty(t, repo.authors)
}

func TestGetByIDNilUUID(t *testing.T) {
	svc := NewAuthorService(&memoryRepo{})

	_, err := svc.GetByID(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestListInsertionOrder(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: "JRR Tolkien", Nationality: "British"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &author.CreateAuthorRequest{Name: "Herman Melville", Nationality: "American"})
	require.NoError(t, err)

	authors, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "JRR Tolkien", authors[0].Name)
	assert.Equal(t, "Herman Melville", authors[1].Name)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: "JRR Tolkien", Nationality: "British"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	// Second delete of the same id is a successful no-op.
	require.NoError(t, svc.Delete(context.Background(), created.ID))

	authors, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, authors)
}

func TestSeedInsertsSampleSet(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewAuthorService(repo)

	count, err := svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(seedAuthors), count)
	assert.Len(t, repo.authors, len(seedAuthors))
	assert.Equal(t, "JRR Tolkien", repo.authors[0].Name)
}

func TestStoreFailurePropagates(t *testing.T) {
	repo := &memoryRepo{failErr: author.ErrStore}
	svc := NewAuthorService(repo)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, author.ErrStore)

	_, err = svc.Create(context.Background(), &author.CreateAuthorRequest{Name: "A", Nationality: "B"})
	assert.ErrorIs(t, err, author.ErrStore)
}
