package book

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateBookRequestValidate(t *testing.T) {
	authorID := uuid.NewString()

	tests := []struct {
		name    string
		req     CreateBookRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: CreateBookRequest{
				Title:    "The Hobbit",
				Genre:    "fantasy",
				AuthorID: authorID,
				Price:    decimal.NewFromFloat(25.5),
			},
		},
		{
			name: "genre is optional",
			req: CreateBookRequest{
				Title:    "The Hobbit",
				AuthorID: authorID,
			},
		},
		{
			name: "missing title",
			req: CreateBookRequest{
				AuthorID: authorID,
			},
			wantErr: true,
		},
		{
			name: "missing author id",
			req: CreateBookRequest{
				Title: "The Hobbit",
			},
			wantErr: true,
		},
		{
			name: "author id is not a uuid",
			req: CreateBookRequest{
				Title:    "The Hobbit",
				AuthorID: "not-a-uuid",
			},
			wantErr: true,
		},
		{
			name: "negative price",
			req: CreateBookRequest{
				Title:    "The Hobbit",
				AuthorID: authorID,
				Price:    decimal.NewFromFloat(-1),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookConversions(t *testing.T) {
	b := Book{
		ID:        uuid.New(),
		Title:     "Moby Dick",
		Genre:     "novel",
		AuthorID:  uuid.New(),
		Price:     decimal.NewFromFloat(19.99),
		CreatedAt: time.Now().UTC(),
	}

	resp := b.ToResponse()
	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, b.Title, resp.Title)
	assert.Equal(t, b.AuthorID, resp.AuthorID)
	assert.True(t, b.Price.Equal(resp.Price))

	item := b.ToListItem()
	assert.Equal(t, b.Title, item.Title)
	assert.Equal(t, b.Genre, item.Genre)
	assert.Equal(t, b.AuthorID, item.AuthorID)
}

func TestToEntityParsesAuthorID(t *testing.T) {
	authorID := uuid.New()
	req := CreateBookRequest{
		Title:    "The Hobbit",
		AuthorID: authorID.String(),
		Price:    decimal.NewFromInt(30),
	}

	entity := req.ToEntity()
	assert.Equal(t, authorID, entity.AuthorID)
	assert.Equal(t, uuid.Nil, entity.ID, "the id is assigned by the store")
}
