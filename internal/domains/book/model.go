package book

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is the persisted entity. It mirrors the Author lifecycle:
// created once with a server-generated id, read by id or listed in
// insertion order, deleted by id.
type Book struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Title     string          `json:"title" db:"title"`
	Genre     string          `json:"genre" db:"genre"`
	AuthorID  uuid.UUID       `json:"author_id" db:"author_id"`
	Price     decimal.Decimal `json:"price" db:"price"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// CreateBookRequest - POST /books/create
// The author reference arrives as a string and is validated as a UUID
// before the store is touched.
type CreateBookRequest struct {
	Title    string          `json:"title"`
	Genre    string          `json:"genre"`
	AuthorID string          `json:"author_id"`
	Price    decimal.Decimal `json:"price"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Genre,
			validation.Length(0, 255),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
			is.UUID.Error("author_id must be a valid UUID"),
		),
		validation.Field(&r.Price,
			validation.By(priceNotNegative),
		),
	)
}

func priceNotNegative(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("price must be a decimal number")
	}
	if price.IsNegative() {
		return errors.New("price must not be negative")
	}
	return nil
}

// DeleteBookRequest - POST /books/delete
type DeleteBookRequest struct {
	ID string `json:"id"`
}

// BookResponse carries the full entity, returned by show and create.
type BookResponse struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Genre     string          `json:"genre"`
	AuthorID  uuid.UUID       `json:"author_id"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// BookListItem is the list view; like authors, the index omits id and
// timestamp.
type BookListItem struct {
	Title    string          `json:"title"`
	Genre    string          `json:"genre"`
	AuthorID uuid.UUID       `json:"author_id"`
	Price    decimal.Decimal `json:"price"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Genre:     b.Genre,
		AuthorID:  b.AuthorID,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
	}
}

func (b *Book) ToListItem() BookListItem {
	return BookListItem{
		Title:    b.Title,
		Genre:    b.Genre,
		AuthorID: b.AuthorID,
		Price:    b.Price,
	}
}

// ToEntity converts the request after validation. The id must already
// be a valid UUID string at this point.
func (r *CreateBookRequest) ToEntity() *Book {
	return &Book{
		Title:    r.Title,
		Genre:    r.Genre,
		AuthorID: uuid.MustParse(r.AuthorID),
		Price:    r.Price,
	}
}
