package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Author is the persisted entity. The id is assigned once at creation
// and never changes.
type Author struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Nationality string    `json:"nationality" db:"nationality"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CreateAuthorRequest - POST /authors/create
type CreateAuthorRequest struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Nationality,
			validation.Required.Error("nationality is required"),
			validation.Length(1, 255),
		),
	)
}

// DeleteAuthorRequest - POST /authors/delete
// The id arrives as a string and must parse as a UUID; a malformed id is
// rejected rather than falling back to the zero UUID.
type DeleteAuthorRequest struct {
	ID string `json:"id"`
}

// AuthorResponse carries the full entity, returned by show and create.
type AuthorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Nationality string    `json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthorListItem is the list view. The index endpoint omits id and
// timestamp.
type AuthorListItem struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Nationality: a.Nationality,
		CreatedAt:   a.CreatedAt,
	}
}

func (a *Author) ToListItem() AuthorListItem {
	return AuthorListItem{
		Name:        a.Name,
		Nationality: a.Nationality,
	}
}
