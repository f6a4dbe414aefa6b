package book

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrInvalidID    = errors.New("invalid book id")

	// ErrStore covers any failure originating in the data store.
	ErrStore = errors.New("book store failure")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrInvalidID):
		return "INVALID_ID"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrInvalidID):
		return 400
	default:
		return 500
	}
}
