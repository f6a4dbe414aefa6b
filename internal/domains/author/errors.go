package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrInvalidID      = errors.New("invalid author id")

	// ErrStore covers any failure originating in the data store. The
	// cause is logged internally; callers surface a generic message.
	ErrStore = errors.New("author store failure")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrInvalidID):
		return "INVALID_ID"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrInvalidID):
		return 400
	default:
		return 500
	}
}
