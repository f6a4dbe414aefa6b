package user

import "errors"

var (
	// ErrStore covers any failure originating in the data store.
	ErrStore = errors.New("user store failure")
)
