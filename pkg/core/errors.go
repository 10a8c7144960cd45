package core

import "errors"

// Common errors.
var (
	ErrReadOnly      = errors.New("repository is in read-only mode")
	ErrNotFound      = errors.New("not found")
	ErrEmptyTitle    = errors.New("note title cannot be empty")
	ErrEmptyText     = errors.New("note text cannot be empty")
	ErrEmptyLabel    = errors.New("tag label cannot be empty")
	ErrEmptyID       = errors.New("id cannot be empty")
	ErrDuplicateTag  = errors.New("tag id already registered")
	ErrInvalidOption = errors.New("option has no value")
	ErrInvalidColor  = errors.New("unknown background color")
)
