package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a uniqueness invariant would be violated
// (duplicate username, email, or ISBN).
var ErrConflict = errors.New("already exists")
