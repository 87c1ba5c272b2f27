package store

import "errors"

// ErrNotFound is returned when a looked-up user or exercise does not exist.
var ErrNotFound = errors.New("not found")
