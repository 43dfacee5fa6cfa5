package database

import "errors"

// ErrNotFound is returned when no todo row matches the requested ID
var ErrNotFound = errors.New("record not found")
