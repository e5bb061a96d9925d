package repository

import "errors"

// ErrNotFound is returned when a queried row does not exist. The service
// layer translates it into the application-level sentinel.
var ErrNotFound = errors.New("record not found")
