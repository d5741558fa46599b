package domain

import "errors"

// ErrNotFound indicates a record absent from a store or provider.
var ErrNotFound = errors.New("domain: not found")
