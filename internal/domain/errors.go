package domain

import "errors"

// ErrNotFound is returned by repositories for targeted mutations whose row
// is absent; lookups return nil, nil instead.
var ErrNotFound = errors.New("record not found")
