package utils

import "github.com/google/uuid"

// NewID generates entity identifiers. Kept behind a function so the ID
// scheme can change without touching call sites.
func NewID() string { return uuid.NewString() }
