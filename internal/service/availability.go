package service

import (
	"context"
	"time"
)

// ConflictCounter is the slice of the booking store the checker reads.
type ConflictCounter interface {
	CountApprovedOverlap(ctx context.Context, listingID string, start, end time.Time, excludeID string) (int64, error)
}

// AvailabilityChecker decides whether a candidate inclusive date range
// collides with an APPROVED booking on a listing. Read-only.
type AvailabilityChecker struct {
	store ConflictCounter
}

func NewAvailabilityChecker(store ConflictCounter) *AvailabilityChecker {
	return &AvailabilityChecker{store: store}
}

// HasConflict reports whether at least one APPROVED booking on the listing
// overlaps [start, end]. excludeID skips the booking being re-validated at
// approval time; pass "" otherwise. Callers must have validated
// start <= end.
func (c *AvailabilityChecker) HasConflict(ctx context.Context, listingID string, start, end time.Time, excludeID string) (bool, error) {
	n, err := c.store.CountApprovedOverlap(ctx, listingID, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
