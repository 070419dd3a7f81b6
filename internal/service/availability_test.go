package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubCounter struct {
	n   int64
	err error

	gotListing string
	gotExclude string
}

func (s *stubCounter) CountApprovedOverlap(ctx context.Context, listingID string, start, end time.Time, excludeID string) (int64, error) {
	s.gotListing = listingID
	s.gotExclude = excludeID
	return s.n, s.err
}

func TestAvailabilityChecker_HasConflict(t *testing.T) {
	s := &stubCounter{n: 2}
	c := NewAvailabilityChecker(s)

	conflict, err := c.HasConflict(context.Background(), "l1", day(10), day(15), "skip-me")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conflict {
		t.Error("expected conflict when the store reports overlapping rows")
	}
	if s.gotListing != "l1" || s.gotExclude != "skip-me" {
		t.Errorf("checker passed listing=%q exclude=%q", s.gotListing, s.gotExclude)
	}

	s.n = 0
	conflict, err = c.HasConflict(context.Background(), "l1", day(16), day(18), "")
	if err != nil || conflict {
		t.Errorf("expected no conflict, got conflict=%v err=%v", conflict, err)
	}
}

func TestAvailabilityChecker_StoreError(t *testing.T) {
	want := errors.New("connection reset")
	c := NewAvailabilityChecker(&stubCounter{err: want})

	_, err := c.HasConflict(context.Background(), "l1", day(10), day(15), "")
	if !errors.Is(err, want) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
