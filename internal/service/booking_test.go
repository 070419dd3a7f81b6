package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"neighborlend/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
}

const (
	ownerID    = "owner-1"
	borrowerID = "borrower-1"
	listingID  = "listing-1"
)

func storeWithListing(rate float64) *fakeBookingStore {
	f := newFakeBookingStore()
	f.addListing(domain.Listing{
		ID:          listingID,
		Title:       "pressure washer",
		DailyRate:   rate,
		IsAvailable: true,
		OwnerID:     ownerID,
	})
	return f
}

func TestCreateBooking_Succeeds(t *testing.T) {
	f := storeWithListing(20)
	f.addBooking(domain.Booking{
		ID: "approved-1", ListingID: listingID, BorrowerID: "someone-else",
		StartDate: day(10), EndDate: day(15), Status: domain.BookingApproved,
	})
	svc := NewBookingService(f)

	b, err := svc.Create(context.Background(), borrowerID, CreateBookingInput{
		ListingID: listingID, StartDate: day(16), EndDate: day(18),
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if b.Status != domain.BookingPending {
		t.Errorf("status = %s, want PENDING", b.Status)
	}
	if b.TotalPrice != 60 {
		t.Errorf("totalPrice = %v, want 60 (20 x 3 inclusive days)", b.TotalPrice)
	}
	if b.Listing == nil || b.Listing.OwnerID != ownerID {
		t.Errorf("expected denormalized listing on the created booking")
	}
}

func TestCreateBooking_ConflictGeometries(t *testing.T) {
	// Approved booking occupies [10, 15]; every overlap shape must be caught.
	cases := []struct {
		name       string
		start, end int
	}{
		{"fully inside", 12, 13},
		{"fully containing", 8, 20},
		{"partial left", 8, 10},
		{"partial right", 15, 18},
		{"exact match", 10, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := storeWithListing(20)
			f.addBooking(domain.Booking{
				ID: "approved-1", ListingID: listingID, BorrowerID: "someone-else",
				StartDate: day(10), EndDate: day(15), Status: domain.BookingApproved,
			})
			svc := NewBookingService(f)

			_, err := svc.Create(context.Background(), borrowerID, CreateBookingInput{
				ListingID: listingID, StartDate: day(tc.start), EndDate: day(tc.end),
			})
			if !errors.Is(err, ErrDateConflict) {
				t.Fatalf("expected ErrDateConflict, got %v", err)
			}
			if len(f.created) != 0 {
				t.Errorf("conflicting request must not create a record")
			}
		})
	}
}

func TestCreateBooking_PendingOverlapDoesNotBlock(t *testing.T) {
	f := storeWithListing(20)
	f.addBooking(domain.Booking{
		ID: "pending-1", ListingID: listingID, BorrowerID: "someone-else",
		StartDate: day(10), EndDate: day(15), Status: domain.BookingPending,
	})
	svc := NewBookingService(f)

	if _, err := svc.Create(context.Background(), borrowerID, CreateBookingInput{
		ListingID: listingID, StartDate: day(12), EndDate: day(13),
	}); err != nil {
		t.Fatalf("only APPROVED bookings block intake, got %v", err)
	}
}

func TestCreateBooking_InvalidRange(t *testing.T) {
	f := storeWithListing(20)
	svc := NewBookingService(f)

	_, err := svc.Create(context.Background(), borrowerID, CreateBookingInput{
		ListingID: listingID, StartDate: day(18), EndDate: day(16),
	})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if len(f.created) != 0 {
		t.Errorf("invalid request must not create a record")
	}
}

func TestCreateBooking_SelfBooking(t *testing.T) {
	f := storeWithListing(20)
	svc := NewBookingService(f)

	_, err := svc.Create(context.Background(), ownerID, CreateBookingInput{
		ListingID: listingID, StartDate: day(16), EndDate: day(18),
	})
	if !errors.Is(err, ErrSelfBooking) {
		t.Fatalf("expected ErrSelfBooking, got %v", err)
	}
	if len(f.created) != 0 {
		t.Errorf("self-booking must not create a record")
	}
}

func TestCreateBooking_ListingMissing(t *testing.T) {
	f := newFakeBookingStore()
	svc := NewBookingService(f)

	_, err := svc.Create(context.Background(), borrowerID, CreateBookingInput{
		ListingID: "nope", StartDate: day(16), EndDate: day(18),
	})
	if !errors.Is(err, ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestCreateBooking_ListingUnavailable(t *testing.T) {
	f := newFakeBookingStore()
	f.addListing(domain.Listing{ID: listingID, DailyRate: 20, IsAvailable: false, OwnerID: ownerID})
	svc := NewBookingService(f)

	_, err := svc.Create(context.Background(), borrowerID, CreateBookingInput{
		ListingID: listingID, StartDate: day(16), EndDate: day(18),
	})
	if !errors.Is(err, ErrListingUnavailable) {
		t.Fatalf("expected ErrListingUnavailable, got %v", err)
	}
}

func TestCreateBooking_Unauthenticated(t *testing.T) {
	svc := NewBookingService(storeWithListing(20))

	_, err := svc.Create(context.Background(), "", CreateBookingInput{
		ListingID: listingID, StartDate: day(16), EndDate: day(18),
	})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestCreateBooking_NonOverlappingSequence(t *testing.T) {
	f := storeWithListing(10)
	svc := NewBookingService(f)

	first, err := svc.Create(context.Background(), borrowerID, CreateBookingInput{
		ListingID: listingID, StartDate: day(1), EndDate: day(5),
	})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.Transition(context.Background(), ownerID, first.ID, domain.BookingApproved); err != nil {
		t.Fatalf("approve first: %v", err)
	}

	if _, err := svc.Create(context.Background(), "borrower-2", CreateBookingInput{
		ListingID: listingID, StartDate: day(6), EndDate: day(9),
	}); err != nil {
		t.Fatalf("non-overlapping second booking should succeed, got %v", err)
	}
}

func TestTransition_OwnerApproves(t *testing.T) {
	f := storeWithListing(20)
	f.addBooking(domain.Booking{
		ID: "b1", ListingID: listingID, BorrowerID: borrowerID,
		StartDate: day(10), EndDate: day(12), Status: domain.BookingPending,
	})
	svc := NewBookingService(f)

	b, err := svc.Transition(context.Background(), ownerID, "b1", domain.BookingApproved)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if b.Status != domain.BookingApproved {
		t.Errorf("status = %s, want APPROVED", b.Status)
	}
}

func TestTransition_NonOwnerForbidden(t *testing.T) {
	f := storeWithListing(20)
	f.addBooking(domain.Booking{
		ID: "b1", ListingID: listingID, BorrowerID: borrowerID,
		StartDate: day(10), EndDate: day(12), Status: domain.BookingPending,
	})
	svc := NewBookingService(f)

	_, err := svc.Transition(context.Background(), "intruder", "b1", domain.BookingApproved)
	if !errors.Is(err, ErrNotListingOwner) {
		t.Fatalf("expected ErrNotListingOwner, got %v", err)
	}
	if f.bookings["b1"].Status != domain.BookingPending {
		t.Errorf("status must stay PENDING after forbidden attempt")
	}
}

func TestTransition_ApproveRechecksAvailability(t *testing.T) {
	// Two overlapping PENDING requests: approving the second must fail once
	// the first is APPROVED.
	f := storeWithListing(20)
	f.addBooking(domain.Booking{
		ID: "b1", ListingID: listingID, BorrowerID: "borrower-1",
		StartDate: day(10), EndDate: day(15), Status: domain.BookingPending,
	})
	f.addBooking(domain.Booking{
		ID: "b2", ListingID: listingID, BorrowerID: "borrower-2",
		StartDate: day(12), EndDate: day(13), Status: domain.BookingPending,
	})
	svc := NewBookingService(f)

	if _, err := svc.Transition(context.Background(), ownerID, "b1", domain.BookingApproved); err != nil {
		t.Fatalf("approve b1: %v", err)
	}
	_, err := svc.Transition(context.Background(), ownerID, "b2", domain.BookingApproved)
	if !errors.Is(err, ErrDateConflict) {
		t.Fatalf("expected ErrDateConflict approving overlapping request, got %v", err)
	}
	if f.bookings["b2"].Status != domain.BookingPending {
		t.Errorf("b2 must stay PENDING after rejected approval")
	}
}

func TestTransition_RejectSkipsAvailability(t *testing.T) {
	f := storeWithListing(20)
	f.addBooking(domain.Booking{
		ID: "approved", ListingID: listingID, BorrowerID: "borrower-1",
		StartDate: day(10), EndDate: day(15), Status: domain.BookingApproved,
	})
	f.addBooking(domain.Booking{
		ID: "b2", ListingID: listingID, BorrowerID: "borrower-2",
		StartDate: day(12), EndDate: day(13), Status: domain.BookingPending,
	})
	svc := NewBookingService(f)

	b, err := svc.Transition(context.Background(), ownerID, "b2", domain.BookingRejected)
	if err != nil {
		t.Fatalf("rejecting an overlapping request must work, got %v", err)
	}
	if b.Status != domain.BookingRejected {
		t.Errorf("status = %s, want REJECTED", b.Status)
	}
}

func TestTransition_IllegalMoves(t *testing.T) {
	cases := []struct {
		name   string
		from   domain.BookingStatus
		target domain.BookingStatus
	}{
		{"rejected is terminal", domain.BookingRejected, domain.BookingApproved},
		{"completed is terminal", domain.BookingCompleted, domain.BookingApproved},
		{"pending cannot complete", domain.BookingPending, domain.BookingCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := storeWithListing(20)
			f.addBooking(domain.Booking{
				ID: "b1", ListingID: listingID, BorrowerID: borrowerID,
				StartDate: day(10), EndDate: day(12), Status: tc.from,
			})
			svc := NewBookingService(f)

			_, err := svc.Transition(context.Background(), ownerID, "b1", tc.target)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestTransition_ApprovedCompletes(t *testing.T) {
	f := storeWithListing(20)
	f.addBooking(domain.Booking{
		ID: "b1", ListingID: listingID, BorrowerID: borrowerID,
		StartDate: day(10), EndDate: day(12), Status: domain.BookingApproved,
	})
	svc := NewBookingService(f)

	b, err := svc.Transition(context.Background(), ownerID, "b1", domain.BookingCompleted)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if b.Status != domain.BookingCompleted {
		t.Errorf("status = %s, want COMPLETED", b.Status)
	}
}

func TestTransition_BookingMissing(t *testing.T) {
	svc := NewBookingService(newFakeBookingStore())

	_, err := svc.Transition(context.Background(), ownerID, "nope", domain.BookingApproved)
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
