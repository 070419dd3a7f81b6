package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, q string, offset, limit int, withDeleted bool) ([]User, int64, error)
	SoftDelete(ctx context.Context, id string) error
}

type ListingRepository interface {
	// InTx runs fn against a transaction-bound repository; a non-nil error
	// rolls everything back.
	InTx(ctx context.Context, fn func(ListingRepository) error) error
	Create(ctx context.Context, l *Listing) error
	// FindByID loads the listing with its owner and bookings (borrower
	// summaries included). Returns nil, nil when absent.
	FindByID(ctx context.Context, id string) (*Listing, error)
	// FindBare loads the listing row only, for ownership checks.
	FindBare(ctx context.Context, id string) (*Listing, error)
	ListAvailable(ctx context.Context) ([]Listing, error)
	ListAll(ctx context.Context, q string, offset, limit int) ([]Listing, int64, error)
	Save(ctx context.Context, l *Listing) error
	// Delete removes the listing and its dependent bookings.
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	InTx(ctx context.Context, fn func(BookingRepository) error) error
	Create(ctx context.Context, b *Booking) error
	FindByID(ctx context.Context, id string) (*Booking, error)
	FindListing(ctx context.Context, id string) (*Listing, error)
	UpdateStatus(ctx context.Context, id string, st BookingStatus) error
	// CountApprovedOverlap counts APPROVED bookings on the listing whose
	// inclusive range intersects [start, end]. excludeID filters out the
	// booking being re-checked at approval time ("" to keep all).
	CountApprovedOverlap(ctx context.Context, listingID string, start, end time.Time, excludeID string) (int64, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]Booking, error)
	ListForOwner(ctx context.Context, ownerID string) ([]Booking, error)
}
