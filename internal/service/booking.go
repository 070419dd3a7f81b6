package service

import (
	"context"
	"time"

	"neighborlend/internal/domain"
	"neighborlend/pkg/apperror"
	"neighborlend/pkg/utils"
)

type CreateBookingInput struct {
	ListingID string
	StartDate time.Time
	EndDate   time.Time
}

type BookingService struct {
	bookings domain.BookingRepository
}

func NewBookingService(bookings domain.BookingRepository) *BookingService {
	return &BookingService{bookings: bookings}
}

// Create runs the booking intake workflow: identity, listing existence and
// availability flag, the self-booking rule, date validation, then the
// conflict check and the insert inside one transaction so a concurrent
// intake for the same listing cannot slip between check and write.
func (s *BookingService) Create(ctx context.Context, borrowerID string, in CreateBookingInput) (*domain.Booking, error) {
	if borrowerID == "" {
		return nil, ErrUnauthenticated
	}
	if in.ListingID == "" {
		return nil, apperror.BadRequest("missing listing id")
	}
	start := domain.Day(in.StartDate)
	end := domain.Day(in.EndDate)
	if in.StartDate.IsZero() || in.EndDate.IsZero() || start.After(end) {
		return nil, ErrInvalidDateRange
	}

	var id string
	err := s.bookings.InTx(ctx, func(tx domain.BookingRepository) error {
		listing, err := tx.FindListing(ctx, in.ListingID)
		if err != nil {
			return apperror.Internal("load listing failed", err)
		}
		if listing == nil {
			return ErrListingNotFound
		}
		if !listing.IsAvailable {
			return ErrListingUnavailable
		}
		if listing.OwnerID == borrowerID {
			return ErrSelfBooking
		}

		conflict, err := NewAvailabilityChecker(tx).HasConflict(ctx, listing.ID, start, end, "")
		if err != nil {
			return apperror.Internal("availability check failed", err)
		}
		if conflict {
			return ErrDateConflict
		}

		b := &domain.Booking{
			ID:         utils.NewID(),
			ListingID:  listing.ID,
			BorrowerID: borrowerID,
			StartDate:  start,
			EndDate:    end,
			TotalPrice: listing.DailyRate * float64(domain.InclusiveDays(start, end)),
			Status:     domain.BookingPending,
		}
		if err := tx.Create(ctx, b); err != nil {
			return apperror.Internal("create booking failed", err)
		}
		id = b.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

// Transition moves a booking through its lifecycle. Only the listing owner
// may call it. An APPROVED transition re-runs the availability check inside
// the same transaction as the update, so two overlapping PENDING requests
// cannot both end up APPROVED.
func (s *BookingService) Transition(ctx context.Context, callerID, bookingID string, target domain.BookingStatus) (*domain.Booking, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	if !target.Valid() || target == domain.BookingPending {
		return nil, apperror.BadRequest("invalid target status")
	}

	err := s.bookings.InTx(ctx, func(tx domain.BookingRepository) error {
		b, err := tx.FindByID(ctx, bookingID)
		if err != nil {
			return apperror.Internal("load booking failed", err)
		}
		if b == nil {
			return ErrBookingNotFound
		}
		if b.Listing == nil || b.Listing.OwnerID != callerID {
			return ErrNotListingOwner
		}
		if !b.Status.CanTransitionTo(target) {
			return ErrInvalidTransition
		}
		if target == domain.BookingApproved {
			conflict, err := NewAvailabilityChecker(tx).HasConflict(ctx, b.ListingID, b.StartDate, b.EndDate, b.ID)
			if err != nil {
				return apperror.Internal("availability check failed", err)
			}
			if conflict {
				return ErrDateConflict
			}
		}
		if err := tx.UpdateStatus(ctx, b.ID, target); err != nil {
			return apperror.Internal("update booking failed", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, bookingID)
}

// MyBookings lists the caller's bookings as borrower, newest first.
func (s *BookingService) MyBookings(ctx context.Context, borrowerID string) ([]domain.Booking, error) {
	if borrowerID == "" {
		return nil, ErrUnauthenticated
	}
	bs, err := s.bookings.ListByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, apperror.Internal("list bookings failed", err)
	}
	return bs, nil
}

// Requests lists booking requests against listings the caller owns.
func (s *BookingService) Requests(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	bs, err := s.bookings.ListForOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal("list requests failed", err)
	}
	return bs, nil
}

func (s *BookingService) reload(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal("load booking failed", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}
