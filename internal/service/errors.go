package service

import "neighborlend/pkg/apperror"

var (
	ErrUnauthenticated    = apperror.Unauthorized("authentication required")
	ErrInvalidCredentials = apperror.Unauthorized("invalid credentials")
	ErrUserNotFound       = apperror.NotFound("user not found")
	ErrListingNotFound    = apperror.NotFound("listing not found")
	ErrBookingNotFound    = apperror.NotFound("booking not found")
	ErrNotListingOwner    = apperror.Forbidden("you do not own this listing")
	ErrSelfBooking        = apperror.BadRequest("self-booking forbidden")
	ErrInvalidDateRange   = apperror.BadRequest("start date must not be after end date")
	ErrInvalidRate        = apperror.BadRequest("daily rate must not be negative")
	ErrInvalidTransition  = apperror.BadRequest("invalid status transition")
	ErrListingUnavailable = apperror.Conflict("listing unavailable")
	ErrDateConflict       = apperror.Conflict("date range unavailable")
)
