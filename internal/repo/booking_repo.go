package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"neighborlend/internal/domain"
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo { return &BookingRepo{db: db} }

func (r *BookingRepo) InTx(ctx context.Context, fn func(domain.BookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingRepo{db: tx})
	})
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepo) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Listing.Owner").
		Preload("Borrower").
		First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BookingRepo) FindListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &l, err
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id string, st domain.BookingStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("id = ?", id).Update("status", st)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountApprovedOverlap implements the interval-intersection test as one
// filter: an APPROVED booking conflicts with [start, end] iff
// start_date <= end AND end_date >= start.
func (r *BookingRepo) CountApprovedOverlap(ctx context.Context, listingID string, start, end time.Time, excludeID string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("listing_id = ? AND status = ?", listingID, domain.BookingApproved).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *BookingRepo) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.Booking, error) {
	var bs []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Listing.Owner").
		Where("borrower_id = ?", borrowerID).
		Order("created_at DESC").
		Find(&bs).Error
	return bs, err
}

// ListForOwner returns booking requests against listings the user owns.
func (r *BookingRepo) ListForOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	var bs []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Borrower").
		Joins("JOIN listings ON listings.id = bookings.listing_id").
		Where("listings.owner_id = ?", ownerID).
		Order("bookings.created_at DESC").
		Find(&bs).Error
	return bs, err
}
