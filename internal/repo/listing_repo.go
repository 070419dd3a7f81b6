package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"neighborlend/internal/domain"
)

type ListingRepo struct{ db *gorm.DB }

func NewListingRepo(db *gorm.DB) *ListingRepo { return &ListingRepo{db: db} }

func (r *ListingRepo) InTx(ctx context.Context, fn func(domain.ListingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ListingRepo{db: tx})
	})
}

func (r *ListingRepo) Create(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ListingRepo) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Bookings", func(q *gorm.DB) *gorm.DB { return q.Order("bookings.start_date") }).
		Preload("Bookings.Borrower").
		First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &l, err
}

func (r *ListingRepo) FindBare(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &l, err
}

func (r *ListingRepo) ListAvailable(ctx context.Context) ([]domain.Listing, error) {
	var ls []domain.Listing
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("is_available = ?", true).
		Order("created_at DESC").
		Find(&ls).Error
	return ls, err
}

func (r *ListingRepo) ListAll(ctx context.Context, q string, offset, limit int) ([]domain.Listing, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Listing{})
	if s := strings.TrimSpace(q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("title LIKE ? OR category LIKE ?", like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var ls []domain.Listing
	if err := tx.Preload("Owner").Order("created_at DESC").Offset(offset).Limit(limit).Find(&ls).Error; err != nil {
		return nil, 0, err
	}
	return ls, total, nil
}

func (r *ListingRepo) Save(ctx context.Context, l *domain.Listing) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// Delete cascades to dependent bookings; callers wrap it in InTx.
func (r *ListingRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("listing_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Listing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
