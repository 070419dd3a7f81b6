package service

import (
	"context"
	"strings"
	"time"

	"neighborlend/internal/core/cache"
	"neighborlend/internal/domain"
	"neighborlend/pkg/apperror"
	"neighborlend/pkg/utils"
)

const (
	cacheKeyCatalog = "listings:catalog"
	catalogTTL      = 30 * time.Second
)

func cacheKeyListing(id string) string { return "listings:detail:" + id }

type CreateListingInput struct {
	Title       string
	Description string
	Category    string
	DailyRate   float64
	Address     string
	ImageURL    string
}

// UpdateListingInput uses pointers so absent fields stay untouched.
type UpdateListingInput struct {
	Title       *string
	Description *string
	Category    *string
	DailyRate   *float64
	Address     *string
	ImageURL    *string
	IsAvailable *bool
}

type ListingService struct {
	listings domain.ListingRepository
	cch      *cache.Cache // nil disables caching
}

func NewListingService(listings domain.ListingRepository, cch *cache.Cache) *ListingService {
	return &ListingService{listings: listings, cch: cch}
}

// Catalog returns the public feed of available listings, newest first.
func (s *ListingService) Catalog(ctx context.Context) ([]domain.Listing, error) {
	load := func(ctx context.Context) (*[]domain.Listing, error) {
		ls, err := s.listings.ListAvailable(ctx)
		if err != nil {
			return nil, apperror.Internal("list listings failed", err)
		}
		return &ls, nil
	}
	if s.cch == nil {
		ls, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return *ls, nil
	}
	ls, err := cache.GetOrLoadJSON(s.cch, ctx, cacheKeyCatalog, catalogTTL, load)
	if err != nil {
		return nil, err
	}
	if ls == nil {
		return []domain.Listing{}, nil
	}
	return *ls, nil
}

// Get returns one listing with owner and booking details (the booked ranges
// feed the borrower's date picker).
func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	load := func(ctx context.Context) (*domain.Listing, error) {
		l, err := s.listings.FindByID(ctx, id)
		if err != nil {
			return nil, apperror.Internal("load listing failed", err)
		}
		if l == nil {
			return nil, ErrListingNotFound
		}
		return l, nil
	}
	if s.cch == nil {
		return load(ctx)
	}
	return cache.GetOrLoadJSON(s.cch, ctx, cacheKeyListing(id), catalogTTL, load)
}

func (s *ListingService) Create(ctx context.Context, ownerID string, in CreateListingInput) (*domain.Listing, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperror.BadRequest("title is required")
	}
	if in.DailyRate < 0 {
		return nil, ErrInvalidRate
	}
	l := &domain.Listing{
		ID:          utils.NewID(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Category:    in.Category,
		DailyRate:   in.DailyRate,
		Address:     in.Address,
		ImageURL:    in.ImageURL,
		IsAvailable: true,
		OwnerID:     ownerID,
	}
	if err := s.listings.Create(ctx, l); err != nil {
		return nil, apperror.Internal("create listing failed", err)
	}
	s.invalidate(ctx, l.ID)
	return s.listings.FindByID(ctx, l.ID)
}

// Update mutates owner-editable fields, including the availability toggle.
func (s *ListingService) Update(ctx context.Context, callerID, id string, in UpdateListingInput) (*domain.Listing, error) {
	if callerID == "" {
		return nil, ErrUnauthenticated
	}
	l, err := s.listings.FindBare(ctx, id)
	if err != nil {
		return nil, apperror.Internal("load listing failed", err)
	}
	if l == nil {
		return nil, ErrListingNotFound
	}
	if l.OwnerID != callerID {
		return nil, ErrNotListingOwner
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, apperror.BadRequest("title is required")
		}
		l.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.Category != nil {
		l.Category = *in.Category
	}
	if in.DailyRate != nil {
		if *in.DailyRate < 0 {
			return nil, ErrInvalidRate
		}
		l.DailyRate = *in.DailyRate
	}
	if in.Address != nil {
		l.Address = *in.Address
	}
	if in.ImageURL != nil {
		l.ImageURL = *in.ImageURL
	}
	if in.IsAvailable != nil {
		l.IsAvailable = *in.IsAvailable
	}
	if err := s.listings.Save(ctx, l); err != nil {
		return nil, apperror.Internal("update listing failed", err)
	}
	s.invalidate(ctx, id)
	return s.listings.FindByID(ctx, id)
}

// Delete removes the listing and its bookings in one transaction.
func (s *ListingService) Delete(ctx context.Context, callerID, id string) error {
	if callerID == "" {
		return ErrUnauthenticated
	}
	err := s.listings.InTx(ctx, func(tx domain.ListingRepository) error {
		l, err := tx.FindBare(ctx, id)
		if err != nil {
			return apperror.Internal("load listing failed", err)
		}
		if l == nil {
			return ErrListingNotFound
		}
		if l.OwnerID != callerID {
			return ErrNotListingOwner
		}
		if err := tx.Delete(ctx, id); err != nil {
			return apperror.Internal("delete listing failed", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// ListAll is the admin view: every listing, available or not, with search.
func (s *ListingService) ListAll(ctx context.Context, q string, offset, limit int) ([]domain.Listing, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.listings.ListAll(ctx, q, offset, limit)
}

// Delist force-hides a listing from the catalog (admin moderation).
func (s *ListingService) Delist(ctx context.Context, id string) error {
	l, err := s.listings.FindBare(ctx, id)
	if err != nil {
		return apperror.Internal("load listing failed", err)
	}
	if l == nil {
		return ErrListingNotFound
	}
	l.IsAvailable = false
	if err := s.listings.Save(ctx, l); err != nil {
		return apperror.Internal("delist listing failed", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ListingService) invalidate(ctx context.Context, id string) {
	if s.cch != nil {
		s.cch.Del(ctx, cacheKeyCatalog, cacheKeyListing(id))
	}
}
