package service

import (
	"context"
	"errors"
	"time"

	"neighborlend/internal/domain"
)

var errDuplicateEmail = errors.New("duplicate key value violates unique constraint")

// fakeBookingStore is an in-memory domain.BookingRepository. InTx runs the
// callback directly against the same store; these tests exercise the
// workflow decisions, not transaction isolation.
type fakeBookingStore struct {
	listings map[string]*domain.Listing
	bookings map[string]*domain.Booking
	created  []string
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{
		listings: map[string]*domain.Listing{},
		bookings: map[string]*domain.Booking{},
	}
}

func (f *fakeBookingStore) addListing(l domain.Listing) { f.listings[l.ID] = &l }

func (f *fakeBookingStore) addBooking(b domain.Booking) { f.bookings[b.ID] = &b }

func (f *fakeBookingStore) InTx(ctx context.Context, fn func(domain.BookingRepository) error) error {
	return fn(f)
}

func (f *fakeBookingStore) Create(ctx context.Context, b *domain.Booking) error {
	cp := *b
	f.bookings[b.ID] = &cp
	f.created = append(f.created, b.ID)
	return nil
}

func (f *fakeBookingStore) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	if l, ok := f.listings[b.ListingID]; ok {
		lcp := *l
		cp.Listing = &lcp
	}
	return &cp, nil
}

func (f *fakeBookingStore) FindListing(ctx context.Context, id string) (*domain.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeBookingStore) UpdateStatus(ctx context.Context, id string, st domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = st
	return nil
}

func (f *fakeBookingStore) CountApprovedOverlap(ctx context.Context, listingID string, start, end time.Time, excludeID string) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.ListingID != listingID || b.Status != domain.BookingApproved || b.ID == excludeID {
			continue
		}
		if domain.Overlaps(b.StartDate, b.EndDate, start, end) {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingStore) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.BorrowerID == borrowerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) ListForOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if l, ok := f.listings[b.ListingID]; ok && l.OwnerID == ownerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

// fakeListingStore is an in-memory domain.ListingRepository.
type fakeListingStore struct {
	listings map[string]*domain.Listing
	deleted  []string
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{listings: map[string]*domain.Listing{}}
}

func (f *fakeListingStore) add(l domain.Listing) { f.listings[l.ID] = &l }

func (f *fakeListingStore) InTx(ctx context.Context, fn func(domain.ListingRepository) error) error {
	return fn(f)
}

func (f *fakeListingStore) Create(ctx context.Context, l *domain.Listing) error {
	cp := *l
	f.listings[l.ID] = &cp
	return nil
}

func (f *fakeListingStore) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	return f.FindBare(ctx, id)
}

func (f *fakeListingStore) FindBare(ctx context.Context, id string) (*domain.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (f *fakeListingStore) ListAvailable(ctx context.Context) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, l := range f.listings {
		if l.IsAvailable {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeListingStore) ListAll(ctx context.Context, q string, offset, limit int) ([]domain.Listing, int64, error) {
	var out []domain.Listing
	for _, l := range f.listings {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (f *fakeListingStore) Save(ctx context.Context, l *domain.Listing) error {
	cp := *l
	f.listings[l.ID] = &cp
	return nil
}

func (f *fakeListingStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.listings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.listings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeUserStore is an in-memory domain.UserRepository.
type fakeUserStore struct {
	users map[string]*domain.User // keyed by id
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*domain.User{}}
}

func (f *fakeUserStore) add(u domain.User) { f.users[u.ID] = &u }

func (f *fakeUserStore) Create(ctx context.Context, u *domain.User) error {
	for _, e := range f.users {
		if e.Email == u.Email {
			return errDuplicateEmail
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) List(ctx context.Context, q string, offset, limit int, withDeleted bool) ([]domain.User, int64, error) {
	var out []domain.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserStore) SoftDelete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	return nil
}
