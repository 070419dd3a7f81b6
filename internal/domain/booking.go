package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingApproved  BookingStatus = "APPROVED"
	BookingRejected  BookingStatus = "REJECTED"
	BookingCompleted BookingStatus = "COMPLETED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingCompleted:
		return true
	}
	return false
}

// CanTransitionTo encodes the booking lifecycle: PENDING may become
// APPROVED or REJECTED, APPROVED may become COMPLETED. REJECTED and
// COMPLETED are terminal.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingPending:
		return target == BookingApproved || target == BookingRejected
	case BookingApproved:
		return target == BookingCompleted
	}
	return false
}

type Booking struct {
	ID string `gorm:"primaryKey;type:varchar(36)" json:"id"`

	ListingID string   `gorm:"type:varchar(36);index;not null" json:"listingId"`
	Listing   *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`

	BorrowerID string `gorm:"type:varchar(36);index;not null" json:"borrowerId"`
	Borrower   *User  `gorm:"foreignKey:BorrowerID" json:"borrower,omitempty"`

	StartDate  time.Time     `gorm:"not null;index" json:"startDate"`
	EndDate    time.Time     `gorm:"not null" json:"endDate"`
	TotalPrice float64       `gorm:"not null" json:"totalPrice"`
	Status     BookingStatus `gorm:"size:16;not null;default:PENDING;index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Booking) TableName() string { return "bookings" }

// Overlaps reports whether two inclusive date ranges share at least one
// calendar day: aStart <= bEnd AND bStart <= aEnd. This single symmetric
// test covers every overlap shape, including one range fully containing
// the other.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// InclusiveDays counts calendar days in [start, end], both ends included.
// Inputs must already be day-normalized.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Day truncates t to midnight UTC. Bookings are day-granular; all range
// math runs on normalized values.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts a plain date or an RFC3339 timestamp and normalizes
// to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}
