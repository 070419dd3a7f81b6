package domain

import "time"

type Listing struct {
	ID          string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string  `gorm:"size:120;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"size:32;index" json:"category"`
	DailyRate   float64 `gorm:"not null" json:"dailyRate"`
	Address     string  `gorm:"size:255" json:"address"`
	ImageURL    string  `gorm:"size:255" json:"imageUrl,omitempty"`
	IsAvailable bool    `gorm:"not null;default:true" json:"isAvailable"`

	OwnerID string `gorm:"type:varchar(36);index;not null" json:"ownerId"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	Bookings []Booking `gorm:"foreignKey:ListingID" json:"bookings,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Listing) TableName() string { return "listings" }
