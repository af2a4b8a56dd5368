package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"

	"hotelbooking/constants"
)

type Hotel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Address     string         `json:"address"`
	City        string         `gorm:"index" json:"city"`
	Country     string         `json:"country"`
	Stars       int            `gorm:"not null" json:"stars"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Amenities   pq.StringArray `gorm:"type:text[]" json:"amenities"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Rooms       []Room         `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	Reviews     []Review       `gorm:"foreignKey:HotelID" json:"reviews,omitempty"`
	Bookings    []Booking      `gorm:"foreignKey:HotelID" json:"bookings,omitempty"`
	Favorites   []Favorite     `gorm:"foreignKey:HotelID" json:"-"`
}

func (h *Hotel) ValidateStars() error {
	if h.Stars < constants.MinStars || h.Stars > constants.MaxStars {
		return fmt.Errorf("invalid stars: %d, must be between %d and %d", h.Stars, constants.MinStars, constants.MaxStars)
	}
	return nil
}
