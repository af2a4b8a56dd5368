package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	HotelID       uint           `gorm:"index;not null" json:"hotelId"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Description   string         `json:"description"`
	Capacity      int            `json:"capacity"`
	PricePerNight float64        `gorm:"not null" json:"pricePerNight"`
	Images        pq.StringArray `gorm:"type:text[]" json:"images"`
	Amenities     pq.StringArray `gorm:"type:text[]" json:"amenities"`
	Hotel         *Hotel         `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}

func (r *Room) ValidatePrice() error {
	if r.PricePerNight <= 0 {
		return fmt.Errorf("invalid price: %.2f, must be positive", r.PricePerNight)
	}
	return nil
}
