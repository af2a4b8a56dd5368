package models

import (
	"time"
)

// Booking keeps a redundant HotelID so listings do not need to join through rooms.
// TotalPrice is fixed at booking time and never recalculated.
type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	UserID        uint      `gorm:"index;not null" json:"userId"`
	HotelID       uint      `gorm:"index;not null" json:"hotelId"`
	RoomID        uint      `gorm:"index;not null" json:"roomId"`
	CheckIn       time.Time `gorm:"not null" json:"checkIn"`
	CheckOut      time.Time `gorm:"not null" json:"checkOut"`
	Guests        int       `json:"guests"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `gorm:"type:varchar(16);index;default:PENDING" json:"status"`
	PaymentStatus string    `gorm:"type:varchar(16);default:PENDING" json:"paymentStatus"`
	User          *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hotel         *Hotel    `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Room          *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
