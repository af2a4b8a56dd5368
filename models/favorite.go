package models

import "time"

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UserID    uint      `gorm:"uniqueIndex:idx_favorite_user_hotel;not null" json:"userId"`
	HotelID   uint      `gorm:"uniqueIndex:idx_favorite_user_hotel;not null" json:"hotelId"`
	Hotel     *Hotel    `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}
