package models

import "time"

// Review is unique per (UserID, HotelID). The rule is checked before insert, there is no unique index.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	HotelID   uint      `gorm:"index;not null" json:"hotelId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hotel     *Hotel    `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
}
