package dto

import "time"

// SearchFilters are the query parameters of a hotel search. Nil means "not given".
type SearchFilters struct {
	City     string   `json:"city,omitempty" form:"city"`
	Stars    *int     `json:"stars,omitempty" form:"stars"`
	MinPrice *float64 `json:"minPrice,omitempty" form:"minPrice"`
	MaxPrice *float64 `json:"maxPrice,omitempty" form:"maxPrice"`
	CheckIn  string   `json:"checkIn,omitempty" form:"checkIn"`
	CheckOut string   `json:"checkOut,omitempty" form:"checkOut"`
	Guests   *int     `json:"guests,omitempty" form:"guests"`
}

type HotelBrief struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Stars   int    `json:"stars,omitempty"`
}

type RoomBrief struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	PricePerNight float64 `json:"pricePerNight"`
}

// HotelCard is a hotel annotated for listings.
type HotelCard struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	Stars         int       `json:"stars"`
	Images        []string  `json:"images"`
	Amenities     []string  `json:"amenities"`
	MinPrice      float64   `json:"minPrice"`
	ReviewCount   int       `json:"reviewCount"`
	AverageRating float64   `json:"averageRating"`
	CreatedAt     time.Time `json:"createdAt"`
}

type RoomResponse struct {
	ID            uint     `json:"id"`
	HotelID       uint     `json:"hotelId"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"pricePerNight"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
}

type HotelDetail struct {
	HotelCard
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Rooms     []RoomResponse   `json:"rooms"`
	Reviews   []ReviewResponse `json:"reviews"`
}

type CreateRoomRequest struct {
	Name          string   `json:"name" validate:"required"`
	Type          string   `json:"type" validate:"required"`
	Description   string   `json:"description"`
	Capacity      int      `json:"capacity" validate:"gte=1"`
	PricePerNight float64  `json:"pricePerNight" validate:"gt=0"`
	Images        []string `json:"images" validate:"dive,url"`
	Amenities     []string `json:"amenities"`
}

type CreateHotelRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description"`
	Address     string              `json:"address"`
	City        string              `json:"city" validate:"required"`
	Country     string              `json:"country" validate:"required"`
	Stars       int                 `json:"stars" validate:"gte=1,lte=5"`
	Images      []string            `json:"images" validate:"dive,url"`
	Amenities   []string            `json:"amenities"`
	Latitude    float64             `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64             `json:"longitude" validate:"gte=-180,lte=180"`
	Rooms       []CreateRoomRequest `json:"rooms" validate:"dive"`
}
