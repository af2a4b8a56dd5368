package dto

import "time"

type ProfileResponse struct {
	User      UserInfo          `json:"user"`
	Role      string            `json:"role"`
	CreatedAt time.Time         `json:"createdAt"`
	Bookings  []BookingResponse `json:"bookings"`
	Reviews   []ReviewResponse  `json:"reviews"`
	Favorites []HotelBrief      `json:"favorites"`
}

type AdminStats struct {
	HotelsCount   int64        `json:"hotelsCount"`
	UsersCount    int64        `json:"usersCount"`
	BookingsCount int64        `json:"bookingsCount"`
	ReviewsCount  int64        `json:"reviewsCount"`
	RecentHotels  []AdminHotel `json:"recentHotels"`
}

type AdminHotel struct {
	HotelBrief
	Images        []string  `json:"images"`
	RoomsCount    int       `json:"roomsCount"`
	ReviewsCount  int       `json:"reviewsCount"`
	BookingsCount int       `json:"bookingsCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AdminUser struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	BookingsCount int       `json:"bookingsCount"`
	ReviewsCount  int       `json:"reviewsCount"`
	CreatedAt     time.Time `json:"createdAt"`
}
