package dto

import "time"

type CreateBookingRequest struct {
	RoomID   uint   `json:"roomId"`
	HotelID  uint   `json:"hotelId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

// BookingSummary is returned after a booking is created.
type BookingSummary struct {
	ID         uint      `json:"id"`
	HotelName  string    `json:"hotelName"`
	RoomName   string    `json:"roomName"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Guests     int       `json:"guests"`
	Nights     int       `json:"nights"`
	TotalPrice float64   `json:"totalPrice"`
}

type BookingResponse struct {
	ID            uint       `json:"id"`
	User          *UserInfo  `json:"user,omitempty"`
	Hotel         HotelBrief `json:"hotel"`
	Room          RoomBrief  `json:"room"`
	CheckIn       time.Time  `json:"checkIn"`
	CheckOut      time.Time  `json:"checkOut"`
	Guests        int        `json:"guests"`
	TotalPrice    float64    `json:"totalPrice"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// BookingEvent is broadcast and published when a booking changes.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  uint      `json:"bookingId"`
	UserID     uint      `json:"userId"`
	HotelID    uint      `json:"hotelId"`
	RoomID     uint      `json:"roomId"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	TotalPrice float64   `json:"totalPrice"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	BookingEventConfirmed = "booking.confirmed"
	BookingEventCancelled = "booking.cancelled"
)
