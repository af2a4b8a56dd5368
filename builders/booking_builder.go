package builders

import (
	"time"

	"hotelbooking/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithRoom sets the room and the hotel it belongs to.
func (b *BookingBuilder) WithRoom(room *models.Room) *BookingBuilder {
	b.booking.RoomID = room.ID
	b.booking.HotelID = room.HotelID
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time, guests int) *BookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	b.booking.Guests = guests
	return b
}

func (b *BookingBuilder) WithStatus(status, paymentStatus string) *BookingBuilder {
	b.booking.Status = status
	b.booking.PaymentStatus = paymentStatus
	return b
}

func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
