package builders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelbooking/constants"
	"hotelbooking/models"
)

func TestBookingBuilder(t *testing.T) {
	in := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := in.AddDate(0, 0, 2)

	b := NewBookingBuilder().
		WithUser(3).
		WithRoom(&models.Room{ID: 9, HotelID: 4}).
		WithStay(in, out, 2).
		WithStatus(constants.BookingStatusConfirmed, constants.PaymentStatusPaid).
		WithTotalPrice(300).
		Build()

	assert.Equal(t, uint(3), b.UserID)
	assert.Equal(t, uint(9), b.RoomID)
	assert.Equal(t, uint(4), b.HotelID)
	assert.Equal(t, 2, b.Guests)
	assert.Equal(t, constants.BookingStatusConfirmed, b.Status)
	assert.Equal(t, constants.PaymentStatusPaid, b.PaymentStatus)
	assert.Equal(t, 300.0, b.TotalPrice)
}
