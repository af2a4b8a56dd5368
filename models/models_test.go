package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelbooking/constants"
)

func TestBookingStateTransitions(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusConfirmed}

	assert.NoError(t, GetBookingState(b.Status).Cancel(b))
	assert.Equal(t, constants.BookingStatusCancelled, b.Status)

	assert.ErrorIs(t, GetBookingState(b.Status).Cancel(b), ErrBookingAlreadyCancelled)
	assert.ErrorIs(t, GetBookingState(b.Status).Complete(b), ErrBookingAlreadyCancelled)
	assert.Equal(t, constants.BookingStatusCancelled, b.Status)
}

func TestConfirmedBookingCompletes(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusConfirmed}

	assert.NoError(t, GetBookingState(b.Status).Complete(b))
	assert.Equal(t, constants.BookingStatusCompleted, b.Status)
	assert.ErrorIs(t, GetBookingState(b.Status).Cancel(b), ErrBookingAlreadyCompleted)
}

func TestPendingBookingCannotComplete(t *testing.T) {
	b := &Booking{Status: constants.BookingStatusPending}

	assert.ErrorIs(t, GetBookingState(b.Status).Complete(b), ErrBookingNotConfirmed)
	assert.NoError(t, GetBookingState(b.Status).Confirm(b))
	assert.Equal(t, constants.BookingStatusConfirmed, b.Status)
}

func TestHotelValidateStars(t *testing.T) {
	for _, stars := range []int{1, 3, 5} {
		h := Hotel{Stars: stars}
		assert.NoError(t, h.ValidateStars(), "stars=%d", stars)
	}
	for _, stars := range []int{0, 6, -1} {
		h := Hotel{Stars: stars}
		assert.Error(t, h.ValidateStars(), "stars=%d", stars)
	}
}

func TestRoomValidatePrice(t *testing.T) {
	assert.NoError(t, (&Room{PricePerNight: 120}).ValidatePrice())
	assert.Error(t, (&Room{PricePerNight: 0}).ValidatePrice())
	assert.Error(t, (&Room{PricePerNight: -5}).ValidatePrice())
}
