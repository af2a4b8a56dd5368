package models

import (
	"errors"

	"hotelbooking/constants"
)

var (
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")
	ErrBookingAlreadyCompleted = errors.New("booking already completed")
	ErrBookingAlreadyConfirmed = errors.New("booking already confirmed")
	ErrBookingNotConfirmed     = errors.New("booking not confirmed")
)

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Complete(booking *Booking) error
}

// PendingState is defined for completeness; no handler creates PENDING bookings.
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(booking *Booking) error {
	return ErrBookingNotConfirmed
}

type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return ErrBookingAlreadyConfirmed
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.Status = constants.BookingStatusCompleted
	return nil
}

type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return ErrBookingAlreadyCompleted
}

func (s *CompletedState) Cancel(booking *Booking) error {
	return ErrBookingAlreadyCompleted
}

func (s *CompletedState) Complete(booking *Booking) error {
	return ErrBookingAlreadyCompleted
}

type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return ErrBookingAlreadyCancelled
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return ErrBookingAlreadyCancelled
}

func (s *CancelledState) Complete(booking *Booking) error {
	return ErrBookingAlreadyCancelled
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCompleted:
		return &CompletedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}

// CancellableStatuses are the statuses a cancel may start from.
func CancellableStatuses() []string {
	return []string{constants.BookingStatusPending, constants.BookingStatusConfirmed}
}
