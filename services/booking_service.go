package services

import (
	"context"
	"errors"
	"time"

	"hotelbooking/builders"
	"hotelbooking/constants"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/metrics"
	"hotelbooking/models"
	"hotelbooking/policy"
	"hotelbooking/repository"
	"hotelbooking/services/logger"
	"hotelbooking/validator"
)

type RoomStore interface {
	GetByID(ctx context.Context, id uint) (*models.Room, error)
}

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	Cancel(ctx context.Context, id uint) (bool, error)
	HasOverlap(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error)
	CompleteFinished(ctx context.Context, now time.Time) (int64, error)
}

// PaymentService is a stub: every booking is reported as paid.
type PaymentService struct{}

func (PaymentService) Process(booking *models.Booking) string {
	return constants.PaymentStatusPaid
}

// BookingService orchestrates booking creation and cancellation.
type BookingService struct {
	rooms          RoomStore
	bookings       BookingStore
	payments       PaymentService
	events         BookingEvents
	logger         logger.Logger
	rejectOverlaps bool
	now            func() time.Time
}

type BookingServiceOptions struct {
	Rooms    RoomStore
	Bookings BookingStore
	Events   BookingEvents
	Logger   logger.Logger
	// RejectOverlaps turns on the overlapping-stay check. Off by default: the
	// site historically accepts double bookings.
	RejectOverlaps bool
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		rooms:          opts.Rooms,
		bookings:       opts.Bookings,
		events:         opts.Events,
		logger:         opts.Logger,
		rejectOverlaps: opts.RejectOverlaps,
		now:            time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, caller *policy.Caller, req dto.CreateBookingRequest) (*dto.BookingSummary, error) {
	if err := policy.RequireAuthenticated(caller).Err(); err != nil {
		return nil, err
	}

	checkIn, checkOut, err := validator.ValidateBookingInput(&req)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("room not found")
	}
	if err != nil {
		return nil, apperrors.Upstream("could not load room", err)
	}
	if room.HotelID != req.HotelID {
		return nil, apperrors.InvalidInput("room does not belong to this hotel")
	}

	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, apperrors.InvalidInput("check-out must be after check-in")
	}

	if s.rejectOverlaps {
		overlap, err := s.bookings.HasOverlap(ctx, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, apperrors.Upstream("could not check availability", err)
		}
		if overlap {
			return nil, apperrors.Conflict("room is already booked for these dates")
		}
	}

	booking := builders.NewBookingBuilder().
		WithUser(caller.UserID).
		WithRoom(room).
		WithStay(checkIn, checkOut, req.Guests).
		WithTotalPrice(TotalPrice(nights, room.PricePerNight)).
		Build()
	booking.Status = constants.BookingStatusConfirmed
	booking.PaymentStatus = s.payments.Process(booking)

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.Upstream("could not create booking", err)
	}
	metrics.BookingsCreated.Inc()
	s.logger.Info("booking created", "booking_id", booking.ID, "user_id", caller.UserID, "room_id", room.ID, "nights", nights)
	s.publish(ctx, dto.BookingEventConfirmed, booking)

	summary := &dto.BookingSummary{
		ID:         booking.ID,
		RoomName:   room.Name,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		Guests:     booking.Guests,
		Nights:     nights,
		TotalPrice: booking.TotalPrice,
	}
	if room.Hotel != nil {
		summary.HotelName = room.Hotel.Name
	}
	return summary, nil
}

// Cancel is allowed for the booking's owner while the booking is not terminal.
func (s *BookingService) Cancel(ctx context.Context, caller *policy.Caller, bookingID uint) error {
	if err := policy.RequireAuthenticated(caller).Err(); err != nil {
		return err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound("booking not found")
	}
	if err != nil {
		return apperrors.Upstream("could not load booking", err)
	}

	if err := policy.RequireOwner(caller, booking.UserID).Err(); err != nil {
		return err
	}

	probe := *booking
	if err := models.GetBookingState(booking.Status).Cancel(&probe); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidState, err.Error(), err)
	}

	// The update is conditional on the status, so a concurrent cancel lands here.
	ok, err := s.bookings.Cancel(ctx, booking.ID)
	if err != nil {
		return apperrors.Upstream("could not cancel booking", err)
	}
	if !ok {
		return apperrors.InvalidState(models.ErrBookingAlreadyCancelled.Error())
	}

	metrics.BookingsCancelled.Inc()
	s.logger.Info("booking cancelled", "booking_id", booking.ID, "user_id", caller.UserID)
	booking.Status = constants.BookingStatusCancelled
	s.publish(ctx, dto.BookingEventCancelled, booking)
	return nil
}

// CompleteFinished moves confirmed bookings past their check-out to COMPLETED.
func (s *BookingService) CompleteFinished(ctx context.Context) (int64, error) {
	n, err := s.bookings.CompleteFinished(ctx, s.now())
	if err != nil {
		return 0, apperrors.Upstream("could not complete bookings", err)
	}
	if n > 0 {
		metrics.BookingsCompleted.Add(float64(n))
		s.logger.Info("bookings completed", "count", n)
	}
	return n, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, b *models.Booking) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, dto.BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		UserID:     b.UserID,
		HotelID:    b.HotelID,
		RoomID:     b.RoomID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		TotalPrice: b.TotalPrice,
		OccurredAt: s.now(),
	})
}
