package repository

import (
	"context"
	"time"

	"hotelbooking/constants"
	"hotelbooking/models"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &booking, nil
}

// Cancel flips a non-terminal booking to CANCELLED in one statement.
// It returns false when the booking was no longer cancellable.
func (r *BookingRepository) Cancel(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status IN ?", id, models.CancellableStatuses()).
		Update("status", constants.BookingStatusCancelled)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// HasOverlap reports whether a live booking of the room intersects [checkIn, checkOut).
func (r *BookingRepository) HasOverlap(ctx context.Context, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("room_id = ? AND status <> ? AND check_in < ? AND check_out > ?",
			roomID, constants.BookingStatusCancelled, checkOut, checkIn).
		Count(&n).Error
	return n > 0, err
}

// CompleteFinished marks confirmed bookings whose check-out has passed as completed.
func (r *BookingRepository) CompleteFinished(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("status = ? AND check_out <= ?", constants.BookingStatusConfirmed, now).
		Update("status", constants.BookingStatusCompleted)
	return res.RowsAffected, res.Error
}

func (r *BookingRepository) ListWithRelations(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Hotel").
		Preload("Room").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Count(&n).Error
	return n, err
}
