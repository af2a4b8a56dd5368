package repository

import (
	"context"

	"hotelbooking/models"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func roomsByPrice(db *gorm.DB) *gorm.DB {
	return db.Order("price_per_night ASC")
}

// Create inserts the hotel together with any rooms set on it.
func (r *HotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &hotel, nil
}

// GetDetail loads rooms by ascending price and the latest reviews with their authors.
// Ratings of all reviews are returned separately so the average is not limited to the page.
func (r *HotelRepository) GetDetail(ctx context.Context, id uint, reviewLimit int) (*models.Hotel, []int, error) {
	var hotel models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Rooms", roomsByPrice).
		First(&hotel, id).Error
	if err != nil {
		return nil, nil, notFound(err)
	}

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("hotel_id = ?", id).
		Order("created_at DESC").
		Limit(reviewLimit).
		Find(&reviews).Error; err != nil {
		return nil, nil, err
	}
	hotel.Reviews = reviews

	var ratings []int
	if err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("hotel_id = ?", id).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, nil, err
	}
	return &hotel, ratings, nil
}

// searchFilter keeps the text match grouped so the stars condition applies to all of it.
func searchFilter(text string, stars *int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if text != "" {
			like := "%" + text + "%"
			db = db.Where("city LIKE ? OR country LIKE ? OR name LIKE ?", like, like, like)
		}
		if stars != nil {
			db = db.Where("stars = ?", *stars)
		}
		return db
	}
}

// Search matches text against city, country and name and stars exactly, newest first.
func (r *HotelRepository) Search(ctx context.Context, text string, stars *int) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Rooms", roomsByPrice).
		Preload("Reviews").
		Scopes(searchFilter(text, stars)).
		Order("created_at DESC").
		Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) Featured(ctx context.Context, limit int) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Rooms", roomsByPrice).
		Preload("Reviews").
		Order("stars DESC").
		Limit(limit).
		Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) Recent(ctx context.Context, limit int) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Rooms").
		Order("created_at DESC").
		Limit(limit).
		Find(&hotels).Error
	return hotels, err
}

// ListWithRelations is the admin listing with rooms, reviews and bookings attached.
func (r *HotelRepository) ListWithRelations(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Rooms").
		Preload("Reviews").
		Preload("Bookings").
		Order("created_at DESC").
		Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Hotel{}).Count(&n).Error
	return n, err
}
