package services

import (
	"context"
	"errors"
	"fmt"

	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/metrics"
	"hotelbooking/models"
	"hotelbooking/policy"
	"hotelbooking/repository"
	"hotelbooking/services/logger"
	"hotelbooking/validator"
)

type ReviewStore interface {
	Exists(ctx context.Context, userID, hotelID uint) (bool, error)
	Create(ctx context.Context, review *models.Review) error
}

type HotelLookup interface {
	GetByID(ctx context.Context, id uint) (*models.Hotel, error)
}

type ReviewService struct {
	reviews ReviewStore
	hotels  HotelLookup
	cache   Cache
	logger  logger.Logger
}

type ReviewServiceOptions struct {
	Reviews ReviewStore
	Hotels  HotelLookup
	Cache   Cache
	Logger  logger.Logger
}

func NewReviewService(opts ReviewServiceOptions) *ReviewService {
	return &ReviewService{reviews: opts.Reviews, hotels: opts.Hotels, cache: opts.Cache, logger: opts.Logger}
}

// Submit stores the caller's only review of a hotel.
func (s *ReviewService) Submit(ctx context.Context, caller *policy.Caller, hotelID uint, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if err := policy.RequireAuthenticated(caller).Err(); err != nil {
		return nil, err
	}

	rating, err := validator.ValidateRating(req.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := validator.NormalizeComment(req.Comment)
	if err != nil {
		return nil, err
	}

	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("hotel not found")
	}
	if err != nil {
		return nil, apperrors.Upstream("could not load hotel", err)
	}

	exists, err := s.reviews.Exists(ctx, caller.UserID, hotel.ID)
	if err != nil {
		return nil, apperrors.Upstream("could not check reviews", err)
	}
	if exists {
		return nil, apperrors.Conflict("you have already reviewed this hotel")
	}

	review := &models.Review{
		UserID:  caller.UserID,
		HotelID: hotel.ID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, apperrors.Upstream("could not save review", err)
	}
	metrics.ReviewsCreated.Inc()
	s.logger.Info("review created", "review_id", review.ID, "hotel_id", hotel.ID, "user_id", caller.UserID)

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cacheKeyFeatured, hotelDetailKey(hotel.ID)); err != nil {
			s.logger.Error("invalidate hotel cache", "hotel_id", hotel.ID, "error", err)
		}
	}

	return &dto.ReviewResponse{
		ID:        review.ID,
		HotelID:   review.HotelID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		Hotel:     &dto.HotelBrief{ID: hotel.ID, Name: hotel.Name, City: hotel.City, Country: hotel.Country},
	}, nil
}

func hotelDetailKey(id uint) string {
	return fmt.Sprintf("%s%d", cacheKeyHotelDetail, id)
}
