package services

import (
	"context"
	"errors"
	"strings"

	"hotelbooking/constants"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/repository"
	"hotelbooking/services/logger"
)

type HotelCatalog interface {
	GetDetail(ctx context.Context, id uint, reviewLimit int) (*models.Hotel, []int, error)
	Search(ctx context.Context, text string, stars *int) ([]models.Hotel, error)
	Featured(ctx context.Context, limit int) ([]models.Hotel, error)
}

// HotelService serves the public catalogue. Featured hotels and hotel detail are cached.
type HotelService struct {
	hotels HotelCatalog
	cache  Cache
	logger logger.Logger
}

type HotelServiceOptions struct {
	Hotels HotelCatalog
	Cache  Cache
	Logger logger.Logger
}

func NewHotelService(opts HotelServiceOptions) *HotelService {
	return &HotelService{hotels: opts.Hotels, cache: opts.Cache, logger: opts.Logger}
}

// Search matches the city filter against city, country and name. Price bounds apply to the
// cheapest room of each hotel. The filters are remembered for the session.
func (s *HotelService) Search(ctx context.Context, sessionID string, filters dto.SearchFilters) ([]dto.HotelCard, error) {
	hotels, err := s.hotels.Search(ctx, strings.TrimSpace(filters.City), filters.Stars)
	if err != nil {
		return nil, apperrors.Upstream("could not search hotels", err)
	}

	cards := make([]dto.HotelCard, 0, len(hotels))
	for i := range hotels {
		card := toHotelCard(&hotels[i])
		if !InPriceRange(card.MinPrice, filters.MinPrice, filters.MaxPrice) {
			continue
		}
		cards = append(cards, card)
	}

	if err := SaveLastFilters(ctx, s.cache, sessionID, &filters); err != nil {
		s.logger.Error("save last filters", "session_id", sessionID, "error", err)
	}
	return cards, nil
}

func (s *HotelService) LastFilters(ctx context.Context, sessionID string) (*dto.SearchFilters, error) {
	filters, err := GetLastFilters(ctx, s.cache, sessionID)
	if err != nil {
		s.logger.Error("load last filters", "session_id", sessionID, "error", err)
		return nil, nil
	}
	return filters, nil
}

func (s *HotelService) ClearLastFilters(ctx context.Context, sessionID string) error {
	if err := ClearLastFilters(ctx, s.cache, sessionID); err != nil {
		return apperrors.Upstream("could not clear last filters", err)
	}
	return nil
}

func (s *HotelService) Featured(ctx context.Context) ([]dto.HotelCard, error) {
	var cards []dto.HotelCard
	if s.cache != nil {
		found, err := s.cache.Get(ctx, cacheKeyFeatured, &cards)
		if err != nil {
			s.logger.Error("read featured cache", "error", err)
		} else if found {
			return cards, nil
		}
	}

	hotels, err := s.hotels.Featured(ctx, constants.FeaturedHotelsLimit)
	if err != nil {
		return nil, apperrors.Upstream("could not load featured hotels", err)
	}
	cards = make([]dto.HotelCard, 0, len(hotels))
	for i := range hotels {
		cards = append(cards, toHotelCard(&hotels[i]))
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyFeatured, cards, hotelCacheTTL); err != nil {
			s.logger.Error("write featured cache", "error", err)
		}
	}
	return cards, nil
}

func (s *HotelService) Detail(ctx context.Context, id uint) (*dto.HotelDetail, error) {
	key := hotelDetailKey(id)
	if s.cache != nil {
		var cached dto.HotelDetail
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Error("read hotel cache", "hotel_id", id, "error", err)
		} else if found {
			return &cached, nil
		}
	}

	hotel, ratings, err := s.hotels.GetDetail(ctx, id, constants.HotelDetailReviews)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("hotel not found")
	}
	if err != nil {
		return nil, apperrors.Upstream("could not load hotel", err)
	}

	card := toHotelCard(hotel)
	card.ReviewCount = len(ratings)
	card.AverageRating = AverageRating(ratings)

	detail := &dto.HotelDetail{
		HotelCard: card,
		Latitude:  hotel.Latitude,
		Longitude: hotel.Longitude,
		Rooms:     make([]dto.RoomResponse, 0, len(hotel.Rooms)),
		Reviews:   make([]dto.ReviewResponse, 0, len(hotel.Reviews)),
	}
	for _, room := range hotel.Rooms {
		detail.Rooms = append(detail.Rooms, toRoomResponse(&room))
	}
	for _, review := range hotel.Reviews {
		rr := dto.ReviewResponse{
			ID:        review.ID,
			HotelID:   review.HotelID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		}
		if review.User != nil {
			rr.User = &dto.UserInfo{ID: review.User.ID, Name: review.User.Name, Image: review.User.Image}
		}
		detail.Reviews = append(detail.Reviews, rr)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, detail, hotelCacheTTL); err != nil {
			s.logger.Error("write hotel cache", "hotel_id", id, "error", err)
		}
	}
	return detail, nil
}

func toHotelCard(h *models.Hotel) dto.HotelCard {
	card := dto.HotelCard{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Address:     h.Address,
		City:        h.City,
		Country:     h.Country,
		Stars:       h.Stars,
		Images:      nonNil(h.Images),
		Amenities:   nonNil(h.Amenities),
		ReviewCount: len(h.Reviews),
		CreatedAt:   h.CreatedAt,
	}
	for i, room := range h.Rooms {
		if i == 0 || room.PricePerNight < card.MinPrice {
			card.MinPrice = room.PricePerNight
		}
	}
	ratings := make([]int, 0, len(h.Reviews))
	for _, r := range h.Reviews {
		ratings = append(ratings, r.Rating)
	}
	card.AverageRating = AverageRating(ratings)
	return card
}

func toRoomResponse(r *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:            r.ID,
		HotelID:       r.HotelID,
		Name:          r.Name,
		Type:          r.Type,
		Description:   r.Description,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		Images:        nonNil(r.Images),
		Amenities:     nonNil(r.Amenities),
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
