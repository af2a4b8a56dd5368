package services

import (
	"context"
	"errors"

	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/policy"
	"hotelbooking/repository"
)

type ProfileStore interface {
	GetProfile(ctx context.Context, id uint) (*models.User, error)
}

type ProfileService struct {
	users ProfileStore
}

func NewProfileService(users ProfileStore) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) Profile(ctx context.Context, caller *policy.Caller) (*dto.ProfileResponse, error) {
	if err := policy.RequireAuthenticated(caller).Err(); err != nil {
		return nil, err
	}

	user, err := s.users.GetProfile(ctx, caller.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, apperrors.Upstream("could not load profile", err)
	}

	resp := &dto.ProfileResponse{
		User:      dto.UserInfo{ID: user.ID, Name: user.Name, Email: user.Email, Image: user.Image},
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		Bookings:  make([]dto.BookingResponse, 0, len(user.Bookings)),
		Reviews:   make([]dto.ReviewResponse, 0, len(user.Reviews)),
		Favorites: make([]dto.HotelBrief, 0, len(user.Favorites)),
	}
	for i := range user.Bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(&user.Bookings[i], false))
	}
	for _, r := range user.Reviews {
		rr := dto.ReviewResponse{ID: r.ID, HotelID: r.HotelID, Rating: r.Rating, Comment: r.Comment, CreatedAt: r.CreatedAt}
		if r.Hotel != nil {
			brief := toHotelBrief(r.Hotel)
			rr.Hotel = &brief
		}
		resp.Reviews = append(resp.Reviews, rr)
	}
	for _, f := range user.Favorites {
		if f.Hotel != nil {
			resp.Favorites = append(resp.Favorites, toHotelBrief(f.Hotel))
		}
	}
	return resp, nil
}

func toHotelBrief(h *models.Hotel) dto.HotelBrief {
	return dto.HotelBrief{ID: h.ID, Name: h.Name, City: h.City, Country: h.Country, Stars: h.Stars}
}

// toBookingResponse uses whichever relations were preloaded.
func toBookingResponse(b *models.Booking, withUser bool) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:            b.ID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
	resp.Hotel.ID = b.HotelID
	if b.Hotel != nil {
		resp.Hotel = toHotelBrief(b.Hotel)
	}
	resp.Room.ID = b.RoomID
	if b.Room != nil {
		resp.Room = dto.RoomBrief{ID: b.Room.ID, Name: b.Room.Name, PricePerNight: b.Room.PricePerNight}
	}
	if withUser && b.User != nil {
		resp.User = &dto.UserInfo{ID: b.User.ID, Name: b.User.Name, Email: b.User.Email}
	}
	return resp
}
