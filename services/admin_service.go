package services

import (
	"context"
	"errors"
	"io"

	"hotelbooking/constants"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"
	"hotelbooking/policy"
	"hotelbooking/repository"
	"hotelbooking/services/logger"
	"hotelbooking/validator"
)

const (
	MaxUploadFiles = 10
	uploadFolder   = "hotels"
)

type AdminHotelStore interface {
	Create(ctx context.Context, hotel *models.Hotel) error
	GetByID(ctx context.Context, id uint) (*models.Hotel, error)
	Recent(ctx context.Context, limit int) ([]models.Hotel, error)
	ListWithRelations(ctx context.Context) ([]models.Hotel, error)
	Count(ctx context.Context) (int64, error)
}

type AdminRoomStore interface {
	Create(ctx context.Context, room *models.Room) error
}

type AdminBookingStore interface {
	ListWithRelations(ctx context.Context) ([]models.Booking, error)
	Count(ctx context.Context) (int64, error)
}

type AdminUserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
}

type ReviewCounter interface {
	Count(ctx context.Context) (int64, error)
}

// AdminService backs the back-office. Every method requires the ADMIN role.
type AdminService struct {
	hotels   AdminHotelStore
	rooms    AdminRoomStore
	bookings AdminBookingStore
	users    AdminUserStore
	reviews  ReviewCounter
	uploader ImageUploader
	cache    Cache
	logger   logger.Logger
}

type AdminServiceOptions struct {
	Hotels   AdminHotelStore
	Rooms    AdminRoomStore
	Bookings AdminBookingStore
	Users    AdminUserStore
	Reviews  ReviewCounter
	Uploader ImageUploader
	Cache    Cache
	Logger   logger.Logger
}

func NewAdminService(opts AdminServiceOptions) *AdminService {
	return &AdminService{
		hotels:   opts.Hotels,
		rooms:    opts.Rooms,
		bookings: opts.Bookings,
		users:    opts.Users,
		reviews:  opts.Reviews,
		uploader: opts.Uploader,
		cache:    opts.Cache,
		logger:   opts.Logger,
	}
}

func (s *AdminService) Stats(ctx context.Context, caller *policy.Caller) (*dto.AdminStats, error) {
	if err := policy.RequireAdmin(caller).Err(); err != nil {
		return nil, err
	}

	var stats dto.AdminStats
	counts := []struct {
		count func(context.Context) (int64, error)
		dst   *int64
	}{
		{s.hotels.Count, &stats.HotelsCount},
		{s.users.Count, &stats.UsersCount},
		{s.bookings.Count, &stats.BookingsCount},
		{s.reviews.Count, &stats.ReviewsCount},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return nil, apperrors.Upstream("could not load statistics", err)
		}
		*c.dst = n
	}

	recent, err := s.hotels.Recent(ctx, constants.RecentHotelsLimit)
	if err != nil {
		return nil, apperrors.Upstream("could not load recent hotels", err)
	}
	stats.RecentHotels = make([]dto.AdminHotel, 0, len(recent))
	for i := range recent {
		stats.RecentHotels = append(stats.RecentHotels, toAdminHotel(&recent[i]))
	}
	return &stats, nil
}

func (s *AdminService) ListHotels(ctx context.Context, caller *policy.Caller) ([]dto.AdminHotel, error) {
	if err := policy.RequireAdmin(caller).Err(); err != nil {
		return nil, err
	}
	hotels, err := s.hotels.ListWithRelations(ctx)
	if err != nil {
		return nil, apperrors.Upstream("could not load hotels", err)
	}
	out := make([]dto.AdminHotel, 0, len(hotels))
	for i := range hotels {
		out = append(out, toAdminHotel(&hotels[i]))
	}
	return out, nil
}

func (s *AdminService) ListBookings(ctx context.Context, caller *policy.Caller) ([]dto.BookingResponse, error) {
	if err := policy.RequireAdmin(caller).Err(); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListWithRelations(ctx)
	if err != nil {
		return nil, apperrors.Upstream("could not load bookings", err)
	}
	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i], true))
	}
	return out, nil
}

func (s *AdminService) ListUsers(ctx context.Context, caller *policy.Caller) ([]dto.AdminUser, error) {
	if err := policy.RequireAdmin(caller).Err(); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.Upstream("could not load users", err)
	}
	out := make([]dto.AdminUser, 0, len(users))
	for _, u := range users {
		out = append(out, dto.AdminUser{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			Role:          u.Role,
			BookingsCount: len(u.Bookings),
			ReviewsCount:  len(u.Reviews),
			CreatedAt:     u.CreatedAt,
		})
	}
	return out, nil
}

// CreateHotel inserts the hotel and its optional rooms in one write.
func (s *AdminService) CreateHotel(ctx context.Context, caller *policy.Caller, req dto.CreateHotelRequest) (*dto.HotelCard, error) {
	if err := policy.RequireAdmin(caller).Err(); err != nil {
		return nil, err
	}
	if err := validator.ValidateHotel(&req); err != nil {
		return nil, err
	}

	hotel := &models.Hotel{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Stars:       req.Stars,
		Images:      req.Images,
		Amenities:   req.Amenities,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	for i := range req.Rooms {
		if err := validator.ValidateRoom(&req.Rooms[i]); err != nil {
			return nil, err
		}
		hotel.Rooms = append(hotel.Rooms, newRoom(0, &req.Rooms[i]))
	}

	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, apperrors.Upstream("could not create hotel", err)
	}
	s.logger.Info("hotel created", "hotel_id", hotel.ID, "rooms", len(hotel.Rooms))
	s.invalidate(ctx, cacheKeyFeatured)

	card := toHotelCard(hotel)
	return &card, nil
}

func (s *AdminService) AddRoom(ctx context.Context, caller *policy.Caller, hotelID uint, req dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if err := policy.RequireAdmin(caller).Err(); err != nil {
		return nil, err
	}
	if err := validator.ValidateRoom(&req); err != nil {
		return nil, err
	}

	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("hotel not found")
	}
	if err != nil {
		return nil, apperrors.Upstream("could not load hotel", err)
	}

	room := newRoom(hotel.ID, &req)
	if err := s.rooms.Create(ctx, &room); err != nil {
		return nil, apperrors.Upstream("could not create room", err)
	}
	s.logger.Info("room created", "room_id", room.ID, "hotel_id", hotel.ID)
	s.invalidate(ctx, cacheKeyFeatured, hotelDetailKey(hotel.ID))

	resp := toRoomResponse(&room)
	return &resp, nil
}

// UploadImages returns the URLs in the order the files were given.
func (s *AdminService) UploadImages(ctx context.Context, caller *policy.Caller, files []io.Reader) ([]string, error) {
	if err := policy.RequireAdmin(caller).Err(); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, apperrors.InvalidInput("no files uploaded")
	}
	if len(files) > MaxUploadFiles {
		return nil, apperrors.InvalidInput("too many files")
	}
	if s.uploader == nil {
		return nil, apperrors.Upstream("image storage is not configured", nil)
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.uploader.Upload(ctx, f, uploadFolder)
		if err != nil {
			s.logger.Error("upload image", "error", err)
			return nil, apperrors.Upstream("upload failed", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *AdminService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Error("invalidate hotel cache", "keys", keys, "error", err)
	}
}

func newRoom(hotelID uint, req *dto.CreateRoomRequest) models.Room {
	return models.Room{
		HotelID:       hotelID,
		Name:          req.Name,
		Type:          req.Type,
		Description:   req.Description,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Images:        req.Images,
		Amenities:     req.Amenities,
	}
}

func toAdminHotel(h *models.Hotel) dto.AdminHotel {
	return dto.AdminHotel{
		HotelBrief:    toHotelBrief(h),
		Images:        nonNil(h.Images),
		RoomsCount:    len(h.Rooms),
		ReviewsCount:  len(h.Reviews),
		BookingsCount: len(h.Bookings),
		CreatedAt:     h.CreatedAt,
	}
}
