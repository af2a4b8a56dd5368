package controllers

import (
	"context"
	"io"
	"mime/multipart"

	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/middleware"
	"hotelbooking/policy"
	"hotelbooking/response"

	"github.com/gin-gonic/gin"
)

type BackOffice interface {
	Stats(ctx context.Context, caller *policy.Caller) (*dto.AdminStats, error)
	ListHotels(ctx context.Context, caller *policy.Caller) ([]dto.AdminHotel, error)
	ListBookings(ctx context.Context, caller *policy.Caller) ([]dto.BookingResponse, error)
	ListUsers(ctx context.Context, caller *policy.Caller) ([]dto.AdminUser, error)
	CreateHotel(ctx context.Context, caller *policy.Caller, req dto.CreateHotelRequest) (*dto.HotelCard, error)
	AddRoom(ctx context.Context, caller *policy.Caller, hotelID uint, req dto.CreateRoomRequest) (*dto.RoomResponse, error)
	UploadImages(ctx context.Context, caller *policy.Caller, files []io.Reader) ([]string, error)
}

type AdminController struct {
	admin BackOffice
}

func NewAdminController(admin BackOffice) *AdminController {
	return &AdminController{admin: admin}
}

func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.admin.Stats(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, stats)
}

func (ac *AdminController) ListHotels(c *gin.Context) {
	hotels, err := ac.admin.ListHotels(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, hotels, len(hotels))
}

func (ac *AdminController) ListBookings(c *gin.Context) {
	bookings, err := ac.admin.ListBookings(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, bookings, len(bookings))
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.admin.ListUsers(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, users, len(users))
}

func (ac *AdminController) CreateHotel(c *gin.Context) {
	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, invalidBody(err))
		return
	}

	hotel, err := ac.admin.CreateHotel(c.Request.Context(), middleware.CallerFromContext(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, hotel)
}

func (ac *AdminController) AddRoom(c *gin.Context) {
	hotelID, err := parseID(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, invalidBody(err))
		return
	}

	room, err := ac.admin.AddRoom(c.Request.Context(), middleware.CallerFromContext(c), hotelID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, room)
}

// UploadImages accepts multipart files under "files".
func (ac *AdminController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeInvalidInput, "no files uploaded", err))
		return
	}

	headers := form.File["files"]
	files := make([]io.Reader, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, h := range headers {
		src, err := h.Open()
		if err != nil {
			response.FromError(c, apperrors.NewAppError(apperrors.ErrCodeInvalidInput, "could not read file", err))
			return
		}
		opened = append(opened, src)
		files = append(files, src)
	}

	urls, err := ac.admin.UploadImages(c.Request.Context(), middleware.CallerFromContext(c), files)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"urls": urls})
}
