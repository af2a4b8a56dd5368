package controllers

import (
	"context"

	"hotelbooking/dto"
	"hotelbooking/middleware"
	"hotelbooking/policy"
	"hotelbooking/response"

	"github.com/gin-gonic/gin"
)

type Bookings interface {
	Create(ctx context.Context, caller *policy.Caller, req dto.CreateBookingRequest) (*dto.BookingSummary, error)
	Cancel(ctx context.Context, caller *policy.Caller, bookingID uint) error
}

type BookingController struct {
	bookings Bookings
}

func NewBookingController(bookings Bookings) *BookingController {
	return &BookingController{bookings: bookings}
}

func (bc *BookingController) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, invalidBody(err))
		return
	}

	summary, err := bc.bookings.Create(c.Request.Context(), middleware.CallerFromContext(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, summary)
}

func (bc *BookingController) Cancel(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := bc.bookings.Cancel(c.Request.Context(), middleware.CallerFromContext(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id, "status": "CANCELLED"})
}
