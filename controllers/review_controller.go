package controllers

import (
	"context"

	"hotelbooking/dto"
	"hotelbooking/middleware"
	"hotelbooking/policy"
	"hotelbooking/response"

	"github.com/gin-gonic/gin"
)

type Reviews interface {
	Submit(ctx context.Context, caller *policy.Caller, hotelID uint, req dto.CreateReviewRequest) (*dto.ReviewResponse, error)
}

type ReviewController struct {
	reviews Reviews
}

func NewReviewController(reviews Reviews) *ReviewController {
	return &ReviewController{reviews: reviews}
}

func (rc *ReviewController) Create(c *gin.Context) {
	hotelID, err := parseID(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, invalidBody(err))
		return
	}

	review, err := rc.reviews.Submit(c.Request.Context(), middleware.CallerFromContext(c), hotelID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, review)
}
