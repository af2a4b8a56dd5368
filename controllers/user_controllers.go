package controllers

import (
	"context"

	"hotelbooking/dto"
	"hotelbooking/middleware"
	"hotelbooking/policy"
	"hotelbooking/response"

	"github.com/gin-gonic/gin"
)

type Profiles interface {
	Profile(ctx context.Context, caller *policy.Caller) (*dto.ProfileResponse, error)
}

type UserController struct {
	profiles Profiles
}

func NewUserController(profiles Profiles) *UserController {
	return &UserController{profiles: profiles}
}

func (uc *UserController) Profile(c *gin.Context) {
	profile, err := uc.profiles.Profile(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, profile)
}
