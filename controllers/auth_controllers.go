package controllers

import (
	"context"

	"hotelbooking/dto"
	"hotelbooking/models"
	"hotelbooking/response"

	"github.com/gin-gonic/gin"
)

type Authenticator interface {
	Register(ctx context.Context, input dto.RegisterInput) (*models.User, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error)
}

type AuthController struct {
	auth Authenticator
}

func NewAuthController(auth Authenticator) *AuthController {
	return &AuthController{auth: auth}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FromError(c, invalidBody(err))
		return
	}

	user, err := ac.auth.Register(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, dto.UserInfo{ID: user.ID, Name: user.Name, Email: user.Email, Image: user.Image})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FromError(c, invalidBody(err))
		return
	}

	resp, err := ac.auth.Login(c.Request.Context(), input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, resp)
}
