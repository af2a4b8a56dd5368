package dto

import (
	"time"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserLoginResponse struct {
	UserID    uint      `json:"id"`
	UserName  string    `json:"name"`
	UserEmail string    `json:"email"`
	UserRole  string    `json:"role"`
	UserImage string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	UserInfo    UserLoginResponse `json:"user_info"`
	AccessToken string            `json:"accessToken"`
	ExpiresAt   time.Time         `json:"expiresAt"`
}
