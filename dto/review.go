package dto

import "time"

// CreateReviewRequest keeps Rating as a pointer so a missing rating can be told apart from 0.
type CreateReviewRequest struct {
	Rating  *float64 `json:"rating"`
	Comment string   `json:"comment"`
}

type ReviewResponse struct {
	ID        uint        `json:"id"`
	HotelID   uint        `json:"hotelId"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
	CreatedAt time.Time   `json:"createdAt"`
	User      *UserInfo   `json:"user,omitempty"`
	Hotel     *HotelBrief `json:"hotel,omitempty"`
}

type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}
