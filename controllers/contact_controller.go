package controllers

import (
	"context"

	"hotelbooking/dto"
	"hotelbooking/response"

	"github.com/gin-gonic/gin"
)

type ContactSender interface {
	Send(ctx context.Context, req dto.ContactRequest) error
}

type ContactController struct {
	contact ContactSender
}

func NewContactController(contact ContactSender) *ContactController {
	return &ContactController{contact: contact}
}

func (cc *ContactController) Send(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, invalidBody(err))
		return
	}
	if err := cc.contact.Send(c.Request.Context(), req); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "Message sent"})
}
