package controllers

import (
	"context"

	"hotelbooking/dto"
	"hotelbooking/middleware"
	"hotelbooking/response"

	"github.com/gin-gonic/gin"
)

type Catalog interface {
	Search(ctx context.Context, sessionID string, filters dto.SearchFilters) ([]dto.HotelCard, error)
	LastFilters(ctx context.Context, sessionID string) (*dto.SearchFilters, error)
	ClearLastFilters(ctx context.Context, sessionID string) error
	Featured(ctx context.Context) ([]dto.HotelCard, error)
	Detail(ctx context.Context, id uint) (*dto.HotelDetail, error)
}

type HotelController struct {
	catalog Catalog
}

func NewHotelController(catalog Catalog) *HotelController {
	return &HotelController{catalog: catalog}
}

func (hc *HotelController) Featured(c *gin.Context) {
	hotels, err := hc.catalog.Featured(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, hotels, len(hotels))
}

// Search reads city, stars, minPrice and maxPrice from the query string.
func (hc *HotelController) Search(c *gin.Context) {
	var filters dto.SearchFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.FromError(c, invalidBody(err))
		return
	}

	hotels, err := hc.catalog.Search(c.Request.Context(), middleware.SessionID(c), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithTotal(c, hotels, len(hotels))
}

func (hc *HotelController) LastFilters(c *gin.Context) {
	filters, err := hc.catalog.LastFilters(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if filters == nil {
		filters = &dto.SearchFilters{}
	}
	response.Success(c, filters)
}

func (hc *HotelController) ClearLastFilters(c *gin.Context) {
	if err := hc.catalog.ClearLastFilters(c.Request.Context(), middleware.SessionID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil)
}

func (hc *HotelController) Detail(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	hotel, err := hc.catalog.Detail(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, hotel)
}
