package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ecoscanhq/ecoscan-api/internal/disposal"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
)

// CityHandler serves the supported city list.
type CityHandler struct{}

// NewCityHandler creates a new CityHandler.
func NewCityHandler() *CityHandler {
	return &CityHandler{}
}

// GetCities returns the fixed set of cities with disposal rules.
// GET /v1/cities
func (h *CityHandler) GetCities(c *gin.Context) {
	utils.Success(c, 200, "Successfully retrieved cities", gin.H{
		"cities": disposal.SupportedCities(),
	})
}
