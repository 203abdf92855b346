package controllers

import (
	"errors"
	"net/http"

	"handicraft-server/repositories"
	"handicraft-server/services"

	"github.com/gin-gonic/gin"
)

type ShopController struct {
	shopService *services.ShopService
}

func NewShopController(shopService *services.ShopService) *ShopController {
	return &ShopController{shopService: shopService}
}

// GetAllShops godoc
// @Summary List shop items
// @Tags Shop
// @Produce json
// @Success 200 {array} object
// @Router /shop [get]
func (ctrl *ShopController) GetAllShops(c *gin.Context) {
	shops, err := ctrl.shopService.GetAllShops(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve shop items", err)
		return
	}
	c.JSON(http.StatusOK, shops)
}

// GetShopByID godoc
// @Summary Get shop item
// @Tags Shop
// @Produce json
// @Param id path string true "Shop item ObjectID"
// @Success 200 {object} object
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /shop/{id} [get]
func (ctrl *ShopController) GetShopByID(c *gin.Context) {
	shop, err := ctrl.shopService.GetShopByID(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrInvalidShopID):
		respondError(c, http.StatusBadRequest, "Invalid shop id", err)
	case errors.Is(err, repositories.ErrNotFound):
		respondError(c, http.StatusNotFound, "Shop not found", nil)
	case err != nil:
		respondError(c, http.StatusInternalServerError, "Failed to retrieve shop item", err)
	default:
		c.JSON(http.StatusOK, shop)
	}
}
