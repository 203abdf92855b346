package controllers

import (
	"net/http"

	"handicraft-server/middleware"
	"handicraft-server/models"
	"handicraft-server/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// GetAllOrders godoc
// @Summary List orders
// @Tags Orders
// @Security CookieAuth
// @Produce json
// @Success 200 {array} models.Order
// @Router /order [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.orderService.GetAllOrders(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder godoc
// @Summary Checkout
// @Description Product and user references are stored as given, without existence checks.
// @Tags Orders
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /order [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !middleware.IsOwner(c, req.UserEmail) {
		middleware.AbortForbidden(c)
		return
	}

	result, err := ctrl.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create order", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetOrdersByEmail godoc
// @Summary List orders of a user
// @Tags Orders
// @Security CookieAuth
// @Produce json
// @Param email path string true "User email"
// @Success 200 {array} models.Order
// @Failure 403 {object} models.ErrorResponse
// @Router /order/{email} [get]
func (ctrl *OrderController) GetOrdersByEmail(c *gin.Context) {
	orders, err := ctrl.orderService.GetOrdersByUserEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to retrieve orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
