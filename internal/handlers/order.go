// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketbay/storefront-backend/internal/models"
	"github.com/marketbay/storefront-backend/internal/services"
	"github.com/marketbay/storefront-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /api/orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}
	req.UserID = userID

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.PlaceOrder(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			utils.BadRequestResponse(c, err.Error(), nil)
		case errors.Is(err, services.ErrInsufficientStock):
			utils.ConflictResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, "Failed to place order")
		}
		return
	}

	utils.CreatedResponse(c, order)
}

// GET /api/orders/user/:userId
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	if !canActFor(c, userID) {
		utils.ForbiddenResponse(c, "Cannot access another user's orders")
		return
	}

	orders, err := h.orderService.GetUserOrders(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch orders")
		return
	}

	utils.SuccessResponse(c, orders)
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		utils.NotFoundResponse(c, "Order")
		return
	}

	if !canActFor(c, order.UserID) {
		utils.ForbiddenResponse(c, "Cannot access another user's order")
		return
	}

	utils.SuccessResponse(c, order)
}

// PUT /api/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.orderService.UpdateStatus(orderID, models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrIllegalTransition):
			utils.ConflictResponse(c, err.Error())
		case err.Error() == "order not found":
			utils.NotFoundResponse(c, "Order")
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.SuccessResponse(c, order)
}
