// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketbay/storefront-backend/internal/services"
	"github.com/marketbay/storefront-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /api/cart/:userId
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	if !canActFor(c, userID) {
		utils.ForbiddenResponse(c, "Cannot access another user's cart")
		return
	}

	items, err := h.cartService.GetCart(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch cart")
		return
	}

	utils.SuccessResponse(c, items)
}

// POST /api/cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}
	req.UserID = userID

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	item, err := h.cartService.AddItem(&req)
	if err != nil {
		if err.Error() == "product not found" {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, item)
}

// PUT /api/cart/:itemId
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart item ID", nil)
		return
	}

	item, err := h.cartService.GetItem(itemID)
	if err != nil {
		utils.NotFoundResponse(c, "Cart item")
		return
	}
	if !canActFor(c, item.UserID) {
		utils.ForbiddenResponse(c, "Cannot modify another user's cart")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if err := h.cartService.SetQuantity(itemID, req.Quantity); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Cart updated"})
}

// DELETE /api/cart/:itemId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart item ID", nil)
		return
	}

	item, err := h.cartService.GetItem(itemID)
	if err != nil {
		utils.NotFoundResponse(c, "Cart item")
		return
	}
	if !canActFor(c, item.UserID) {
		utils.ForbiddenResponse(c, "Cannot modify another user's cart")
		return
	}

	if err := h.cartService.RemoveItem(itemID); err != nil {
		utils.InternalErrorResponse(c, "Failed to remove cart item")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Item removed from cart"})
}

// DELETE /api/cart/user/:userId
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	if !canActFor(c, userID) {
		utils.ForbiddenResponse(c, "Cannot clear another user's cart")
		return
	}

	if err := h.cartService.ClearCart(userID); err != nil {
		utils.InternalErrorResponse(c, "Failed to clear cart")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Cart cleared"})
}
