// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketbay/storefront-backend/internal/models"
	"github.com/marketbay/storefront-backend/internal/services"
	"github.com/marketbay/storefront-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GET /api/admin/dashboard
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.adminService.GetDashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch dashboard stats")
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminService.ListUsers(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch users")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(users, total, params))
}

// PUT /api/admin/users/:id/role
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	var req struct {
		Role string `json:"role" validate:"required,oneof=customer seller admin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user, err := h.adminService.UpdateUserRole(userID, models.UserRole(req.Role))
	if err != nil {
		if err.Error() == "user not found" {
			utils.NotFoundResponse(c, "User")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, user)
}

// PUT /api/admin/users/:id/ban
func (h *AdminHandler) SetUserBanned(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	var req struct {
		Banned bool `json:"banned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	user, err := h.adminService.SetUserBanned(userID, req.Banned)
	if err != nil {
		switch err.Error() {
		case "user not found":
			utils.NotFoundResponse(c, "User")
		case "cannot ban an admin account":
			utils.ForbiddenResponse(c, err.Error())
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.SuccessResponse(c, user)
}

// GET /api/admin/products
func (h *AdminHandler) ListAllProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.adminService.ListAllProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch products")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(products, total, params))
}

// PUT /api/admin/products/:id/approve
func (h *AdminHandler) SetProductApproved(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req struct {
		Approved bool `json:"approved"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	product, err := h.adminService.SetProductApproved(productID, req.Approved)
	if err != nil {
		if err.Error() == "product not found" {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, product)
}
