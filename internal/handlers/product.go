// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketbay/storefront-backend/internal/services"
	"github.com/marketbay/storefront-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	reviewService  *services.ReviewService
}

func NewProductHandler(catalogService *services.CatalogService, reviewService *services.ReviewService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

// GET /api/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	// camelCase is the documented form; snake_case kept as an alias.
	filters := services.CatalogFilters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   queryAlias(c, "sortBy", "sort_by"),
	}

	if raw := queryAlias(c, "minPrice", "min_price"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.BadRequestResponse(c, "minPrice must be a number", nil)
			return
		}
		filters.MinPrice = &value
	}

	if raw := queryAlias(c, "maxPrice", "max_price"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.BadRequestResponse(c, "maxPrice must be a number", nil)
			return
		}
		filters.MaxPrice = &value
	}

	products, err := h.catalogService.ListProducts(filters)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch products")
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.catalogService.GetProduct(productID)
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	utils.SuccessResponse(c, product)
}

// GET /api/categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch categories")
		return
	}

	utils.SuccessResponse(c, categories)
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	sellerID, ok := callerID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.CreateProduct(sellerID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, product)
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	sellerID, ok := callerID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.UpdateProduct(productID, sellerID, &req)
	if err != nil {
		switch {
		case err.Error() == "product not found":
			utils.NotFoundResponse(c, "Product")
		case err.Error() == "unauthorized to update this product":
			utils.ForbiddenResponse(c, err.Error())
		default:
			utils.BadRequestResponse(c, err.Error(), nil)
		}
		return
	}

	utils.SuccessResponse(c, product)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	sellerID, ok := callerID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.catalogService.DeleteProduct(productID, sellerID); err != nil {
		switch {
		case err.Error() == "product not found":
			utils.NotFoundResponse(c, "Product")
		case err.Error() == "unauthorized to delete this product":
			utils.ForbiddenResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, "Failed to delete product")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Product deleted"})
}

// GET /api/products/:id/reviews
func (h *ProductHandler) ListReviews(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	reviews, err := h.reviewService.ListProductReviews(productID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to fetch reviews")
		return
	}

	utils.SuccessResponse(c, reviews)
}

// POST /api/reviews
//
// The review is always attributed to the authenticated caller regardless of
// the userId in the body.
func (h *ProductHandler) CreateReview(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}
	req.UserID = userID

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.CreateReview(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateReview) {
			utils.ConflictResponse(c, err.Error())
			return
		}
		if err.Error() == "product not found" {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, review)
}
