// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketbay/storefront-backend/internal/models"
	"github.com/marketbay/storefront-backend/internal/utils"
)

type CatalogService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

// CatalogFilters is the buyer-facing product query: approved products only,
// conjunctive filters, substring search, no pagination.
type CatalogFilters struct {
	Category string
	Search   string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
}

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required,min=3,max=255"`
	Description   string  `json:"description" validate:"required"`
	Price         float64 `json:"price" validate:"required,gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	Category      string  `json:"category" validate:"required"`
	ImageURL      string  `json:"image_url,omitempty"`
}

type UpdateProductRequest struct {
	Name          string   `json:"name,omitempty" validate:"omitempty,min=3,max=255"`
	Description   string   `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	StockQuantity *int     `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	Category      string   `json:"category,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
}

func NewCatalogService(db *gorm.DB, notificationService *NotificationService) *CatalogService {
	return &CatalogService{
		db:                  db,
		notificationService: notificationService,
	}
}

func (s *CatalogService) ListProducts(filters CatalogFilters) ([]models.Product, error) {
	query := s.db.Model(&models.Product{}).
		Preload("Seller").
		Where("is_approved = ?", true)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	if filters.Search != "" {
		searchTerm := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}

	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	switch filters.SortBy {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "rating":
		query = query.Order("average_rating DESC")
	default: // "newest" and anything else
		query = query.Order("created_at DESC")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Seller").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// CreateProduct inserts an unapproved product owned by the seller. It stays
// out of the catalog until an admin approves it.
func (s *CatalogService) CreateProduct(sellerID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var seller models.User
	if err := s.db.First(&seller, "id = ?", sellerID).Error; err != nil {
		return nil, fmt.Errorf("seller not found: %w", err)
	}

	if seller.IsBanned {
		return nil, errors.New("seller account is banned")
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		SellerID:      &sellerID,
		IsApproved:    seller.Role == models.UserRoleAdmin,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if !product.IsApproved && s.notificationService != nil {
		s.notificationService.NotifyAdmins(
			"Product Awaiting Approval",
			fmt.Sprintf("%s submitted a new product: %s.", seller.FullName, product.Name),
			models.NotificationTypeInfo,
		)
	}

	return product, nil
}

func (s *CatalogService) UpdateProduct(id uuid.UUID, sellerID uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if product.SellerID == nil || *product.SellerID != sellerID {
		return nil, errors.New("unauthorized to update this product")
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.StockQuantity != nil {
		updates["stock_quantity"] = *req.StockQuantity
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return &product, nil
}

func (s *CatalogService) DeleteProduct(id uuid.UUID, sellerID uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if product.SellerID == nil || *product.SellerID != sellerID {
		return errors.New("unauthorized to delete this product")
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
