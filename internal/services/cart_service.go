// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketbay/storefront-backend/internal/models"
	"github.com/marketbay/storefront-backend/internal/utils"
)

type CartService struct {
	db *gorm.DB
}

type AddToCartRequest struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"omitempty,gt=0"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

func (s *CartService) GetCart(userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}
	return items, nil
}

// AddItem upserts: if the (user, product) pair already has a row its
// quantity is incremented, otherwise a new row is inserted. Stock is not
// checked here; order placement is the gate.
func (s *CartService) AddItem(req *AddToCartRequest) (*models.CartItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	// Product must exist
	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var item models.CartItem
	err := s.db.Where("user_id = ? AND product_id = ?", req.UserID, req.ProductID).First(&item).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to fetch cart item: %w", err)
		}

		item = models.CartItem{
			UserID:    req.UserID,
			ProductID: req.ProductID,
			Quantity:  quantity,
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, fmt.Errorf("failed to add item to cart: %w", err)
		}
		return &item, nil
	}

	if err := s.db.Model(&item).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity)).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	item.Quantity += quantity

	return &item, nil
}

// SetQuantity updates a cart row, deleting it when the new quantity drops
// to zero or below.
func (s *CartService) SetQuantity(itemID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(itemID)
	}

	result := s.db.Model(&models.CartItem{}).
		Where("id = ?", itemID).
		UpdateColumn("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("cart item not found")
	}

	return nil
}

func (s *CartService) RemoveItem(itemID uuid.UUID) error {
	if err := s.db.Delete(&models.CartItem{}, "id = ?", itemID).Error; err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

func (s *CartService) ClearCart(userID uuid.UUID) error {
	if err := s.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// GetItem is used by handlers to check ownership before mutating a row.
func (s *CartService) GetItem(itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("cart item not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}
