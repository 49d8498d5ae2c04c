// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketbay/storefront-backend/internal/models"
	"github.com/marketbay/storefront-backend/internal/utils"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// Stock levels at or below this trigger a seller warning after an order.
const lowStockThreshold = 5

type OrderService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

type PlaceOrderRequest struct {
	UserID          uuid.UUID              `json:"userId" validate:"required"`
	ShippingAddress map[string]interface{} `json:"shippingAddress" validate:"required"`
}

func NewOrderService(db *gorm.DB, notificationService *NotificationService) *OrderService {
	return &OrderService{
		db:                  db,
		notificationService: notificationService,
	}
}

// PlaceOrder turns the user's cart into an order in a single transaction:
// order and order-item rows with price snapshots, a guarded stock decrement
// per line, then the cart is cleared. Any failing step rolls everything
// back, so stock, cart, and order rows can never disagree.
func (s *OrderService) PlaceOrder(req *PlaceOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var order *models.Order
	var stockAlerts []models.Product

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Preload("Product").
			Where("user_id = ?", req.UserID).
			Find(&cartItems).Error; err != nil {
			return fmt.Errorf("failed to fetch cart: %w", err)
		}

		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		var total float64
		for _, item := range cartItems {
			if item.Product == nil {
				return errors.New("cart references a missing product")
			}
			total += item.Product.Price * float64(item.Quantity)
		}

		order = &models.Order{
			UserID:          req.UserID,
			TotalAmount:     total,
			Status:          models.OrderStatusPending,
			ShippingAddress: models.JSONB(req.ShippingAddress),
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range cartItems {
			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Product.Price, // snapshot at purchase time
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}

			// Guarded decrement: only succeeds when enough stock remains,
			// which keeps concurrent orders from driving stock negative.
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if result.Error != nil {
				return fmt.Errorf("failed to update stock: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w for %s", ErrInsufficientStock, item.Product.Name)
			}

			var updated models.Product
			if err := tx.First(&updated, "id = ?", item.ProductID).Error; err == nil &&
				updated.StockQuantity <= lowStockThreshold {
				stockAlerts = append(stockAlerts, updated)
			}
		}

		if err := tx.Delete(&models.CartItem{}, "user_id = ?", req.UserID).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		s.notificationService.Create(req.UserID, "Order Placed",
			fmt.Sprintf("Your order #%s has been placed successfully!", shortID(order.ID)),
			models.NotificationTypeSuccess)

		for _, p := range stockAlerts {
			s.notifyStockLevel(p)
		}
	}

	s.db.Preload("Items").Preload("Items.Product").First(order, "id = ?", order.ID)
	return order, nil
}

func (s *OrderService) GetUserOrders(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").Preload("Items.Product").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

// UpdateStatus enforces the order state machine.
func (s *OrderService) UpdateStatus(id uuid.UUID, next models.OrderStatus) (*models.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("unknown order status %q", next)
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("order not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		if !order.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, next)
		}

		if err := tx.Model(&order).UpdateColumn("status", next).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		order.Status = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		s.notificationService.Create(order.UserID,
			fmt.Sprintf("Order %s", statusTitle(next)),
			fmt.Sprintf("Your order #%s is now %s.", shortID(order.ID), next),
			models.NotificationTypeInfo)
	}

	return &order, nil
}

func (s *OrderService) notifyStockLevel(product models.Product) {
	if product.SellerID == nil {
		return
	}
	if product.StockQuantity == 0 {
		s.notificationService.Create(*product.SellerID, "Product Out of Stock",
			fmt.Sprintf("%s is now out of stock. Please restock soon.", product.Name),
			models.NotificationTypeError)
		return
	}
	s.notificationService.Create(*product.SellerID, "Low Stock Alert",
		fmt.Sprintf("%s is running low on stock (%d units remaining).", product.Name, product.StockQuantity),
		models.NotificationTypeWarning)
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func statusTitle(status models.OrderStatus) string {
	switch status {
	case models.OrderStatusConfirmed:
		return "Confirmed"
	case models.OrderStatusShipped:
		return "Shipped"
	case models.OrderStatusDelivered:
		return "Delivered"
	case models.OrderStatusCancelled:
		return "Cancelled"
	}
	return "Updated"
}
