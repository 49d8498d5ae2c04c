// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketbay/storefront-backend/internal/models"
)

func shippingAddress() map[string]interface{} {
	return map[string]interface{}{
		"street": "123 Main St",
		"city":   "Springfield",
		"zip":    "12345",
	}
}

func TestPlaceOrder(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db, NewNotificationService(db))
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	product := createTestProduct(t, db, "Headphones", 199.99, 10, nil)

	_, err := cartSvc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	order, err := orderSvc.PlaceOrder(&PlaceOrderRequest{
		UserID:          user.ID,
		ShippingAddress: shippingAddress(),
	})
	require.NoError(t, err)

	assert.InDelta(t, 399.98, order.TotalAmount, 0.001)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.InDelta(t, 199.99, order.Items[0].Price, 0.001)

	// Stock went down, cart is empty.
	var updated models.Product
	require.NoError(t, db.First(&updated, "id = ?", product.ID).Error)
	assert.Equal(t, 8, updated.StockQuantity)

	items, err := cartSvc.GetCart(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Buyer got an order confirmation.
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	orderSvc := NewOrderService(db, NewNotificationService(db))
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)

	_, err := orderSvc.PlaceOrder(&PlaceOrderRequest{
		UserID:          user.ID,
		ShippingAddress: shippingAddress(),
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db, NewNotificationService(db))
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	plenty := createTestProduct(t, db, "Plenty", 10.00, 100, nil)
	scarce := createTestProduct(t, db, "Scarce", 20.00, 1, nil)

	_, err := cartSvc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: plenty.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = cartSvc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: scarce.ID, Quantity: 5})
	require.NoError(t, err)

	_, err = orderSvc.PlaceOrder(&PlaceOrderRequest{
		UserID:          user.ID,
		ShippingAddress: shippingAddress(),
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Everything rolled back: stock untouched, cart intact, no order rows.
	// Fresh structs per lookup; a populated primary key would leak into the
	// next query's conditions.
	var gotPlenty, gotScarce models.Product
	require.NoError(t, db.First(&gotPlenty, "id = ?", plenty.ID).Error)
	assert.Equal(t, 100, gotPlenty.StockQuantity)
	require.NoError(t, db.First(&gotScarce, "id = ?", scarce.ID).Error)
	assert.Equal(t, 1, gotScarce.StockQuantity)

	items, err := cartSvc.GetCart(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.EqualValues(t, 0, orderCount)
}

func TestPlaceOrderSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db, NewNotificationService(db))
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	product := createTestProduct(t, db, "Lamp", 30.00, 10, nil)

	_, err := cartSvc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	order, err := orderSvc.PlaceOrder(&PlaceOrderRequest{
		UserID:          user.ID,
		ShippingAddress: shippingAddress(),
	})
	require.NoError(t, err)

	// A later price change must not rewrite order history.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).UpdateColumn("price", 45.00).Error)

	fetched, err := orderSvc.GetOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.InDelta(t, 30.00, fetched.Items[0].Price, 0.001)
	assert.InDelta(t, 30.00, fetched.TotalAmount, 0.001)
}

func TestPlaceOrderLowStockAlert(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db, NewNotificationService(db))
	seller := createTestUser(t, db, "seller@example.com", models.UserRoleSeller)
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	product := createTestProduct(t, db, "Limited", 15.00, 6, &seller.ID)

	_, err := cartSvc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = orderSvc.PlaceOrder(&PlaceOrderRequest{
		UserID:          user.ID,
		ShippingAddress: shippingAddress(),
	})
	require.NoError(t, err)

	var alerts []models.Notification
	require.NoError(t, db.Where("user_id = ?", seller.ID).Find(&alerts).Error)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Low Stock Alert", alerts[0].Title)
}

func TestUpdateStatusStateMachine(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db, NewNotificationService(db))
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	product := createTestProduct(t, db, "Widget", 5.00, 50, nil)

	_, err := cartSvc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	order, err := orderSvc.PlaceOrder(&PlaceOrderRequest{
		UserID:          user.ID,
		ShippingAddress: shippingAddress(),
	})
	require.NoError(t, err)

	// pending cannot skip straight to delivered
	_, err = orderSvc.UpdateStatus(order.ID, models.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	for _, next := range []models.OrderStatus{
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		updated, err := orderSvc.UpdateStatus(order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	// delivered is terminal
	_, err = orderSvc.UpdateStatus(order.ID, models.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	_, err = orderSvc.UpdateStatus(order.ID, models.OrderStatus("bogus"))
	assert.Error(t, err)
}

func TestGetUserOrders(t *testing.T) {
	db := newTestDB(t)
	cartSvc := NewCartService(db)
	orderSvc := NewOrderService(db, NewNotificationService(db))
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	product := createTestProduct(t, db, "Widget", 5.00, 50, nil)

	for i := 0; i < 2; i++ {
		_, err := cartSvc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: product.ID, Quantity: 1})
		require.NoError(t, err)
		_, err = orderSvc.PlaceOrder(&PlaceOrderRequest{
			UserID:          user.ID,
			ShippingAddress: shippingAddress(),
		})
		require.NoError(t, err)
	}

	orders, err := orderSvc.GetUserOrders(user.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
