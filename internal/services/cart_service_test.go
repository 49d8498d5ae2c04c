// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketbay/storefront-backend/internal/models"
)

func TestAddItemMergesQuantities(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	product := createTestProduct(t, db, "Keyboard", 49.99, 10, nil)

	item, err := svc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	// Adding the same product again bumps the existing row.
	item, err = svc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	items, err := svc.GetCart(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Keyboard", items[0].Product.Name)
}

func TestAddItemDefaultsToOne(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	product := createTestProduct(t, db, "Mouse", 19.99, 10, nil)

	item, err := svc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	ghost := createTestProduct(t, db, "Ghost", 1, 1, nil)
	require.NoError(t, db.Delete(ghost).Error)

	_, err := svc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: ghost.ID, Quantity: 1})
	assert.EqualError(t, err, "product not found")
}

func TestSetQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	product := createTestProduct(t, db, "Monitor", 299.99, 10, nil)

	item, err := svc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.SetQuantity(item.ID, 4))

	fetched, err := svc.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, fetched.Quantity)

	// Zero or negative quantity removes the row.
	require.NoError(t, svc.SetQuantity(item.ID, 0))
	_, err = svc.GetItem(item.ID)
	assert.Error(t, err)
}

func TestSetQuantityMissingItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	product := createTestProduct(t, db, "Cable", 9.99, 10, nil)

	err := svc.SetQuantity(product.ID, 3) // not a cart item ID
	assert.Error(t, err)
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := createTestUser(t, db, "buyer@example.com", models.UserRoleCustomer)
	other := createTestUser(t, db, "other@example.com", models.UserRoleCustomer)
	p1 := createTestProduct(t, db, "Desk", 149.99, 5, nil)
	p2 := createTestProduct(t, db, "Chair", 89.99, 5, nil)

	_, err := svc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: p1.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(&AddToCartRequest{UserID: user.ID, ProductID: p2.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(&AddToCartRequest{UserID: other.ID, ProductID: p1.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(user.ID))

	items, err := svc.GetCart(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Another user's cart is untouched.
	items, err = svc.GetCart(other.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
