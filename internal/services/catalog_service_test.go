// internal/services/catalog_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketbay/storefront-backend/internal/models"
)

func TestListProductsOnlyApproved(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, NewNotificationService(db))

	createTestProduct(t, db, "Visible", 10, 5, nil)
	hidden := createTestProduct(t, db, "Hidden", 10, 5, nil)
	require.NoError(t, db.Model(hidden).UpdateColumn("is_approved", false).Error)

	products, err := svc.ListProducts(CatalogFilters{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Visible", products[0].Name)

	// Direct lookup still works for unapproved products (sellers preview them).
	fetched, err := svc.GetProduct(hidden.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsApproved)
}

func TestListProductsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, NewNotificationService(db))

	cheap := createTestProduct(t, db, "Budget Phone", 99.99, 5, nil)
	mid := createTestProduct(t, db, "Nice Phone", 499.99, 5, nil)
	pricey := createTestProduct(t, db, "Luxury Phone", 1299.99, 5, nil)
	book := createTestProduct(t, db, "Cookbook", 25.00, 5, nil)
	require.NoError(t, db.Model(book).UpdateColumn("category", "Books").Error)

	min, max := 50.0, 600.0
	products, err := svc.ListProducts(CatalogFilters{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.Len(t, products, 2)

	products, err = svc.ListProducts(CatalogFilters{Category: "Books"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, book.ID, products[0].ID)

	products, err = svc.ListProducts(CatalogFilters{Search: "luxury"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, pricey.ID, products[0].ID)

	products, err = svc.ListProducts(CatalogFilters{SortBy: "price_asc"})
	require.NoError(t, err)
	require.Len(t, products, 4)
	assert.Equal(t, book.ID, products[0].ID)
	assert.Equal(t, cheap.ID, products[1].ID)
	assert.Equal(t, mid.ID, products[2].ID)
	assert.Equal(t, pricey.ID, products[3].ID)
}

func TestCreateProductApprovalFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, NewNotificationService(db))
	admin := createTestUser(t, db, "admin@example.com", models.UserRoleAdmin)
	seller := createTestUser(t, db, "seller@example.com", models.UserRoleSeller)

	req := &CreateProductRequest{
		Name:        "Handmade Mug",
		Description: "Ceramic mug",
		Price:       18.50,
		Category:    "Home & Garden",
	}

	product, err := svc.CreateProduct(seller.ID, req)
	require.NoError(t, err)
	assert.False(t, product.IsApproved)
	require.NotNil(t, product.SellerID)
	assert.Equal(t, seller.ID, *product.SellerID)

	// Admins are told about the pending product.
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", admin.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Admin-created products skip the approval queue.
	adminProduct, err := svc.CreateProduct(admin.ID, &CreateProductRequest{
		Name:        "Store Gift Card",
		Description: "Official gift card",
		Price:       50,
		Category:    "Other",
	})
	require.NoError(t, err)
	assert.True(t, adminProduct.IsApproved)
}

func TestCreateProductBannedSeller(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, NewNotificationService(db))
	seller := createTestUser(t, db, "seller@example.com", models.UserRoleSeller)
	require.NoError(t, db.Model(seller).UpdateColumn("is_banned", true).Error)

	_, err := svc.CreateProduct(seller.ID, &CreateProductRequest{
		Name:        "Should Fail",
		Description: "nope",
		Price:       1,
		Category:    "Other",
	})
	assert.Error(t, err)
}

func TestUpdateProductOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, NewNotificationService(db))
	owner := createTestUser(t, db, "owner@example.com", models.UserRoleSeller)
	rival := createTestUser(t, db, "rival@example.com", models.UserRoleSeller)
	product := createTestProduct(t, db, "Poster", 12.00, 30, &owner.ID)

	newPrice := 15.00
	updated, err := svc.UpdateProduct(product.ID, owner.ID, &UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, product.ID, updated.ID)

	var p models.Product
	require.NoError(t, db.First(&p, "id = ?", product.ID).Error)
	assert.InDelta(t, 15.00, p.Price, 0.001)

	_, err = svc.UpdateProduct(product.ID, rival.ID, &UpdateProductRequest{Price: &newPrice})
	assert.EqualError(t, err, "unauthorized to update this product")
}

func TestDeleteProductOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, NewNotificationService(db))
	owner := createTestUser(t, db, "owner@example.com", models.UserRoleSeller)
	rival := createTestUser(t, db, "rival@example.com", models.UserRoleSeller)
	product := createTestProduct(t, db, "Poster", 12.00, 30, &owner.ID)

	err := svc.DeleteProduct(product.ID, rival.ID)
	assert.EqualError(t, err, "unauthorized to delete this product")

	require.NoError(t, svc.DeleteProduct(product.ID, owner.ID))
	_, err = svc.GetProduct(product.ID)
	assert.Error(t, err)
}

func TestListCategories(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db, NewNotificationService(db))

	for _, c := range []models.Category{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Books", Slug: "books"},
	} {
		category := c
		require.NoError(t, db.Create(&category).Error)
	}

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Books", categories[0].Name) // sorted by name
}
