// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/marketbay/storefront-backend/internal/models"
)

// SeedDemoData loads the demo storefront: three accounts, five categories,
// a dozen products, and a few reviews and notifications. Safe to call on
// every startup; it is a no-op once users exist.
func SeedDemoData(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if userCount > 0 {
		log.Println("Database already seeded")
		return nil
	}

	log.Println("Seeding demo data...")

	admin := &models.User{Email: "admin@example.com", FullName: "Admin User", Role: models.UserRoleAdmin}
	seller := &models.User{Email: "seller@example.com", FullName: "John Seller", Role: models.UserRoleSeller}
	customer := &models.User{Email: "customer@example.com", FullName: "Jane Customer", Role: models.UserRoleCustomer}

	for _, u := range []*models.User{admin, seller, customer} {
		if err := u.SetPassword("password123"); err != nil {
			return fmt.Errorf("failed to set demo password: %w", err)
		}
		if err := db.Create(u).Error; err != nil {
			return fmt.Errorf("failed to create demo user %s: %w", u.Email, err)
		}
	}

	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Clothing", Slug: "clothing"},
		{Name: "Home & Garden", Slug: "home-garden"},
		{Name: "Books", Slug: "books"},
		{Name: "Sports & Fitness", Slug: "sports-fitness"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", categories[i].Slug, err)
		}
	}

	products := []models.Product{
		{Name: "Wireless Bluetooth Headphones", Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life.", Price: 199.99, StockQuantity: 25, Category: "electronics", ImageURL: "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg"},
		{Name: "Smart Fitness Watch", Description: "Track your fitness goals with this advanced smartwatch featuring heart rate monitoring.", Price: 299.99, StockQuantity: 15, Category: "electronics", ImageURL: "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg"},
		{Name: "Portable Bluetooth Speaker", Description: "Compact speaker with powerful sound and waterproof design.", Price: 79.99, StockQuantity: 3, Category: "electronics", ImageURL: "https://images.pexels.com/photos/1649771/pexels-photo-1649771.jpeg"},
		{Name: "Premium Cotton T-Shirt", Description: "Comfortable and stylish cotton t-shirt available in multiple colors.", Price: 29.99, StockQuantity: 50, Category: "clothing", ImageURL: "https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg"},
		{Name: "Denim Jacket", Description: "Classic denim jacket with modern fit and premium quality.", Price: 89.99, StockQuantity: 20, Category: "clothing", ImageURL: "https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg"},
		{Name: "Running Sneakers", Description: "Lightweight running shoes with advanced cushioning technology.", Price: 129.99, StockQuantity: 0, Category: "clothing", ImageURL: "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg"},
		{Name: "Ceramic Plant Pot Set", Description: "Beautiful set of 3 ceramic plant pots perfect for indoor plants.", Price: 45.99, StockQuantity: 12, Category: "home-garden", ImageURL: "https://images.pexels.com/photos/1080721/pexels-photo-1080721.jpeg"},
		{Name: "LED Desk Lamp", Description: "Adjustable LED desk lamp with multiple brightness levels and USB charging port.", Price: 59.99, StockQuantity: 8, Category: "home-garden", ImageURL: "https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg"},
		{Name: "JavaScript: The Complete Guide", Description: "Comprehensive guide to modern JavaScript programming with practical examples.", Price: 39.99, StockQuantity: 30, Category: "books", ImageURL: "https://images.pexels.com/photos/159711/books-bookstore-book-reading-159711.jpeg"},
		{Name: "The Art of Cooking", Description: "Master the fundamentals of cooking with this beautifully illustrated cookbook.", Price: 34.99, StockQuantity: 18, Category: "books", ImageURL: "https://images.pexels.com/photos/1370295/pexels-photo-1370295.jpeg"},
		{Name: "Yoga Mat Premium", Description: "Non-slip yoga mat with extra cushioning for comfortable practice.", Price: 49.99, StockQuantity: 22, Category: "sports-fitness", ImageURL: "https://images.pexels.com/photos/3822906/pexels-photo-3822906.jpeg"},
		{Name: "Resistance Bands Set", Description: "Complete set of resistance bands for full-body workouts at home.", Price: 24.99, StockQuantity: 35, Category: "sports-fitness", ImageURL: "https://images.pexels.com/photos/4162449/pexels-photo-4162449.jpeg"},
	}
	for i := range products {
		products[i].SellerID = &seller.ID
		products[i].IsApproved = true
		if err := db.Create(&products[i]).Error; err != nil {
			return fmt.Errorf("failed to create demo product %s: %w", products[i].Name, err)
		}
	}

	reviews := []models.Review{
		{ProductID: products[0].ID, UserID: customer.ID, Rating: 5, Comment: "Excellent headphones! Great sound quality and battery life."},
		{ProductID: products[1].ID, UserID: customer.ID, Rating: 4, Comment: "Good smartwatch with accurate fitness tracking."},
		{ProductID: products[3].ID, UserID: customer.ID, Rating: 4, Comment: "Very comfortable t-shirt, great quality cotton."},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			return fmt.Errorf("failed to create demo review: %w", err)
		}
		// Keep aggregates consistent with the seeded reviews.
		if err := recomputeSeedRating(db, reviews[i].ProductID); err != nil {
			return err
		}
	}

	notifications := []models.Notification{
		{UserID: seller.ID, Title: "Low Stock Alert", Message: "Portable Bluetooth Speaker is running low on stock (3 units remaining).", Type: models.NotificationTypeWarning},
		{UserID: seller.ID, Title: "Product Out of Stock", Message: "Running Sneakers is now out of stock. Please restock soon.", Type: models.NotificationTypeError},
		{UserID: admin.ID, Title: "New User Registration", Message: "A new seller has registered and is awaiting approval.", Type: models.NotificationTypeInfo},
	}
	for i := range notifications {
		if err := db.Create(&notifications[i]).Error; err != nil {
			return fmt.Errorf("failed to create demo notification: %w", err)
		}
	}

	log.Println("Demo data seeded successfully")
	return nil
}

func recomputeSeedRating(db *gorm.DB, productID interface{}) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	if err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("product_id = ?", productID).
		Scan(&agg).Error; err != nil {
		return fmt.Errorf("failed to aggregate seed ratings: %w", err)
	}

	return db.Model(&models.Product{}).Where("id = ?", productID).
		Updates(map[string]interface{}{
			"average_rating": agg.Avg,
			"review_count":   agg.Count,
		}).Error
}
