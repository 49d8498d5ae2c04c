// internal/services/admin_service.go
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

type AdminService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

type AdminDashboardStats struct {
	TotalUsers      int64   `json:"total_users"`
	TotalProducts   int64   `json:"total_products"`
	PendingProducts int64   `json:"pending_products"`
	TotalOrders     int64   `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}

func NewAdminService(db *gorm.DB, notificationService *NotificationService) *AdminService {
	return &AdminService{
		db:                  db,
		notificationService: notificationService,
	}
}

func (s *AdminService) GetDashboardStats() (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.Model(&models.Product{}).Where("is_approved = ?", false).
		Count(&stats.PendingProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending products: %w", err)
	}
	if err := s.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := s.db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return stats, nil
}

func (s *AdminService) ListUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(email) LIKE ? OR LOWER(full_name) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	allowedSortFields := []string{"created_at", "email", "role"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, total, nil
}

func (s *AdminService) UpdateUserRole(userID uuid.UUID, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&user).UpdateColumn("role", role).Error; err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	user.Role = role

	return &user, nil
}

func (s *AdminService) SetUserBanned(userID uuid.UUID, banned bool) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if user.Role == models.UserRoleAdmin && banned {
		return nil, errors.New("cannot ban an admin account")
	}

	if err := s.db.Model(&user).UpdateColumn("is_banned", banned).Error; err != nil {
		return nil, fmt.Errorf("failed to update ban flag: %w", err)
	}
	user.IsBanned = banned

	return &user, nil
}

// ListAllProducts returns products regardless of approval state.
func (s *AdminService) ListAllProducts(params utils.PaginationParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).Preload("Seller")

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "name", "price", "stock_quantity"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *AdminService) SetProductApproved(productID uuid.UUID, approved bool) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&product).UpdateColumn("is_approved", approved).Error; err != nil {
		return nil, fmt.Errorf("failed to update approval: %w", err)
	}
	product.IsApproved = approved

	if product.SellerID != nil && s.notificationService != nil {
		if approved {
			s.notificationService.Create(*product.SellerID, "Product Approved",
				fmt.Sprintf("%s is now visible in the catalog.", product.Name),
				models.NotificationTypeSuccess)
		} else {
			s.notificationService.Create(*product.SellerID, "Product Unlisted",
				fmt.Sprintf("%s has been removed from the catalog.", product.Name),
				models.NotificationTypeWarning)
		}
	}

	return &product, nil
}
