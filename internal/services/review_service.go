// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketbay/storefront-backend/internal/models"
	"github.com/marketbay/storefront-backend/internal/utils"
)

var ErrDuplicateReview = errors.New("you have already reviewed this product")

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	UserID    uuid.UUID `json:"userId" validate:"required"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview inserts the review and recomputes the product's rating
// aggregates from a full re-scan, all in one transaction so the stored
// average can never drift from the review rows.
func (s *ReviewService) CreateReview(req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var review *models.Review
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("product not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		var existing models.Review
		if err := tx.Where("product_id = ? AND user_id = ?", req.ProductID, req.UserID).
			First(&existing).Error; err == nil {
			return ErrDuplicateReview
		}

		review = &models.Review{
			ProductID: req.ProductID,
			UserID:    req.UserID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		return s.recomputeRating(tx, req.ProductID)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) ListProductReviews(productID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) recomputeRating(tx *gorm.DB, productID uuid.UUID) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	if err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("product_id = ?", productID).
		Scan(&agg).Error; err != nil {
		return fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	if err := tx.Model(&models.Product{}).Where("id = ?", productID).
		Updates(map[string]interface{}{
			"average_rating": agg.Avg,
			"review_count":   agg.Count,
		}).Error; err != nil {
		return fmt.Errorf("failed to update product rating: %w", err)
	}

	return nil
}
