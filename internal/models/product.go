// internal/models/product.go
package models

import (
	"github.com/google/uuid"
)

type Product struct {
	BaseModel
	Name          string     `json:"name" gorm:"size:255;not null"`
	Description   string     `json:"description" gorm:"type:text"`
	Price         float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity int        `json:"stock_quantity" gorm:"not null;default:0"`
	Category      string     `json:"category" gorm:"size:100;not null;index"`
	ImageURL      string     `json:"image_url" gorm:"size:500"`
	SellerID      *uuid.UUID `json:"seller_id" gorm:"type:uuid;index"`
	IsApproved    bool       `json:"is_approved" gorm:"default:false;index"`
	AverageRating float64    `json:"average_rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount   int64      `json:"review_count" gorm:"default:0"`

	// Relationships
	Seller  *User    `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
