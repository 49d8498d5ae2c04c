// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
)

// CartItem holds one (user, product) selection. The unique index keeps a
// single row per pair; adding the same product again sums quantities.
type CartItem struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
