// internal/models/order.go
package models

import (
	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	UserID          uuid.UUID   `json:"user_id" gorm:"type:uuid;not null;index"`
	TotalAmount     float64     `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ShippingAddress JSONB       `json:"shipping_address" gorm:"type:jsonb;not null"`
	PaymentIntentID string      `json:"payment_intent_id,omitempty" gorm:"size:255"`

	User  *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem records the price at purchase time, decoupled from later
// product price changes.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"type:decimal(10,2);not null"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
