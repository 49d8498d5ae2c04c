// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_product_user"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_product_user"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
