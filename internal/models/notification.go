// internal/models/notification.go
package models

import (
	"github.com/google/uuid"
)

type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Title   string           `json:"title" gorm:"size:255;not null"`
	Message string           `json:"message" gorm:"type:text;not null"`
	Type    NotificationType `json:"type" gorm:"type:varchar(20);not null;default:'info'"`
	IsRead  bool             `json:"is_read" gorm:"default:false"`
}
