// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string   `json:"-" gorm:"size:255;not null"`
	FullName     string   `json:"full_name" gorm:"size:255"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'customer'"`
	AvatarURL    string   `json:"avatar_url" gorm:"size:500"`
	IsBanned     bool     `json:"is_banned" gorm:"default:false"`

	// Relationships
	Products      []Product      `json:"products,omitempty" gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	CartItems     []CartItem     `json:"cart_items,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders        []Order        `json:"orders,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reviews       []Review       `json:"reviews,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Notifications []Notification `json:"notifications,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
