// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url" gorm:"size:500"`
}
