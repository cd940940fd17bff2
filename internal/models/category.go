// internal/models/category.go
package models

import (
	"github.com/google/uuid"
)

// Category is an independent browse entity. Product.Category is free text
// and does not reference this table.
type Category struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:text;not null;uniqueIndex"`
	Slug        string    `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Icon        string    `json:"icon" gorm:"type:text;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	IsPopular   bool      `json:"is_popular" gorm:"default:false"`
}
