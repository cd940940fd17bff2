// internal/models/comparison.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Comparison is a persisted snapshot of listing ids a user compared for a
// product. The aggregation itself is computed on demand; saving one is
// fire-and-forget relative to the read path.
type Comparison struct {
	BaseModel
	UserID           *uuid.UUID     `json:"user_id,omitempty" gorm:"type:uuid;index"`
	ProductID        uuid.UUID      `json:"product_id" gorm:"type:uuid;not null;index"`
	SelectedListings pq.StringArray `json:"selected_listings" gorm:"type:text[]"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
