// internal/models/review.go
package models

import (
	"github.com/google/uuid"
)

// Review belongs to exactly one ProductListing. Rating is 1-5 by
// convention; the range is not enforced here.
type Review struct {
	BaseModel
	ProductListingID uuid.UUID `json:"product_listing_id" gorm:"type:uuid;not null;index"`
	ReviewText       string    `json:"review_text" gorm:"type:text;not null"`
	Rating           int       `json:"rating" gorm:"not null"`
	ReviewerName     string    `json:"reviewer_name,omitempty" gorm:"type:text"`
	Sentiment        string    `json:"sentiment,omitempty" gorm:"type:text"`
	Helpful          bool      `json:"helpful" gorm:"default:false"`
}
