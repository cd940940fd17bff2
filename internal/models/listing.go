// internal/models/listing.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ProductListing is one platform's sale instance of a Product. Prices are
// decimal(10,2); they must never round-trip through float64, best-deal
// selection relies on exact comparison.
type ProductListing struct {
	ID                uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID         uuid.UUID        `json:"product_id" gorm:"type:uuid;not null;index"`
	Platform          string           `json:"platform" gorm:"type:text;not null"`
	PlatformProductID string           `json:"platform_product_id" gorm:"type:text;not null"`
	URL               string           `json:"url" gorm:"type:text;not null"`
	Price             Money            `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice     *Money           `json:"original_price,omitempty" gorm:"type:decimal(10,2)"`
	ShippingDays      *int             `json:"shipping_days,omitempty"`
	ShippingCost      *Money           `json:"shipping_cost,omitempty" gorm:"type:decimal(10,2)"`
	InStock           bool             `json:"in_stock" gorm:"default:true"`
	Rating            *decimal.Decimal `json:"rating,omitempty" gorm:"type:decimal(3,2)"`
	ReviewCount       int              `json:"review_count" gorm:"default:0"`
	Features          pq.StringArray   `json:"features,omitempty" gorm:"type:text[]"`
	LastUpdated       time.Time        `json:"last_updated" gorm:"autoUpdateTime"`

	// Relationships
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:ProductListingID"`
}

// PlatformTag maps the stored free-text platform onto the closed set the
// presentation layer renders, falling back to PlatformUnknown.
func (l *ProductListing) PlatformTag() Platform {
	return ParsePlatform(l.Platform)
}

// FreeShipping reports whether shipping is free: treated as free when the
// cost is absent or zero.
func (l *ProductListing) FreeShipping() bool {
	return l.ShippingCost == nil || l.ShippingCost.IsZero()
}
