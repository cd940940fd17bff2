// internal/models/product.go
package models

// Product is a catalog item. Category is free text and carries no foreign
// key to the Category table; the two are independent concepts in the schema.
type Product struct {
	BaseModel
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Category    string `json:"category" gorm:"type:text;not null;index"`
	Brand       string `json:"brand,omitempty" gorm:"type:text"`
	Image       string `json:"image,omitempty" gorm:"type:text"`

	// Relationships
	Listings []ProductListing `json:"listings,omitempty" gorm:"foreignKey:ProductID"`
}
