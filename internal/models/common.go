// internal/models/common.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
}

// Enums

// Platform identifies the e-commerce site a listing was scraped from.
// The column is free text, so anything outside the known set parses to
// PlatformUnknown rather than failing.
type Platform string

const (
	PlatformAmazon   Platform = "amazon"
	PlatformFlipkart Platform = "flipkart"
	PlatformMyntra   Platform = "myntra"
	PlatformMeesho   Platform = "meesho"
	PlatformUnknown  Platform = "unknown"
)

func ParsePlatform(s string) Platform {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformAmazon:
		return PlatformAmazon
	case PlatformFlipkart:
		return PlatformFlipkart
	case PlatformMyntra:
		return PlatformMyntra
	case PlatformMeesho:
		return PlatformMeesho
	default:
		return PlatformUnknown
	}
}

func KnownPlatforms() []Platform {
	return []Platform{PlatformAmazon, PlatformFlipkart, PlatformMyntra, PlatformMeesho}
}

// Review sentiment values. Stored as free text, these are conventions
// rather than an enforced enum.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)
