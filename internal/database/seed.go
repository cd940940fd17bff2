// internal/database/seed.go
package database

import (
	"fmt"
	"math/rand"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pricewise/pricewise-backend/internal/models"
)

// SeedInitialData populates an empty database with sample catalog data so
// the frontend has something to render. Idempotent: a non-empty products
// table skips seeding entirely.
func SeedInitialData(db *gorm.DB) error {
	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to check existing products: %w", err)
	}
	if productCount > 0 {
		logrus.Info("Database already seeded, skipping")
		return nil
	}

	logrus.Info("Seeding database with sample data...")

	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics", Icon: "smartphone", IsPopular: true},
		{Name: "Fashion", Slug: "fashion", Icon: "shirt", IsPopular: true},
		{Name: "Home & Garden", Slug: "home-garden", Icon: "home", IsPopular: true},
		{Name: "Books", Slug: "books", Icon: "book", IsPopular: false},
		{Name: "Sports", Slug: "sports", Icon: "dumbbell", IsPopular: true},
		{Name: "Gaming", Slug: "gaming", Icon: "gamepad", IsPopular: true},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	type seedProduct struct {
		product   models.Product
		basePrice int64
	}

	seedProducts := []seedProduct{
		{
			product: models.Product{
				Name:        "ASUS VivoBook 14",
				Description: "14-inch laptop with Intel Core i5, 8GB RAM, 512GB SSD",
				Category:    "Electronics",
				Brand:       "ASUS",
				Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=300&fit=crop",
			},
			basePrice: 45999,
		},
		{
			product: models.Product{
				Name:        "Samsung Galaxy S24",
				Description: "Latest flagship smartphone with AI features and 50MP camera",
				Category:    "Electronics",
				Brand:       "Samsung",
				Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=300&fit=crop",
			},
			basePrice: 79999,
		},
		{
			product: models.Product{
				Name:        "Nike Air Max 270",
				Description: "Comfortable running shoes with Air Max technology",
				Category:    "Fashion",
				Brand:       "Nike",
				Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=300&fit=crop",
			},
			basePrice: 8999,
		},
		{
			product: models.Product{
				Name:        "iPhone 15 Pro",
				Description: "Premium smartphone with titanium design and A17 Pro chip",
				Category:    "Electronics",
				Brand:       "Apple",
				Image:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400&h=300&fit=crop",
			},
			basePrice: 134900,
		},
		{
			product: models.Product{
				Name:        "Sony WH-1000XM5",
				Description: "Wireless noise-canceling headphones with premium sound quality",
				Category:    "Electronics",
				Brand:       "Sony",
				Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
			},
			basePrice: 29990,
		},
		{
			product: models.Product{
				Name:        "Adidas Ultraboost 22",
				Description: "High-performance running shoes with Boost technology",
				Category:    "Fashion",
				Brand:       "Adidas",
				Image:       "https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=400&h=300&fit=crop",
			},
			basePrice: 16999,
		},
	}

	platformBadges := map[models.Platform]string{
		models.PlatformAmazon:   "Amazon's Choice",
		models.PlatformFlipkart: "Flipkart Assured",
		models.PlatformMyntra:   "Myntra Insider",
		models.PlatformMeesho:   "Meesho Guarantee",
	}

	for _, sp := range seedProducts {
		product := sp.product
		if err := db.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", product.Name, err)
		}

		for i, platform := range models.KnownPlatforms() {
			// ±10% price variation, 0-30% markup for the struck-through price
			variation := (rand.Float64() - 0.5) * 0.2
			price := decimal.NewFromInt(sp.basePrice).
				Mul(decimal.NewFromFloat(1 + variation)).
				Round(2)
			originalPrice := price.
				Mul(decimal.NewFromFloat(1 + rand.Float64()*0.3)).
				Round(2)

			shippingDays := rand.Intn(7) + 1
			shippingCost := models.NewMoney(decimal.Zero)
			if rand.Intn(2) == 0 {
				shippingCost = models.NewMoney(decimal.NewFromInt(int64(rand.Intn(200))))
			}
			rating := decimal.NewFromFloat(3.5 + rand.Float64()*1.5).Round(1)

			listing := models.ProductListing{
				ProductID:         product.ID,
				Platform:          string(platform),
				PlatformProductID: fmt.Sprintf("%s_%s_%d", platform, product.ID, i),
				URL:               fmt.Sprintf("https://%s.com/product/%s", platform, product.ID),
				Price:             models.NewMoney(price),
				OriginalPrice:     &models.Money{Decimal: originalPrice},
				ShippingDays:      &shippingDays,
				ShippingCost:      &shippingCost,
				InStock:           true,
				Rating:            &rating,
				ReviewCount:       rand.Intn(5000) + 100,
				Features: pq.StringArray{
					"Free delivery",
					"1 year warranty",
					"Easy returns",
					platformBadges[platform],
				},
			}
			if err := db.Create(&listing).Error; err != nil {
				return fmt.Errorf("failed to seed listing for %s: %w", product.Name, err)
			}

			reviews := []models.Review{
				{
					ProductListingID: listing.ID,
					ReviewText:       "Great product, exactly as described. Fast delivery and good packaging.",
					Rating:           5,
					ReviewerName:     "Verified Buyer",
					Sentiment:        string(models.SentimentPositive),
					Helpful:          true,
				},
				{
					ProductListingID: listing.ID,
					ReviewText:       "Good value for money. Minor issues but overall satisfied.",
					Rating:           4,
					ReviewerName:     "Customer",
					Sentiment:        string(models.SentimentPositive),
					Helpful:          true,
				},
				{
					ProductListingID: listing.ID,
					ReviewText:       "Average product. Could be better for the price.",
					Rating:           3,
					ReviewerName:     "User123",
					Sentiment:        string(models.SentimentNeutral),
					Helpful:          false,
				},
			}
			if err := db.Create(&reviews).Error; err != nil {
				return fmt.Errorf("failed to seed reviews: %w", err)
			}
		}
	}

	logrus.Info("Database seeded successfully")
	return nil
}
