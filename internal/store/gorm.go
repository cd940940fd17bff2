// internal/store/gorm.go
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pricewise/pricewise-backend/internal/models"
)

// GormStore is the PostgreSQL-backed Store implementation.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Products

func (s *GormStore) GetProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultProductLimit
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

func (s *GormStore) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	return &product, nil
}

func (s *GormStore) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch product by name: %w", err)
	}

	return &product, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *GormStore) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = SearchLimit
	}

	searchTerm := "%" + strings.ToLower(query) + "%"

	var products []models.Product
	if err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?",
			searchTerm, searchTerm, searchTerm).
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return products, nil
}

// Listings

func (s *GormStore) GetListing(ctx context.Context, id uuid.UUID) (*models.ProductListing, error) {
	var listing models.ProductListing
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}

	return &listing, nil
}

func (s *GormStore) GetListingsForProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductListing, error) {
	var listings []models.ProductListing
	if err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("price ASC").
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch product listings: %w", err)
	}

	return listings, nil
}

func (s *GormStore) CreateListing(ctx context.Context, listing *models.ProductListing) error {
	if err := s.db.WithContext(ctx).Create(listing).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateListing(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.ProductListing, error) {
	var listing models.ProductListing
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}

	updates["last_updated"] = time.Now()
	if err := s.db.WithContext(ctx).Model(&listing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	return &listing, nil
}

// Reviews

func (s *GormStore) GetReviewsForListing(ctx context.Context, listingID uuid.UUID, limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = ReviewPageSize
	}

	reviews := []models.Review{}
	if err := s.db.WithContext(ctx).
		Where("product_listing_id = ?", listingID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, nil
}

func (s *GormStore) CreateReview(ctx context.Context, review *models.Review) error {
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Categories

func (s *GormStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

func (s *GormStore) GetPopularCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).
		Where("is_popular = ?", true).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch popular categories: %w", err)
	}

	return categories, nil
}

func (s *GormStore) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Comparisons

func (s *GormStore) GetComparison(ctx context.Context, id uuid.UUID) (*models.Comparison, error) {
	var comparison models.Comparison
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&comparison).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch comparison: %w", err)
	}

	return &comparison, nil
}

func (s *GormStore) CreateComparison(ctx context.Context, comparison *models.Comparison) error {
	if err := s.db.WithContext(ctx).Create(comparison).Error; err != nil {
		return fmt.Errorf("failed to create comparison: %w", err)
	}
	return nil
}

func (s *GormStore) GetUserComparisons(ctx context.Context, userID uuid.UUID) ([]models.Comparison, error) {
	comparisons := []models.Comparison{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Product").
		Find(&comparisons).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch user comparisons: %w", err)
	}

	return comparisons, nil
}

// Users

func (s *GormStore) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by username: %w", err)
	}

	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
