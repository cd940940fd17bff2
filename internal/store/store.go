// internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pricewise/pricewise-backend/internal/models"
)

// ErrNotFound is returned by every lookup whose target does not exist.
// Callers distinguish it from transport failures with errors.Is.
var ErrNotFound = errors.New("record not found")

const (
	DefaultProductLimit = 50
	SearchLimit         = 20
	ReviewPageSize      = 10
)

// CatalogStore owns Product and ProductListing persistence.
type CatalogStore interface {
	GetProducts(ctx context.Context, limit int) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductByName(ctx context.Context, name string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	// SearchProducts matches the query case-insensitively as a substring of
	// name, description or brand. Results are capped at limit.
	SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error)

	GetListing(ctx context.Context, id uuid.UUID) (*models.ProductListing, error)
	// GetListingsForProduct returns the product's listings ascending by price.
	GetListingsForProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductListing, error)
	CreateListing(ctx context.Context, listing *models.ProductListing) error
	UpdateListing(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.ProductListing, error)
}

// ReviewStore owns Review persistence, keyed by listing.
type ReviewStore interface {
	// GetReviewsForListing returns up to limit reviews, most recent first.
	// A listing with no reviews yields an empty slice, never an error.
	GetReviewsForListing(ctx context.Context, listingID uuid.UUID, limit int) ([]models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) error
}

type CategoryStore interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetPopularCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
}

type ComparisonStore interface {
	GetComparison(ctx context.Context, id uuid.UUID) (*models.Comparison, error)
	CreateComparison(ctx context.Context, comparison *models.Comparison) error
	GetUserComparisons(ctx context.Context, userID uuid.UUID) ([]models.Comparison, error)
}

type UserStore interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

// Store bundles the per-entity interfaces. The GORM and in-memory
// implementations both satisfy it.
type Store interface {
	CatalogStore
	ReviewStore
	CategoryStore
	ComparisonStore
	UserStore
}
