// internal/store/memory.go
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/pricewise/pricewise-backend/internal/models"
)

// MemoryStore is a map-backed Store used by tests and demo mode. It mirrors
// the GormStore ordering contracts: products newest first, listings ascending
// by price, reviews most recent first.
type MemoryStore struct {
	mu          sync.RWMutex
	products    map[uuid.UUID]models.Product
	listings    map[uuid.UUID]models.ProductListing
	reviews     map[uuid.UUID]models.Review
	categories  map[uuid.UUID]models.Category
	comparisons map[uuid.UUID]models.Comparison
	users       map[uuid.UUID]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:    make(map[uuid.UUID]models.Product),
		listings:    make(map[uuid.UUID]models.ProductListing),
		reviews:     make(map[uuid.UUID]models.Review),
		categories:  make(map[uuid.UUID]models.Category),
		comparisons: make(map[uuid.UUID]models.Comparison),
		users:       make(map[uuid.UUID]models.User),
	}
}

// Products

func (m *MemoryStore) GetProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultProductLimit
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, p)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})

	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (m *MemoryStore) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	product, exists := m.products[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (m *MemoryStore) GetProductByName(ctx context.Context, name string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.products {
		if p.Name == name {
			product := p
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateProduct(ctx context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	m.products[product.ID] = *product
	return nil
}

func (m *MemoryStore) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = SearchLimit
	}
	needle := strings.ToLower(query)

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matches []models.Product
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Brand), needle) {
			matches = append(matches, p)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Listings

func (m *MemoryStore) GetListing(ctx context.Context, id uuid.UUID) (*models.ProductListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	listing, exists := m.listings[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &listing, nil
}

func (m *MemoryStore) GetListingsForProduct(ctx context.Context, productID uuid.UUID) ([]models.ProductListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	listings := []models.ProductListing{}
	for _, l := range m.listings {
		if l.ProductID == productID {
			listings = append(listings, l)
		}
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].Price.LessThan(listings[j].Price.Decimal)
	})
	return listings, nil
}

func (m *MemoryStore) CreateListing(ctx context.Context, listing *models.ProductListing) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	if listing.LastUpdated.IsZero() {
		listing.LastUpdated = time.Now()
	}
	m.listings[listing.ID] = *listing
	return nil
}

func (m *MemoryStore) UpdateListing(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.ProductListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	listing, exists := m.listings[id]
	if !exists {
		return nil, ErrNotFound
	}

	applyListingUpdates(&listing, updates)
	listing.LastUpdated = time.Now()
	m.listings[id] = listing
	return &listing, nil
}

// applyListingUpdates mirrors the column-keyed update maps the GORM path
// uses. Unknown keys are ignored.
func applyListingUpdates(listing *models.ProductListing, updates map[string]interface{}) {
	for column, value := range updates {
		switch column {
		case "price":
			if m, ok := value.(models.Money); ok {
				listing.Price = m
			}
		case "original_price":
			if m, ok := value.(*models.Money); ok {
				listing.OriginalPrice = m
			}
		case "shipping_days":
			if n, ok := value.(*int); ok {
				listing.ShippingDays = n
			}
		case "shipping_cost":
			if m, ok := value.(*models.Money); ok {
				listing.ShippingCost = m
			}
		case "in_stock":
			if b, ok := value.(bool); ok {
				listing.InStock = b
			}
		case "rating":
			if d, ok := value.(*decimal.Decimal); ok {
				listing.Rating = d
			}
		case "review_count":
			if n, ok := value.(int); ok {
				listing.ReviewCount = n
			}
		case "url":
			if s, ok := value.(string); ok {
				listing.URL = s
			}
		case "features":
			if f, ok := value.(pq.StringArray); ok {
				listing.Features = f
			}
		}
	}
}

// Reviews

func (m *MemoryStore) GetReviewsForListing(ctx context.Context, listingID uuid.UUID, limit int) ([]models.Review, error) {
	if limit <= 0 {
		limit = ReviewPageSize
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	reviews := []models.Review{}
	for _, r := range m.reviews {
		if r.ProductListingID == listingID {
			reviews = append(reviews, r)
		}
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})

	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

func (m *MemoryStore) CreateReview(ctx context.Context, review *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	m.reviews[review.ID] = *review
	return nil
}

// Categories

func (m *MemoryStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	categories := make([]models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		categories = append(categories, c)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (m *MemoryStore) GetPopularCategories(ctx context.Context) ([]models.Category, error) {
	categories, _ := m.GetCategories(ctx)

	popular := []models.Category{}
	for _, c := range categories {
		if c.IsPopular {
			popular = append(popular, c)
		}
	}
	return popular, nil
}

func (m *MemoryStore) CreateCategory(ctx context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m.categories[category.ID] = *category
	return nil
}

// Comparisons

func (m *MemoryStore) GetComparison(ctx context.Context, id uuid.UUID) (*models.Comparison, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comparison, exists := m.comparisons[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &comparison, nil
}

func (m *MemoryStore) CreateComparison(ctx context.Context, comparison *models.Comparison) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if comparison.ID == uuid.Nil {
		comparison.ID = uuid.New()
	}
	if comparison.CreatedAt.IsZero() {
		comparison.CreatedAt = time.Now()
	}
	m.comparisons[comparison.ID] = *comparison
	return nil
}

func (m *MemoryStore) GetUserComparisons(ctx context.Context, userID uuid.UUID) ([]models.Comparison, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	comparisons := []models.Comparison{}
	for _, c := range m.comparisons {
		if c.UserID != nil && *c.UserID == userID {
			comparisons = append(comparisons, c)
		}
	}
	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[i].CreatedAt.After(comparisons[j].CreatedAt)
	})
	return comparisons, nil
}

// Users

func (m *MemoryStore) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.ID] = *user
	return nil
}
