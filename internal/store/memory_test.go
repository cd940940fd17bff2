// internal/store/memory_test.go
package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricewise/pricewise-backend/internal/models"
)

func TestMemoryStoreProductNotFound(t *testing.T) {
	m := NewMemoryStore()

	_, err := m.GetProduct(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.GetListing(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListingsOrderedByPriceAscending(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	product := &models.Product{Name: "Running Shoes", Category: "Footwear"}
	require.NoError(t, m.CreateProduct(ctx, product))

	for _, price := range []string{"2499.00", "1999.00", "2199.00"} {
		require.NoError(t, m.CreateListing(ctx, &models.ProductListing{
			ProductID: product.ID,
			Platform:  "amazon",
			Price:     models.NewMoney(decimal.RequireFromString(price)),
		}))
	}

	listings, err := m.GetListingsForProduct(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, "1999.00", listings[0].Price.StringFixed(2))
	assert.Equal(t, "2199.00", listings[1].Price.StringFixed(2))
	assert.Equal(t, "2499.00", listings[2].Price.StringFixed(2))
}

func TestMemoryStoreReviewsNewestFirstAndCapped(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	listingID := uuid.New()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < ReviewPageSize+5; i++ {
		review := &models.Review{
			ProductListingID: listingID,
			ReviewText:       "review",
			Rating:           4,
		}
		review.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, m.CreateReview(ctx, review))
	}

	reviews, err := m.GetReviewsForListing(ctx, listingID, ReviewPageSize)
	require.NoError(t, err)
	require.Len(t, reviews, ReviewPageSize)
	for i := 1; i < len(reviews); i++ {
		assert.False(t, reviews[i].CreatedAt.After(reviews[i-1].CreatedAt))
	}
}

func TestMemoryStoreSearchProducts(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.CreateProduct(ctx, &models.Product{Name: "iPhone 15", Category: "Electronics", Brand: "Apple"}))
	require.NoError(t, m.CreateProduct(ctx, &models.Product{Name: "Galaxy S24", Category: "Electronics", Brand: "Samsung", Description: "flagship phone"}))

	byName, err := m.SearchProducts(ctx, "iphone", SearchLimit)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "iPhone 15", byName[0].Name)

	byDescription, err := m.SearchProducts(ctx, "flagship", SearchLimit)
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Galaxy S24", byDescription[0].Name)

	both, err := m.SearchProducts(ctx, "phone", SearchLimit)
	require.NoError(t, err)
	assert.Len(t, both, 2)
}

func TestMemoryStoreUpdateListing(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	listing := &models.ProductListing{
		ProductID: uuid.New(),
		Platform:  "flipkart",
		Price:     models.NewMoney(decimal.RequireFromString("500.00")),
		InStock:   true,
	}
	require.NoError(t, m.CreateListing(ctx, listing))

	updated, err := m.UpdateListing(ctx, listing.ID, map[string]interface{}{
		"price":    models.NewMoney(decimal.RequireFromString("450.00")),
		"in_stock": false,
	})
	require.NoError(t, err)
	assert.Equal(t, "450.00", updated.Price.StringFixed(2))
	assert.False(t, updated.InStock)

	_, err = m.UpdateListing(ctx, uuid.New(), map[string]interface{}{"in_stock": true})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUserComparisons(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, m.CreateComparison(ctx, &models.Comparison{
		UserID:           &userID,
		ProductID:        uuid.New(),
		SelectedListings: []string{uuid.NewString()},
	}))
	require.NoError(t, m.CreateComparison(ctx, &models.Comparison{
		ProductID:        uuid.New(),
		SelectedListings: []string{uuid.NewString()},
	}))

	comparisons, err := m.GetUserComparisons(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, comparisons, 1)
}
