// internal/services/comparison_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pricewise/pricewise-backend/internal/models"
	"github.com/pricewise/pricewise-backend/internal/store"
	"github.com/pricewise/pricewise-backend/internal/utils"
)

// ComparisonService aggregates one product's listings across platforms and
// picks the lowest-price listing as the best deal.
type ComparisonService struct {
	catalog     store.CatalogStore
	reviews     store.ReviewStore
	comparisons store.ComparisonStore
}

func NewComparisonService(catalog store.CatalogStore, reviews store.ReviewStore, comparisons store.ComparisonStore) *ComparisonService {
	return &ComparisonService{
		catalog:     catalog,
		reviews:     reviews,
		comparisons: comparisons,
	}
}

// ListingEntry is a resolved listing together with its most recent reviews.
type ListingEntry struct {
	models.ProductListing
	Reviews []models.Review `json:"reviews"`
}

// ComparisonResult is the consolidated comparison view. BestDeal is nil when
// no listing resolved; that is a valid empty result, not an error.
type ComparisonResult struct {
	Product  *models.Product `json:"product"`
	Listings []ListingEntry  `json:"listings"`
	BestDeal *ListingEntry   `json:"bestDeal"`
}

// Compare resolves the product, then each caller-supplied listing id with its
// reviews. Listing resolutions are independent and fan out concurrently;
// results are collected positionally so input order is preserved. Ids that do
// not resolve (including malformed ones) are dropped silently. Only the
// product lookup can fail with store.ErrNotFound; store transport errors
// propagate unchanged.
func (s *ComparisonService) Compare(ctx context.Context, productID string, listingIDs []string) (*ComparisonResult, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", productID, store.ErrNotFound)
	}

	product, err := s.catalog.GetProduct(ctx, pid)
	if err != nil {
		return nil, err
	}

	// Fan out listing+review resolution, one slot per input id. Failed slots
	// stay nil and are dropped after the join, so successes keep their
	// relative order.
	entries := make([]*ListingEntry, len(listingIDs))
	errs := make([]error, len(listingIDs))

	var wg sync.WaitGroup
	for i, rawID := range listingIDs {
		wg.Add(1)
		go func(i int, rawID string) {
			defer wg.Done()

			id, err := uuid.Parse(rawID)
			if err != nil {
				errs[i] = store.ErrNotFound
				return
			}

			listing, err := s.catalog.GetListing(ctx, id)
			if err != nil {
				errs[i] = err
				return
			}

			reviews, err := s.reviews.GetReviewsForListing(ctx, id, store.ReviewPageSize)
			if err != nil {
				errs[i] = err
				return
			}

			entries[i] = &ListingEntry{ProductListing: *listing, Reviews: reviews}
		}(i, rawID)
	}
	wg.Wait()

	resolved := make([]ListingEntry, 0, len(listingIDs))
	dropped := 0
	for i, entry := range entries {
		if entry != nil {
			resolved = append(resolved, *entry)
			continue
		}
		if !errors.Is(errs[i], store.ErrNotFound) {
			return nil, errs[i]
		}
		dropped++
	}

	if dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"product_id": productID,
			"requested":  len(listingIDs),
			"dropped":    dropped,
		}).Debug("Dropped unresolvable listings from comparison")
	}

	return &ComparisonResult{
		Product:  product,
		Listings: resolved,
		BestDeal: bestDealEntry(resolved),
	}, nil
}

// SelectBestDeal returns the listing with the minimum price, the first one on
// ties, or nil for an empty slice. Comparison is exact decimal, never float.
func SelectBestDeal(listings []models.ProductListing) *models.ProductListing {
	var best *models.ProductListing
	for i := range listings {
		if best == nil || listings[i].Price.LessThan(best.Price.Decimal) {
			best = &listings[i]
		}
	}
	return best
}

type SaveComparisonRequest struct {
	ProductID  string   `json:"product_id" validate:"required,uuid"`
	ListingIDs []string `json:"listing_ids" validate:"required,min=1,dive,uuid"`
}

// SaveComparison persists the set of listing ids a user compared. The write
// is independent of the read path; it never feeds back into Compare.
func (s *ComparisonService) SaveComparison(ctx context.Context, userID *uuid.UUID, req *SaveComparisonRequest) (*models.Comparison, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pid, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", req.ProductID, store.ErrNotFound)
	}
	if _, err := s.catalog.GetProduct(ctx, pid); err != nil {
		return nil, err
	}

	comparison := &models.Comparison{
		UserID:           userID,
		ProductID:        pid,
		SelectedListings: req.ListingIDs,
	}
	if err := s.comparisons.CreateComparison(ctx, comparison); err != nil {
		return nil, err
	}

	return comparison, nil
}

func (s *ComparisonService) GetUserComparisons(ctx context.Context, userID uuid.UUID) ([]models.Comparison, error) {
	return s.comparisons.GetUserComparisons(ctx, userID)
}

func (s *ComparisonService) GetComparison(ctx context.Context, id string) (*models.Comparison, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("comparison %q: %w", id, store.ErrNotFound)
	}
	return s.comparisons.GetComparison(ctx, cid)
}

func bestDealEntry(entries []ListingEntry) *ListingEntry {
	var best *ListingEntry
	for i := range entries {
		if best == nil || entries[i].Price.LessThan(best.Price.Decimal) {
			best = &entries[i]
		}
	}
	return best
}
