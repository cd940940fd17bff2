// internal/services/review_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pricewise/pricewise-backend/internal/models"
	"github.com/pricewise/pricewise-backend/internal/store"
	"github.com/pricewise/pricewise-backend/internal/utils"
)

type ReviewService struct {
	catalog store.CatalogStore
	reviews store.ReviewStore
}

type CreateReviewRequest struct {
	ReviewText   string `json:"review_text" validate:"required,min=3"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewerName string `json:"reviewer_name,omitempty"`
	Sentiment    string `json:"sentiment,omitempty" validate:"omitempty,oneof=positive negative neutral"`
	Helpful      bool   `json:"helpful,omitempty"`
}

func NewReviewService(catalog store.CatalogStore, reviews store.ReviewStore) *ReviewService {
	return &ReviewService{
		catalog: catalog,
		reviews: reviews,
	}
}

// GetListingReviews returns the listing's 10 most recent reviews. A listing
// with none yields an empty slice.
func (s *ReviewService) GetListingReviews(ctx context.Context, listingID string) ([]models.Review, error) {
	lid, err := uuid.Parse(listingID)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", listingID, store.ErrNotFound)
	}

	if _, err := s.catalog.GetListing(ctx, lid); err != nil {
		return nil, err
	}
	return s.reviews.GetReviewsForListing(ctx, lid, store.ReviewPageSize)
}

func (s *ReviewService) CreateReview(ctx context.Context, listingID string, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	lid, err := uuid.Parse(listingID)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", listingID, store.ErrNotFound)
	}
	if _, err := s.catalog.GetListing(ctx, lid); err != nil {
		return nil, err
	}

	review := &models.Review{
		ProductListingID: lid,
		ReviewText:       req.ReviewText,
		Rating:           req.Rating,
		ReviewerName:     req.ReviewerName,
		Sentiment:        req.Sentiment,
		Helpful:          req.Helpful,
	}
	if err := s.reviews.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}
