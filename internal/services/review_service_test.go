// internal/services/review_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/pricewise/pricewise-backend/internal/models"
	"github.com/pricewise/pricewise-backend/internal/store"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	store   *store.MemoryStore
	service *ReviewService
	listing *models.ProductListing
}

func (suite *ReviewServiceTestSuite) SetupTest() {
	suite.store = store.NewMemoryStore()
	suite.service = NewReviewService(suite.store, suite.store)

	ctx := context.Background()
	product := &models.Product{Name: "Kindle Paperwhite", Category: "Electronics"}
	suite.Require().NoError(suite.store.CreateProduct(ctx, product))

	suite.listing = &models.ProductListing{
		ProductID: product.ID,
		Platform:  "amazon",
		Price:     models.NewMoney(decimal.RequireFromString("13999.00")),
	}
	suite.Require().NoError(suite.store.CreateListing(ctx, suite.listing))
}

func (suite *ReviewServiceTestSuite) TestCreateAndFetchReview() {
	review, err := suite.service.CreateReview(context.Background(), suite.listing.ID.String(), &CreateReviewRequest{
		ReviewText:   "Battery lasts weeks",
		Rating:       5,
		ReviewerName: "Ravi",
		Sentiment:    "positive",
	})
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, review.ID)

	reviews, err := suite.service.GetListingReviews(context.Background(), suite.listing.ID.String())
	suite.Require().NoError(err)
	suite.Require().Len(reviews, 1)
	suite.Equal("Battery lasts weeks", reviews[0].ReviewText)
}

func (suite *ReviewServiceTestSuite) TestCreateReviewRatingOutOfRange() {
	for _, rating := range []int{0, 6} {
		_, err := suite.service.CreateReview(context.Background(), suite.listing.ID.String(), &CreateReviewRequest{
			ReviewText: "bad rating",
			Rating:     rating,
		})
		suite.Error(err, "rating %d", rating)
	}
}

func (suite *ReviewServiceTestSuite) TestCreateReviewUnknownListing() {
	_, err := suite.service.CreateReview(context.Background(), uuid.NewString(), &CreateReviewRequest{
		ReviewText: "no listing",
		Rating:     3,
	})
	suite.ErrorIs(err, store.ErrNotFound)
}

func (suite *ReviewServiceTestSuite) TestGetListingReviewsMalformedID() {
	_, err := suite.service.GetListingReviews(context.Background(), "nope")
	suite.ErrorIs(err, store.ErrNotFound)
}

func TestReviewServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}

func TestCategoryService(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemoryStore()
	service := NewCategoryService(m)

	electronics, err := service.CreateCategory(ctx, &CreateCategoryRequest{
		Name: "Electronics", Slug: "electronics", Icon: "laptop", IsPopular: true,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, electronics.ID)

	_, err = service.CreateCategory(ctx, &CreateCategoryRequest{
		Name: "Books", Slug: "books", Icon: "book",
	})
	require.NoError(t, err)

	all, err := service.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	popular, err := service.GetPopularCategories(ctx)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	require.Equal(t, "Electronics", popular[0].Name)
}
