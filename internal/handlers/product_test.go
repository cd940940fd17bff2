// internal/handlers/product_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/pricewise/pricewise-backend/internal/models"
	"github.com/pricewise/pricewise-backend/internal/services"
	"github.com/pricewise/pricewise-backend/internal/store"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	store  *store.MemoryStore
	router *gin.Engine

	iphone *models.Product
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.store = store.NewMemoryStore()
	catalogService := services.NewCatalogService(suite.store)
	reviewService := services.NewReviewService(suite.store, suite.store)
	productHandler := NewProductHandler(catalogService, nil)
	reviewHandler := NewReviewHandler(reviewService)

	suite.router = gin.New()
	suite.router.GET("/api/products", productHandler.GetProducts)
	suite.router.GET("/api/products/search", productHandler.SearchProducts)
	suite.router.GET("/api/products/:id", productHandler.GetProduct)
	suite.router.GET("/api/products/:id/listings", productHandler.GetProductListings)
	suite.router.GET("/api/listings/:id/reviews", reviewHandler.GetListingReviews)

	ctx := context.Background()
	suite.iphone = &models.Product{Name: "iPhone 15", Category: "Electronics", Brand: "Apple"}
	suite.Require().NoError(suite.store.CreateProduct(ctx, suite.iphone))
	suite.Require().NoError(suite.store.CreateProduct(ctx, &models.Product{
		Name: "Samsung Galaxy S24", Category: "Electronics", Brand: "Samsung",
	}))
}

func (suite *ProductHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProductHandlerTestSuite) TestGetProducts() {
	w := suite.get("/api/products")
	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Products []models.Product `json:"products"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.Success)
	suite.Len(response.Data.Products, 2)
}

func (suite *ProductHandlerTestSuite) TestSearchProducts() {
	w := suite.get("/api/products/search?q=ip")
	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Products []models.Product `json:"products"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Data.Products, 1)
	suite.Equal("iPhone 15", response.Data.Products[0].Name)
}

func (suite *ProductHandlerTestSuite) TestSearchQueryTooShort() {
	w := suite.get("/api/products/search?q=a")
	suite.Equal(http.StatusBadRequest, w.Code)

	var response struct {
		Success bool `json:"success"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.False(response.Success)
	suite.Contains(response.Error.Message, "at least 2 characters")
}

func (suite *ProductHandlerTestSuite) TestGetProductNotFound() {
	suite.Equal(http.StatusNotFound, suite.get("/api/products/"+uuid.NewString()).Code)
	suite.Equal(http.StatusNotFound, suite.get("/api/products/not-a-uuid").Code)
}

func (suite *ProductHandlerTestSuite) TestGetProductListings() {
	ctx := context.Background()
	listing := &models.ProductListing{
		ProductID: suite.iphone.ID,
		Platform:  "amazon",
		Price:     models.NewMoney(decimal.RequireFromString("79999.00")),
		InStock:   true,
	}
	suite.Require().NoError(suite.store.CreateListing(ctx, listing))

	w := suite.get("/api/products/" + suite.iphone.ID.String() + "/listings")
	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Listings []map[string]interface{} `json:"listings"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Data.Listings, 1)
	suite.Equal("79999.00", response.Data.Listings[0]["price"])
}

func (suite *ProductHandlerTestSuite) TestGetListingReviews() {
	ctx := context.Background()
	listing := &models.ProductListing{
		ProductID: suite.iphone.ID,
		Platform:  "flipkart",
		Price:     models.NewMoney(decimal.RequireFromString("78999.00")),
	}
	suite.Require().NoError(suite.store.CreateListing(ctx, listing))
	suite.Require().NoError(suite.store.CreateReview(ctx, &models.Review{
		ProductListingID: listing.ID,
		ReviewText:       "Great phone",
		Rating:           5,
	}))

	w := suite.get("/api/listings/" + listing.ID.String() + "/reviews")
	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Reviews []models.Review `json:"reviews"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Data.Reviews, 1)
	suite.Equal(5, response.Data.Reviews[0].Rating)
}

func (suite *ProductHandlerTestSuite) TestGetListingReviewsUnknownListing() {
	suite.Equal(http.StatusNotFound, suite.get("/api/listings/"+uuid.NewString()+"/reviews").Code)
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func TestUploadImagesWithoutStorage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewProductHandler(services.NewCatalogService(store.NewMemoryStore()), nil)
	r := gin.New()
	r.POST("/api/products/upload-images", handler.UploadProductImages)

	req, _ := http.NewRequest("POST", "/api/products/upload-images", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "STORAGE_UNAVAILABLE")
}
