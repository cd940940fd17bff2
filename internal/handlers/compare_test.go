// internal/handlers/compare_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/pricewise/pricewise-backend/internal/models"
	"github.com/pricewise/pricewise-backend/internal/services"
	"github.com/pricewise/pricewise-backend/internal/store"
)

type CompareHandlerTestSuite struct {
	suite.Suite
	store  *store.MemoryStore
	router *gin.Engine

	product  *models.Product
	listings []*models.ProductListing
}

func (suite *CompareHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.store = store.NewMemoryStore()
	comparisonService := services.NewComparisonService(suite.store, suite.store, suite.store)
	compareHandler := NewCompareHandler(comparisonService)

	suite.router = gin.New()
	suite.router.POST("/api/compare", compareHandler.Compare)

	ctx := context.Background()
	suite.product = &models.Product{Name: "boAt Airdopes 141", Category: "Electronics", Brand: "boAt"}
	suite.Require().NoError(suite.store.CreateProduct(ctx, suite.product))

	suite.listings = nil
	for _, l := range []struct{ platform, price string }{
		{"amazon", "1299.00"},
		{"flipkart", "1199.00"},
	} {
		listing := &models.ProductListing{
			ProductID: suite.product.ID,
			Platform:  l.platform,
			Price:     models.NewMoney(decimal.RequireFromString(l.price)),
			InStock:   true,
		}
		suite.Require().NoError(suite.store.CreateListing(ctx, listing))
		suite.listings = append(suite.listings, listing)
	}
}

func (suite *CompareHandlerTestSuite) postCompare(body interface{}) *httptest.ResponseRecorder {
	jsonData, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest("POST", "/api/compare", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CompareHandlerTestSuite) TestCompareSuccess() {
	w := suite.postCompare(map[string]interface{}{
		"productId":  suite.product.ID.String(),
		"listingIds": []string{suite.listings[0].ID.String(), suite.listings[1].ID.String()},
	})

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Product  models.Product           `json:"product"`
			Listings []map[string]interface{} `json:"listings"`
			BestDeal map[string]interface{}   `json:"bestDeal"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	suite.True(response.Success)
	suite.Equal(suite.product.ID, response.Data.Product.ID)
	suite.Len(response.Data.Listings, 2)
	suite.Require().NotNil(response.Data.BestDeal)
	suite.Equal(suite.listings[1].ID.String(), response.Data.BestDeal["id"])
	suite.Equal("1199.00", response.Data.BestDeal["price"])
}

func (suite *CompareHandlerTestSuite) TestCompareMissingListingIDs() {
	w := suite.postCompare(map[string]interface{}{
		"productId": suite.product.ID.String(),
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CompareHandlerTestSuite) TestCompareListingIDsNotAnArray() {
	w := suite.postCompare(map[string]interface{}{
		"productId":  suite.product.ID.String(),
		"listingIds": "not-an-array",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *CompareHandlerTestSuite) TestCompareEmptyListingIDs() {
	w := suite.postCompare(map[string]interface{}{
		"productId":  suite.product.ID.String(),
		"listingIds": []string{},
	})

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Listings []interface{} `json:"listings"`
			BestDeal interface{}   `json:"bestDeal"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Empty(response.Data.Listings)
	suite.Nil(response.Data.BestDeal)
}

func (suite *CompareHandlerTestSuite) TestCompareUnknownProduct() {
	w := suite.postCompare(map[string]interface{}{
		"productId":  uuid.NewString(),
		"listingIds": []string{suite.listings[0].ID.String()},
	})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CompareHandlerTestSuite) TestCompareDropsBogusListingIDs() {
	w := suite.postCompare(map[string]interface{}{
		"productId":  suite.product.ID.String(),
		"listingIds": []string{"garbage", suite.listings[0].ID.String(), uuid.NewString()},
	})

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Listings []map[string]interface{} `json:"listings"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Data.Listings, 1)
	suite.Equal(suite.listings[0].ID.String(), response.Data.Listings[0]["id"])
}

func TestCompareHandlerSuite(t *testing.T) {
	suite.Run(t, new(CompareHandlerTestSuite))
}
