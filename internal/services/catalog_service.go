// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/pricewise/pricewise-backend/internal/models"
	"github.com/pricewise/pricewise-backend/internal/store"
	"github.com/pricewise/pricewise-backend/internal/utils"
)

// ErrQueryTooShort is returned by Search for queries whose trimmed length is
// below two characters.
var ErrQueryTooShort = errors.New("search query must be at least 2 characters long")

// CatalogService exposes product and listing operations over the catalog
// store.
type CatalogService struct {
	catalog store.CatalogStore
}

type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category" validate:"required"`
	Brand       string `json:"brand,omitempty"`
	Image       string `json:"image,omitempty" validate:"omitempty,url"`
}

type CreateListingRequest struct {
	Platform          string   `json:"platform" validate:"required"`
	PlatformProductID string   `json:"platform_product_id" validate:"required"`
	URL               string   `json:"url" validate:"required,url"`
	Price             string   `json:"price" validate:"required"`
	OriginalPrice     string   `json:"original_price,omitempty"`
	ShippingDays      *int     `json:"shipping_days,omitempty" validate:"omitempty,min=0"`
	ShippingCost      string   `json:"shipping_cost,omitempty"`
	InStock           *bool    `json:"in_stock,omitempty"`
	Rating            string   `json:"rating,omitempty"`
	ReviewCount       int      `json:"review_count,omitempty" validate:"omitempty,min=0"`
	Features          []string `json:"features,omitempty"`
}

type UpdateListingRequest struct {
	URL          string   `json:"url,omitempty" validate:"omitempty,url"`
	Price        string   `json:"price,omitempty"`
	ShippingDays *int     `json:"shipping_days,omitempty" validate:"omitempty,min=0"`
	ShippingCost string   `json:"shipping_cost,omitempty"`
	InStock      *bool    `json:"in_stock,omitempty"`
	Rating       string   `json:"rating,omitempty"`
	ReviewCount  *int     `json:"review_count,omitempty" validate:"omitempty,min=0"`
	Features     []string `json:"features,omitempty"`
}

func NewCatalogService(catalog store.CatalogStore) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) GetProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if limit <= 0 || limit > store.DefaultProductLimit {
		limit = store.DefaultProductLimit
	}
	return s.catalog.GetProducts(ctx, limit)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", id, store.ErrNotFound)
	}
	return s.catalog.GetProduct(ctx, pid)
}

// Search matches the trimmed query case-insensitively against product name,
// description and brand. Results are capped at 20.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return nil, ErrQueryTooShort
	}
	return s.catalog.SearchProducts(ctx, query, store.SearchLimit)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.catalog.GetProductByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("product %q already exists", req.Name)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Brand:       req.Brand,
		Image:       req.Image,
	}
	if err := s.catalog.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *CatalogService) GetProductListings(ctx context.Context, productID string) ([]models.ProductListing, error) {
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", productID, store.ErrNotFound)
	}

	if _, err := s.catalog.GetProduct(ctx, pid); err != nil {
		return nil, err
	}
	return s.catalog.GetListingsForProduct(ctx, pid)
}

func (s *CatalogService) CreateListing(ctx context.Context, productID string, req *CreateListingRequest) (*models.ProductListing, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("product %q: %w", productID, store.ErrNotFound)
	}
	if _, err := s.catalog.GetProduct(ctx, pid); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", req.Price, err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative")
	}

	listing := &models.ProductListing{
		ProductID:         pid,
		Platform:          string(models.ParsePlatform(req.Platform)),
		PlatformProductID: req.PlatformProductID,
		URL:               req.URL,
		Price:             models.NewMoney(price),
		ShippingDays:      req.ShippingDays,
		InStock:           true,
		ReviewCount:       req.ReviewCount,
		Features:          pq.StringArray(req.Features),
	}
	if req.InStock != nil {
		listing.InStock = *req.InStock
	}

	if listing.OriginalPrice, err = parseOptionalMoney(req.OriginalPrice); err != nil {
		return nil, fmt.Errorf("invalid original_price %q: %w", req.OriginalPrice, err)
	}
	if listing.ShippingCost, err = parseOptionalMoney(req.ShippingCost); err != nil {
		return nil, fmt.Errorf("invalid shipping_cost %q: %w", req.ShippingCost, err)
	}
	if listing.Rating, err = parseOptionalDecimal(req.Rating); err != nil {
		return nil, fmt.Errorf("invalid rating %q: %w", req.Rating, err)
	}

	if err := s.catalog.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (s *CatalogService) UpdateListing(ctx context.Context, id string, req *UpdateListingRequest) (*models.ProductListing, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	lid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", id, store.ErrNotFound)
	}

	updates := make(map[string]interface{})
	if req.URL != "" {
		updates["url"] = req.URL
	}
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %w", req.Price, err)
		}
		updates["price"] = models.NewMoney(price)
	}
	if req.ShippingDays != nil {
		updates["shipping_days"] = req.ShippingDays
	}
	if req.ShippingCost != "" {
		cost, err := parseOptionalMoney(req.ShippingCost)
		if err != nil {
			return nil, fmt.Errorf("invalid shipping_cost %q: %w", req.ShippingCost, err)
		}
		updates["shipping_cost"] = cost
	}
	if req.InStock != nil {
		updates["in_stock"] = *req.InStock
	}
	if req.Rating != "" {
		rating, err := parseOptionalDecimal(req.Rating)
		if err != nil {
			return nil, fmt.Errorf("invalid rating %q: %w", req.Rating, err)
		}
		updates["rating"] = rating
	}
	if req.ReviewCount != nil {
		updates["review_count"] = *req.ReviewCount
	}
	if req.Features != nil {
		updates["features"] = pq.StringArray(req.Features)
	}

	return s.catalog.UpdateListing(ctx, lid, updates)
}

func parseOptionalDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseOptionalMoney(s string) (*models.Money, error) {
	d, err := parseOptionalDecimal(s)
	if err != nil || d == nil {
		return nil, err
	}
	m := models.NewMoney(*d)
	return &m, nil
}
