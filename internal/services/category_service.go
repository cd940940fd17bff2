// internal/services/category_service.go
package services

import (
	"context"
	"fmt"

	"github.com/pricewise/pricewise-backend/internal/models"
	"github.com/pricewise/pricewise-backend/internal/store"
	"github.com/pricewise/pricewise-backend/internal/utils"
)

type CategoryService struct {
	categories store.CategoryStore
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" validate:"required,min=2,max=100"`
	Icon        string `json:"icon" validate:"required"`
	Description string `json:"description,omitempty"`
	IsPopular   bool   `json:"is_popular,omitempty"`
}

func NewCategoryService(categories store.CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetCategories(ctx)
}

func (s *CategoryService) GetPopularCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetPopularCategories(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Icon:        req.Icon,
		Description: req.Description,
		IsPopular:   req.IsPopular,
	}
	if err := s.categories.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}
