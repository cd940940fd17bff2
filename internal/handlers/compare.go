// internal/handlers/compare.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pricewise/pricewise-backend/internal/services"
	"github.com/pricewise/pricewise-backend/internal/store"
	"github.com/pricewise/pricewise-backend/internal/utils"
)

type CompareHandler struct {
	comparisonService *services.ComparisonService
}

func NewCompareHandler(comparisonService *services.ComparisonService) *CompareHandler {
	return &CompareHandler{comparisonService: comparisonService}
}

type compareRequest struct {
	ProductID  string    `json:"productId"`
	ListingIDs *[]string `json:"listingIds"`
}

// POST /api/compare
func (h *CompareHandler) Compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid comparison request", err.Error())
		return
	}

	if req.ListingIDs == nil {
		utils.BadRequestResponse(c, "listingIds must be an array of listing ids", nil)
		return
	}

	result, err := h.comparisonService.Compare(c.Request.Context(), req.ProductID, *req.ListingIDs)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, result)
}

// POST /api/comparisons
func (h *CompareHandler) SaveComparison(c *gin.Context) {
	var req services.SaveComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	var userID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(c); ok {
		userID = &id
	}

	comparison, err := h.comparisonService.SaveComparison(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"comparison": comparison,
	})
}

// GET /api/comparisons/:id
func (h *CompareHandler) GetComparison(c *gin.Context) {
	comparison, err := h.comparisonService.GetComparison(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Comparison")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"comparison": comparison,
	})
}

// GET /api/comparisons
func (h *CompareHandler) GetUserComparisons(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	comparisons, err := h.comparisonService.GetUserComparisons(c.Request.Context(), userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"comparisons": comparisons,
	})
}
