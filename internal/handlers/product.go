// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pricewise/pricewise-backend/internal/services"
	"github.com/pricewise/pricewise-backend/internal/store"
	"github.com/pricewise/pricewise-backend/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
	storageService *services.StorageService
}

func NewProductHandler(catalogService *services.CatalogService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		storageService: storageService,
	}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	limit := utils.GetLimitParam(c, store.DefaultProductLimit, store.DefaultProductLimit)

	products, err := h.catalogService.GetProducts(c.Request.Context(), limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /api/products/search?q=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")

	products, err := h.catalogService.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, services.ErrQueryTooShort) {
			utils.BadRequestResponse(c, "Search query must be at least 2 characters long", nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"product": product,
	})
}

// GET /api/products/:id/listings
func (h *ProductHandler) GetProductListings(c *gin.Context) {
	listings, err := h.catalogService.GetProductListings(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listings": listings,
	})
}

// POST /api/products/:id/listings
func (h *ProductHandler) CreateListing(c *gin.Context) {
	var req services.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	listing, err := h.catalogService.CreateListing(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"listing": listing,
	})
}

// PATCH /api/listings/:id
func (h *ProductHandler) UpdateListing(c *gin.Context) {
	var req services.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	listing, err := h.catalogService.UpdateListing(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFoundResponse(c, "Listing")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listing": listing,
	})
}

// POST /api/products/upload-images
func (h *ProductHandler) UploadProductImages(c *gin.Context) {
	if h.storageService == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE",
			"Image storage is not configured", nil)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to parse upload", err.Error())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No images uploaded", nil)
		return
	}

	var uploaded []services.UploadResult
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			continue
		}

		result, err := h.storageService.UploadImage(file, fileHeader)
		file.Close()
		if err != nil {
			continue
		}

		uploaded = append(uploaded, *result)
	}

	utils.SuccessResponse(c, gin.H{
		"images": uploaded,
	})
}
