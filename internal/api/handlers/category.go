package handlers

import (
	"errors"
	"net/http"

	"business-platform-backend/internal/auth"
	"business-platform-backend/internal/catalog"
	apperrors "business-platform-backend/internal/errors"
	"business-platform-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles HTTP requests for inventory categories
type CategoryHandler struct {
	service service.CategoryServiceInterface
	catalog *catalog.Catalog
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service service.CategoryServiceInterface, cat *catalog.Catalog) *CategoryHandler {
	return &CategoryHandler{service: service, catalog: cat}
}

// ListCategories handles GET /api/v1/categories
// @Summary List inventory categories
// @Description List all inventory categories of the current tenant
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]interface{} "Categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	tenantID, ok := auth.TenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Tenant context is required"})
		return
	}

	categories, err := h.service.ListByTenant(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"categories": categories}})
}

// CreateCategory handles POST /api/v1/categories
// @Summary Create an inventory category
// @Description Create an inventory category scoped to the current tenant
// @Tags categories
// @Accept json
// @Produce json
// @Param category body service.CreateCategoryRequest true "Category data"
// @Success 201 {object} map[string]interface{} "Category created"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Security BearerAuth
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	tenantID, ok := auth.TenantIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Tenant context is required"})
		return
	}

	var req service.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	category, err := h.service.Create(tenantID, &req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		switch {
		case errors.Is(err, apperrors.ErrCategoryExists):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create category"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"category": category}})
}

// ListShopTypes handles GET /api/v1/shop-types
// @Summary List shop types
// @Description List the retail shop subtypes available at signup
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]interface{} "Shop types"
// @Router /shop-types [get]
func (h *CategoryHandler) ListShopTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"shopTypes": h.catalog.ShopTypeOptions()}})
}
