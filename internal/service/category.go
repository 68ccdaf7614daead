package service

import (
	"errors"
	"fmt"
	"time"

	"business-platform-backend/internal/database/models"
	apperrors "business-platform-backend/internal/errors"
	"business-platform-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService handles business logic for inventory categories. Categories
// are independently loadable and creatable; clients must not assume seeding
// populated them at signup.
type CategoryService struct {
	repo      repository.InventoryCategoryRepositoryInterface
	validator *validator.Validate
}

// NewCategoryService creates a new category service
func NewCategoryService(repo repository.InventoryCategoryRepositoryInterface, validator *validator.Validate) *CategoryService {
	return &CategoryService{repo: repo, validator: validator}
}

// CreateCategoryRequest represents the request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"max=255"`
}

// CategoryResponse represents the response for category operations
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Create creates a new category for a tenant
func (s *CategoryService) Create(tenantID uuid.UUID, req *CreateCategoryRequest) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existing, err := s.repo.GetByTenantAndName(tenantID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCategoryExists
	}

	category := &models.InventoryCategory{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.Create(category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return toCategoryResponse(category), nil
}

// ListByTenant returns all categories of a tenant
func (s *CategoryService) ListByTenant(tenantID uuid.UUID) ([]CategoryResponse, error) {
	categories, err := s.repo.GetByTenantID(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *toCategoryResponse(&categories[i]))
	}
	return out, nil
}

func toCategoryResponse(c *models.InventoryCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}
