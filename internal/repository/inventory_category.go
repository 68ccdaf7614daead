package repository

import (
	"business-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryCategoryRepository handles database operations for inventory categories
type InventoryCategoryRepository struct {
	db *gorm.DB
}

// NewInventoryCategoryRepository creates a new inventory category repository
func NewInventoryCategoryRepository(db *gorm.DB) *InventoryCategoryRepository {
	return &InventoryCategoryRepository{db: db}
}

// Create creates a new inventory category
func (r *InventoryCategoryRepository) Create(category *models.InventoryCategory) error {
	return r.db.Create(category).Error
}

// GetByTenantAndName retrieves a category by its per-tenant unique name
func (r *InventoryCategoryRepository) GetByTenantAndName(tenantID uuid.UUID, name string) (*models.InventoryCategory, error) {
	var category models.InventoryCategory
	err := r.db.First(&category, "tenant_id = ? AND name = ?", tenantID, name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByTenantID retrieves all categories for a tenant
func (r *InventoryCategoryRepository) GetByTenantID(tenantID uuid.UUID) ([]models.InventoryCategory, error) {
	var categories []models.InventoryCategory
	err := r.db.Where("tenant_id = ?", tenantID).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CountByTenantID counts the categories belonging to a tenant
func (r *InventoryCategoryRepository) CountByTenantID(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.InventoryCategory{}).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}
