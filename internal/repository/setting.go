package repository

import (
	"business-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingRepository handles database operations for tenant settings
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// BulkCreateTx inserts a batch of settings inside the given transaction
func (r *SettingRepository) BulkCreateTx(tx *gorm.DB, settings []models.Setting) error {
	if len(settings) == 0 {
		return nil
	}
	return tx.Create(&settings).Error
}

// GetByTenantID retrieves all settings for a tenant
func (r *SettingRepository) GetByTenantID(tenantID uuid.UUID) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.Where("tenant_id = ?", tenantID).Order("key ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// GetByTenantAndKey retrieves a single setting for a tenant
func (r *SettingRepository) GetByTenantAndKey(tenantID uuid.UUID, key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.First(&setting, "tenant_id = ? AND key = ?", tenantID, key).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
