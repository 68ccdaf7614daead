package repository

import (
	"business-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserTenantRepository handles database operations for tenant memberships
type UserTenantRepository struct {
	db *gorm.DB
}

// NewUserTenantRepository creates a new membership repository
func NewUserTenantRepository(db *gorm.DB) *UserTenantRepository {
	return &UserTenantRepository{db: db}
}

// CreateTx creates a new membership inside the given transaction
func (r *UserTenantRepository) CreateTx(tx *gorm.DB, membership *models.UserTenant) error {
	return tx.Create(membership).Error
}

// GetByUserID retrieves a user's memberships with tenant details, default
// membership first, then oldest first
func (r *UserTenantRepository) GetByUserID(userID uuid.UUID) ([]models.UserTenant, error) {
	var memberships []models.UserTenant
	err := r.db.
		Preload("Tenant").
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetByTenantAndUser retrieves a single membership for a (tenant, user) pair
func (r *UserTenantRepository) GetByTenantAndUser(tenantID, userID uuid.UUID) (*models.UserTenant, error) {
	var membership models.UserTenant
	err := r.db.First(&membership, "tenant_id = ? AND user_id = ?", tenantID, userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}
