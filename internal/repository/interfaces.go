package repository

import (
	"business-platform-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TxManagerInterface wraps transactional execution
type TxManagerInterface interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	CreateTx(tx *gorm.DB, tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetBySlug(slug string) (*models.Tenant, error)
	SlugExistsTx(tx *gorm.DB, slug string) (bool, error)
	Update(tenant *models.Tenant) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	CreateTx(tx *gorm.DB, user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// UserTenantRepositoryInterface defines the interface for membership repository operations
type UserTenantRepositoryInterface interface {
	CreateTx(tx *gorm.DB, membership *models.UserTenant) error
	GetByUserID(userID uuid.UUID) ([]models.UserTenant, error)
	GetByTenantAndUser(tenantID, userID uuid.UUID) (*models.UserTenant, error)
}

// SettingRepositoryInterface defines the interface for setting repository operations
type SettingRepositoryInterface interface {
	BulkCreateTx(tx *gorm.DB, settings []models.Setting) error
	GetByTenantID(tenantID uuid.UUID) ([]models.Setting, error)
	GetByTenantAndKey(tenantID uuid.UUID, key string) (*models.Setting, error)
}

// InventoryCategoryRepositoryInterface defines the interface for inventory category repository operations
type InventoryCategoryRepositoryInterface interface {
	Create(category *models.InventoryCategory) error
	GetByTenantAndName(tenantID uuid.UUID, name string) (*models.InventoryCategory, error)
	GetByTenantID(tenantID uuid.UUID) ([]models.InventoryCategory, error)
	CountByTenantID(tenantID uuid.UUID) (int64, error)
}
